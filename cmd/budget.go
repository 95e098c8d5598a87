package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
	"github.com/srosset/cashbook/renderer"
)

type budgetCmd struct {
	set   string
	clear bool
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show or change an account's spending limit" }
func (*budgetCmd) Usage() string {
	return `budget [-set <amount> | -clear] <account>

  Without flags, displays the budget standing: the limit, the expenses and
  confirmed cart items consuming it, and what remains. With -set the limit is
  replaced, with -clear it is removed.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "new spending limit")
	f.BoolVar(&c.clear, "clear", false, "remove the spending limit")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one account name")
		return subcommands.ExitUsageError
	}
	if c.set != "" && c.clear {
		fmt.Fprintln(os.Stderr, "-set and -clear are mutually exclusive")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger := cashbook.NewLedger(store)

	switch {
	case c.clear:
		if err := ledger.ClearBudget(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing budget: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Cleared budget of %q\n", name)
	case c.set != "":
		limit, err := cashbook.ParseAmount(c.set)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := ledger.SetBudget(name, limit); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting budget: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Set budget of %q to %s\n", name, cashbook.DisplayMoney(limit, *currency))
	default:
		report, err := ledger.BudgetReport(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.BudgetMarkdown(name, report, *currency))
	}
	return subcommands.ExitSuccess
}
