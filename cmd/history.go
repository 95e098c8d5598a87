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

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the transaction history of an account" }
func (*historyCmd) Usage() string {
	return `history <account>

  Displays the account balance and its transactions, most recent first.
`
}

func (*historyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one account name")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger := cashbook.NewLedger(store)
	a, err := ledger.Account(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	balance := cashbook.DisplayMoney(a.Balance, *currency)
	printMarkdown(renderer.HistoryMarkdown(name, a.Transactions, balance))
	return subcommands.ExitSuccess
}
