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

type reportCmd struct {
	from     string
	to       string
	category string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "aggregate an account's transactions over a period" }
func (*reportCmd) Usage() string {
	return `report [-from <date>] [-to <date>] [-c <category>] <account>

  Sums income and expenses over the given inclusive date range, with a
  per-category breakdown and the net outflow per day. An empty or malformed
  bound leaves that side of the range open.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "first day of the period (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "last day of the period (YYYY-MM-DD)")
	f.StringVar(&c.category, "c", "", "only count this category")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	txs, err := cashbook.NewLedger(store).Transactions(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rng := cashbook.NewRange(cashbook.ParseRangeBound(c.from), cashbook.ParseRangeBound(c.to))
	report := cashbook.NewReport(txs, rng, c.category)
	printMarkdown(renderer.ReportMarkdown(name, report, *currency))
	return subcommands.ExitSuccess
}
