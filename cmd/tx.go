package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

// recordCmd implements both the income and the expense subcommands, the kind
// being the only difference.
type recordCmd struct {
	kind     cashbook.Kind
	category string
	memo     string
}

func newIncomeCmd() *recordCmd  { return &recordCmd{kind: cashbook.Income} }
func newExpenseCmd() *recordCmd { return &recordCmd{kind: cashbook.Expense} }

func (c *recordCmd) Name() string { return string(c.kind) }

func (c *recordCmd) Synopsis() string {
	if c.kind == cashbook.Income {
		return "record money flowing into an account"
	}
	return "record money flowing out of an account"
}

func (c *recordCmd) Usage() string {
	return fmt.Sprintf(`%s [-c <category>] [-m <memo>] <account> <amount>

  Records a transaction and adjusts the account balance. Recording against an
  unknown account creates it on the fly.
`, c.kind)
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "spending category tag")
	f.StringVar(&c.memo, "m", "", "free-form note")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "expected <account> <amount>")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	amount, err := cashbook.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger := cashbook.NewLedger(store)
	tx, err := ledger.Record(name, amount, c.category, c.memo, c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	balance, err := ledger.Balance(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading balance: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s on %q (%s), new balance %s\n",
		tx.Kind,
		cashbook.DisplayMoney(tx.Amount, *currency),
		name,
		tx.Category,
		cashbook.DisplayMoney(balance, *currency))
	return subcommands.ExitSuccess
}
