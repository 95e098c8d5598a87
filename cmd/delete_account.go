package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

type deleteAccountCmd struct {
	password string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account and its whole history" }
func (*deleteAccountCmd) Usage() string {
	return `delete-account [-p <password>] <name>

  Removes the account and all of its transactions. This cannot be undone.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.password, "p", "", "password of the account")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := ledger.Authenticate(name, c.password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.DeleteAccount(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting account: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted account %q\n", name)
	return subcommands.ExitSuccess
}
