package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

type passwdCmd struct {
	old string
	new string
}

func (*passwdCmd) Name() string     { return "passwd" }
func (*passwdCmd) Synopsis() string { return "change an account's password" }
func (*passwdCmd) Usage() string {
	return `passwd [-old <password>] [-new <password>] <account>

  Replaces the account password after verifying the old one. An empty new
  password removes the protection.
`
}

func (c *passwdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.old, "old", "", "current password")
	f.StringVar(&c.new, "new", "", "new password, empty to remove")
}

func (c *passwdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := ledger.Authenticate(name, c.old); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.SetPassword(name, c.new); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting password: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Password updated for %q\n", name)
	return subcommands.ExitSuccess
}
