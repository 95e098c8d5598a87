package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

type createAccountCmd struct {
	password string
	balance  string
}

func (*createAccountCmd) Name() string     { return "create-account" }
func (*createAccountCmd) Synopsis() string { return "create a new named account" }
func (*createAccountCmd) Usage() string {
	return `create-account [-p <password>] [-b <balance>] <name>

  Creates a new account, starting from the given balance (0 by default).
  The password is optional; an account without one accepts the empty
  password on login.
`
}

func (c *createAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.password, "p", "", "password protecting the account")
	f.StringVar(&c.balance, "b", "0", "starting balance of the account")
}

func (c *createAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one account name")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	balance, err := cashbook.ParseAmount(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := cashbook.NewLedger(store).CreateAccount(name, balance, c.password); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created account %q with balance %s\n", name, cashbook.DisplayMoney(balance, *currency))
	return subcommands.ExitSuccess
}
