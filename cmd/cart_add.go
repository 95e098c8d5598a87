package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

type cartAddCmd struct{}

func (*cartAddCmd) Name() string     { return "cart-add" }
func (*cartAddCmd) Synopsis() string { return "add a planned item to the shopping cart" }
func (*cartAddCmd) Usage() string {
	return `cart-add <item> <cost>

  Appends a planned item. It does not consume budget until confirmed.
`
}

func (*cartAddCmd) SetFlags(_ *flag.FlagSet) {}

func (c *cartAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "expected <item> <cost>")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	cost, err := cashbook.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	item, err := cashbook.NewShoppingCart(store).Add(name, cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding item: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %q for %s\n", item.Name, cashbook.DisplayMoney(item.Cost, *currency))
	return subcommands.ExitSuccess
}
