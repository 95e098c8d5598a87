package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

type cartRmCmd struct{}

func (*cartRmCmd) Name() string     { return "cart-rm" }
func (*cartRmCmd) Synopsis() string { return "remove an item from the shopping cart" }
func (*cartRmCmd) Usage() string {
	return `cart-rm <index>

  Removes the item at the given index as printed by the cart command.
`
}

func (*cartRmCmd) SetFlags(_ *flag.FlagSet) {}

func (c *cartRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one item index")
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not an index\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cashbook.NewShoppingCart(store).Remove(index); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed item %d\n", index)
	return subcommands.ExitSuccess
}
