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

type cartConfirmCmd struct {
	undo bool
}

func (*cartConfirmCmd) Name() string     { return "cart-confirm" }
func (*cartConfirmCmd) Synopsis() string { return "mark a cart item as bought" }
func (*cartConfirmCmd) Usage() string {
	return `cart-confirm [-undo] <index>

  Confirms the item at the given index as printed by the cart command, so its
  cost counts toward the consumed budget. With -undo the item goes back to
  planned.
`
}

func (c *cartConfirmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.undo, "undo", false, "mark the item as planned again")
}

func (c *cartConfirmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := cashbook.NewShoppingCart(store).SetConfirmed(index, !c.undo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.undo {
		fmt.Printf("Item %d is planned again\n", index)
	} else {
		fmt.Printf("Confirmed item %d\n", index)
	}
	return subcommands.ExitSuccess
}
