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

type cartCmd struct{}

func (*cartCmd) Name() string     { return "cart" }
func (*cartCmd) Synopsis() string { return "display the shopping cart" }
func (*cartCmd) Usage() string {
	return `cart

  Lists the planned and confirmed items with their index, cost and status.
`
}

func (*cartCmd) SetFlags(_ *flag.FlagSet) {}

func (c *cartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	items, err := cashbook.NewShoppingCart(store).Items()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CartMarkdown(items, *currency))
	return subcommands.ExitSuccess
}
