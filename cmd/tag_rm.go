package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

type tagRmCmd struct{}

func (*tagRmCmd) Name() string     { return "tag-rm" }
func (*tagRmCmd) Synopsis() string { return "remove a spending category from the registry" }
func (*tagRmCmd) Usage() string {
	return `tag-rm <tag>

  Removes a tag from the registry. Transactions already tagged with it keep
  their category.
`
}

func (*tagRmCmd) SetFlags(_ *flag.FlagSet) {}

func (c *tagRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one tag")
		return subcommands.ExitUsageError
	}
	tag := f.Arg(0)

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cashbook.NewTagRegistry(store).Delete(tag); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing tag: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed tag %q\n", tag)
	return subcommands.ExitSuccess
}
