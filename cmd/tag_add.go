package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

type tagAddCmd struct{}

func (*tagAddCmd) Name() string     { return "tag-add" }
func (*tagAddCmd) Synopsis() string { return "register a new spending category" }
func (*tagAddCmd) Usage() string {
	return `tag-add <tag>

  Adds a tag to the registry. Adding an existing tag is a no-op.
`
}

func (*tagAddCmd) SetFlags(_ *flag.FlagSet) {}

func (c *tagAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := cashbook.NewTagRegistry(store).Add(tag); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding tag: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added tag %q\n", tag)
	return subcommands.ExitSuccess
}
