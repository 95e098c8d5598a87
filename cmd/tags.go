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

type tagsCmd struct{}

func (*tagsCmd) Name() string     { return "tags" }
func (*tagsCmd) Synopsis() string { return "list the registered spending categories" }
func (*tagsCmd) Usage() string {
	return `tags

  Lists the tags that can be picked when recording a transaction.
`
}

func (*tagsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *tagsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	tags, err := cashbook.NewTagRegistry(store).Tags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TagsMarkdown(tags))
	return subcommands.ExitSuccess
}
