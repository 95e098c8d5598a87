package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

type tagRenameCmd struct{}

func (*tagRenameCmd) Name() string     { return "tag-rename" }
func (*tagRenameCmd) Synopsis() string { return "rename a spending category" }
func (*tagRenameCmd) Usage() string {
	return `tag-rename <old> <new>

  Renames a tag in the registry. Recorded transactions keep the old name.
`
}

func (*tagRenameCmd) SetFlags(_ *flag.FlagSet) {}

func (c *tagRenameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "expected <old> <new>")
		return subcommands.ExitUsageError
	}
	old, new := f.Arg(0), f.Arg(1)

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cashbook.NewTagRegistry(store).Rename(old, new); err != nil {
		fmt.Fprintf(os.Stderr, "Error renaming tag: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Renamed tag %q to %q\n", old, new)
	return subcommands.ExitSuccess
}
