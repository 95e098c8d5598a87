package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

type importLegacyCmd struct{}

func (*importLegacyCmd) Name() string     { return "import-legacy" }
func (*importLegacyCmd) Synopsis() string { return "import a legacy export file into the store" }
func (*importLegacyCmd) Usage() string {
	return `import-legacy <file>

  Converts a legacy export (accounts, shopping cart and tags) into the
  current store format, replacing the current content. Plaintext passwords
  are hashed on the way in.
`
}

func (*importLegacyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importLegacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one file to import")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cashbook.Import(file, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %s into %s\n", f.Arg(0), store.Path())
	return subcommands.ExitSuccess
}
