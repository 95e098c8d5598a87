// Package cmd implements the CLI application to manage a cashbook.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
)

// As a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var storeFile = flag.String("f", "cashbook.json", "Path to the cashbook store file")
var currency = flag.String("currency", "USD", "ISO 4217 code used to display amounts")

// Commands returns all subcommands of the application. A main package
// registers them and executes the user-selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&createAccountCmd{},
		&loginCmd{},
		&passwdCmd{},
		&deleteAccountCmd{},
		newIncomeCmd(),
		newExpenseCmd(),
		&historyCmd{},
		&budgetCmd{},
		&reportCmd{},
		&tagsCmd{},
		&tagAddCmd{},
		&tagRmCmd{},
		&tagRenameCmd{},
		&cartCmd{},
		&cartAddCmd{},
		&cartConfirmCmd{},
		&cartRmCmd{},
		&publishCmd{},
		&importLegacyCmd{},
	}
}

// OpenStore opens the app store file, creating and seeding it on first use.
func OpenStore() (*cashbook.Store, error) {
	return cashbook.Open(*storeFile)
}

// printMarkdown renders a markdown document to the terminal. If the fancy
// renderer fails the raw markdown is still printed.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
