package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/srosset/cashbook"
	"github.com/srosset/cashbook/renderer"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type publishCmd struct {
	outputDir string
	html      bool
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "write all reports to a directory" }
func (*publishCmd) Usage() string {
	return `publish [-o <dir>] [-html]

  Generates the history, all-time report and budget standing of every
  account, plus the shopping cart and tag list, and saves them as markdown
  files. With -html each document is also converted to HTML.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.BoolVar(&c.html, "html", false, "also write an HTML rendition of each report")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger := cashbook.NewLedger(store)
	names, err := ledger.Accounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	docs := map[string]string{}
	for _, name := range names {
		a, err := ledger.Account(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading account %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		budget, err := ledger.BudgetReport(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading budget of %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		report := cashbook.NewReport(a.Transactions, cashbook.Range{}, cashbook.AllCategories)

		balance := cashbook.DisplayMoney(a.Balance, *currency)
		docs[name+"-history.md"] = renderer.HistoryMarkdown(name, a.Transactions, balance)
		docs[name+"-report.md"] = renderer.ReportMarkdown(name, report, *currency)
		docs[name+"-budget.md"] = renderer.BudgetMarkdown(name, budget, *currency)
	}

	items, err := cashbook.NewShoppingCart(store).Items()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cart: %v\n", err)
		return subcommands.ExitFailure
	}
	docs["cart.md"] = renderer.CartMarkdown(items, *currency)

	tags, err := cashbook.NewTagRegistry(store).Tags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading tags: %v\n", err)
		return subcommands.ExitFailure
	}
	docs["tags.md"] = renderer.TagsMarkdown(tags)

	for file, md := range docs {
		path := filepath.Join(c.outputDir, file)
		if err := os.WriteFile(path, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
			return subcommands.ExitFailure
		}
		if !c.html {
			continue
		}
		html, err := toHTML(md)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to convert %s: %v\n", path, err)
			return subcommands.ExitFailure
		}
		htmlPath := path[:len(path)-len(".md")] + ".html"
		if err := os.WriteFile(htmlPath, html, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", htmlPath, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Published %d reports to %s\n", len(docs), c.outputDir)
	return subcommands.ExitSuccess
}

// toHTML converts a markdown document to HTML. Tables need the GFM extension.
func toHTML(md string) ([]byte, error) {
	conv := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := conv.Convert([]byte(md), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
