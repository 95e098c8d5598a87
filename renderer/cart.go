package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
	"github.com/srosset/cashbook"
)

// CartMarkdown renders the shopping cart with one row per item, the stored
// index first so confirm commands can reference it.
func CartMarkdown(items []cashbook.ShoppingItem, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Shopping Cart")

	if len(items) == 0 {
		doc.PlainText("The cart is empty.")
		return doc.String()
	}

	var total, confirmed decimal.Decimal
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"#", "Item", "Cost", "Status"},
		Rows:   [][]string{},
	}
	for i, it := range items {
		status := "planned"
		if it.Confirmed {
			status = "confirmed"
			confirmed = confirmed.Add(it.Cost)
		}
		total = total.Add(it.Cost)
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i),
			it.Name,
			cashbook.DisplayMoney(it.Cost, currency),
			status,
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total %s, confirmed %s.",
		cashbook.DisplayMoney(total, currency),
		cashbook.DisplayMoney(confirmed, currency)))

	return doc.String()
}

// TagsMarkdown renders the registered tags as a bullet list.
func TagsMarkdown(tags []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tags")
	if len(tags) == 0 {
		doc.PlainText("No tags registered.")
		return doc.String()
	}
	doc.BulletList(tags...)

	return doc.String()
}
