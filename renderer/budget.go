package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/srosset/cashbook"
)

// BudgetMarkdown renders the budget standing of one account.
func BudgetMarkdown(account string, b cashbook.BudgetReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budget for %s", account))

	limit := "not set"
	if b.HasLimit {
		limit = cashbook.DisplayMoney(b.Limit, currency)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{md.Bold("Limit"), md.Bold(limit)},
		Rows: [][]string{
			{"Recorded expenses", cashbook.DisplayMoney(b.ExpenseTotal, currency)},
			{"Confirmed cart", cashbook.DisplayMoney(b.ConfirmedCart, currency)},
			{"Planned cart", cashbook.DisplayMoney(b.PlannedCart, currency)},
			{"Consumed", cashbook.DisplayMoney(b.Confirmed, currency)},
			{"Remaining", cashbook.SignedMoney(b.Remaining, currency)},
		},
	})

	if b.HasLimit && b.Exceeded {
		doc.PlainText(md.Bold("Budget exceeded."))
	}

	return doc.String()
}
