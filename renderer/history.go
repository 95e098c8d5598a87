package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/srosset/cashbook"
)

// HistoryMarkdown renders an account's transaction history, most recent
// first, together with its current balance.
func HistoryMarkdown(account string, txs []cashbook.Transaction, balance string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", account))
	doc.PlainText(fmt.Sprintf("Current balance: %s", md.Bold(balance)))

	if len(txs) == 0 {
		doc.PlainText("No transactions recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Kind", "Amount", "Category", "Memo"},
		Rows:   [][]string{},
	}
	for i := len(txs) - 1; i >= 0; i-- {
		tx := txs[i]
		table.Rows = append(table.Rows, []string{
			tx.Timestamp.Format("2006-01-02 15:04"),
			string(tx.Kind),
			tx.Amount.String(),
			tx.Category,
			tx.Memo,
		})
	}
	doc.Table(table)

	return doc.String()
}
