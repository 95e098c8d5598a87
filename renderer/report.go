// Package renderer turns cashbook reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/srosset/cashbook"
)

// ReportMarkdown renders an aggregation report for one account.
func ReportMarkdown(account string, r cashbook.Report, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Report for %s", account))
	doc.PlainText(fmt.Sprintf("Period %s, category %s.", r.Range, r.Category))

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{md.Bold("Income"), md.Bold(cashbook.DisplayMoney(r.IncomeTotal, currency))},
		Rows: [][]string{
			{"Expenses", cashbook.DisplayMoney(r.ExpenseTotal, currency)},
			{"Net", cashbook.SignedMoney(r.Net(), currency)},
		},
	})

	if len(r.CategoryBreakdown) > 0 {
		doc.H2("Expenses by Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Category", "Total"},
			Rows:   [][]string{},
		}
		for _, cat := range r.Categories() {
			table.Rows = append(table.Rows, []string{
				cat,
				cashbook.DisplayMoney(r.CategoryBreakdown[cat], currency),
			})
		}
		doc.Table(table)
	}

	if len(r.DailyNet) > 0 {
		doc.H2("Daily Net Outflow")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Date", "Net"},
			Rows:   [][]string{},
		}
		for _, day := range r.DailyNet {
			table.Rows = append(table.Rows, []string{
				day.Date.String(),
				cashbook.SignedMoney(day.Net, currency),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
