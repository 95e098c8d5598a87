package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/srosset/cashbook"
)

func testTx(kind cashbook.Kind, amount int64, category, day string) cashbook.Transaction {
	ts, err := time.Parse(time.RFC3339, day+"T12:00:00Z")
	if err != nil {
		panic(err)
	}
	return cashbook.Transaction{
		Amount:    decimal.NewFromInt(amount),
		Category:  category,
		Kind:      kind,
		Timestamp: ts,
	}
}

func TestReportMarkdown(t *testing.T) {
	txs := []cashbook.Transaction{
		testTx(cashbook.Income, 100, "Salary", "2024-01-01"),
		testTx(cashbook.Expense, 30, "Food", "2024-01-02"),
	}
	r := cashbook.NewReport(txs, cashbook.Range{}, "")

	got := ReportMarkdown("alice", r, "USD")

	for _, want := range []string{
		"# Report for alice",
		"$100.00",
		"Food",
		"2024-01-02",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdownOrder(t *testing.T) {
	txs := []cashbook.Transaction{
		testTx(cashbook.Expense, 1, "Food", "2024-01-01"),
		testTx(cashbook.Expense, 2, "Rent", "2024-01-02"),
	}

	got := HistoryMarkdown("alice", txs, "$7.00")

	// Most recent first.
	if strings.Index(got, "2024-01-02") > strings.Index(got, "2024-01-01") {
		t.Errorf("HistoryMarkdown() not most-recent-first:\n%s", got)
	}
	if !strings.Contains(got, "$7.00") {
		t.Errorf("HistoryMarkdown() missing balance in:\n%s", got)
	}
}

func TestHistoryMarkdownEmpty(t *testing.T) {
	got := HistoryMarkdown("alice", nil, "$0.00")
	if !strings.Contains(got, "No transactions") {
		t.Errorf("HistoryMarkdown(empty) = %q, want empty notice", got)
	}
}

func TestBudgetMarkdownExceeded(t *testing.T) {
	limit := decimal.NewFromInt(80)
	account := cashbook.Account{
		Budget:       &limit,
		Transactions: []cashbook.Transaction{testTx(cashbook.Expense, 100, "Rent", "2024-01-01")},
	}

	got := BudgetMarkdown("alice", cashbook.NewBudgetReport(account, nil), "USD")

	if !strings.Contains(got, "Budget exceeded") {
		t.Errorf("BudgetMarkdown() missing exceeded warning in:\n%s", got)
	}
}

func TestCartMarkdown(t *testing.T) {
	items := []cashbook.ShoppingItem{
		{Name: "headphones", Cost: decimal.NewFromInt(60), Confirmed: true},
		{Name: "kettle", Cost: decimal.NewFromInt(25)},
	}

	got := CartMarkdown(items, "USD")

	for _, want := range []string{"headphones", "confirmed", "kettle", "planned", "$85.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("CartMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestTagsMarkdown(t *testing.T) {
	got := TagsMarkdown([]string{"Salary", "Rent"})
	for _, want := range []string{"Salary", "Rent"} {
		if !strings.Contains(got, want) {
			t.Errorf("TagsMarkdown() missing %q in:\n%s", want, got)
		}
	}
	if !strings.Contains(TagsMarkdown(nil), "No tags") {
		t.Error("TagsMarkdown(nil) missing empty notice")
	}
}
