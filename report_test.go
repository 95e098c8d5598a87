package cashbook

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testTx(kind Kind, amount int64, category, day string) Transaction {
	ts, err := time.Parse(time.RFC3339, day+"T12:00:00Z")
	if err != nil {
		panic(err)
	}
	return Transaction{
		Amount:    decimal.NewFromInt(amount),
		Category:  category,
		Kind:      kind,
		Timestamp: ts,
	}
}

func TestNewReport(t *testing.T) {
	txs := []Transaction{
		testTx(Income, 100, "Salary", "2024-01-01"),
		testTx(Expense, 30, "Food", "2024-01-02"),
		testTx(Expense, 20, "Food", "2024-01-05"),
	}
	rng := NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-01-03"))

	r := NewReport(txs, rng, "")

	if r.IncomeTotal.String() != "100" {
		t.Errorf("IncomeTotal = %s, want 100", r.IncomeTotal)
	}
	if r.ExpenseTotal.String() != "30" {
		t.Errorf("ExpenseTotal = %s, want 30", r.ExpenseTotal)
	}
	if len(r.CategoryBreakdown) != 1 || r.CategoryBreakdown["Food"].String() != "30" {
		t.Errorf("CategoryBreakdown = %v, want Food:30", r.CategoryBreakdown)
	}

	if len(r.DailyNet) != 2 {
		t.Fatalf("len(DailyNet) = %d, want 2", len(r.DailyNet))
	}
	if r.DailyNet[0].Date != MustParseDate("2024-01-01") || r.DailyNet[0].Net.String() != "-100" {
		t.Errorf("DailyNet[0] = %+v, want 2024-01-01 net -100", r.DailyNet[0])
	}
	if r.DailyNet[1].Date != MustParseDate("2024-01-02") || r.DailyNet[1].Net.String() != "30" {
		t.Errorf("DailyNet[1] = %+v, want 2024-01-02 net 30", r.DailyNet[1])
	}
}

func TestNewReportCategoryFilter(t *testing.T) {
	txs := []Transaction{
		testTx(Expense, 30, "Food", "2024-01-02"),
		testTx(Expense, 40, "Rent", "2024-01-02"),
		testTx(Income, 10, "Salary", "2024-01-02"),
	}

	r := NewReport(txs, Range{}, "Food")
	if r.ExpenseTotal.String() != "30" {
		t.Errorf("filtered ExpenseTotal = %s, want 30", r.ExpenseTotal)
	}
	if !r.IncomeTotal.IsZero() {
		t.Errorf("filtered IncomeTotal = %s, want 0", r.IncomeTotal)
	}

	// AllCategories and the empty string disable the filter.
	for _, cat := range []string{"", AllCategories} {
		r := NewReport(txs, Range{}, cat)
		if r.ExpenseTotal.String() != "70" {
			t.Errorf("NewReport(%q) ExpenseTotal = %s, want 70", cat, r.ExpenseTotal)
		}
		if r.Category != AllCategories {
			t.Errorf("NewReport(%q) Category = %q, want %q", cat, r.Category, AllCategories)
		}
	}
}

func TestNewReportEmpty(t *testing.T) {
	r := NewReport(nil, Range{}, "")
	if !r.IncomeTotal.IsZero() || !r.ExpenseTotal.IsZero() {
		t.Errorf("empty report totals = %s/%s, want 0/0", r.IncomeTotal, r.ExpenseTotal)
	}
	if len(r.DailyNet) != 0 {
		t.Errorf("empty report DailyNet = %v, want none", r.DailyNet)
	}
}

func TestNewBudgetReport(t *testing.T) {
	limit := decimal.NewFromInt(100)
	account := Account{
		Budget: &limit,
		Transactions: []Transaction{
			testTx(Expense, 80, "Rent", "2024-01-01"),
			testTx(Income, 500, "Salary", "2024-01-01"),
		},
	}
	items := []ShoppingItem{
		{Name: "headphones", Cost: decimal.NewFromInt(30), Confirmed: true},
		{Name: "kettle", Cost: decimal.NewFromInt(25)},
	}

	b := NewBudgetReport(account, items)

	if !b.HasLimit || b.Limit.String() != "100" {
		t.Errorf("Limit = %s (has %v), want 100", b.Limit, b.HasLimit)
	}
	if b.ExpenseTotal.String() != "80" {
		t.Errorf("ExpenseTotal = %s, want 80 (income must not count)", b.ExpenseTotal)
	}
	if b.ConfirmedCart.String() != "30" || b.PlannedCart.String() != "25" {
		t.Errorf("cart split = %s/%s, want 30/25", b.ConfirmedCart, b.PlannedCart)
	}
	if b.Confirmed.String() != "110" {
		t.Errorf("Confirmed = %s, want 110", b.Confirmed)
	}
	if b.Remaining.String() != "-10" {
		t.Errorf("Remaining = %s, want -10", b.Remaining)
	}
	if !b.Exceeded {
		t.Error("Exceeded = false, want true")
	}
}

func TestNewBudgetReportWithoutLimit(t *testing.T) {
	account := Account{
		Transactions: []Transaction{testTx(Expense, 10, "Food", "2024-01-01")},
	}

	b := NewBudgetReport(account, nil)

	if b.HasLimit {
		t.Error("HasLimit = true, want false")
	}
	if b.Remaining.String() != "-10" {
		t.Errorf("Remaining = %s, want -10", b.Remaining)
	}
}
