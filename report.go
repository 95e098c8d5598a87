package cashbook

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Report is the aggregation of a transaction slice over a date range and an
// optional category filter.
type Report struct {
	Range    Range
	Category string // AllCategories when unfiltered

	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal

	// CategoryBreakdown sums expenses per category. Income never contributes.
	CategoryBreakdown map[string]decimal.Decimal

	// DailyNet holds one entry per day with at least one matching
	// transaction, sorted by date. Net is expense minus income, so a day
	// that only earned money is negative.
	DailyNet []DailyNet
}

// DailyNet is the net outflow of a single day.
type DailyNet struct {
	Date Date
	Net  decimal.Decimal
}

// NewReport aggregates the transactions that fall inside rng, keeping only
// the given category unless it is empty or AllCategories. Day boundaries are
// inclusive on both sides.
func NewReport(txs []Transaction, rng Range, category string) Report {
	r := Report{
		Range:             rng,
		Category:          category,
		CategoryBreakdown: make(map[string]decimal.Decimal),
	}
	if r.Category == "" {
		r.Category = AllCategories
	}
	filtered := r.Category == AllCategories

	daily := make(map[Date]decimal.Decimal)
	for _, tx := range txs {
		day := tx.Day()
		if !rng.Contains(day) {
			continue
		}
		if !filtered && tx.Category != r.Category {
			continue
		}
		switch tx.Kind {
		case Income:
			r.IncomeTotal = r.IncomeTotal.Add(tx.Amount)
			daily[day] = daily[day].Sub(tx.Amount)
		case Expense:
			r.ExpenseTotal = r.ExpenseTotal.Add(tx.Amount)
			r.CategoryBreakdown[tx.Category] = r.CategoryBreakdown[tx.Category].Add(tx.Amount)
			daily[day] = daily[day].Add(tx.Amount)
		}
	}

	for day, net := range daily {
		r.DailyNet = append(r.DailyNet, DailyNet{Date: day, Net: net})
	}
	sort.Slice(r.DailyNet, func(i, j int) bool {
		return r.DailyNet[i].Date.Before(r.DailyNet[j].Date)
	})
	return r
}

// Net returns the overall expense minus income of the report.
func (r Report) Net() decimal.Decimal { return r.ExpenseTotal.Sub(r.IncomeTotal) }

// Categories returns the breakdown keys sorted alphabetically.
func (r Report) Categories() []string {
	cats := make([]string, 0, len(r.CategoryBreakdown))
	for c := range r.CategoryBreakdown {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// BudgetReport is the standing of one account's spending limit against its
// lifetime expenses and the shopping cart.
type BudgetReport struct {
	Limit    decimal.Decimal
	HasLimit bool

	ExpenseTotal  decimal.Decimal // all recorded expenses, any date
	ConfirmedCart decimal.Decimal // cost of confirmed cart items
	PlannedCart   decimal.Decimal // cost of items still planned

	Confirmed decimal.Decimal // ExpenseTotal plus ConfirmedCart
	Remaining decimal.Decimal // Limit minus Confirmed
	Exceeded  bool
}

// NewBudgetReport computes the budget standing of an account against the
// cart. Without a limit set, Remaining is the plain negation of the consumed
// total and Exceeded stays meaningful as "spent anything at all".
func NewBudgetReport(a Account, items []ShoppingItem) BudgetReport {
	var b BudgetReport
	if a.Budget != nil {
		b.Limit = *a.Budget
		b.HasLimit = true
	}
	for _, tx := range a.Transactions {
		if tx.Kind == Expense {
			b.ExpenseTotal = b.ExpenseTotal.Add(tx.Amount)
		}
	}
	for _, it := range items {
		if it.Confirmed {
			b.ConfirmedCart = b.ConfirmedCart.Add(it.Cost)
		} else {
			b.PlannedCart = b.PlannedCart.Add(it.Cost)
		}
	}
	b.Confirmed = b.ExpenseTotal.Add(b.ConfirmedCart)
	b.Remaining = b.Limit.Sub(b.Confirmed)
	b.Exceeded = b.Remaining.Sign() < 0
	return b
}
