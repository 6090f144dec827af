// Package report contains the reporting pipeline use cases.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// Window is an inclusive calendar-day range. Transactions are compared at
// day granularity, so a transaction at any time on the last day is inside.
type Window struct {
	From time.Time
	To   time.Time
}

// MonthWindow returns the Window covering a validated "YYYY-MM" month.
func MonthWindow(month string) Window {
	start, end := entity.MonthBounds(month)
	return Window{From: start, To: end}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(w.From) && !d.After(w.To)
}

// AggregateByCategory groups transactions of the given type inside the window
// by their exact category string and sums the amounts. Categories are matched
// verbatim; no trimming or case folding happens here, that is a write-time
// concern. Transactions of other types or outside the window are ignored.
func AggregateByCategory(
	transactions []*entity.Transaction,
	transactionType entity.TransactionType,
	window Window,
) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != transactionType || !window.Contains(tx.Date) {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}

// SumCategories folds a category aggregate into a single total.
func SumCategories(totals map[string]decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, amount := range totals {
		sum = sum.Add(amount)
	}
	return sum
}

// CategoryAmount is one entry of a per-category breakdown.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SortedBreakdown flattens a category aggregate into a slice ordered by
// category label so the output is deterministic.
func SortedBreakdown(totals map[string]decimal.Decimal) []CategoryAmount {
	breakdown := make([]CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		breakdown = append(breakdown, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}
