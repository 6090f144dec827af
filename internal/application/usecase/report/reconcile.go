// Package report contains the reporting pipeline use cases.
package report

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// BudgetLine is one reconciled budget-vs-actual row.
type BudgetLine struct {
	Category  string          `json:"category"`
	Budgeted  decimal.Decimal `json:"budgeted"`
	Actual    decimal.Decimal `json:"actual"`
	Remaining decimal.Decimal `json:"remaining"`
}

// Reconcile joins budgets against actual per-category spend. The join is
// budget-anchored: every budget produces exactly one line, a category with
// no spend gets an actual of zero, and spend in a category with no budget
// is left out. Remaining is budgeted minus actual and may go negative.
// Output is sorted by category label.
//
// Two budgets for the same category indicate a broken uniqueness guarantee
// in the store, so that case fails loudly instead of producing a silently
// wrong report.
func Reconcile(budgets []*entity.Budget, actuals map[string]decimal.Decimal) ([]BudgetLine, error) {
	seen := make(map[string]bool, len(budgets))
	lines := make([]BudgetLine, 0, len(budgets))

	for _, budget := range budgets {
		if seen[budget.Category] {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeDuplicateBudgetCategory,
				fmt.Sprintf("duplicate budget for category %q", budget.Category),
				domainerror.ErrDuplicateBudgetCategory,
			)
		}
		seen[budget.Category] = true

		actual := decimal.Zero
		if amount, ok := actuals[budget.Category]; ok {
			actual = amount
		}

		lines = append(lines, BudgetLine{
			Category:  budget.Category,
			Budgeted:  budget.Amount,
			Actual:    actual,
			Remaining: budget.Amount.Sub(actual),
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Category < lines[j].Category
	})

	return lines, nil
}
