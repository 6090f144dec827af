package report

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

func budget(category, amount string) *entity.Budget {
	return &entity.Budget{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Month:    "2025-03",
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

func actuals(pairs map[string]string) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(pairs))
	for category, amount := range pairs {
		m[category] = decimal.RequireFromString(amount)
	}
	return m
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name    string
		budgets []*entity.Budget
		actuals map[string]decimal.Decimal
		want    []BudgetLine
	}{
		{
			name:    "no budgets yields empty output",
			budgets: nil,
			actuals: actuals(map[string]string{"Food": "50"}),
			want:    []BudgetLine{},
		},
		{
			name:    "budget with no spend gets zero actual",
			budgets: []*entity.Budget{budget("Food", "100")},
			actuals: actuals(nil),
			want: []BudgetLine{
				{Category: "Food", Budgeted: decimal.RequireFromString("100"), Actual: decimal.Zero, Remaining: decimal.RequireFromString("100")},
			},
		},
		{
			name:    "remaining goes negative on overspend",
			budgets: []*entity.Budget{budget("Food", "100")},
			actuals: actuals(map[string]string{"Food": "150"}),
			want: []BudgetLine{
				{Category: "Food", Budgeted: decimal.RequireFromString("100"), Actual: decimal.RequireFromString("150"), Remaining: decimal.RequireFromString("-50")},
			},
		},
		{
			name:    "spend without budget is excluded",
			budgets: []*entity.Budget{budget("Food", "100")},
			actuals: actuals(map[string]string{"Food": "50", "Transport": "30"}),
			want: []BudgetLine{
				{Category: "Food", Budgeted: decimal.RequireFromString("100"), Actual: decimal.RequireFromString("50"), Remaining: decimal.RequireFromString("50")},
			},
		},
		{
			name: "output sorted by category",
			budgets: []*entity.Budget{
				budget("Transport", "60"),
				budget("Food", "100"),
				budget("Rent", "900"),
			},
			actuals: actuals(nil),
			want: []BudgetLine{
				{Category: "Food", Budgeted: decimal.RequireFromString("100"), Actual: decimal.Zero, Remaining: decimal.RequireFromString("100")},
				{Category: "Rent", Budgeted: decimal.RequireFromString("900"), Actual: decimal.Zero, Remaining: decimal.RequireFromString("900")},
				{Category: "Transport", Budgeted: decimal.RequireFromString("60"), Actual: decimal.Zero, Remaining: decimal.RequireFromString("60")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconcile(tt.budgets, tt.actuals)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d lines, got %d", len(tt.want), len(got))
			}
			for i, wantLine := range tt.want {
				gotLine := got[i]
				if gotLine.Category != wantLine.Category {
					t.Errorf("line %d: expected category %q, got %q", i, wantLine.Category, gotLine.Category)
				}
				if !gotLine.Budgeted.Equal(wantLine.Budgeted) {
					t.Errorf("line %d: expected budgeted %s, got %s", i, wantLine.Budgeted, gotLine.Budgeted)
				}
				if !gotLine.Actual.Equal(wantLine.Actual) {
					t.Errorf("line %d: expected actual %s, got %s", i, wantLine.Actual, gotLine.Actual)
				}
				if !gotLine.Remaining.Equal(wantLine.Remaining) {
					t.Errorf("line %d: expected remaining %s, got %s", i, wantLine.Remaining, gotLine.Remaining)
				}
			}
		})
	}
}

func TestReconcileDuplicateBudgetCategory(t *testing.T) {
	budgets := []*entity.Budget{
		budget("Food", "100"),
		budget("Food", "200"),
	}

	_, err := Reconcile(budgets, actuals(nil))
	if err == nil {
		t.Fatal("expected an error for duplicate budget categories")
	}

	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("expected a ReportError, got %T", err)
	}
	if reportErr.Code != domainerror.ErrCodeDuplicateBudgetCategory {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeDuplicateBudgetCategory, reportErr.Code)
	}
	if !errors.Is(err, domainerror.ErrDuplicateBudgetCategory) {
		t.Error("expected error to wrap ErrDuplicateBudgetCategory")
	}
}
