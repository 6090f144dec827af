package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func tx(transactionType entity.TransactionType, category string, amount string, txDate time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Type:     transactionType,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Date:     txDate,
	}
}

func TestAggregateByCategory(t *testing.T) {
	window := MonthWindow("2025-03")

	tests := []struct {
		name            string
		transactions    []*entity.Transaction
		transactionType entity.TransactionType
		want            map[string]string
	}{
		{
			name:            "empty input yields empty map",
			transactions:    nil,
			transactionType: entity.TransactionTypeExpense,
			want:            map[string]string{},
		},
		{
			name: "sums amounts per category",
			transactions: []*entity.Transaction{
				tx(entity.TransactionTypeExpense, "Food", "25.50", date(2025, 3, 5)),
				tx(entity.TransactionTypeExpense, "Food", "24.50", date(2025, 3, 20)),
				tx(entity.TransactionTypeExpense, "Transport", "10.00", date(2025, 3, 10)),
			},
			transactionType: entity.TransactionTypeExpense,
			want: map[string]string{
				"Food":      "50",
				"Transport": "10",
			},
		},
		{
			name: "filters by transaction type",
			transactions: []*entity.Transaction{
				tx(entity.TransactionTypeIncome, "Salary", "2000.00", date(2025, 3, 1)),
				tx(entity.TransactionTypeExpense, "Food", "50.00", date(2025, 3, 5)),
			},
			transactionType: entity.TransactionTypeExpense,
			want: map[string]string{
				"Food": "50",
			},
		},
		{
			name: "excludes transactions outside the window",
			transactions: []*entity.Transaction{
				tx(entity.TransactionTypeExpense, "Food", "10.00", date(2025, 2, 28)),
				tx(entity.TransactionTypeExpense, "Food", "20.00", date(2025, 3, 1)),
				tx(entity.TransactionTypeExpense, "Food", "30.00", date(2025, 3, 31)),
				tx(entity.TransactionTypeExpense, "Food", "40.00", date(2025, 4, 1)),
			},
			transactionType: entity.TransactionTypeExpense,
			want: map[string]string{
				"Food": "50",
			},
		},
		{
			name: "categories match verbatim, no case folding",
			transactions: []*entity.Transaction{
				tx(entity.TransactionTypeExpense, "Food", "10.00", date(2025, 3, 5)),
				tx(entity.TransactionTypeExpense, "food", "20.00", date(2025, 3, 5)),
			},
			transactionType: entity.TransactionTypeExpense,
			want: map[string]string{
				"Food": "10",
				"food": "20",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateByCategory(tt.transactions, tt.transactionType, window)

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d categories, got %d: %v", len(tt.want), len(got), got)
			}
			for category, wantAmount := range tt.want {
				gotAmount, ok := got[category]
				if !ok {
					t.Fatalf("expected category %q in result", category)
				}
				if !gotAmount.Equal(decimal.RequireFromString(wantAmount)) {
					t.Errorf("category %q: expected %s, got %s", category, wantAmount, gotAmount)
				}
			}
		})
	}
}

func TestSumCategories(t *testing.T) {
	tests := []struct {
		name   string
		totals map[string]decimal.Decimal
		want   string
	}{
		{
			name:   "empty map sums to zero",
			totals: map[string]decimal.Decimal{},
			want:   "0",
		},
		{
			name: "sums all categories",
			totals: map[string]decimal.Decimal{
				"Food":      decimal.RequireFromString("50.25"),
				"Transport": decimal.RequireFromString("10.75"),
			},
			want: "61",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SumCategories(tt.totals)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSortedBreakdown(t *testing.T) {
	totals := map[string]decimal.Decimal{
		"Transport": decimal.RequireFromString("10"),
		"Food":      decimal.RequireFromString("50"),
		"Rent":      decimal.RequireFromString("800"),
	}

	breakdown := SortedBreakdown(totals)

	wantOrder := []string{"Food", "Rent", "Transport"}
	if len(breakdown) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(breakdown))
	}
	for i, category := range wantOrder {
		if breakdown[i].Category != category {
			t.Errorf("position %d: expected %q, got %q", i, category, breakdown[i].Category)
		}
	}
}

func TestWindowContains(t *testing.T) {
	window := MonthWindow("2025-02")

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"first day", date(2025, 2, 1), true},
		{"last day of leap-adjacent february", date(2025, 2, 28), true},
		{"last day with time component", time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC), true},
		{"day before", date(2025, 1, 31), false},
		{"day after", date(2025, 3, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := window.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
