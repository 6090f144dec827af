package report

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// fakeRepository implements Repository for tests.
type fakeRepository struct {
	transactions    []*entity.Transaction
	budgets         []*entity.Budget
	transactionsErr error
	budgetsErr      error

	listTransactionsCalls int
	listBudgetsCalls      int
}

func (f *fakeRepository) ListTransactions(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error) {
	f.listTransactionsCalls++
	if f.transactionsErr != nil {
		return nil, f.transactionsErr
	}
	return f.transactions, nil
}

func (f *fakeRepository) ListBudgets(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error) {
	f.listBudgetsCalls++
	if f.budgetsErr != nil {
		return nil, f.budgetsErr
	}
	return f.budgets, nil
}

func TestBuildMonthlyReportEndToEnd(t *testing.T) {
	repo := &fakeRepository{
		transactions: []*entity.Transaction{
			tx(entity.TransactionTypeIncome, "Salary", "2000.00", date(2025, 3, 1)),
			tx(entity.TransactionTypeExpense, "Food", "50.00", date(2025, 3, 10)),
		},
		budgets: []*entity.Budget{budget("Food", "100")},
	}
	uc := NewBuildMonthlyReportUseCase(repo)

	output, err := uc.Execute(context.Background(), BuildMonthlyReportInput{
		UserID: uuid.New(),
		Month:  "2025-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Month != "2025-03" {
		t.Errorf("expected month 2025-03, got %s", output.Month)
	}
	if !output.TotalIncome.Equal(decimal.RequireFromString("2000")) {
		t.Errorf("expected total income 2000, got %s", output.TotalIncome)
	}
	if !output.TotalExpense.Equal(decimal.RequireFromString("50")) {
		t.Errorf("expected total expense 50, got %s", output.TotalExpense)
	}
	if !output.Net.Equal(decimal.RequireFromString("1950")) {
		t.Errorf("expected net 1950, got %s", output.Net)
	}

	if len(output.BudgetVsActual) != 1 {
		t.Fatalf("expected 1 budget line, got %d", len(output.BudgetVsActual))
	}
	line := output.BudgetVsActual[0]
	if line.Category != "Food" {
		t.Errorf("expected category Food, got %s", line.Category)
	}
	if !line.Budgeted.Equal(decimal.RequireFromString("100")) {
		t.Errorf("expected budgeted 100, got %s", line.Budgeted)
	}
	if !line.Actual.Equal(decimal.RequireFromString("50")) {
		t.Errorf("expected actual 50, got %s", line.Actual)
	}
	if !line.Remaining.Equal(decimal.RequireFromString("50")) {
		t.Errorf("expected remaining 50, got %s", line.Remaining)
	}
}

func TestBuildMonthlyReportInvalidMonth(t *testing.T) {
	tests := []struct {
		name  string
		month string
	}{
		{"empty", ""},
		{"wrong shape", "March 2025"},
		{"missing zero padding", "2025-3"},
		{"out of range month", "2025-13"},
		{"full date", "2025-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			uc := NewBuildMonthlyReportUseCase(repo)

			_, err := uc.Execute(context.Background(), BuildMonthlyReportInput{
				UserID: uuid.New(),
				Month:  tt.month,
			})
			if err == nil {
				t.Fatal("expected an error")
			}

			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) {
				t.Fatalf("expected a ReportError, got %T", err)
			}
			if reportErr.Code != domainerror.ErrCodeInvalidReportMonth {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidReportMonth, reportErr.Code)
			}

			// Validation must reject before any data access.
			if repo.listTransactionsCalls != 0 || repo.listBudgetsCalls != 0 {
				t.Error("repository must not be touched for an invalid month")
			}
		})
	}
}

func TestBuildMonthlyReportEmptyDataIsZeroed(t *testing.T) {
	repo := &fakeRepository{}
	uc := NewBuildMonthlyReportUseCase(repo)

	output, err := uc.Execute(context.Background(), BuildMonthlyReportInput{
		UserID: uuid.New(),
		Month:  "2025-06",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalIncome.IsZero() || !output.TotalExpense.IsZero() || !output.Net.IsZero() {
		t.Errorf("expected zeroed totals, got income=%s expense=%s net=%s",
			output.TotalIncome, output.TotalExpense, output.Net)
	}
	if output.CategoryBreakdown == nil || len(output.CategoryBreakdown) != 0 {
		t.Errorf("expected empty (non-nil) breakdown, got %v", output.CategoryBreakdown)
	}
	if output.BudgetVsActual == nil || len(output.BudgetVsActual) != 0 {
		t.Errorf("expected empty (non-nil) budget lines, got %v", output.BudgetVsActual)
	}
}

func TestBuildMonthlyReportStoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection reset")

	tests := []struct {
		name string
		repo *fakeRepository
	}{
		{"transaction read fails", &fakeRepository{transactionsErr: storeErr}},
		{"budget read fails", &fakeRepository{budgetsErr: storeErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewBuildMonthlyReportUseCase(tt.repo)

			_, err := uc.Execute(context.Background(), BuildMonthlyReportInput{
				UserID: uuid.New(),
				Month:  "2025-03",
			})
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, storeErr) {
				t.Errorf("expected the store error to propagate, got %v", err)
			}
		})
	}
}

func TestBuildMonthlyReportRepeatedRunsMatch(t *testing.T) {
	repo := &fakeRepository{
		transactions: []*entity.Transaction{
			tx(entity.TransactionTypeIncome, "Salary", "2000.00", date(2025, 3, 1)),
			tx(entity.TransactionTypeExpense, "Food", "50.00", date(2025, 3, 10)),
			tx(entity.TransactionTypeExpense, "Transport", "30.00", date(2025, 3, 12)),
		},
		budgets: []*entity.Budget{
			budget("Transport", "60"),
			budget("Food", "100"),
		},
	}
	uc := NewBuildMonthlyReportUseCase(repo)
	input := BuildMonthlyReportInput{UserID: uuid.New(), Month: "2025-03"}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	// With unchanged store data the report is fully deterministic, down to
	// breakdown and budget line ordering.
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical reports for unchanged data:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if repo.listTransactionsCalls != 2 || repo.listBudgetsCalls != 2 {
		t.Errorf("expected two reads per source, got transactions=%d budgets=%d",
			repo.listTransactionsCalls, repo.listBudgetsCalls)
	}
}

func TestBuildMonthlyReportDuplicateBudgets(t *testing.T) {
	repo := &fakeRepository{
		budgets: []*entity.Budget{
			budget("Food", "100"),
			budget("Food", "200"),
		},
	}
	uc := NewBuildMonthlyReportUseCase(repo)

	_, err := uc.Execute(context.Background(), BuildMonthlyReportInput{
		UserID: uuid.New(),
		Month:  "2025-03",
	})
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
}
