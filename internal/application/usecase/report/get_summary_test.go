package report

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

func TestGetSummary(t *testing.T) {
	repo := &fakeRepository{
		transactions: []*entity.Transaction{
			tx(entity.TransactionTypeIncome, "Salary", "2000", date(2025, 3, 1)),
			tx(entity.TransactionTypeExpense, "Food", "50", date(2025, 3, 10)),
			tx(entity.TransactionTypeExpense, "Transport", "30", date(2025, 3, 12)),
		},
	}
	uc := NewGetSummaryUseCase(repo)

	output, err := uc.Execute(context.Background(), GetSummaryInput{
		UserID: uuid.New(),
		Month:  "2025-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalIncome.Equal(decimal.RequireFromString("2000")) {
		t.Errorf("expected total income 2000, got %s", output.TotalIncome)
	}
	if !output.TotalExpense.Equal(decimal.RequireFromString("80")) {
		t.Errorf("expected total expense 80, got %s", output.TotalExpense)
	}
	if !output.Net.Equal(decimal.RequireFromString("1920")) {
		t.Errorf("expected net 1920, got %s", output.Net)
	}

	if len(output.CategoryBreakdown) != 2 {
		t.Fatalf("expected 2 breakdown entries, got %d", len(output.CategoryBreakdown))
	}
	if output.CategoryBreakdown[0].Category != "Food" || output.CategoryBreakdown[1].Category != "Transport" {
		t.Errorf("expected breakdown sorted by category, got %v", output.CategoryBreakdown)
	}
}

func TestGetSummaryInvalidMonth(t *testing.T) {
	repo := &fakeRepository{}
	uc := NewGetSummaryUseCase(repo)

	_, err := uc.Execute(context.Background(), GetSummaryInput{
		UserID: uuid.New(),
		Month:  "2025/03",
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
	if repo.listTransactionsCalls != 0 {
		t.Error("repository must not be touched for an invalid month")
	}
}
