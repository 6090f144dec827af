// Package report contains the reporting pipeline use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetSummaryInput represents the input for getting a monthly summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Month  string // "YYYY-MM"
}

// GetSummaryOutput represents the monthly summary totals and expense breakdown.
type GetSummaryOutput struct {
	Month             string           `json:"month"`
	TotalIncome       decimal.Decimal  `json:"total_income"`
	TotalExpense      decimal.Decimal  `json:"total_expense"`
	Net               decimal.Decimal  `json:"net"`
	CategoryBreakdown []CategoryAmount `json:"category_breakdown"`
}

// GetSummaryUseCase handles getting the totals for a month without the budget join.
type GetSummaryUseCase struct {
	reportRepo Repository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(reportRepo Repository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes income/expense totals and the per-category expense
// breakdown for the given month.
func (uc *GetSummaryUseCase) Execute(
	ctx context.Context,
	input GetSummaryInput,
) (*GetSummaryOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	window := MonthWindow(input.Month)

	transactions, err := uc.reportRepo.ListTransactions(ctx, input.UserID, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	income := AggregateByCategory(transactions, entity.TransactionTypeIncome, window)
	expenses := AggregateByCategory(transactions, entity.TransactionTypeExpense, window)

	totalIncome := SumCategories(income)
	totalExpense := SumCategories(expenses)

	return &GetSummaryOutput{
		Month:             input.Month,
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		Net:               totalIncome.Sub(totalExpense),
		CategoryBreakdown: SortedBreakdown(expenses),
	}, nil
}

// validateInput validates the input parameters.
func (uc *GetSummaryUseCase) validateInput(input GetSummaryInput) error {
	if !entity.IsValidMonth(input.Month) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidReportMonth,
		)
	}
	return nil
}
