// Package report contains the reporting pipeline use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// MaxTrendMonths is the widest inclusive month range trends will serve.
const MaxTrendMonths = 36

// GetTrendsInput represents the input for getting monthly trends.
type GetTrendsInput struct {
	UserID uuid.UUID
	From   string // "YYYY-MM"
	To     string // "YYYY-MM"
}

// TrendPoint represents one month of the trends series.
type TrendPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// GetTrendsOutput represents the output of getting trends.
type GetTrendsOutput struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Points []TrendPoint `json:"points"`
}

// GetTrendsUseCase handles getting per-month income/expense trends.
type GetTrendsUseCase struct {
	reportRepo Repository
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(reportRepo Repository) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		reportRepo: reportRepo,
	}
}

// Execute returns one point per month of the inclusive [from, to] range.
// Months without transactions appear with zero values so the series has
// no gaps.
func (uc *GetTrendsUseCase) Execute(
	ctx context.Context,
	input GetTrendsInput,
) (*GetTrendsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	rangeStart, _ := entity.MonthBounds(input.From)
	_, rangeEnd := entity.MonthBounds(input.To)

	transactions, err := uc.reportRepo.ListTransactions(ctx, input.UserID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	// Bucket income and expense sums per month key.
	type bucket struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[string]bucket)
	for _, tx := range transactions {
		key := tx.Date.UTC().Format(entity.MonthFormat)
		b := buckets[key]
		switch tx.Type {
		case entity.TransactionTypeIncome:
			b.income = b.income.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			b.expense = b.expense.Add(tx.Amount)
		}
		buckets[key] = b
	}

	points := make([]TrendPoint, 0, monthSpan(rangeStart, input.To))
	for cursor := rangeStart; ; cursor = cursor.AddDate(0, 1, 0) {
		key := cursor.Format(entity.MonthFormat)
		b := buckets[key]
		points = append(points, TrendPoint{
			Month:   key,
			Income:  b.income,
			Expense: b.expense,
			Net:     b.income.Sub(b.expense),
		})
		if key == input.To {
			break
		}
	}

	return &GetTrendsOutput{
		From:   input.From,
		To:     input.To,
		Points: points,
	}, nil
}

// validateInput validates the input parameters.
func (uc *GetTrendsUseCase) validateInput(input GetTrendsInput) error {
	if !entity.IsValidMonth(input.From) || !entity.IsValidMonth(input.To) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			"from and to must be in YYYY-MM format",
			domainerror.ErrInvalidReportMonth,
		)
	}

	from, _ := time.Parse(entity.MonthFormat, input.From)
	to, _ := time.Parse(entity.MonthFormat, input.To)
	if to.Before(from) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthRange,
			"to must not be before from",
			domainerror.ErrInvalidMonthRange,
		)
	}

	if monthSpan(from, input.To) > MaxTrendMonths {
		return domainerror.NewReportError(
			domainerror.ErrCodeMonthRangeTooWide,
			fmt.Sprintf("month range exceeds %d months", MaxTrendMonths),
			domainerror.ErrMonthRangeTooWide,
		)
	}

	return nil
}

// monthSpan counts the months in the inclusive range from the given start
// up to the "YYYY-MM" end month.
func monthSpan(from time.Time, toMonth string) int {
	to, _ := time.Parse(entity.MonthFormat, toMonth)
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month()) + 1
}
