// Package report contains the reporting pipeline use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// BuildMonthlyReportInput represents the input for building a monthly report.
type BuildMonthlyReportInput struct {
	UserID uuid.UUID
	Month  string // "YYYY-MM"
}

// BuildMonthlyReportOutput represents the full budget-vs-actual report for a month.
type BuildMonthlyReportOutput struct {
	Month             string           `json:"month"`
	TotalIncome       decimal.Decimal  `json:"total_income"`
	TotalExpense      decimal.Decimal  `json:"total_expense"`
	Net               decimal.Decimal  `json:"net"`
	CategoryBreakdown []CategoryAmount `json:"category_breakdown"`
	BudgetVsActual    []BudgetLine     `json:"budget_vs_actual"`
}

// BuildMonthlyReportUseCase assembles the monthly budget-vs-actual report.
type BuildMonthlyReportUseCase struct {
	reportRepo Repository
}

// NewBuildMonthlyReportUseCase creates a new BuildMonthlyReportUseCase instance.
func NewBuildMonthlyReportUseCase(reportRepo Repository) *BuildMonthlyReportUseCase {
	return &BuildMonthlyReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute builds the report for the given user and month. The month shape is
// validated before any data access. Transactions and budgets are fetched
// concurrently as independent snapshots; a failure on either read propagates
// once, with no retries. Empty data yields a fully populated zeroed payload.
func (uc *BuildMonthlyReportUseCase) Execute(
	ctx context.Context,
	input BuildMonthlyReportInput,
) (*BuildMonthlyReportOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	window := MonthWindow(input.Month)

	var (
		transactions []*entity.Transaction
		budgets      []*entity.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = uc.reportRepo.ListTransactions(gctx, input.UserID, window.From, window.To)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budgets, err = uc.reportRepo.ListBudgets(gctx, input.UserID, input.Month)
		if err != nil {
			return fmt.Errorf("failed to list budgets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	income := AggregateByCategory(transactions, entity.TransactionTypeIncome, window)
	expenses := AggregateByCategory(transactions, entity.TransactionTypeExpense, window)

	totalIncome := SumCategories(income)
	totalExpense := SumCategories(expenses)

	budgetVsActual, err := Reconcile(budgets, expenses)
	if err != nil {
		return nil, err
	}

	return &BuildMonthlyReportOutput{
		Month:             input.Month,
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		Net:               totalIncome.Sub(totalExpense),
		CategoryBreakdown: SortedBreakdown(expenses),
		BudgetVsActual:    budgetVsActual,
	}, nil
}

// validateInput validates the input parameters.
func (uc *BuildMonthlyReportUseCase) validateInput(input BuildMonthlyReportInput) error {
	if !entity.IsValidMonth(input.Month) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidReportMonth,
		)
	}
	return nil
}
