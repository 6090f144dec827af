// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID      uuid.UUID
	Month       string // "YYYY-MM"
	Category    string
	Amount      decimal.Decimal
	Description string
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation. At most one budget may exist per
// (user, month, category); a second one is rejected before hitting the
// store's unique index.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := uc.validateInput(&input); err != nil {
		return nil, err
	}

	exists, err := uc.budgetRepo.ExistsByUserMonthCategory(ctx, input.UserID, input.Month, input.Category, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			fmt.Sprintf("a budget for category %q already exists in %s", input.Category, input.Month),
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	budget := entity.NewBudget(input.UserID, input.Month, input.Category, input.Amount, input.Description)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}

// validateInput validates and normalizes the input parameters.
func (uc *CreateBudgetUseCase) validateInput(input *CreateBudgetInput) error {
	if !entity.IsValidMonth(input.Month) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	input.Category = strings.TrimSpace(input.Category)
	if input.Category == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetCategory,
			"category is required",
			domainerror.ErrEmptyBudgetCategory,
		)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	return nil
}
