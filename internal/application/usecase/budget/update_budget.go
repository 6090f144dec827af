// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
// Nil fields are left unchanged.
type UpdateBudgetInput struct {
	BudgetID    uuid.UUID
	UserID      uuid.UUID
	Month       *string
	Category    *string
	Amount      *decimal.Decimal
	Description *string
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update. Moving a budget onto an already
// occupied (month, category) slot is rejected the same way creation is.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByIDAndUser(ctx, input.BudgetID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if input.Month != nil {
		if !entity.IsValidMonth(*input.Month) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetMonth,
				"month must be in YYYY-MM format",
				domainerror.ErrInvalidBudgetMonth,
			)
		}
		budget.Month = *input.Month
	}

	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeEmptyBudgetCategory,
				"category is required",
				domainerror.ErrEmptyBudgetCategory,
			)
		}
		budget.Category = category
	}

	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidBudgetAmount,
			)
		}
		budget.Amount = *input.Amount
	}

	if input.Description != nil {
		budget.Description = *input.Description
	}

	if input.Month != nil || input.Category != nil {
		exists, err := uc.budgetRepo.ExistsByUserMonthCategory(ctx, input.UserID, budget.Month, budget.Category, &budget.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check budget existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetAlreadyExists,
				fmt.Sprintf("a budget for category %q already exists in %s", budget.Category, budget.Month),
				domainerror.ErrBudgetAlreadyExists,
			)
		}
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
