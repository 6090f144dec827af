// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := uc.validateInput(&input); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(input.UserID, input.Title, input.TargetAmount, input.CurrentAmount, input.Deadline)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

// validateInput validates and normalizes the input parameters.
func (uc *CreateGoalUseCase) validateInput(input *CreateGoalInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalTitle,
			"title is required",
			domainerror.ErrEmptyGoalTitle,
		)
	}

	if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.CurrentAmount.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeNegativeCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrNegativeCurrentAmount,
		)
	}

	if input.Deadline.IsZero() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDeadline,
			"deadline is required",
			domainerror.ErrInvalidDeadline,
		)
	}

	return nil
}
