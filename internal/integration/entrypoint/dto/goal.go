// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title         string          `json:"title" binding:"required,min=1,max=100"`
	TargetAmount  decimal.Decimal `json:"target_amount" binding:"required"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      time.Time       `json:"deadline" binding:"required" time_format:"2006-01-02"`
}

// UpdateGoalRequest represents the request body for goal update.
// Omitted fields are left unchanged.
type UpdateGoalRequest struct {
	Title         *string          `json:"title" binding:"omitempty,min=1,max=100"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time       `json:"deadline" time_format:"2006-01-02"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GoalListResponse represents a list of goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
	Total int            `json:"total"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID.String(),
		Title:         goal.Title,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Deadline:      goal.Deadline.Format("2006-01-02"),
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// ToGoalListResponse converts goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(goal)
	}
	return GoalListResponse{
		Goals: responses,
		Total: len(responses),
	}
}
