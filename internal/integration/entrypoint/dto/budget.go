// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Month       string          `json:"month" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=255"`
}

// UpdateBudgetRequest represents the request body for budget update.
// Omitted fields are left unchanged.
type UpdateBudgetRequest struct {
	Month       *string          `json:"month"`
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID          string          `json:"id"`
	Month       string          `json:"month"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BudgetListResponse represents a list of budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Total   int              `json:"total"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          budget.ID.String(),
		Month:       budget.Month,
		Category:    budget.Category,
		Amount:      budget.Amount,
		Description: budget.Description,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts budgets to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = ToBudgetResponse(budget)
	}
	return BudgetListResponse{
		Budgets: responses,
		Total:   len(responses),
	}
}
