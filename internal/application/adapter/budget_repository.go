// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByIDAndUser retrieves a budget by ID, scoped to its owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a user, optionally filtered to a
	// single "YYYY-MM" month, ordered by month then category.
	FindByUser(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database, scoped to its owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// ExistsByUserMonthCategory checks whether a budget already exists for the
	// given (user, month, category) triple. When excludeID is non-nil that
	// budget is ignored, which allows updates to keep their own row.
	ExistsByUserMonthCategory(ctx context.Context, userID uuid.UUID, month, category string, excludeID *uuid.UUID) (bool, error)
}
