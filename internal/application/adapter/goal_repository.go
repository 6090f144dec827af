// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByIDAndUser retrieves a goal by ID, scoped to its owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a user ordered by deadline.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal from the database, scoped to its owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
