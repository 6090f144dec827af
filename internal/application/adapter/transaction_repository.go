// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Category  string
}

// TransactionRepository defines the interface for transaction persistence operations.
// Every read is scoped to an explicit owner; there is no cross-user visibility.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction by ID, scoped to its owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves transactions for a user matching the filter,
	// ordered by date descending.
	FindByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindByUserAndDateRange retrieves all transactions for a user whose date
	// falls within the inclusive [from, to] window, in no particular order.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database, scoped to its owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
