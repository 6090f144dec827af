// Package report contains the reporting pipeline use cases.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// Repository defines the read-only data access the reporting pipeline needs.
// Owner scope is an explicit parameter on every call.
type Repository interface {
	// ListTransactions returns all transactions for a user whose date falls
	// within the inclusive [from, to] window.
	ListTransactions(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error)

	// ListBudgets returns all budgets for a user and "YYYY-MM" month.
	ListBudgets(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error)
}
