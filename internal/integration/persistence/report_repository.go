// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/usecase/report"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// reportRepository implements the report.Repository read port.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{
		db: db,
	}
}

// ListTransactions returns all transactions for a user within the inclusive
// [from, to] window.
func (r *reportRepository) ListTransactions(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toTransactionEntities(transactionModels), nil
}

// ListBudgets returns all budgets for a user and month.
func (r *reportRepository) ListBudgets(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toBudgetEntities(budgetModels), nil
}
