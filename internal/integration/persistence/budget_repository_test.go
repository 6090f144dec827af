package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.GoalModel{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	user := entity.NewUser(uuid.NewString()+"@example.com", "Test User", "hash")
	require.NoError(t, db.Create(model.UserFromEntity(user)).Error)
	return user.ID
}

func TestBudgetRepositoryExistsByUserMonthCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	budget := entity.NewBudget(userID, "2025-03", "Food", decimal.RequireFromString("100"), "")
	require.NoError(t, repo.Create(ctx, budget))

	exists, err := repo.ExistsByUserMonthCategory(ctx, userID, "2025-03", "Food", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUserMonthCategory(ctx, userID, "2025-04", "Food", nil)
	require.NoError(t, err)
	assert.False(t, exists, "different month is a different slot")

	exists, err = repo.ExistsByUserMonthCategory(ctx, userID, "2025-03", "food", nil)
	require.NoError(t, err)
	assert.False(t, exists, "categories match verbatim")

	// The budget must not collide with itself during an update.
	exists, err = repo.ExistsByUserMonthCategory(ctx, userID, "2025-03", "Food", &budget.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	otherUser := createTestUser(t, db)
	exists, err = repo.ExistsByUserMonthCategory(ctx, otherUser, "2025-03", "Food", nil)
	require.NoError(t, err)
	assert.False(t, exists, "slots are scoped per user")
}

func TestBudgetRepositoryOwnerScope(t *testing.T) {
	db := newTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db)
	stranger := createTestUser(t, db)

	budget := entity.NewBudget(owner, "2025-03", "Food", decimal.RequireFromString("100"), "")
	require.NoError(t, repo.Create(ctx, budget))

	_, err := repo.FindByIDAndUser(ctx, budget.ID, stranger)
	assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)

	err = repo.Delete(ctx, budget.ID, stranger)
	assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)

	found, err := repo.FindByIDAndUser(ctx, budget.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Food", found.Category)
}

func TestBudgetRepositoryFindByUserOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	for _, category := range []string{"Transport", "Food", "Rent"} {
		budget := entity.NewBudget(userID, "2025-03", category, decimal.RequireFromString("100"), "")
		require.NoError(t, repo.Create(ctx, budget))
	}

	budgets, err := repo.FindByUser(ctx, userID, "2025-03")
	require.NoError(t, err)
	require.Len(t, budgets, 3)
	assert.Equal(t, "Food", budgets[0].Category)
	assert.Equal(t, "Rent", budgets[1].Category)
	assert.Equal(t, "Transport", budgets[2].Category)
}

func TestReportRepositoryListTransactionsWindow(t *testing.T) {
	db := newTestDB(t)
	txRepo := NewTransactionRepository(db)
	reportRepo := NewReportRepository(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	dates := []time.Time{
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), // before the window
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),  // first day
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), // last day
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),  // after the window
	}
	for _, d := range dates {
		transaction := entity.NewTransaction(userID, entity.TransactionTypeExpense, "Food",
			decimal.RequireFromString("10"), "", d)
		require.NoError(t, txRepo.Create(ctx, transaction))
	}

	from, to := entity.MonthBounds("2025-03")
	transactions, err := reportRepo.ListTransactions(ctx, userID, from, to)
	require.NoError(t, err)
	assert.Len(t, transactions, 2, "window is inclusive on both ends")
}

func TestReportRepositoryListBudgetsScopedToUserAndMonth(t *testing.T) {
	db := newTestDB(t)
	budgetRepo := NewBudgetRepository(db)
	reportRepo := NewReportRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db)
	otherUser := createTestUser(t, db)

	require.NoError(t, budgetRepo.Create(ctx, entity.NewBudget(userID, "2025-03", "Food", decimal.RequireFromString("100"), "")))
	require.NoError(t, budgetRepo.Create(ctx, entity.NewBudget(userID, "2025-04", "Food", decimal.RequireFromString("120"), "")))
	require.NoError(t, budgetRepo.Create(ctx, entity.NewBudget(otherUser, "2025-03", "Food", decimal.RequireFromString("999"), "")))

	budgets, err := reportRepo.ListBudgets(ctx, userID, "2025-03")
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.True(t, budgets[0].Amount.Equal(decimal.RequireFromString("100")))
}
