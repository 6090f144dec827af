package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// fakeBudgetRepository implements adapter.BudgetRepository for tests.
type fakeBudgetRepository struct {
	existing map[string]*entity.Budget // keyed by month|category
	created  []*entity.Budget
	updated  []*entity.Budget
}

func newFakeBudgetRepository() *fakeBudgetRepository {
	return &fakeBudgetRepository{existing: make(map[string]*entity.Budget)}
}

func (f *fakeBudgetRepository) key(month, category string) string {
	return month + "|" + category
}

func (f *fakeBudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	f.created = append(f.created, budget)
	f.existing[f.key(budget.Month, budget.Category)] = budget
	return nil
}

func (f *fakeBudgetRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	for _, b := range f.existing {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (f *fakeBudgetRepository) FindByUser(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error) {
	var budgets []*entity.Budget
	for _, b := range f.existing {
		if month == "" || b.Month == month {
			budgets = append(budgets, b)
		}
	}
	return budgets, nil
}

func (f *fakeBudgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	f.updated = append(f.updated, budget)
	return nil
}

func (f *fakeBudgetRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

func (f *fakeBudgetRepository) ExistsByUserMonthCategory(ctx context.Context, userID uuid.UUID, month, category string, excludeID *uuid.UUID) (bool, error) {
	b, ok := f.existing[f.key(month, category)]
	if !ok {
		return false, nil
	}
	if excludeID != nil && b.ID == *excludeID {
		return false, nil
	}
	return true, nil
}

func TestCreateBudget(t *testing.T) {
	repo := newFakeBudgetRepository()
	uc := NewCreateBudgetUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:   uuid.New(),
		Month:    "2025-03",
		Category: "  Food  ",
		Amount:   decimal.RequireFromString("100"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Budget.Category != "Food" {
		t.Errorf("expected trimmed category Food, got %q", output.Budget.Category)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created budget, got %d", len(repo.created))
	}
}

func TestCreateBudgetDuplicate(t *testing.T) {
	repo := newFakeBudgetRepository()
	uc := NewCreateBudgetUseCase(repo)
	userID := uuid.New()

	if _, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:   userID,
		Month:    "2025-03",
		Category: "Food",
		Amount:   decimal.RequireFromString("100"),
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:   userID,
		Month:    "2025-03",
		Category: "Food",
		Amount:   decimal.RequireFromString("200"),
	})
	if err == nil {
		t.Fatal("expected an error for the duplicate budget")
	}

	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected a BudgetError, got %T", err)
	}
	if budgetErr.Code != domainerror.ErrCodeBudgetAlreadyExists {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeBudgetAlreadyExists, budgetErr.Code)
	}
	if len(repo.created) != 1 {
		t.Errorf("duplicate must not reach the store, got %d creates", len(repo.created))
	}
}

func TestCreateBudgetValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateBudgetInput
		wantCode domainerror.BudgetErrorCode
	}{
		{
			name:     "invalid month",
			input:    CreateBudgetInput{Month: "2025-3", Category: "Food", Amount: decimal.RequireFromString("100")},
			wantCode: domainerror.ErrCodeInvalidBudgetMonth,
		},
		{
			name:     "empty category",
			input:    CreateBudgetInput{Month: "2025-03", Category: "   ", Amount: decimal.RequireFromString("100")},
			wantCode: domainerror.ErrCodeEmptyBudgetCategory,
		},
		{
			name:     "zero amount",
			input:    CreateBudgetInput{Month: "2025-03", Category: "Food", Amount: decimal.Zero},
			wantCode: domainerror.ErrCodeInvalidBudgetAmount,
		},
		{
			name:     "negative amount",
			input:    CreateBudgetInput{Month: "2025-03", Category: "Food", Amount: decimal.RequireFromString("-10")},
			wantCode: domainerror.ErrCodeInvalidBudgetAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBudgetRepository()
			uc := NewCreateBudgetUseCase(repo)

			tt.input.UserID = uuid.New()
			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}

			var budgetErr *domainerror.BudgetError
			if !errors.As(err, &budgetErr) {
				t.Fatalf("expected a BudgetError, got %T", err)
			}
			if budgetErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, budgetErr.Code)
			}
		})
	}
}

func TestUpdateBudgetOntoOccupiedSlot(t *testing.T) {
	repo := newFakeBudgetRepository()
	userID := uuid.New()

	food := entity.NewBudget(userID, "2025-03", "Food", decimal.RequireFromString("100"), "")
	rent := entity.NewBudget(userID, "2025-03", "Rent", decimal.RequireFromString("900"), "")
	repo.existing[repo.key("2025-03", "Food")] = food
	repo.existing[repo.key("2025-03", "Rent")] = rent

	uc := NewUpdateBudgetUseCase(repo)

	newCategory := "Food"
	_, err := uc.Execute(context.Background(), UpdateBudgetInput{
		BudgetID: rent.ID,
		UserID:   userID,
		Category: &newCategory,
	})
	if err == nil {
		t.Fatal("expected an error moving onto an occupied slot")
	}

	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected a BudgetError, got %T", err)
	}
	if budgetErr.Code != domainerror.ErrCodeBudgetAlreadyExists {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeBudgetAlreadyExists, budgetErr.Code)
	}
}

func TestUpdateBudgetKeepsOwnSlot(t *testing.T) {
	repo := newFakeBudgetRepository()
	userID := uuid.New()

	food := entity.NewBudget(userID, "2025-03", "Food", decimal.RequireFromString("100"), "")
	repo.existing[repo.key("2025-03", "Food")] = food

	uc := NewUpdateBudgetUseCase(repo)

	amount := decimal.RequireFromString("150")
	sameCategory := "Food"
	output, err := uc.Execute(context.Background(), UpdateBudgetInput{
		BudgetID: food.ID,
		UserID:   userID,
		Category: &sameCategory,
		Amount:   &amount,
	})
	if err != nil {
		t.Fatalf("updating a budget in place must not conflict with itself: %v", err)
	}
	if !output.Budget.Amount.Equal(amount) {
		t.Errorf("expected amount 150, got %s", output.Budget.Amount)
	}
}
