package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// fakeTransactionRepository implements adapter.TransactionRepository for tests.
type fakeTransactionRepository struct {
	byID    map[uuid.UUID]*entity.Transaction
	created []*entity.Transaction
	updated []*entity.Transaction
	deleted []uuid.UUID
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{byID: make(map[uuid.UUID]*entity.Transaction)}
}

func (f *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	f.created = append(f.created, transaction)
	f.byID[transaction.ID] = transaction
	return nil
}

func (f *fakeTransactionRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := f.byID[id]
	if !ok || transaction.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	return transaction, nil
}

func (f *fakeTransactionRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var transactions []*entity.Transaction
	for _, transaction := range f.byID {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (f *fakeTransactionRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error) {
	return f.FindByUser(ctx, userID, adapter.TransactionFilter{})
}

func (f *fakeTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	f.updated = append(f.updated, transaction)
	return nil
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	transaction, ok := f.byID[id]
	if !ok || transaction.UserID != userID {
		return domainerror.ErrTransactionNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreateTransactionTrimsCategory(t *testing.T) {
	repo := newFakeTransactionRepository()
	uc := NewCreateTransactionUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID:   uuid.New(),
		Type:     entity.TransactionTypeExpense,
		Category: "  Food ",
		Amount:   decimal.RequireFromString("50"),
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Transaction.Category != "Food" {
		t.Errorf("expected trimmed category Food, got %q", output.Transaction.Category)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created transaction, got %d", len(repo.created))
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	validDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    CreateTransactionInput
		wantCode domainerror.TransactionErrorCode
	}{
		{
			name:     "invalid type",
			input:    CreateTransactionInput{Type: "transfer", Category: "Food", Amount: decimal.RequireFromString("50"), Date: validDate},
			wantCode: domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name:     "empty category",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Category: "  ", Amount: decimal.RequireFromString("50"), Date: validDate},
			wantCode: domainerror.ErrCodeEmptyCategory,
		},
		{
			name:     "zero amount",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Category: "Food", Amount: decimal.Zero, Date: validDate},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:     "negative amount",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Category: "Food", Amount: decimal.RequireFromString("-1"), Date: validDate},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "description too long",
			input: CreateTransactionInput{
				Type: entity.TransactionTypeExpense, Category: "Food",
				Amount:      decimal.RequireFromString("50"),
				Description: strings.Repeat("x", entity.MaxDescriptionLength+1),
				Date:        validDate,
			},
			wantCode: domainerror.ErrCodeDescriptionTooLong,
		},
		{
			name:     "zero date",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Category: "Food", Amount: decimal.RequireFromString("50")},
			wantCode: domainerror.ErrCodeInvalidTransactionDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeTransactionRepository()
			uc := NewCreateTransactionUseCase(repo)

			tt.input.UserID = uuid.New()
			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}

			var txErr *domainerror.TransactionError
			if !errors.As(err, &txErr) {
				t.Fatalf("expected a TransactionError, got %T", err)
			}
			if txErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, txErr.Code)
			}
			if len(repo.created) != 0 {
				t.Error("invalid input must not reach the store")
			}
		})
	}
}

func TestUpdateTransactionForeignOwnerLooksMissing(t *testing.T) {
	repo := newFakeTransactionRepository()
	owner := uuid.New()

	transaction := entity.NewTransaction(owner, entity.TransactionTypeExpense, "Food",
		decimal.RequireFromString("50"), "", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	repo.byID[transaction.ID] = transaction

	uc := NewUpdateTransactionUseCase(repo)

	amount := decimal.RequireFromString("75")
	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: transaction.ID,
		UserID:        uuid.New(), // not the owner
		Amount:        &amount,
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	var txErr *domainerror.TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("expected a TransactionError, got %T", err)
	}
	if txErr.Code != domainerror.ErrCodeTransactionNotFound {
		t.Errorf("foreign-owned transaction must look missing, got code %s", txErr.Code)
	}
}

func TestUpdateTransactionPartial(t *testing.T) {
	repo := newFakeTransactionRepository()
	owner := uuid.New()

	transaction := entity.NewTransaction(owner, entity.TransactionTypeExpense, "Food",
		decimal.RequireFromString("50"), "groceries", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	repo.byID[transaction.ID] = transaction

	uc := NewUpdateTransactionUseCase(repo)

	amount := decimal.RequireFromString("75")
	output, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: transaction.ID,
		UserID:        owner,
		Amount:        &amount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Transaction.Amount.Equal(amount) {
		t.Errorf("expected amount 75, got %s", output.Transaction.Amount)
	}
	if output.Transaction.Category != "Food" || output.Transaction.Description != "groceries" {
		t.Error("untouched fields must keep their values")
	}
}

func TestDeleteTransaction(t *testing.T) {
	repo := newFakeTransactionRepository()
	owner := uuid.New()

	transaction := entity.NewTransaction(owner, entity.TransactionTypeExpense, "Food",
		decimal.RequireFromString("50"), "", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	repo.byID[transaction.ID] = transaction

	uc := NewDeleteTransactionUseCase(repo)

	if err := uc.Execute(context.Background(), DeleteTransactionInput{
		TransactionID: transaction.ID,
		UserID:        owner,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := uc.Execute(context.Background(), DeleteTransactionInput{
		TransactionID: transaction.ID,
		UserID:        owner,
	})
	if err == nil {
		t.Fatal("expected an error deleting a missing transaction")
	}

	var txErr *domainerror.TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("expected a TransactionError, got %T", err)
	}
	if txErr.Code != domainerror.ErrCodeTransactionNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeTransactionNotFound, txErr.Code)
	}
}
