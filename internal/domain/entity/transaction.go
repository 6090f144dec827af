// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// MaxDescriptionLength is the maximum allowed length for a transaction description.
const MaxDescriptionLength = 100

// Transaction represents a financial transaction in the Budgetwise system.
// Amount is always positive; Type distinguishes income from expense.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	description string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        transactionType,
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidTransactionType reports whether the given type is a known transaction type.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}
