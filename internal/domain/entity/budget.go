// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthFormat is the canonical layout for budget months ("YYYY-MM").
const MonthFormat = "2006-01"

// Budget represents a monthly spending target for a single category.
// At most one budget may exist per (user, month, category).
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Month       string // "YYYY-MM"
	Category    string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, month, category string, amount decimal.Decimal, description string) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Month:       month,
		Category:    category,
		Amount:      amount,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidMonth reports whether s matches the "YYYY-MM" month shape.
func IsValidMonth(s string) bool {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return false
	}
	// time.Parse accepts "2006-1"; require the canonical zero-padded form.
	return t.Format(MonthFormat) == s
}

// MonthBounds returns the inclusive first and last calendar day of a
// "YYYY-MM" month. The month must already be validated.
func MonthBounds(month string) (start, end time.Time) {
	t, _ := time.Parse(MonthFormat, month)
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
