// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the
	// same month and category.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this month and category")

	// ErrInvalidBudgetMonth is returned when the month does not match YYYY-MM.
	ErrInvalidBudgetMonth = errors.New("month must be in YYYY-MM format")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be greater than zero")

	// ErrEmptyBudgetCategory is returned when the budget category is empty.
	ErrEmptyBudgetCategory = errors.New("category is required")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetMonth  BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BGT-010002"
	ErrCodeEmptyBudgetCategory BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetNotFound      BudgetErrorCode = "BGT-010004"

	// Conflict errors (02XXXX)
	ErrCodeBudgetAlreadyExists BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
