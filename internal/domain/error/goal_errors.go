// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrEmptyGoalTitle is returned when the goal title is empty.
	ErrEmptyGoalTitle = errors.New("title is required")

	// ErrInvalidTargetAmount is returned when the target amount is not positive.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrNegativeCurrentAmount is returned when the current amount is negative.
	ErrNegativeCurrentAmount = errors.New("current amount cannot be negative")

	// ErrInvalidDeadline is returned when the deadline date is invalid.
	ErrInvalidDeadline = errors.New("invalid deadline date")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyGoalTitle        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount   GoalErrorCode = "GOL-010002"
	ErrCodeNegativeCurrentAmount GoalErrorCode = "GOL-010003"
	ErrCodeInvalidDeadline       GoalErrorCode = "GOL-010004"
	ErrCodeGoalNotFound          GoalErrorCode = "GOL-010005"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
