// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportMonth is returned when the report month does not match YYYY-MM.
	ErrInvalidReportMonth = errors.New("month must be in YYYY-MM format")

	// ErrInvalidMonthRange is returned when the trends range end precedes its start.
	ErrInvalidMonthRange = errors.New("to must not be before from")

	// ErrMonthRangeTooWide is returned when the trends range exceeds the maximum span.
	ErrMonthRangeTooWide = errors.New("month range exceeds maximum span")

	// ErrDuplicateBudgetCategory is returned when reconciliation encounters more
	// than one budget for the same category in a single month. The store enforces
	// uniqueness, so this indicates a data-integrity violation upstream.
	ErrDuplicateBudgetCategory = errors.New("duplicate budget category for month")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportMonth ReportErrorCode = "RPT-010001"
	ErrCodeInvalidMonthRange  ReportErrorCode = "RPT-010002"
	ErrCodeMonthRangeTooWide  ReportErrorCode = "RPT-010003"

	// Data-integrity errors (02XXXX)
	ErrCodeDuplicateBudgetCategory ReportErrorCode = "RPT-020001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
