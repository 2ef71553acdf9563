// Package error defines domain-specific errors for the Budget App application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found or not owned by the caller.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrOverlappingBudget is returned when a budget window overlaps an existing
	// budget for the same user and category.
	ErrOverlappingBudget = errors.New("overlapping budget for this category")

	// ErrBudgetCategoryNotExpense is returned when a budget references a non-expense category.
	ErrBudgetCategoryNotExpense = errors.New("budget category must be of expense type")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

	// ErrInvalidBudgetPeriod is returned when the budget window is empty or reversed.
	ErrInvalidBudgetPeriod = errors.New("budget end date must be after start date")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeBudgetNotFound           BudgetErrorCode = "BUD-010001"
	ErrCodeOverlappingBudget        BudgetErrorCode = "BUD-010002"
	ErrCodeBudgetCategoryNotExpense BudgetErrorCode = "BUD-010003"
	ErrCodeInvalidBudgetAmount      BudgetErrorCode = "BUD-010004"
	ErrCodeInvalidBudgetPeriod      BudgetErrorCode = "BUD-010005"
	ErrCodeBudgetCategoryNotFound   BudgetErrorCode = "BUD-010006"
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
