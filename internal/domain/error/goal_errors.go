// Package error defines domain-specific errors for the Budget App application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found or not owned by the caller.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidContributionAmount is returned when a contribution is zero or negative.
	ErrInvalidContributionAmount = errors.New("contribution amount must be positive")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be positive")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound              GoalErrorCode = "GOL-010001"
	ErrCodeInvalidContributionAmount GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount       GoalErrorCode = "GOL-010003"
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
