// Package vote implements ballot models and winner-determination rules
// for plurality, absolute-majority, and super-majority voting.
package vote

import (
	"errors"
	"fmt"
)

// Common errors returned by winner rules.
var (
	// ErrWinnerNotFound indicates that no candidate satisfied the rule's
	// threshold or prerequisite.
	ErrWinnerNotFound = errors.New("winner not found")

	// ErrMultipleWinners indicates that a single-winner rule found a tie.
	// Returned errors carry the tied set via MultipleWinnersError.
	ErrMultipleWinners = errors.New("multiple winners found")

	// ErrInvalidThreshold indicates that a super-majority threshold does
	// not exceed 0.5.
	ErrInvalidThreshold = errors.New("threshold must be greater than 0.5")
)

// MultipleWinnersError is returned by a single-winner rule when the
// leading candidates are tied. It carries the full tied set, sorted
// ascending, so callers can recover without re-querying.
type MultipleWinnersError struct {
	// Rule names the winner rule that found the tie.
	Rule string

	// Winners is the tied candidate set, sorted lexicographically.
	Winners []string
}

// Error implements the error interface for MultipleWinnersError.
func (e *MultipleWinnersError) Error() string {
	return fmt.Sprintf("multiple winners found using %s rule: %v", e.Rule, e.Winners)
}

// Is reports a match against ErrMultipleWinners so callers can test the
// error kind with errors.Is.
func (e *MultipleWinnersError) Is(target error) bool { return target == ErrMultipleWinners }

// ValidationError represents malformed input to a constructor or helper.
type ValidationError struct {
	// Entity is the name of the input that failed validation.
	Entity string

	// Errors contains the validation error messages.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// NewValidationError creates a ValidationError for the given entity.
func NewValidationError(entity string, msgs ...string) *ValidationError {
	return &ValidationError{Entity: entity, Errors: msgs}
}
