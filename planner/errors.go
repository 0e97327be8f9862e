package planner

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the planner core. Controllers map these onto
// HTTP status codes; the core never touches Fiber.
var (
	ErrNotFound            = errors.New("not found")
	ErrUnrecognizedCommand = errors.New("unrecognized command")
	ErrCascadeFailed       = errors.New("cascade delete failed")
)

// ValidationError reports a caller mistake rejected before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IncompleteCoverageError rejects generator output whose day distribution
// does not cover every day of the course duration.
type IncompleteCoverageError struct {
	MissingDays []int
}

func (e *IncompleteCoverageError) Error() string {
	return fmt.Sprintf("incomplete coverage: no module for days %v", e.MissingDays)
}

// IsIncompleteCoverage reports whether err is an IncompleteCoverageError.
func IsIncompleteCoverage(err error) bool {
	var ice *IncompleteCoverageError
	return errors.As(err, &ice)
}
