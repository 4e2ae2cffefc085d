package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means no intern exists for the given identifier.
	ErrNotFound = errors.New("intern not found")
	// ErrDuplicateEmail means the email is already taken by another record.
	ErrDuplicateEmail = errors.New("duplicate field value entered")
)

// InvalidIDError marks a malformed identifier. The HTTP layer surfaces it the
// same way as a missing record.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("resource not found with id of %s", e.ID)
}

// ValidationError aggregates every violated field constraint, one message per
// offending field.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}
