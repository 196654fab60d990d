package service

import (
	"errors"

	"github.com/pageza/cookbook/backend/internal/model"
)

var (
	// ErrNotFound is returned when the requested recipe or topic does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAuthorNotFound is returned when the authenticated author has no user row.
	ErrAuthorNotFound = errors.New("author not found")
	// ErrInvalidRequest is returned when caller-supplied references do not resolve.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrTransactionFailure wraps storage errors that aborted an aggregate write.
	ErrTransactionFailure = errors.New("transaction failed")
	// ErrValidation matches every *ValidationError.
	ErrValidation = model.ErrValidation
)

// ValidationError reports a malformed field value.
type ValidationError = model.ValidationError

// isDomainError reports whether err already carries a failure kind and
// must not be wrapped as a transaction failure.
func isDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAuthorNotFound) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrValidation)
}
