package repository

import (
	"errors"
	"fmt"
)

// The repository wraps every failure into one of four kinds. Callers branch
// on kind with errors.As or the Is* helpers; NotFoundError is the only kind
// expected as a routine outcome.

// DatabaseError reports a failure originating from the storage engine or
// from encoding/decoding the muscle-groups column.
type DatabaseError struct {
	Message string
	Err     error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("Database error: %s", e.Message)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// NotFoundError reports that a point lookup found no matching exercise.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Exercise not found with ID: %s", e.ID)
}

// InvalidInputError reports input that failed a pre-storage validation rule.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid input: %s", e.Message)
}

// PoolError reports a connection-pool acquisition failure (exhaustion or an
// unreachable backing store).
type PoolError struct {
	Message string
	Err     error
}

func (e *PoolError) Error() string {
	return fmt.Sprintf("Pool error: %s", e.Message)
}

func (e *PoolError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsPoolError reports whether err is (or wraps) a PoolError.
func IsPoolError(err error) bool {
	var pe *PoolError
	return errors.As(err, &pe)
}
