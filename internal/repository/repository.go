package repository

import (
	"context"

	"liftbase/internal/domain"
)

// ExerciseRepository defines the interface for exercise catalog data access.
//
// Implementations must be safe for concurrent use from multiple goroutines.
// A repository value is a shared handle: copying the reference shares the
// underlying connection pool, so a host can hold one logical repository
// across many call-sites without reopening the store.
type ExerciseRepository interface {
	// Add persists a new exercise. Fails with a *DatabaseError if the id
	// already exists (primary-key violation). The record is written as-is;
	// running domain.Exercise.Validate first is the caller's policy.
	Add(ctx context.Context, exercise domain.Exercise) error

	// Get performs a point lookup by id. An absent id is a *NotFoundError,
	// never a generic database error.
	Get(ctx context.Context, id string) (domain.Exercise, error)

	// ListAll returns every exercise ordered by name ascending. An empty
	// store yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]domain.Exercise, error)

	// Delete removes the exercise if present and reports whether a row was
	// removed. An absent id is (false, nil), not an error; the asymmetry
	// with Get is deliberate.
	Delete(ctx context.Context, id string) (bool, error)

	// Close releases the connection pool.
	Close() error
}
