// Package liftbase is the embeddable persistence core for an exercise
// catalog. It validates and stores exercise records in an embedded SQLite
// database behind a bounded connection pool, safe for concurrent callers.
//
// This package is the single import surface for embedders and binding
// layers: it re-exports the domain record, the repository contract and its
// error kinds, and provides the repository constructors. All inputs and
// outputs are plain data, so a foreign-function layer can translate the five
// operations (open, add, get, list, delete) without touching internals.
//
// A *Repository is a cheap shared handle: copies of the pointer share one
// connection pool. Open a location once and hand the handle around.
package liftbase

import (
	"liftbase/internal/domain"
	"liftbase/internal/logging"
	"liftbase/internal/repository"
	"liftbase/internal/repository/sqlite"
)

// Re-exported types. Binding layers depend on these names only.
type (
	// Exercise is the catalog record.
	Exercise = domain.Exercise

	// ExerciseRepository is the storage contract.
	ExerciseRepository = repository.ExerciseRepository

	// Repository is the pooled SQLite implementation.
	Repository = sqlite.Repository

	// Options tunes pool size, acquisition timeout, and logging.
	Options = sqlite.Options

	// DatabaseError, NotFoundError, InvalidInputError, and PoolError form
	// the complete error taxonomy; callers branch with errors.As or the
	// Is* helpers.
	DatabaseError     = repository.DatabaseError
	NotFoundError     = repository.NotFoundError
	InvalidInputError = repository.InvalidInputError
	PoolError         = repository.PoolError
)

// MemoryLocation is the sentinel for an ephemeral in-memory store.
const MemoryLocation = sqlite.MemoryLocation

// InitLogging configures process-wide structured logging exactly once,
// reading the level from $LIFTBASE_LOG. Safe to call from any number of
// call-sites; only the first has an effect. Repository constructors call it
// implicitly.
func InitLogging() {
	logging.InitFromEnv()
}

// OpenRepository opens (or creates) the exercise store at path. Opening the
// same path twice is idempotent and never disturbs existing rows.
func OpenRepository(path string) (*Repository, error) {
	InitLogging()
	logger := logging.Component("repository")
	return sqlite.NewWithOptions(path, sqlite.Options{Logger: &logger})
}

// OpenRepositoryWithOptions opens the store at path with explicit options.
func OpenRepositoryWithOptions(path string, opts Options) (*Repository, error) {
	InitLogging()
	if opts.Logger == nil {
		logger := logging.Component("repository")
		opts.Logger = &logger
	}
	return sqlite.NewWithOptions(path, opts)
}

// OpenInMemoryRepository opens an ephemeral store private to the returned
// handle, useful for tests and previews.
func OpenInMemoryRepository() (*Repository, error) {
	return OpenRepository(MemoryLocation)
}

// NewExercise creates an exercise with a generated UUID-v4 id. The
// difficulty level is clamped into [1,10].
func NewExercise(name, description string, muscleGroups []string, equipmentNeeded string, difficultyLevel int) Exercise {
	return domain.NewExercise(name, description, muscleGroups, equipmentNeeded, difficultyLevel)
}

// NewExerciseWithID creates an exercise with a caller-supplied id.
func NewExerciseWithID(id, name, description string, muscleGroups []string, equipmentNeeded string, difficultyLevel int) Exercise {
	return domain.NewExerciseWithID(id, name, description, muscleGroups, equipmentNeeded, difficultyLevel)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	return repository.IsNotFound(err)
}

// IsPoolError reports whether err is (or wraps) a PoolError.
func IsPoolError(err error) bool {
	return repository.IsPoolError(err)
}
