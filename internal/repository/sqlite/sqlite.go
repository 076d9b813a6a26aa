// Package sqlite implements repository.ExerciseRepository on an embedded
// SQLite database using the pure-Go driver (modernc.org/sqlite).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"liftbase/internal/domain"
	"liftbase/internal/repository"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// MemoryLocation is the sentinel accepted by New for an ephemeral,
// non-durable store private to the returned handle.
const MemoryLocation = ":memory:"

const (
	// DefaultMaxConns bounds the connection pool when Options does not.
	DefaultMaxConns = 10

	// DefaultAcquireTimeout caps how long an operation waits for a pooled
	// connection before failing with a PoolError.
	DefaultAcquireTimeout = 5 * time.Second

	busyTimeoutMS = 5000
)

// Options tunes the repository. Zero values select the defaults.
type Options struct {
	// MaxConns bounds the connection pool. Ignored for MemoryLocation,
	// which always uses a single connection.
	MaxConns int

	// AcquireTimeout caps connection acquisition per operation. Negative
	// disables the cap (acquisition then blocks on the caller's context).
	AcquireTimeout time.Duration

	// ConnMaxLifetime recycles pooled connections after this duration.
	// Zero keeps connections alive for the life of the pool. Ignored for
	// MemoryLocation: the in-memory database lives inside its single
	// connection, so recycling it would discard every row.
	ConnMaxLifetime time.Duration

	// Logger receives repository events. Nil means no logging.
	Logger *zerolog.Logger
}

// Repository is a pooled SQLite implementation of
// repository.ExerciseRepository.
//
// A *Repository is a cheap shared handle: every copy of the pointer shares
// the same pool, so passing it across call-sites (or a binding layer) never
// reopens the store. All methods are safe for concurrent use; each operation
// holds exactly one pooled connection for its duration.
type Repository struct {
	db             *sql.DB
	log            zerolog.Logger
	acquireTimeout time.Duration
}

var _ repository.ExerciseRepository = (*Repository)(nil)

// New opens (or creates) the exercise store at path with default options.
// Pass MemoryLocation for an in-memory store. Opening the same durable path
// twice is idempotent: the schema is created only if absent and existing
// rows are untouched.
func New(path string) (*Repository, error) {
	return NewWithOptions(path, Options{})
}

// NewInMemory opens an ephemeral in-memory store, useful for tests.
func NewInMemory() (*Repository, error) {
	return New(MemoryLocation)
}

// NewWithOptions opens the exercise store at path with explicit options.
func NewWithOptions(path string, opts Options) (*Repository, error) {
	if path == "" {
		return nil, &repository.InvalidInputError{Message: "database location cannot be empty"}
	}

	maxConns := opts.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	if path == MemoryLocation {
		// Each pooled connection opens its own private in-memory database,
		// so the pool must collapse to a single shared connection.
		maxConns = 1
	}

	acquireTimeout := opts.AcquireTimeout
	if acquireTimeout == 0 {
		acquireTimeout = DefaultAcquireTimeout
	} else if acquireTimeout < 0 {
		acquireTimeout = 0
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, &repository.DatabaseError{
			Message: fmt.Sprintf("failed to open database: %v", err),
			Err:     err,
		}
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	if opts.ConnMaxLifetime > 0 && path != MemoryLocation {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	repo := &Repository{
		db:             db,
		log:            logger,
		acquireTimeout: acquireTimeout,
	}

	if err := repo.createSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info().
		Str("path", path).
		Int("max_conns", maxConns).
		Msg("exercise repository opened")

	return repo, nil
}

// dsn builds the driver DSN. Durable stores run in WAL mode with a busy
// timeout so concurrent writers queue instead of failing immediately.
func dsn(path string) string {
	if path == MemoryLocation {
		return path
	}
	return fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", path, busyTimeoutMS)
}

func (r *Repository) createSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		muscle_groups TEXT NOT NULL,
		equipment_needed TEXT,
		difficulty_level INTEGER NOT NULL
	)`

	conn, release, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return &repository.DatabaseError{
			Message: fmt.Sprintf("failed to create exercises table: %v", err),
			Err:     err,
		}
	}
	return nil
}

// acquire checks one connection out of the pool. The release func must be
// called exactly once; it returns the connection to the pool.
func (r *Repository) acquire(ctx context.Context) (*sql.Conn, func(), error) {
	actx := ctx
	cancel := func() {}
	if r.acquireTimeout > 0 {
		actx, cancel = context.WithTimeout(ctx, r.acquireTimeout)
	}

	conn, err := r.db.Conn(actx)
	if err != nil {
		cancel()
		return nil, nil, &repository.PoolError{
			Message: fmt.Sprintf("failed to get database connection: %v", err),
			Err:     err,
		}
	}

	release := func() {
		conn.Close()
		cancel()
	}
	return conn, release, nil
}

// Add inserts a new exercise. The muscle-group list is stored as a JSON
// array string. A duplicate id surfaces as a DatabaseError from the
// primary-key constraint; the first record is left intact.
func (r *Repository) Add(ctx context.Context, exercise domain.Exercise) error {
	conn, release, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	groupsJSON, err := encodeMuscleGroups(exercise.MuscleGroups)
	if err != nil {
		return &repository.DatabaseError{
			Message: fmt.Sprintf("failed to serialize muscle groups: %v", err),
			Err:     err,
		}
	}

	_, err = conn.ExecContext(ctx, `
		INSERT INTO exercises (id, name, description, muscle_groups, equipment_needed, difficulty_level)
		VALUES (?, ?, ?, ?, ?, ?)
	`, exercise.ID, exercise.Name, stringToNull(exercise.Description), groupsJSON,
		stringToNull(exercise.EquipmentNeeded), exercise.DifficultyLevel)
	if err != nil {
		return &repository.DatabaseError{
			Message: fmt.Sprintf("failed to insert exercise: %v", err),
			Err:     err,
		}
	}

	r.log.Debug().Str("id", exercise.ID).Str("name", exercise.Name).Msg("exercise added")
	return nil
}

// Get looks up a single exercise by id. An absent id is a *NotFoundError.
func (r *Repository) Get(ctx context.Context, id string) (domain.Exercise, error) {
	conn, release, err := r.acquire(ctx)
	if err != nil {
		return domain.Exercise{}, err
	}
	defer release()

	var row exerciseRow
	err = conn.QueryRowContext(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercises WHERE id = ?
	`, id).Scan(row.scanArgs()...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Exercise{}, &repository.NotFoundError{ID: id}
	}
	if err != nil {
		return domain.Exercise{}, &repository.DatabaseError{
			Message: fmt.Sprintf("failed to query exercise: %v", err),
			Err:     err,
		}
	}

	exercise, err := row.toDomain()
	if err != nil {
		return domain.Exercise{}, &repository.DatabaseError{
			Message: fmt.Sprintf("failed to decode exercise %s: %v", id, err),
			Err:     err,
		}
	}

	r.log.Debug().Str("id", id).Str("name", exercise.Name).Msg("exercise retrieved")
	return exercise, nil
}

// ListAll returns every exercise ordered lexicographically by name. Ties
// keep the backing store's stable default order.
func (r *Repository) ListAll(ctx context.Context) ([]domain.Exercise, error) {
	conn, release, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := conn.QueryContext(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercises ORDER BY name
	`)
	if err != nil {
		return nil, &repository.DatabaseError{
			Message: fmt.Sprintf("failed to query exercises: %v", err),
			Err:     err,
		}
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var row exerciseRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, &repository.DatabaseError{
				Message: fmt.Sprintf("failed to scan exercise: %v", err),
				Err:     err,
			}
		}

		exercise, err := row.toDomain()
		if err != nil {
			return nil, &repository.DatabaseError{
				Message: fmt.Sprintf("failed to decode exercise %s: %v", row.ID, err),
				Err:     err,
			}
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, &repository.DatabaseError{
			Message: fmt.Sprintf("error iterating exercises: %v", err),
			Err:     err,
		}
	}

	r.log.Debug().Int("count", len(exercises)).Msg("exercises listed")
	return exercises, nil
}

// Delete removes the exercise with the given id and reports whether a row
// was removed. An absent id is (false, nil), not an error.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	conn, release, err := r.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer release()

	res, err := conn.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return false, &repository.DatabaseError{
			Message: fmt.Sprintf("failed to delete exercise: %v", err),
			Err:     err,
		}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, &repository.DatabaseError{
			Message: fmt.Sprintf("failed to read delete result: %v", err),
			Err:     err,
		}
	}

	deleted := affected > 0
	r.log.Debug().Str("id", id).Bool("deleted", deleted).Msg("exercise delete")
	return deleted, nil
}

// Close closes the connection pool. The handle (and every copy of it) is
// unusable afterwards.
func (r *Repository) Close() error {
	return r.db.Close()
}
