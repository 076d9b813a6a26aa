package repository

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "database error",
			err:  &DatabaseError{Message: "failed to insert exercise: constraint failed"},
			want: "Database error: failed to insert exercise: constraint failed",
		},
		{
			name: "not found",
			err:  &NotFoundError{ID: "ex-42"},
			want: "Exercise not found with ID: ex-42",
		},
		{
			name: "invalid input",
			err:  &InvalidInputError{Message: "exercise name cannot be empty"},
			want: "Invalid input: exercise name cannot be empty",
		},
		{
			name: "pool error",
			err:  &PoolError{Message: "acquire timed out"},
			want: "Pool error: acquire timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	plain := &NotFoundError{ID: "x"}
	if !IsNotFound(plain) {
		t.Error("expected IsNotFound on bare NotFoundError")
	}

	wrapped := fmt.Errorf("lookup failed: %w", plain)
	if !IsNotFound(wrapped) {
		t.Error("expected IsNotFound to see through wrapping")
	}

	if IsNotFound(&DatabaseError{Message: "boom"}) {
		t.Error("expected IsNotFound to reject other kinds")
	}
	if IsNotFound(nil) {
		t.Error("expected IsNotFound(nil) to be false")
	}
}

func TestIsPoolError(t *testing.T) {
	if !IsPoolError(&PoolError{Message: "exhausted"}) {
		t.Error("expected IsPoolError on bare PoolError")
	}
	if IsPoolError(&NotFoundError{ID: "x"}) {
		t.Error("expected IsPoolError to reject other kinds")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk I/O error")
	dbErr := &DatabaseError{Message: "failed to insert exercise", Err: cause}
	if !errors.Is(dbErr, cause) {
		t.Error("expected DatabaseError to unwrap to its cause")
	}

	poolCause := errors.New("context deadline exceeded")
	poolErr := &PoolError{Message: "acquire timed out", Err: poolCause}
	if !errors.Is(poolErr, poolCause) {
		t.Error("expected PoolError to unwrap to its cause")
	}
}
