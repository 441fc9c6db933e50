// Package apperr defines the error kinds the service layer speaks in.
// Handlers translate them to HTTP statuses; repositories translate
// driver errors into them. Infrastructure failures are never swallowed.
package apperr

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrInvalidArgument marks malformed or missing input to a core
	// operation. Caller-fixable, never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a referenced entity that does not exist or is
	// inactive.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a business-rule rejection, e.g. an interval
	// overlapping an existing active reservation on the same court.
	ErrConflict = errors.New("conflict")

	// ErrDuplicateKey marks a uniqueness-constraint violation (court
	// number, surface name, phone number, username).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrStorage marks an underlying persistence failure.
	ErrStorage = errors.New("storage error")
)

func InvalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func DuplicateKeyf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDuplicateKey, fmt.Sprintf(format, args...))
}

// Postgres error codes we translate into typed kinds.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// FromStorage translates a database error into the taxonomy above.
// Unique violations become ErrDuplicateKey, exclusion-constraint
// violations (the no-overlap backstop) become ErrConflict, everything
// else is wrapped as ErrStorage.
func FromStorage(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicateKey, pqErr.Constraint)
		case pgExclusionViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pqErr.Constraint)
		}
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
