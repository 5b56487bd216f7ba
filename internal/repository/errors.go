package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Common repository errors
var (
	// ErrNotFound is returned when a row does not exist or is not visible to
	// the store's owner.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for empty or malformed input. No state changes.
	ErrValidation = errors.New("validation error")

	// ErrConstraint is returned when a unique constraint rejects a write.
	ErrConstraint = errors.New("constraint violation")

	// ErrStorage wraps any other failure of the underlying database.
	ErrStorage = errors.New("storage error")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func notFound(what string, id int64) error {
	return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
}

// wrapDBError translates gorm failures into the repository taxonomy. Errors
// that already carry one of the sentinels pass through untouched.
func wrapDBError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation),
		errors.Is(err, ErrConstraint), errors.Is(err, ErrStorage):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// IsUniqueViolation reports whether err came from a unique index, for both
// the sqlite and postgres drivers.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
