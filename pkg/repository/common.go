package repository

import (
	"errors"
	"strings"
)

// storage error taxonomy. Constraint violations will not succeed on
// retry; lock/busy errors are worth retrying.
var (
	// ErrNotFound indicates the requested row does not exist
	ErrNotFound = errors.New("not found")

	// ErrConstraint indicates a referential or uniqueness violation
	ErrConstraint = errors.New("constraint violation")
)

// isConstraintError checks if an error is a SQLite constraint violation
func isConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_CONSTRAINT") ||
		strings.Contains(errStr, "constraint failed") ||
		strings.Contains(errStr, "FOREIGN KEY constraint")
}

// IsLockError checks if an error is a SQLite lock/busy error, i.e. a
// transient condition that a retry may clear
func IsLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
