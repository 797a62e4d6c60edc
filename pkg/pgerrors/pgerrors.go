// Package pgerrors classifies PostgreSQL errors returned by lib/pq.
package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

const codeUniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation reports whether err is a unique constraint violation,
// optionally on the named constraint or index.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

