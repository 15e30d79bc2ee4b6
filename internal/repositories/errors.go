package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUsernameTaken is returned when the username unique constraint is violated.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrCompletionExists is returned when the (user, challenge, day) unique constraint is violated.
	ErrCompletionExists = errors.New("challenge already completed on this day")
	// ErrCacheMiss is returned when a cache key is absent.
	ErrCacheMiss = errors.New("cache miss")
)

// PostgreSQL error codes
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == codeUniqueViolation
}

// IsSerializationFailure reports whether err is a transient conflict and the
// transaction may succeed when retried.
func IsSerializationFailure(err error) bool {
	code := pgErrorCode(err)
	return code == codeSerializationFailure || code == codeDeadlockDetected
}
