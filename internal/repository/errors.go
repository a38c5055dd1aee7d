package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrRoomOverlap is returned when the transactional availability
	// re-check finds a conflicting booking at insert time.
	ErrRoomOverlap = errors.New("room already booked for an overlapping range")

	ErrNotFound = errors.New("record not found")
)

// IsUniqueViolation reports whether err is a unique-constraint failure from
// either backend (Postgres SQLSTATE 23505 or the SQLite equivalent).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
