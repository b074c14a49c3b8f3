package repositories

import (
	"errors"
	"time"

	"github.com/jackc/pgconn"
)

const (
	pgUniqueViolation = "23505"
)

// IsUniqueViolation reports a Postgres unique-constraint failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
