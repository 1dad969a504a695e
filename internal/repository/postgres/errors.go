package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reports whether err is a Postgres 23505. Uniqueness
// constraints are the primary concurrency defense: under concurrent
// duplicate-creation attempts exactly one insert wins and the loser sees
// this error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
