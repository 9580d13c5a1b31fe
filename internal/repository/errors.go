// Package repository implements all database queries for the campus
// events backend. It uses pgx directly (no ORM) for transparency.
//
// Uniqueness and referential integrity are ultimately enforced by the
// schema's constraints. The service layer runs pre-checks for fast
// rejection, but a concurrent writer can slip past them; the constraint
// failures caught here close that window and are mapped onto the same
// domain errors the pre-checks produce.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func foreignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// fkConstraint reports the name of the violated foreign key constraint,
// so callers with more than one referent can name the missing entity.
func fkConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
