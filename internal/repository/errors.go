package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes surfaced when the no_overlapping_stays constraint
// or a unique index fires.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
	pgDuplicateObject    = "42710"
)

// IsOverlapViolation reports whether err is the database-level backstop
// rejecting an overlapping stay.
func IsOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code == pgExclusionViolation {
		return strings.Contains(pgErr.ConstraintName, "no_overlapping_stays")
	}
	return false
}

func isDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgDuplicateObject
	}
	return false
}

// IsUniqueViolation reports a unique index violation (duplicate admin
// username).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
