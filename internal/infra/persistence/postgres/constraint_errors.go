package postgres

import (
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for the constraints the schema declares.
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateCheckViolation   = "23514"
	sqlStateNotNullViolation = "23502"
)

// pgx formats server errors as "... (SQLSTATE 23505)".
var sqlStateSuffix = regexp.MustCompile(`\(SQLSTATE ([0-9A-Z]{5})\)`)

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || sqlStateOf(err) == sqlStateUniqueViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || sqlStateOf(err) == sqlStateCheckViolation
}

func isNotNullConstraintViolation(err error) bool {
	return sqlStateOf(err) == sqlStateNotNullViolation
}

// sqlStateOf returns the SQLSTATE of a driver error, or "" when err did not come from the server.
// Errors that lost their type across a wrap are matched on the pgx message suffix.
func sqlStateOf(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	if m := sqlStateSuffix.FindStringSubmatch(err.Error()); m != nil {
		return m[1]
	}

	return ""
}
