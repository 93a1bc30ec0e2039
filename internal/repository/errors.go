package repository

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	scgerror "github.com/next-trace/scg-error/error"
)

// ErrNotFound is returned when a requested contact does not exist.
var ErrNotFound = errors.New("not found")

// Error kinds attached to classified database errors. Handlers keep the
// wire contract (everything but not-found is a 500) and use the kind only
// for structured logging.
const (
	KindConflict   = "conflict"
	KindValidation = "validation"
	KindInfra      = "infrastructure"
)

// Postgres error codes we classify.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// classify wraps a raw database error into a typed error carrying the
// failure kind. The original error stays reachable through errors.Is/As.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return scgerror.Wrap(err, http.StatusConflict,
				"contact."+op+".duplicate", KindConflict,
				"unique constraint violated", nil).
				WithContextKV("constraint", pgErr.ConstraintName)
		case pgNotNullViolation:
			return scgerror.Wrap(err, http.StatusInternalServerError,
				"contact."+op+".missing_field", KindValidation,
				"required column was null", nil).
				WithContextKV("column", pgErr.ColumnName)
		}
	}
	return scgerror.Wrap(err, http.StatusInternalServerError,
		"contact."+op+".infra", KindInfra, "database error", nil)
}
