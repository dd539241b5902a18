package repositories

import (
	"errors"

	apperrors "daily-report-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

// psql builds all list queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapConstraintError converts Postgres constraint violations into the API
// taxonomy, so a writer racing past the application-level pre-check still
// surfaces as DUPLICATE_ERROR / REFERENCE_ERROR instead of a 500.
func mapConstraintError(err error, duplicateMsg, referenceMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.Duplicate(duplicateMsg)
		case pgForeignKeyViolation:
			return apperrors.Reference(referenceMsg)
		}
	}
	return err
}
