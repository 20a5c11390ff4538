package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	appErr "github.com/eightd-studio/engine/pkg/errors"
)

// PostgreSQL SQLSTATE for foreign_key_violation.
const pgForeignKeyViolation = "23503"

func notFound(entity string) error {
	return appErr.NotFound(entity + " not found")
}

// translate maps driver errors onto application codes. Missing rows and
// dangling foreign keys become not_found; everything else is internal and keeps
// the driver error for logging only.
func translate(err error, entity, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return appErr.Wrap(err, appErr.CodeNotFound, "referenced record not found")
	}
	return appErr.Wrap(err, appErr.CodeInternal, op+" "+entity+" failed")
}
