package place

import (
	"errors"
	"strings"

	placeerrors "go-attendance/internal/place/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgForeignKeyViolation {
			return placeerrors.ErrUnknownPlace
		}
		return err
	}

	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed") {
		return placeerrors.ErrUnknownPlace
	}

	return err
}
