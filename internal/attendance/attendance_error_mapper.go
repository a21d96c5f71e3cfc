package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-attendance/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgForeignKeyViolation = "23503"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgForeignKeyViolation {
			return attendanceerrors.ErrUnknownEmployee
		}
		return err
	}

	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed") {
		return attendanceerrors.ErrUnknownEmployee
	}

	return err
}
