package employee

import (
	"errors"
	"strings"

	employeeerrors "go-attendance/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uqEmployeeCode = "uq_employees_employee_code"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == uqEmployeeCode {
			return employeeerrors.ErrEmployeeCodeAlreadyExists
		}
		return err
	}

	// sqlite and wrapped driver errors only carry text
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uqEmployeeCode) {
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	}
	if strings.Contains(errMsg, "unique constraint failed: employees.employee_code") {
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	}

	return err
}
