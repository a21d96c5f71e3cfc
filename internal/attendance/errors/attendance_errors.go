package attendanceerrors

import (
	"go-attendance/internal/shared/apperror"
	"net/http"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	// ErrEmployeeNotFound answers lookups scoped to an employee that does not exist.
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	// ErrUnknownEmployee is a write that references a missing employee:
	// the caller must fix the request, not retry it.
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Employee not found",
		http.StatusBadRequest,
	)
	ErrInvalidAttendanceData = apperror.New(
		apperror.CodeInvalidInput,
		"Missing or invalid employeeId, cordx, or cordy",
		http.StatusBadRequest,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendanceTime or departureTime",
		http.StatusBadRequest,
	)
)
