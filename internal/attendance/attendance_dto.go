package attendance

import (
	"time"

	"go-attendance/internal/shared/coerce"
)

type CreateAttendanceRequest struct {
	EmployeeID       coerce.Number `json:"employeeId"`
	CordX            coerce.Number `json:"cordx"`
	CordY            coerce.Number `json:"cordy"`
	AttendanceTime   *string       `json:"attendanceTime"`
	DepartureTime    *string       `json:"departureTime"`
	AttendanceStatus *string       `json:"attendanceStatus" binding:"omitempty,max=50"`
	DepartureStatus  *string       `json:"departureStatus" binding:"omitempty,max=50"`
	Notes            *string       `json:"notes"`
}

// UpdateAttendanceRequest is a partial update: absent fields stay unchanged.
type UpdateAttendanceRequest struct {
	EmployeeID       coerce.Number `json:"employeeId"`
	CordX            coerce.Number `json:"cordx"`
	CordY            coerce.Number `json:"cordy"`
	AttendanceTime   *string       `json:"attendanceTime"`
	DepartureTime    *string       `json:"departureTime"`
	AttendanceStatus *string       `json:"attendanceStatus" binding:"omitempty,max=50"`
	DepartureStatus  *string       `json:"departureStatus" binding:"omitempty,max=50"`
	Notes            *string       `json:"notes"`
}

type AttendanceResponse struct {
	ID               uint              `json:"id"`
	EmployeeID       uint              `json:"employeeId"`
	CordX            float64           `json:"cordx"`
	CordY            float64           `json:"cordy"`
	AttendanceTime   *time.Time        `json:"attendanceTime"`
	DepartureTime    *time.Time        `json:"departureTime"`
	AttendanceStatus *string           `json:"attendanceStatus"`
	DepartureStatus  *string           `json:"departureStatus"`
	Notes            *string           `json:"notes"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	Employee         *EmployeeResponse `json:"employee,omitempty"`
}

type EmployeeResponse struct {
	ID           uint   `json:"id"`
	EmployeeName string `json:"employeeName"`
	EmployeeCode string `json:"employeeCode"`
}
