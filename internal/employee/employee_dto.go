package employee

import "time"

type CreateEmployeeRequest struct {
	EmployeeName string  `json:"employeeName"`
	EmployeeCode string  `json:"employeeCode"`
	HireDate     *string `json:"hireDate"`
	Department   *string `json:"department"`
	JobTitle     *string `json:"jobTitle"`
}

// UpdateEmployeeRequest is a partial update: nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	EmployeeName *string `json:"employeeName"`
	EmployeeCode *string `json:"employeeCode"`
	HireDate     *string `json:"hireDate"`
	Department   *string `json:"department"`
	JobTitle     *string `json:"jobTitle"`
}

type EmployeeResponse struct {
	ID                   uint                 `json:"id"`
	EmployeeName         string               `json:"employeeName"`
	EmployeeCode         string               `json:"employeeCode"`
	HireDate             *time.Time           `json:"hireDate"`
	Department           *string              `json:"department"`
	JobTitle             *string              `json:"jobTitle"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
	AttendanceDepartures []AttendanceResponse `json:"attendanceDepartures"`
}

type AttendanceResponse struct {
	ID               uint       `json:"id"`
	EmployeeID       uint       `json:"employeeId"`
	CordX            float64    `json:"cordx"`
	CordY            float64    `json:"cordy"`
	AttendanceTime   *time.Time `json:"attendanceTime"`
	DepartureTime    *time.Time `json:"departureTime"`
	AttendanceStatus *string    `json:"attendanceStatus"`
	DepartureStatus  *string    `json:"departureStatus"`
	Notes            *string    `json:"notes"`
	CreatedAt        time.Time  `json:"createdAt"`
}
