package employee

import "time"

type Employee struct {
	ID           uint       `gorm:"column:id;primaryKey"`
	EmployeeName string     `gorm:"column:employee_name;not null"`
	EmployeeCode string     `gorm:"column:employee_code;not null;uniqueIndex:uq_employees_employee_code"`
	HireDate     *time.Time `gorm:"column:hire_date;type:date"`
	Department   *string    `gorm:"column:department"`
	JobTitle     *string    `gorm:"column:job_title"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`

	AttendanceDepartures []AttendanceRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

// AttendanceRef is the read side of attendance_departures as seen from an
// employee. The attendance package owns the table.
type AttendanceRef struct {
	ID               uint       `gorm:"column:id;primaryKey"`
	EmployeeID       uint       `gorm:"column:employee_id"`
	CordX            float64    `gorm:"column:cordx"`
	CordY            float64    `gorm:"column:cordy"`
	AttendanceTime   *time.Time `gorm:"column:attendance_time"`
	DepartureTime    *time.Time `gorm:"column:departure_time"`
	AttendanceStatus *string    `gorm:"column:attendance_status"`
	DepartureStatus  *string    `gorm:"column:departure_status"`
	Notes            *string    `gorm:"column:notes"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
}

func (AttendanceRef) TableName() string {
	return "attendance_departures"
}
