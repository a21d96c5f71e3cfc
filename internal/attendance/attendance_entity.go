package attendance

import "time"

type Attendance struct {
	ID               uint         `gorm:"column:id;primaryKey"`
	EmployeeID       uint         `gorm:"column:employee_id;not null;index"`
	CordX            float64      `gorm:"column:cordx;not null"`
	CordY            float64      `gorm:"column:cordy;not null"`
	AttendanceTime   *time.Time   `gorm:"column:attendance_time"`
	DepartureTime    *time.Time   `gorm:"column:departure_time"`
	AttendanceStatus *string      `gorm:"column:attendance_status;type:varchar(50)"`
	DepartureStatus  *string      `gorm:"column:departure_status;type:varchar(50)"`
	Notes            *string      `gorm:"column:notes;type:text"`
	CreatedAt        time.Time    `gorm:"column:created_at"`
	UpdatedAt        time.Time    `gorm:"column:updated_at"`
	Employee         *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "attendance_departures"
}

type EmployeeRef struct {
	ID           uint   `gorm:"column:id;primaryKey"`
	EmployeeName string `gorm:"column:employee_name"`
	EmployeeCode string `gorm:"column:employee_code"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
