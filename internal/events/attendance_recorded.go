package events

import "time"

const AttendanceRecordedTopic = "attendance.records.v1"

type AttendanceRecordedEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	AttendanceID     uint      `json:"attendance_id"`
	EmployeeID       uint      `json:"employee_id"`
	CordX            float64   `json:"cordx"`
	CordY            float64   `json:"cordy"`
	AttendanceStatus *string   `json:"attendance_status,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}
