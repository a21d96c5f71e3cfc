package events

import "time"

const EmployeeCreatedTopic = "attendance.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   uint      `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	OccurredAt   time.Time `json:"occurred_at"`
}
