package events

import "time"

const AttendanceStatusChangedTopic = "shift.attendance.v1"

type AttendanceStatusChangedEvent struct {
	EventType    string    `json:"event_type"`
	EmployeeName string    `json:"employee_name"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Day          int       `json:"day"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}
