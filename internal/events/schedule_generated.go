package events

import "time"

const ScheduleGeneratedTopic = "shift.schedule.v1"

type ScheduleGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	GeneratedAt time.Time `json:"generated_at"`
}
