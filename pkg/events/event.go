package events

import "time"

// Event is something that happened in the system and is worth telling other
// components about.
type Event interface {
	// EventType returns the event code, e.g. "CERTIFICATE_ISSUED".
	EventType() string

	// Payload returns the event data.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the concrete event the constructors in this package return.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
