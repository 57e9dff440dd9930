package entity

import (
	"time"

	"github.com/google/uuid"
)

type Attendee struct {
	Id        uuid.UUID
	EventId   uuid.UUID
	FullName  string
	Email     string
	CreatedAt time.Time
}
