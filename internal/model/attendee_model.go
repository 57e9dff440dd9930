package model

import (
	"time"

	"github.com/google/uuid"
)

type Attendee struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventId   uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Attendee) TableName() string {
	return "attendees"
}
