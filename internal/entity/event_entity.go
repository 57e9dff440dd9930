package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a CPD activity (workshop, course session, webinar) whose
// attendees can be issued certificates.
type Event struct {
	Id            uuid.UUID
	Title         string
	Description   string
	StartsAt      time.Time
	EndsAt        time.Time
	CpdCredits    float64
	OrganizerName string
	TemplateId    *uuid.UUID // certificate template used at issuance
	UserId        uuid.UUID  // owning organizer account
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
