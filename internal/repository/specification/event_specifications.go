package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEventID struct {
	EventID uuid.UUID
}

func (s ByEventID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("event_id = ?", s.EventID)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// EndedBefore selects events whose end date is in the past,
// used to gate certificate issuance.
type EndedBefore struct {
	At time.Time
}

func (s EndedBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ends_at < ?", s.At)
}
