package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type BySerial struct {
	Serial string
}

func (s BySerial) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("serial = ?", s.Serial)
}

type ByAttendeeID struct {
	AttendeeID uuid.UUID
}

func (s ByAttendeeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("attendee_id = ?", s.AttendeeID)
}
