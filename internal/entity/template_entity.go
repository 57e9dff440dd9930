package entity

import (
	"time"

	"github.com/google/uuid"
)

// CertificateTemplate describes one certificate page: its native size in
// document points and the owning organizer. Field placements are stored
// separately, one row per field key.
type CertificateTemplate struct {
	Id         uuid.UUID
	Name       string
	PageWidth  float64 // points, 1/72 inch
	PageHeight float64
	UserId     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
