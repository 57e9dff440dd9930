package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldPlacement is the persisted position of one template field, always
// in document points. On-screen pixel coordinates are derived per editing
// session and never stored.
type FieldPlacement struct {
	Id         uuid.UUID
	TemplateId uuid.UUID
	FieldKey   string
	X          float64
	Y          float64
	FontSize   float64
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
