package model

import (
	"time"

	"github.com/google/uuid"
)

// FieldPlacement stores one field position in document points. One row per
// (template, field key); the unique index makes saves upsert-friendly.
type FieldPlacement struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TemplateId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_placements_template_field,priority:1"`
	FieldKey   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_placements_template_field,priority:2"`
	X          float64   `gorm:"type:numeric(8,3);not null"`
	Y          float64   `gorm:"type:numeric(8,3);not null"`
	FontSize   float64   `gorm:"type:numeric(6,2);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (FieldPlacement) TableName() string {
	return "field_placements"
}
