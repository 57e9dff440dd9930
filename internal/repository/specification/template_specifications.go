package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByTemplateID struct {
	TemplateID uuid.UUID
}

func (s ByTemplateID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("template_id = ?", s.TemplateID)
}

type ByFieldKey struct {
	FieldKey string
}

func (s ByFieldKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("field_key = ?", s.FieldKey)
}
