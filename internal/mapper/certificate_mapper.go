package mapper

import (
	"encoding/json"
	"time"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/model"

	"gorm.io/datatypes"
)

type CertificateMapper struct{}

func NewCertificateMapper() *CertificateMapper {
	return &CertificateMapper{}
}

func (m *CertificateMapper) ToEntity(c *model.Certificate) *entity.Certificate {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		ts := c.UpdatedAt
		updatedAt = &ts
	}

	return &entity.Certificate{
		Id:         c.Id,
		EventId:    c.EventId,
		AttendeeId: c.AttendeeId,
		TemplateId: c.TemplateId,
		Serial:     c.Serial,
		FilePath:   c.FilePath,
		Status:     c.Status,
		FailReason: c.FailReason,
		Metadata:   json.RawMessage(c.Metadata),
		IssuedAt:   c.IssuedAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *CertificateMapper) ToModel(c *entity.Certificate) *model.Certificate {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Certificate{
		Id:         c.Id,
		EventId:    c.EventId,
		AttendeeId: c.AttendeeId,
		TemplateId: c.TemplateId,
		Serial:     c.Serial,
		FilePath:   c.FilePath,
		Status:     c.Status,
		FailReason: c.FailReason,
		Metadata:   datatypes.JSON(c.Metadata),
		IssuedAt:   c.IssuedAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *CertificateMapper) ToEntities(models []*model.Certificate) []*entity.Certificate {
	entities := make([]*entity.Certificate, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
