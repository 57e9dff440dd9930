package mapper

import (
	"time"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/model"

	"gorm.io/gorm"
)

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToEntity(t *model.CertificateTemplate) *entity.CertificateTemplate {
	if t == nil {
		return nil
	}

	var deletedAt *time.Time
	if t.DeletedAt.Valid {
		ts := t.DeletedAt.Time
		deletedAt = &ts
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		ts := t.UpdatedAt
		updatedAt = &ts
	}

	return &entity.CertificateTemplate{
		Id:         t.Id,
		Name:       t.Name,
		PageWidth:  t.PageWidth,
		PageHeight: t.PageHeight,
		UserId:     t.UserId,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  t.DeletedAt.Valid,
	}
}

func (m *TemplateMapper) ToModel(t *entity.CertificateTemplate) *model.CertificateTemplate {
	if t == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	} else if t.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.CertificateTemplate{
		Id:         t.Id,
		Name:       t.Name,
		PageWidth:  t.PageWidth,
		PageHeight: t.PageHeight,
		UserId:     t.UserId,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *TemplateMapper) ToEntities(models []*model.CertificateTemplate) []*entity.CertificateTemplate {
	entities := make([]*entity.CertificateTemplate, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
