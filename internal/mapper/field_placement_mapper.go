package mapper

import (
	"time"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/model"
)

type FieldPlacementMapper struct{}

func NewFieldPlacementMapper() *FieldPlacementMapper {
	return &FieldPlacementMapper{}
}

func (m *FieldPlacementMapper) ToEntity(p *model.FieldPlacement) *entity.FieldPlacement {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		ts := p.UpdatedAt
		updatedAt = &ts
	}

	return &entity.FieldPlacement{
		Id:         p.Id,
		TemplateId: p.TemplateId,
		FieldKey:   p.FieldKey,
		X:          p.X,
		Y:          p.Y,
		FontSize:   p.FontSize,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *FieldPlacementMapper) ToModel(p *entity.FieldPlacement) *model.FieldPlacement {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.FieldPlacement{
		Id:         p.Id,
		TemplateId: p.TemplateId,
		FieldKey:   p.FieldKey,
		X:          p.X,
		Y:          p.Y,
		FontSize:   p.FontSize,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *FieldPlacementMapper) ToEntities(models []*model.FieldPlacement) []*entity.FieldPlacement {
	entities := make([]*entity.FieldPlacement, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
