package mapper

import (
	"time"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/model"

	"gorm.io/gorm"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(e *model.Event) *entity.Event {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.Event{
		Id:            e.Id,
		Title:         e.Title,
		Description:   e.Description,
		StartsAt:      e.StartsAt,
		EndsAt:        e.EndsAt,
		CpdCredits:    e.CpdCredits,
		OrganizerName: e.OrganizerName,
		TemplateId:    e.TemplateId,
		UserId:        e.UserId,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     e.DeletedAt.Valid,
	}
}

func (m *EventMapper) ToModel(e *entity.Event) *model.Event {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Event{
		Id:            e.Id,
		Title:         e.Title,
		Description:   e.Description,
		StartsAt:      e.StartsAt,
		EndsAt:        e.EndsAt,
		CpdCredits:    e.CpdCredits,
		OrganizerName: e.OrganizerName,
		TemplateId:    e.TemplateId,
		UserId:        e.UserId,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *EventMapper) ToEntities(models []*model.Event) []*entity.Event {
	entities := make([]*entity.Event, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
