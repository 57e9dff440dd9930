package mapper

import (
	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/model"
)

type AttendeeMapper struct{}

func NewAttendeeMapper() *AttendeeMapper {
	return &AttendeeMapper{}
}

func (m *AttendeeMapper) ToEntity(a *model.Attendee) *entity.Attendee {
	if a == nil {
		return nil
	}
	return &entity.Attendee{
		Id:        a.Id,
		EventId:   a.EventId,
		FullName:  a.FullName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AttendeeMapper) ToModel(a *entity.Attendee) *model.Attendee {
	if a == nil {
		return nil
	}
	return &model.Attendee{
		Id:        a.Id,
		EventId:   a.EventId,
		FullName:  a.FullName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AttendeeMapper) ToEntities(models []*model.Attendee) []*entity.Attendee {
	entities := make([]*entity.Attendee, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
