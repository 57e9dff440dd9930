package mapper

import (
	"time"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		ts := u.UpdatedAt
		updatedAt = &ts
	}

	return &entity.User{
		Id:        u.Id,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var updatedAt time.Time
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	return &model.User{
		Id:        u.Id,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
