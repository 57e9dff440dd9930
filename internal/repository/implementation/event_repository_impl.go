package implementation

import (
	"context"
	"errors"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/mapper"
	"cpd-events-be/internal/model"
	"cpd-events-be/internal/repository/contract"
	"cpd-events-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EventMapper
}

func NewEventRepository(db *gorm.DB) contract.EventRepository {
	return &EventRepositoryImpl{
		db:     db,
		mapper: mapper.NewEventMapper(),
	}
}

func (r *EventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *entity.Event) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, event *entity.Event) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Event{}, id).Error
}

func (r *EventRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error) {
	var m model.Event
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error) {
	var models []*model.Event
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Event{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
