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

type AttendeeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AttendeeMapper
}

func NewAttendeeRepository(db *gorm.DB) contract.AttendeeRepository {
	return &AttendeeRepositoryImpl{
		db:     db,
		mapper: mapper.NewAttendeeMapper(),
	}
}

func (r *AttendeeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AttendeeRepositoryImpl) Create(ctx context.Context, attendee *entity.Attendee) error {
	m := r.mapper.ToModel(attendee)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*attendee = *r.mapper.ToEntity(m)
	return nil
}

func (r *AttendeeRepositoryImpl) CreateBatch(ctx context.Context, attendees []*entity.Attendee) error {
	if len(attendees) == 0 {
		return nil
	}
	models := make([]*model.Attendee, 0, len(attendees))
	for _, a := range attendees {
		models = append(models, r.mapper.ToModel(a))
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*attendees[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *AttendeeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Attendee{}, id).Error
}

func (r *AttendeeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Attendee, error) {
	var m model.Attendee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AttendeeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Attendee, error) {
	var models []*model.Attendee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AttendeeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Attendee{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
