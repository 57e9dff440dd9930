package implementation

import (
	"context"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/mapper"
	"cpd-events-be/internal/model"
	"cpd-events-be/internal/repository/contract"
	"cpd-events-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FieldPlacementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FieldPlacementMapper
}

func NewFieldPlacementRepository(db *gorm.DB) contract.FieldPlacementRepository {
	return &FieldPlacementRepositoryImpl{
		db:     db,
		mapper: mapper.NewFieldPlacementMapper(),
	}
}

func (r *FieldPlacementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FieldPlacementRepositoryImpl) Create(ctx context.Context, placement *entity.FieldPlacement) error {
	m := r.mapper.ToModel(placement)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*placement = *r.mapper.ToEntity(m)
	return nil
}

func (r *FieldPlacementRepositoryImpl) CreateBatch(ctx context.Context, placements []*entity.FieldPlacement) error {
	if len(placements) == 0 {
		return nil
	}
	models := make([]*model.FieldPlacement, 0, len(placements))
	for _, p := range placements {
		models = append(models, r.mapper.ToModel(p))
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*placements[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *FieldPlacementRepositoryImpl) DeleteAllByTemplateId(ctx context.Context, templateId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("template_id = ?", templateId).Delete(&model.FieldPlacement{}).Error
}

func (r *FieldPlacementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FieldPlacement, error) {
	var models []*model.FieldPlacement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
