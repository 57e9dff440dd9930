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

type TemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TemplateMapper
}

func NewTemplateRepository(db *gorm.DB) contract.TemplateRepository {
	return &TemplateRepositoryImpl{
		db:     db,
		mapper: mapper.NewTemplateMapper(),
	}
}

func (r *TemplateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TemplateRepositoryImpl) Create(ctx context.Context, template *entity.CertificateTemplate) error {
	m := r.mapper.ToModel(template)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.ToEntity(m)
	return nil
}

func (r *TemplateRepositoryImpl) Update(ctx context.Context, template *entity.CertificateTemplate) error {
	m := r.mapper.ToModel(template)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.ToEntity(m)
	return nil
}

func (r *TemplateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CertificateTemplate{}, id).Error
}

func (r *TemplateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CertificateTemplate, error) {
	var m model.CertificateTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TemplateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CertificateTemplate, error) {
	var models []*model.CertificateTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TemplateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CertificateTemplate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
