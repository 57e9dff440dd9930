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

type CertificateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CertificateMapper
}

func NewCertificateRepository(db *gorm.DB) contract.CertificateRepository {
	return &CertificateRepositoryImpl{
		db:     db,
		mapper: mapper.NewCertificateMapper(),
	}
}

func (r *CertificateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CertificateRepositoryImpl) Create(ctx context.Context, certificate *entity.Certificate) error {
	m := r.mapper.ToModel(certificate)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*certificate = *r.mapper.ToEntity(m)
	return nil
}

func (r *CertificateRepositoryImpl) Update(ctx context.Context, certificate *entity.Certificate) error {
	m := r.mapper.ToModel(certificate)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*certificate = *r.mapper.ToEntity(m)
	return nil
}

func (r *CertificateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Certificate{}, id).Error
}

func (r *CertificateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Certificate, error) {
	var m model.Certificate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CertificateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Certificate, error) {
	var models []*model.Certificate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CertificateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Certificate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
