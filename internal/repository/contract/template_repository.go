package contract

import (
	"context"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *entity.CertificateTemplate) error
	Update(ctx context.Context, template *entity.CertificateTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CertificateTemplate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CertificateTemplate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
