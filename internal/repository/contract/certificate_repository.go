package contract

import (
	"context"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CertificateRepository interface {
	Create(ctx context.Context, certificate *entity.Certificate) error
	Update(ctx context.Context, certificate *entity.Certificate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Certificate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Certificate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
