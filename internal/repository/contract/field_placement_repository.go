package contract

import (
	"context"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FieldPlacementRepository interface {
	Create(ctx context.Context, placement *entity.FieldPlacement) error
	CreateBatch(ctx context.Context, placements []*entity.FieldPlacement) error
	DeleteAllByTemplateId(ctx context.Context, templateId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FieldPlacement, error)
}
