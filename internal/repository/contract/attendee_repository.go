package contract

import (
	"context"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AttendeeRepository interface {
	Create(ctx context.Context, attendee *entity.Attendee) error
	CreateBatch(ctx context.Context, attendees []*entity.Attendee) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Attendee, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Attendee, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
