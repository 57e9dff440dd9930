package unitofwork

import (
	"context"

	"cpd-events-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	EventRepository() contract.EventRepository
	AttendeeRepository() contract.AttendeeRepository
	TemplateRepository() contract.TemplateRepository
	FieldPlacementRepository() contract.FieldPlacementRepository
	CertificateRepository() contract.CertificateRepository
}
