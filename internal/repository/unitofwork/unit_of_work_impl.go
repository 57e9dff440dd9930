package unitofwork

import (
	"context"
	"fmt"

	"cpd-events-be/internal/repository/contract"
	"cpd-events-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EventRepository() contract.EventRepository {
	return implementation.NewEventRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AttendeeRepository() contract.AttendeeRepository {
	return implementation.NewAttendeeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TemplateRepository() contract.TemplateRepository {
	return implementation.NewTemplateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FieldPlacementRepository() contract.FieldPlacementRepository {
	return implementation.NewFieldPlacementRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CertificateRepository() contract.CertificateRepository {
	return implementation.NewCertificateRepository(u.getDB())
}
