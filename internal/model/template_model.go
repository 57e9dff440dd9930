package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CertificateTemplate struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string         `gorm:"type:varchar(255);not null"`
	PageWidth  float64        `gorm:"type:numeric(8,3);not null"`
	PageHeight float64        `gorm:"type:numeric(8,3);not null"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (CertificateTemplate) TableName() string {
	return "certificate_templates"
}
