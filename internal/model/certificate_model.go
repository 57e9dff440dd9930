package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Certificate struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	AttendeeId uuid.UUID      `gorm:"type:uuid;not null;index"`
	TemplateId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Serial     string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	FilePath   string         `gorm:"type:varchar(512)"`
	Status     string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	FailReason string         `gorm:"type:text"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	IssuedAt   *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Certificate) TableName() string {
	return "certificates"
}
