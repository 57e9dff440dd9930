package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Description   string         `gorm:"type:text"`
	StartsAt      time.Time      `gorm:"not null"`
	EndsAt        time.Time      `gorm:"not null"`
	CpdCredits    float64        `gorm:"type:numeric(6,2);not null;default:0"`
	OrganizerName string         `gorm:"type:varchar(255);not null"`
	TemplateId    *uuid.UUID     `gorm:"type:uuid;index"`
	UserId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Event) TableName() string {
	return "events"
}
