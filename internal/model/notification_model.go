package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationType maps an event code on the bus to how the resulting
// notification is rendered and who receives it.
type NotificationType struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string    `gorm:"type:varchar(50);unique;not null" json:"code"`
	DisplayName string    `gorm:"type:varchar(100);not null" json:"display_name"`
	Template    string    `gorm:"type:text;not null" json:"template"`
	TargetType  string    `gorm:"type:varchar(20);not null" json:"target_type"` // "SELF", "ADMIN", "ROLE", "BROADCAST"
	TargetRole  string    `gorm:"type:varchar(50)" json:"target_role,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Notification is the per-user notification history.
type Notification struct {
	ID         uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1;index:idx_notifications_user_unread,priority:1" json:"user_id"`
	TypeCode   string           `gorm:"type:varchar(50);not null;index:idx_notifications_type" json:"type_code"`
	Type       NotificationType `gorm:"foreignKey:TypeCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	EntityType string           `gorm:"type:varchar(50);index:idx_notifications_entity,priority:1" json:"entity_type,omitempty"`
	EntityID   *uuid.UUID       `gorm:"type:uuid;index:idx_notifications_entity,priority:2" json:"entity_id,omitempty"`
	Title      string           `gorm:"type:varchar(200);not null" json:"title"`
	Message    string           `gorm:"type:text;not null" json:"message"`
	Metadata   datatypes.JSON   `gorm:"type:jsonb" json:"metadata,omitempty"`
	IsRead     bool             `gorm:"default:false;index:idx_notifications_user_unread,priority:2" json:"is_read"`
	ReadAt     *time.Time       `json:"read_at,omitempty"`
	CreatedAt  time.Time        `gorm:"default:CURRENT_TIMESTAMP;index:idx_notifications_user_created,priority:2" json:"created_at"`
}
