package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an organizer account. Authentication is handled by the
// platform's identity service; this backend only reads the record for
// ownership checks and notification targeting.
type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	Role      string
	Status    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
