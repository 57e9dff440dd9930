package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	CertificateStatusPending = "pending"
	CertificateStatusIssued  = "issued"
	CertificateStatusFailed  = "failed"
)

// Certificate is one issued (or in-flight) certificate document.
type Certificate struct {
	Id         uuid.UUID
	EventId    uuid.UUID
	AttendeeId uuid.UUID
	TemplateId uuid.UUID
	Serial     string
	FilePath   string
	Status     string
	FailReason string
	Metadata   json.RawMessage
	IssuedAt   *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
