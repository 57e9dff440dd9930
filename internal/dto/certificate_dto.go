package dto

import (
	"time"

	"github.com/google/uuid"
)

type IssueBatchResponse struct {
	Queued int `json:"queued"`
}

type ShowCertificateResponse struct {
	Id           uuid.UUID  `json:"id"`
	EventId      uuid.UUID  `json:"event_id"`
	AttendeeId   uuid.UUID  `json:"attendee_id"`
	AttendeeName string     `json:"attendee_name,omitempty"`
	Serial       string     `json:"serial"`
	Status       string     `json:"status"`
	FailReason   string     `json:"fail_reason,omitempty"`
	IssuedAt     *time.Time `json:"issued_at"`
}

// PublishIssueCertificateMessage is the payload queued per certificate
// on the issue topic. The worker loads everything else from the DB.
type PublishIssueCertificateMessage struct {
	CertificateId uuid.UUID `json:"certificate_id"`
}
