package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes published on the NATS bus.
const (
	TypeCertificateIssued      = "CERTIFICATE_ISSUED"
	TypeCertificateFailed      = "CERTIFICATE_FAILED"
	TypeLayoutSaved            = "LAYOUT_SAVED"
	TypeCertificateBatchQueued = "CERTIFICATE_BATCH_QUEUED"
)

func NewCertificateIssued(certificateID, eventID, organizerID uuid.UUID, attendeeName string) Event {
	return BaseEvent{
		Type: TypeCertificateIssued,
		Data: map[string]interface{}{
			"certificate_id": certificateID.String(),
			"event_id":       eventID.String(),
			"organizer_id":   organizerID.String(),
			"attendee_name":  attendeeName,
		},
		OccurredAt: time.Now(),
	}
}

func NewCertificateFailed(certificateID, eventID, organizerID uuid.UUID, reason string) Event {
	return BaseEvent{
		Type: TypeCertificateFailed,
		Data: map[string]interface{}{
			"certificate_id": certificateID.String(),
			"event_id":       eventID.String(),
			"organizer_id":   organizerID.String(),
			"reason":         reason,
		},
		OccurredAt: time.Now(),
	}
}

func NewLayoutSaved(templateID, organizerID uuid.UUID) Event {
	return BaseEvent{
		Type: TypeLayoutSaved,
		Data: map[string]interface{}{
			"template_id":  templateID.String(),
			"organizer_id": organizerID.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewCertificateBatchQueued(eventID, organizerID uuid.UUID, count int) Event {
	return BaseEvent{
		Type: TypeCertificateBatchQueued,
		Data: map[string]interface{}{
			"event_id":     eventID.String(),
			"organizer_id": organizerID.String(),
			"count":        count,
		},
		OccurredAt: time.Now(),
	}
}
