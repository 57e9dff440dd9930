package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"cpd-events-be/internal/dto"
	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/pkg/mailer"
	"cpd-events-be/internal/repository/specification"
	"cpd-events-be/internal/repository/unitofwork"
	"cpd-events-be/pkg/events"
	"cpd-events-be/pkg/layout"
	pktNats "cpd-events-be/pkg/nats"
	"cpd-events-be/pkg/render"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IIssuerService is the background worker of the issuance pipeline. It
// consumes queued certificate ids, renders the PDF, persists the result
// and emails the attendee.
type IIssuerService interface {
	Consume(ctx context.Context) error
}

type issuerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	certificateDir string
}

func NewIssuerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	certificateDir string,
) IIssuerService {
	return &issuerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		certificateDir: certificateDir,
	}
}

func (cs *issuerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *issuerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIssueCertificateMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal issue message: %v", err)
		msg.Ack() // Malformed messages would retry forever otherwise
		return
	}

	log.Printf("[INFO] Issuing certificate %s", payload.CertificateId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	cert, err := uow.CertificateRepository().FindOne(ctx, specification.ByID{ID: payload.CertificateId})
	if err != nil {
		log.Printf("[ERROR] Failed to load certificate %s: %v", payload.CertificateId, err)
		msg.Nack()
		return
	}
	if cert == nil {
		log.Printf("[ERROR] Certificate not found: %s", payload.CertificateId)
		msg.Ack()
		return
	}
	if cert.Status == entity.CertificateStatusIssued {
		// Redelivery after a crash between commit and ack.
		msg.Ack()
		return
	}

	attendee, err := uow.AttendeeRepository().FindOne(ctx, specification.ByID{ID: cert.AttendeeId})
	if err != nil {
		log.Printf("[ERROR] Failed to load attendee %s: %v", cert.AttendeeId, err)
		msg.Nack()
		return
	}
	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: cert.EventId})
	if err != nil {
		log.Printf("[ERROR] Failed to load event %s: %v", cert.EventId, err)
		msg.Nack()
		return
	}
	template, err := uow.TemplateRepository().FindOne(ctx, specification.ByID{ID: cert.TemplateId})
	if err != nil {
		log.Printf("[ERROR] Failed to load template %s: %v", cert.TemplateId, err)
		msg.Nack()
		return
	}
	if attendee == nil || event == nil || template == nil {
		cs.markFailed(ctx, cert, event, "certificate references deleted data")
		msg.Ack()
		return
	}

	placements, err := uow.FieldPlacementRepository().FindAll(ctx,
		specification.ByTemplateID{TemplateID: template.Id},
	)
	if err != nil {
		log.Printf("[ERROR] Failed to load placements for template %s: %v", template.Id, err)
		msg.Nack()
		return
	}

	positions := make(map[layout.FieldID]layout.Position, len(placements))
	for _, p := range placements {
		positions[layout.FieldID(p.FieldKey)] = layout.Position{X: p.X, Y: p.Y, FontSize: p.FontSize}
	}

	values := map[layout.FieldID]string{
		layout.FieldAttendeeName:  attendee.FullName,
		layout.FieldEventTitle:    event.Title,
		layout.FieldEventDate:     event.StartsAt.Format("2 January 2006"),
		layout.FieldCpdCredits:    fmt.Sprintf("%.1f CPD Credits", event.CpdCredits),
		layout.FieldOrganizerName: event.OrganizerName,
		layout.FieldIssuedDate:    time.Now().Format("2 January 2006"),
	}

	pdfBytes, err := render.CertificatePDF(render.Certificate{
		PageWidth:  template.PageWidth,
		PageHeight: template.PageHeight,
		Placements: positions,
		Values:     values,
	})
	if err != nil {
		log.Printf("[ERROR] Rendering failed for certificate %s: %v", cert.Id, err)
		cs.markFailed(ctx, cert, event, fmt.Sprintf("rendering failed: %v", err))
		msg.Ack() // Rendering is deterministic, retrying won't help
		return
	}

	if err := os.MkdirAll(cs.certificateDir, 0o755); err != nil {
		log.Printf("[ERROR] Failed to create certificate dir: %v", err)
		msg.Nack()
		return
	}
	filePath := filepath.Join(cs.certificateDir, cert.Id.String()+".pdf")
	if err := os.WriteFile(filePath, pdfBytes, 0o644); err != nil {
		log.Printf("[ERROR] Failed to write certificate file: %v", err)
		msg.Nack()
		return
	}

	now := time.Now()
	metaJson, _ := json.Marshal(map[string]string{
		"attendee_name": attendee.FullName,
		"event_title":   event.Title,
	})

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	cert.Status = entity.CertificateStatusIssued
	cert.FilePath = filePath
	cert.FailReason = ""
	cert.Metadata = metaJson
	cert.IssuedAt = &now
	cert.UpdatedAt = &now

	if err := uow.CertificateRepository().Update(ctx, cert); err != nil {
		log.Printf("[ERROR] Failed to update certificate %s: %v", cert.Id, err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit certificate %s: %v", cert.Id, err)
		msg.Nack()
		return
	}

	// Delivery failures do not roll back issuance; the organizer can
	// re-send from the issued certificate later.
	if err := cs.emailService.SendCertificate(attendee.Email, attendee.FullName, event.Title, pdfBytes); err != nil {
		log.Printf("[WARN] Failed to email certificate %s to %s: %v", cert.Id, attendee.Email, err)
	}

	if cs.eventPublisher != nil {
		evt := events.NewCertificateIssued(cert.Id, event.Id, event.UserId, attendee.FullName)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish CERTIFICATE_ISSUED for %s: %v", cert.Id, err)
		}
	}

	log.Printf("[SUCCESS] Certificate issued: %s (%s)", cert.Id, cert.Serial)
	msg.Ack()
}

func (cs *issuerService) markFailed(ctx context.Context, cert *entity.Certificate, event *entity.Event, reason string) {
	now := time.Now()
	cert.Status = entity.CertificateStatusFailed
	cert.FailReason = reason
	cert.UpdatedAt = &now

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CertificateRepository().Update(ctx, cert); err != nil {
		log.Printf("[ERROR] Failed to mark certificate %s failed: %v", cert.Id, err)
		return
	}

	if cs.eventPublisher != nil && event != nil {
		evt := events.NewCertificateFailed(cert.Id, event.Id, event.UserId, reason)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish CERTIFICATE_FAILED for %s: %v", cert.Id, err)
		}
	}
}
