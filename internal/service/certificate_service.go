package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cpd-events-be/internal/dto"
	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/pkg/logger"
	"cpd-events-be/internal/pkg/serverutils"
	"cpd-events-be/internal/repository/specification"
	"cpd-events-be/internal/repository/unitofwork"
	"cpd-events-be/pkg/events"
	pktNats "cpd-events-be/pkg/nats"

	"github.com/google/uuid"
)

type ICertificateService interface {
	IssueBatch(ctx context.Context, userId uuid.UUID, eventId uuid.UUID) (*dto.IssueBatchResponse, error)
	GetByEvent(ctx context.Context, userId uuid.UUID, eventId uuid.UUID) ([]*dto.ShowCertificateResponse, error)
	Download(ctx context.Context, userId uuid.UUID, certificateId uuid.UUID) (string, error)
}

type certificateService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewCertificateService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ICertificateService {
	return &certificateService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// IssueBatch creates a pending certificate for every attendee of the event
// that does not have one yet, then queues each for asynchronous rendering.
func (c *certificateService) IssueBatch(ctx context.Context, userId uuid.UUID, eventId uuid.UUID) (*dto.IssueBatchResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx,
		specification.ByID{ID: eventId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, serverutils.NotFound("event not found")
	}
	if event.TemplateId == nil {
		return nil, serverutils.BadRequest("event has no certificate template assigned")
	}
	if event.EndsAt.After(time.Now()) {
		return nil, serverutils.BadRequest("certificates can only be issued after the event has ended")
	}

	attendees, err := uow.AttendeeRepository().FindAll(ctx, specification.ByEventID{EventID: event.Id})
	if err != nil {
		return nil, err
	}

	existing, err := uow.CertificateRepository().FindAll(ctx, specification.ByEventID{EventID: event.Id})
	if err != nil {
		return nil, err
	}
	covered := make(map[uuid.UUID]bool, len(existing))
	for _, cert := range existing {
		// Failed certificates are re-issued; pending and issued ones are not.
		if cert.Status != entity.CertificateStatusFailed {
			covered[cert.AttendeeId] = true
		}
	}

	created := make([]*entity.Certificate, 0, len(attendees))

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for _, attendee := range attendees {
		if covered[attendee.Id] {
			continue
		}
		cert := &entity.Certificate{
			Id:         uuid.New(),
			EventId:    event.Id,
			AttendeeId: attendee.Id,
			TemplateId: *event.TemplateId,
			Serial:     newSerial(),
			Status:     entity.CertificateStatusPending,
			CreatedAt:  time.Now(),
		}
		if err := uow.CertificateRepository().Create(ctx, cert); err != nil {
			return nil, err
		}
		created = append(created, cert)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	for _, cert := range created {
		msg := dto.PublishIssueCertificateMessage{CertificateId: cert.Id}
		msgJson, err := json.Marshal(msg)
		if err != nil {
			return nil, err
		}
		if err := c.publisherService.Publish(ctx, msgJson); err != nil {
			c.logger.Error("CertificateService", "Failed to queue certificate", map[string]interface{}{"certificate_id": cert.Id.String(), "error": err.Error()})
			return nil, err
		}
	}

	if c.eventPublisher != nil && len(created) > 0 {
		evt := events.NewCertificateBatchQueued(event.Id, userId, len(created))
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.logger.Warn("CertificateService", "Failed to publish CERTIFICATE_BATCH_QUEUED", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.IssueBatchResponse{Queued: len(created)}, nil
}

func (c *certificateService) GetByEvent(ctx context.Context, userId uuid.UUID, eventId uuid.UUID) ([]*dto.ShowCertificateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx,
		specification.ByID{ID: eventId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, serverutils.NotFound("event not found")
	}

	certificates, err := uow.CertificateRepository().FindAll(ctx,
		specification.ByEventID{EventID: event.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	attendees, err := uow.AttendeeRepository().FindAll(ctx, specification.ByEventID{EventID: event.Id})
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(attendees))
	for _, a := range attendees {
		names[a.Id] = a.FullName
	}

	result := make([]*dto.ShowCertificateResponse, 0, len(certificates))
	for _, cert := range certificates {
		result = append(result, &dto.ShowCertificateResponse{
			Id:           cert.Id,
			EventId:      cert.EventId,
			AttendeeId:   cert.AttendeeId,
			AttendeeName: names[cert.AttendeeId],
			Serial:       cert.Serial,
			Status:       cert.Status,
			FailReason:   cert.FailReason,
			IssuedAt:     cert.IssuedAt,
		})
	}
	return result, nil
}

// Download resolves the stored PDF path for an issued certificate.
func (c *certificateService) Download(ctx context.Context, userId uuid.UUID, certificateId uuid.UUID) (string, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	cert, err := uow.CertificateRepository().FindOne(ctx, specification.ByID{ID: certificateId})
	if err != nil {
		return "", err
	}
	if cert == nil {
		return "", serverutils.NotFound("certificate not found")
	}

	// Ownership is checked through the parent event.
	event, err := uow.EventRepository().FindOne(ctx,
		specification.ByID{ID: cert.EventId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return "", err
	}
	if event == nil {
		return "", serverutils.NotFound("certificate not found")
	}

	if cert.Status != entity.CertificateStatusIssued || cert.FilePath == "" {
		return "", serverutils.Conflict("certificate has not been issued yet")
	}
	return cert.FilePath, nil
}

func newSerial() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("CPD-%s", strings.ToUpper(raw[:12]))
}
