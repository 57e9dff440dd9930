package service

import (
	"context"
	"time"

	"cpd-events-be/internal/dto"
	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/pkg/serverutils"
	"cpd-events-be/internal/repository/specification"
	"cpd-events-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IEventService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ShowEventResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowEventResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEventRequest) (*dto.UpdateEventResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	AddAttendees(ctx context.Context, userId uuid.UUID, eventId uuid.UUID, req *dto.AddAttendeesRequest) (*dto.AddAttendeesResponse, error)
	GetAttendees(ctx context.Context, userId uuid.UUID, eventId uuid.UUID) ([]*dto.ShowAttendeeResponse, error)
}

type eventService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEventService(uowFactory unitofwork.RepositoryFactory) IEventService {
	return &eventService{
		uowFactory: uowFactory,
	}
}

// findOwnedEvent is the ownership gate shared by every operation below.
func (c *eventService) findOwnedEvent(ctx context.Context, uow unitofwork.UnitOfWork, userId, eventId uuid.UUID) (*entity.Event, error) {
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
	return event, nil
}

func (c *eventService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ShowEventResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	events, err := uow.EventRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "starts_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowEventResponse, 0, len(events))
	for _, e := range events {
		count, err := uow.AttendeeRepository().Count(ctx, specification.ByEventID{EventID: e.Id})
		if err != nil {
			return nil, err
		}
		result = append(result, c.toShowResponse(e, count))
	}
	return result, nil
}

func (c *eventService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, serverutils.BadRequest("event must end after it starts")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	if req.TemplateId != nil {
		template, err := uow.TemplateRepository().FindOne(ctx,
			specification.ByID{ID: *req.TemplateId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, serverutils.BadRequest("certificate template not found")
		}
	}

	event := entity.Event{
		Id:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
		CpdCredits:    req.CpdCredits,
		OrganizerName: req.OrganizerName,
		TemplateId:    req.TemplateId,
		UserId:        userId,
		CreatedAt:     time.Now(),
	}

	if err := uow.EventRepository().Create(ctx, &event); err != nil {
		return nil, err
	}

	return &dto.CreateEventResponse{Id: event.Id}, nil
}

func (c *eventService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowEventResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	event, err := c.findOwnedEvent(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	count, err := uow.AttendeeRepository().Count(ctx, specification.ByEventID{EventID: event.Id})
	if err != nil {
		return nil, err
	}

	return c.toShowResponse(event, count), nil
}

func (c *eventService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEventRequest) (*dto.UpdateEventResponse, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, serverutils.BadRequest("event must end after it starts")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	event, err := c.findOwnedEvent(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.TemplateId != nil {
		template, err := uow.TemplateRepository().FindOne(ctx,
			specification.ByID{ID: *req.TemplateId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, serverutils.BadRequest("certificate template not found")
		}
	}

	now := time.Now()
	event.Title = req.Title
	event.Description = req.Description
	event.StartsAt = req.StartsAt
	event.EndsAt = req.EndsAt
	event.CpdCredits = req.CpdCredits
	event.OrganizerName = req.OrganizerName
	event.TemplateId = req.TemplateId
	event.UpdatedAt = &now

	if err := uow.EventRepository().Update(ctx, event); err != nil {
		return nil, err
	}

	return &dto.UpdateEventResponse{Id: event.Id}, nil
}

func (c *eventService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.findOwnedEvent(ctx, uow, userId, id); err != nil {
		return err
	}

	return uow.EventRepository().Delete(ctx, id)
}

func (c *eventService) AddAttendees(ctx context.Context, userId uuid.UUID, eventId uuid.UUID, req *dto.AddAttendeesRequest) (*dto.AddAttendeesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	event, err := c.findOwnedEvent(ctx, uow, userId, eventId)
	if err != nil {
		return nil, err
	}

	// Skip emails already registered for this event.
	existing, err := uow.AttendeeRepository().FindAll(ctx, specification.ByEventID{EventID: event.Id})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a.Email] = true
	}

	attendees := make([]*entity.Attendee, 0, len(req.Attendees))
	for _, in := range req.Attendees {
		if seen[in.Email] {
			continue
		}
		seen[in.Email] = true
		attendees = append(attendees, &entity.Attendee{
			Id:        uuid.New(),
			EventId:   event.Id,
			FullName:  in.FullName,
			Email:     in.Email,
			CreatedAt: time.Now(),
		})
	}

	if err := uow.AttendeeRepository().CreateBatch(ctx, attendees); err != nil {
		return nil, err
	}

	return &dto.AddAttendeesResponse{Added: len(attendees)}, nil
}

func (c *eventService) GetAttendees(ctx context.Context, userId uuid.UUID, eventId uuid.UUID) ([]*dto.ShowAttendeeResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	event, err := c.findOwnedEvent(ctx, uow, userId, eventId)
	if err != nil {
		return nil, err
	}

	attendees, err := uow.AttendeeRepository().FindAll(ctx,
		specification.ByEventID{EventID: event.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowAttendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		result = append(result, &dto.ShowAttendeeResponse{
			Id:       a.Id,
			FullName: a.FullName,
			Email:    a.Email,
		})
	}
	return result, nil
}

func (c *eventService) toShowResponse(e *entity.Event, attendeeCount int64) *dto.ShowEventResponse {
	return &dto.ShowEventResponse{
		Id:            e.Id,
		Title:         e.Title,
		Description:   e.Description,
		StartsAt:      e.StartsAt,
		EndsAt:        e.EndsAt,
		CpdCredits:    e.CpdCredits,
		OrganizerName: e.OrganizerName,
		TemplateId:    e.TemplateId,
		AttendeeCount: attendeeCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
