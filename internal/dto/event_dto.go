package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description"`
	StartsAt      time.Time  `json:"starts_at" validate:"required"`
	EndsAt        time.Time  `json:"ends_at" validate:"required"`
	CpdCredits    float64    `json:"cpd_credits" validate:"gte=0"`
	OrganizerName string     `json:"organizer_name" validate:"required"`
	TemplateId    *uuid.UUID `json:"template_id"`
}

type CreateEventResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowEventResponse struct {
	Id            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	StartsAt      time.Time  `json:"starts_at"`
	EndsAt        time.Time  `json:"ends_at"`
	CpdCredits    float64    `json:"cpd_credits"`
	OrganizerName string     `json:"organizer_name"`
	TemplateId    *uuid.UUID `json:"template_id"`
	AttendeeCount int64      `json:"attendee_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type UpdateEventRequest struct {
	Id            uuid.UUID
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description"`
	StartsAt      time.Time  `json:"starts_at" validate:"required"`
	EndsAt        time.Time  `json:"ends_at" validate:"required"`
	CpdCredits    float64    `json:"cpd_credits" validate:"gte=0"`
	OrganizerName string     `json:"organizer_name" validate:"required"`
	TemplateId    *uuid.UUID `json:"template_id"`
}

type UpdateEventResponse struct {
	Id uuid.UUID `json:"id"`
}

type AttendeeInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type AddAttendeesRequest struct {
	Attendees []AttendeeInput `json:"attendees" validate:"required,min=1,dive"`
}

type AddAttendeesResponse struct {
	Added int `json:"added"`
}

type ShowAttendeeResponse struct {
	Id       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}
