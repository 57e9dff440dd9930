package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name       string  `json:"name" validate:"required"`
	PageWidth  float64 `json:"page_width" validate:"required,gt=0"`
	PageHeight float64 `json:"page_height" validate:"required,gt=0"`
}

type CreateTemplateResponse struct {
	Id uuid.UUID `json:"id"`
}

// PlacementView is a saved field position in document points.
type PlacementView struct {
	FieldKey string  `json:"field_key"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
}

type ShowTemplateResponse struct {
	Id         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	PageWidth  float64         `json:"page_width"`
	PageHeight float64         `json:"page_height"`
	Placements []PlacementView `json:"placements"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at"`
}

type UpdateTemplateRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required"`
}

type UpdateTemplateResponse struct {
	Id uuid.UUID `json:"id"`
}
