package dto

import "github.com/google/uuid"

type OpenEditorRequest struct {
	TemplateId    uuid.UUID `json:"template_id" validate:"required"`
	ViewportWidth float64   `json:"viewport_width" validate:"required,gt=0"`
}

// FieldView is a field as the browser canvas draws it: coordinates in
// screen pixels at the session's current scale.
type FieldView struct {
	Id       string  `json:"id"`
	Label    string  `json:"label"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
}

type OpenEditorResponse struct {
	SessionId  string      `json:"session_id"`
	Scale      float64     `json:"scale"`
	PageWidth  float64     `json:"page_width"`
	PageHeight float64     `json:"page_height"`
	Fields     []FieldView `json:"fields"`
}

type LayoutResponse struct {
	Scale      float64     `json:"scale"`
	PageWidth  float64     `json:"page_width"`
	PageHeight float64     `json:"page_height"`
	Fields     []FieldView `json:"fields"`
}

type ReportDimensionsRequest struct {
	ViewportWidth float64 `json:"viewport_width" validate:"required,gt=0"`
}

type BeginDragRequest struct {
	FieldId string `json:"field_id" validate:"required"`
}

type MoveDragRequest struct {
	PointerX        float64 `json:"pointer_x"`
	PointerY        float64 `json:"pointer_y"`
	ContainerX      float64 `json:"container_x"`
	ContainerY      float64 `json:"container_y"`
	ContainerWidth  float64 `json:"container_width" validate:"gt=0"`
	ContainerHeight float64 `json:"container_height" validate:"gt=0"`
}

type SetFieldRequest struct {
	FieldId  string  `json:"field_id" validate:"required"`
	Property string  `json:"property" validate:"required,oneof=x y font_size"`
	Value    float64 `json:"value"`
}

type SetScaleRequest struct {
	Scale float64 `json:"scale" validate:"required,gt=0"`
}

type SaveLayoutResponse struct {
	TemplateId uuid.UUID `json:"template_id"`
	Saved      int       `json:"saved"`
}

type PreviewResponse struct {
	PreviewId string `json:"preview_id"`
}
