package layout

import (
	"fmt"
	"math"
)

const (
	// MinFieldWidth and MinFieldHeight are the margins reserved inside the
	// container so a dragged label can never be pushed fully out of view.
	MinFieldWidth  = 50.0
	MinFieldHeight = 20.0

	// DefaultFontSize is the fallback when a font size edit is unusable.
	DefaultFontSize = 12.0
)

// Property names a directly editable field attribute.
type Property string

const (
	PropertyX        Property = "x"
	PropertyY        Property = "y"
	PropertyFontSize Property = "font_size"
)

// Bounds describes the on-screen rectangle of the editing container.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Editor owns the mutable state of one layout editing session: the field
// set in screen pixels, the session scale and the active drag target.
//
// The document-point representation is authoritative; pixels exist only
// inside the editor and are recomputed from points whenever the scale
// changes. Editor is not safe for concurrent use; callers serialize access
// (one editing session maps to one operator).
type Editor struct {
	specs  []FieldSpec
	fields map[FieldID]*Field

	scale      float64
	pageWidth  float64 // points
	pageHeight float64 // points

	dragging FieldID // empty = idle
}

// NewEditor creates an editor for the given field set. An empty spec list
// falls back to DefaultFields.
func NewEditor(specs []FieldSpec) *Editor {
	if len(specs) == 0 {
		specs = DefaultFields()
	}
	return &Editor{
		specs:  specs,
		fields: make(map[FieldID]*Field, len(specs)),
	}
}

// Initialize (re)builds the pixel layout from saved document-point
// placements merged over the defaults. It is idempotent given identical
// arguments and is the only way scale changes are reconciled; any
// in-progress drag is discarded.
//
// saved may be nil or partial; unknown ids in it are ignored.
func (e *Editor) Initialize(saved map[FieldID]Position, pageWidth, pageHeight, scale float64) {
	e.scale = ClampScale(scale)
	e.pageWidth = pageWidth
	e.pageHeight = pageHeight
	e.dragging = ""

	for _, spec := range e.specs {
		pos := spec.Default
		if saved != nil {
			if p, ok := saved[spec.ID]; ok {
				pos = p
			}
		}
		pos = e.clampToPage(sanitizePosition(pos))

		e.fields[spec.ID] = &Field{
			ID:       spec.ID,
			Label:    spec.Label,
			X:        pos.X * e.scale,
			Y:        pos.Y * e.scale,
			FontSize: pos.FontSize,
		}
	}
}

// Initialized reports whether Initialize has run at least once.
func (e *Editor) Initialized() bool {
	return len(e.fields) > 0
}

// Scale returns the current pixels-per-point ratio.
func (e *Editor) Scale() float64 {
	return e.scale
}

// PageSize returns the document's native page size in points.
func (e *Editor) PageSize() (width, height float64) {
	return e.pageWidth, e.pageHeight
}

// SetScale re-derives the pixel layout at a new zoom level. The scale is
// clamped to [MinScale, MaxScale] and the current document positions are
// carried over, so the visible layout is preserved up to rounding.
func (e *Editor) SetScale(scale float64) {
	if !e.Initialized() {
		return
	}
	e.Initialize(e.DocumentPositions(), e.pageWidth, e.pageHeight, ClampScale(scale))
}

// Fields returns the current pixel layout in declaration order.
func (e *Editor) Fields() []Field {
	out := make([]Field, 0, len(e.specs))
	for _, spec := range e.specs {
		if f, ok := e.fields[spec.ID]; ok {
			out = append(out, *f)
		}
	}
	return out
}

// BeginDrag marks a field as the active drag target. At most one field may
// be dragging at a time; starting a new drag replaces the previous target.
func (e *Editor) BeginDrag(id FieldID) error {
	if _, ok := e.fields[id]; !ok {
		return fmt.Errorf("unknown field %q", id)
	}
	e.dragging = id
	return nil
}

// Dragging returns the active drag target, if any.
func (e *Editor) Dragging() (FieldID, bool) {
	if e.dragging == "" {
		return "", false
	}
	return e.dragging, true
}

// UpdateDrag moves the active field to the pointer position relative to
// the container's top-left corner. The anchor is clamped so it stays
// within [0, width-MinFieldWidth] x [0, height-MinFieldHeight] for any
// pointer position, including ones far outside the container. Fields other
// than the drag target are never touched. A no-op while idle.
func (e *Editor) UpdateDrag(pointerX, pointerY float64, container Bounds) {
	if e.dragging == "" {
		return
	}
	f := e.fields[e.dragging]

	x := pointerX - container.X
	y := pointerY - container.Y

	if max := container.Width - MinFieldWidth; x > max {
		x = max
	}
	if max := container.Height - MinFieldHeight; y > max {
		y = max
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	f.X = x
	f.Y = y
}

// EndDrag clears the active drag target. The field keeps its last dragged
// position; pointer-leave is treated exactly like pointer-up.
func (e *Editor) EndDrag() {
	e.dragging = ""
}

// SetFieldProperty applies a direct numeric edit. X and Y are given in
// document points and converted to pixels at the current scale; the font
// size stays in points. Unusable values are coerced to a safe default
// instead of rejected: 0 for positions, DefaultFontSize for font sizes.
func (e *Editor) SetFieldProperty(id FieldID, prop Property, value float64) error {
	f, ok := e.fields[id]
	if !ok {
		return fmt.Errorf("unknown field %q", id)
	}

	switch prop {
	case PropertyX:
		f.X = sanitizeCoordinate(value, e.pageWidth) * e.scale
	case PropertyY:
		f.Y = sanitizeCoordinate(value, e.pageHeight) * e.scale
	case PropertyFontSize:
		f.FontSize = sanitizeFontSize(value)
	default:
		return fmt.Errorf("unknown property %q", prop)
	}
	return nil
}

// DocumentPositions converts the current pixel layout back to document
// points. This is the exact shape sent to preview generation and save.
// Composed with Initialize at the same scale it is the identity transform,
// modulo floating-point rounding, for any field untouched since.
func (e *Editor) DocumentPositions() map[FieldID]Position {
	out := make(map[FieldID]Position, len(e.fields))
	for _, spec := range e.specs {
		f, ok := e.fields[spec.ID]
		if !ok {
			continue
		}
		pos := Position{
			X:        f.X / e.scale,
			Y:        f.Y / e.scale,
			FontSize: f.FontSize,
		}
		out[spec.ID] = e.clampToPage(pos)
	}
	return out
}

// clampToPage bounds a document-point position to the page rectangle.
func (e *Editor) clampToPage(pos Position) Position {
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	if e.pageWidth > 0 && pos.X > e.pageWidth {
		pos.X = e.pageWidth
	}
	if e.pageHeight > 0 && pos.Y > e.pageHeight {
		pos.Y = e.pageHeight
	}
	return pos
}

func sanitizePosition(pos Position) Position {
	pos.X = coerceNumber(pos.X, 0)
	pos.Y = coerceNumber(pos.Y, 0)
	pos.FontSize = sanitizeFontSize(pos.FontSize)
	return pos
}

func sanitizeCoordinate(v, limit float64) float64 {
	v = coerceNumber(v, 0)
	if v < 0 {
		v = 0
	}
	if limit > 0 && v > limit {
		v = limit
	}
	return v
}

func sanitizeFontSize(v float64) float64 {
	v = coerceNumber(v, DefaultFontSize)
	if v <= 0 {
		v = DefaultFontSize
	}
	return v
}

func coerceNumber(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
