package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pageW = 842.0 // A4 landscape, points
	pageH = 595.0
)

func newTestEditor(saved map[FieldID]Position, scale float64) *Editor {
	e := NewEditor(nil)
	e.Initialize(saved, pageW, pageH, scale)
	return e
}

func TestInitializeDefaults(t *testing.T) {
	e := newTestEditor(nil, 1.0)

	fields := e.Fields()
	require.Len(t, fields, len(DefaultFields()))

	// Declaration order is preserved and defaults applied at scale 1.
	assert.Equal(t, FieldAttendeeName, fields[0].ID)
	assert.Equal(t, 100.0, fields[0].X)
	assert.Equal(t, 100.0, fields[0].Y)
	assert.Equal(t, 24.0, fields[0].FontSize)
}

func TestInitializeMergesSavedOverDefaults(t *testing.T) {
	saved := map[FieldID]Position{
		FieldEventTitle: {X: 300, Y: 80, FontSize: 30},
	}
	e := newTestEditor(saved, 1.0)

	pos := e.DocumentPositions()
	assert.Equal(t, Position{X: 300, Y: 80, FontSize: 30}, pos[FieldEventTitle])
	// Untouched fields keep their defaults.
	assert.Equal(t, Position{X: 100, Y: 100, FontSize: 24}, pos[FieldAttendeeName])
}

func TestInitializeIdempotent(t *testing.T) {
	saved := map[FieldID]Position{
		FieldAttendeeName: {X: 120.5, Y: 77.25, FontSize: 20},
	}
	a := newTestEditor(saved, 0.75)
	b := newTestEditor(saved, 0.75)
	assert.Equal(t, a.Fields(), b.Fields())

	// Re-running on the same editor with the same inputs changes nothing.
	before := a.Fields()
	a.Initialize(saved, pageW, pageH, 0.75)
	assert.Equal(t, before, a.Fields())
}

func TestRoundTripLaw(t *testing.T) {
	// toDocumentPositions . initialize == identity for any scale in range.
	scales := []float64{0.2, 0.25, 0.5, 0.8, 1.0, 1.33, 2.0}
	saved := map[FieldID]Position{
		FieldAttendeeName:  {X: 100, Y: 100, FontSize: 24},
		FieldEventTitle:    {X: 421.7, Y: 55.3, FontSize: 18},
		FieldEventDate:     {X: 0, Y: 595, FontSize: 10},
		FieldCpdCredits:    {X: 842, Y: 0, FontSize: 9},
		FieldOrganizerName: {X: 13.13, Y: 272.9, FontSize: 11},
		FieldIssuedDate:    {X: 700.0001, Y: 500.0001, FontSize: 12},
	}

	for _, scale := range scales {
		e := newTestEditor(saved, scale)
		got := e.DocumentPositions()
		for id, want := range saved {
			assert.InDelta(t, want.X, got[id].X, 1e-9, "x for %s at scale %v", id, scale)
			assert.InDelta(t, want.Y, got[id].Y, 1e-9, "y for %s at scale %v", id, scale)
			assert.Equal(t, want.FontSize, got[id].FontSize, "font size is never scaled")
		}
	}
}

func TestPointsToPixelsScenario(t *testing.T) {
	// attendee_name at (100, 100) points, scale 0.5 -> pixels (50, 50).
	e := newTestEditor(nil, 0.5)

	f := e.Fields()[0]
	require.Equal(t, FieldAttendeeName, f.ID)
	assert.Equal(t, 50.0, f.X)
	assert.Equal(t, 50.0, f.Y)

	// Direct edit of x to 200 points -> pixel x becomes 100.
	require.NoError(t, e.SetFieldProperty(FieldAttendeeName, PropertyX, 200))
	assert.Equal(t, 100.0, e.Fields()[0].X)

	// And it reads back as 200 points.
	assert.InDelta(t, 200.0, e.DocumentPositions()[FieldAttendeeName].X, 1e-9)
}

func TestDragOnlyMovesTarget(t *testing.T) {
	e := newTestEditor(nil, 1.0)
	before := e.Fields()

	container := Bounds{X: 10, Y: 10, Width: 900, Height: 650}
	require.NoError(t, e.BeginDrag(FieldEventTitle))
	e.UpdateDrag(410, 210, container)
	e.UpdateDrag(420, 215, container)
	e.EndDrag()

	after := e.Fields()
	for i := range before {
		if before[i].ID == FieldEventTitle {
			assert.Equal(t, 410.0, after[i].X)
			assert.Equal(t, 205.0, after[i].Y)
			continue
		}
		// Bit-identical for everything else.
		assert.Equal(t, before[i], after[i], "field %s must not move", before[i].ID)
	}
}

func TestDragClampedToContainer(t *testing.T) {
	e := newTestEditor(nil, 1.0)
	container := Bounds{X: 0, Y: 0, Width: 800, Height: 600}
	require.NoError(t, e.BeginDrag(FieldAttendeeName))

	pointers := [][2]float64{
		{-5000, -5000},
		{5000, 5000},
		{-1, 300},
		{799.5, 599.5},
		{math.MaxFloat64, -math.MaxFloat64},
	}
	for _, p := range pointers {
		e.UpdateDrag(p[0], p[1], container)
		f := e.Fields()[0]
		assert.GreaterOrEqual(t, f.X, 0.0)
		assert.GreaterOrEqual(t, f.Y, 0.0)
		assert.LessOrEqual(t, f.X, container.Width-MinFieldWidth)
		assert.LessOrEqual(t, f.Y, container.Height-MinFieldHeight)
	}
}

func TestUpdateDragWhileIdleIsNoop(t *testing.T) {
	e := newTestEditor(nil, 1.0)
	before := e.Fields()
	e.UpdateDrag(400, 300, Bounds{Width: 800, Height: 600})
	assert.Equal(t, before, e.Fields())

	_, active := e.Dragging()
	assert.False(t, active)
}

func TestDragStateMachine(t *testing.T) {
	e := newTestEditor(nil, 1.0)

	_, active := e.Dragging()
	assert.False(t, active, "starts idle")

	require.NoError(t, e.BeginDrag(FieldIssuedDate))
	id, active := e.Dragging()
	assert.True(t, active)
	assert.Equal(t, FieldIssuedDate, id)

	e.EndDrag()
	_, active = e.Dragging()
	assert.False(t, active)

	assert.Error(t, e.BeginDrag("not_a_field"))
}

func TestSetFieldPropertyCoercion(t *testing.T) {
	e := newTestEditor(nil, 0.5)

	// Unusable numbers are coerced, never rejected.
	require.NoError(t, e.SetFieldProperty(FieldEventDate, PropertyX, math.NaN()))
	require.NoError(t, e.SetFieldProperty(FieldEventDate, PropertyY, -42))
	require.NoError(t, e.SetFieldProperty(FieldEventDate, PropertyFontSize, math.Inf(1)))

	pos := e.DocumentPositions()[FieldEventDate]
	assert.Equal(t, 0.0, pos.X)
	assert.Equal(t, 0.0, pos.Y)
	assert.Equal(t, DefaultFontSize, pos.FontSize)

	// Positions are bounded by the page.
	require.NoError(t, e.SetFieldProperty(FieldEventDate, PropertyX, 10000))
	assert.Equal(t, pageW, e.DocumentPositions()[FieldEventDate].X)

	assert.Error(t, e.SetFieldProperty(FieldEventDate, Property("rotation"), 1))
	assert.Error(t, e.SetFieldProperty("not_a_field", PropertyX, 1))
}

func TestSetScaleReconcilesLayout(t *testing.T) {
	e := newTestEditor(nil, 0.5)
	require.NoError(t, e.BeginDrag(FieldAttendeeName))
	e.UpdateDrag(75, 75, Bounds{Width: 800, Height: 600})

	// The drag moved the field to 150 points; a scale change keeps the
	// document position but discards the drag in progress.
	e.SetScale(1.0)

	_, active := e.Dragging()
	assert.False(t, active, "scale change discards in-progress drag")

	f := e.Fields()[0]
	assert.InDelta(t, 150.0, f.X, 1e-9)
	assert.InDelta(t, 150.0, f.Y, 1e-9)

	// Out-of-range zoom requests clamp instead of failing.
	e.SetScale(99)
	assert.Equal(t, MaxScale, e.Scale())
}

func TestDocumentPositionsClampedToPage(t *testing.T) {
	// Saved placements beyond the page are pulled back inside.
	saved := map[FieldID]Position{
		FieldAttendeeName: {X: -50, Y: 10000, FontSize: 24},
	}
	e := newTestEditor(saved, 1.0)

	pos := e.DocumentPositions()[FieldAttendeeName]
	assert.Equal(t, 0.0, pos.X)
	assert.Equal(t, pageH, pos.Y)
}
