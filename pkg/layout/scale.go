package layout

// Scale is the dimensionless ratio of screen pixels to document points for
// one editing session. It is global to the session, not per field.

const (
	// MinScale and MaxInitialScale bound the scale derived from the
	// viewport at load time.
	MinScale        = 0.2
	MaxInitialScale = 1.0

	// MaxScale bounds user zoom after load.
	MaxScale = 2.0

	// DefaultViewportPadding is subtracted from the viewport width before
	// the initial scale is derived, so the page doesn't touch the edges.
	DefaultViewportPadding = 64.0
)

// ComputeInitialScale derives the session scale from the usable viewport
// width and the document's native width in points. The result is always in
// [MinScale, MaxInitialScale] regardless of the inputs.
func ComputeInitialScale(viewportWidth, documentWidth, padding float64) float64 {
	if documentWidth <= 0 {
		return MaxInitialScale
	}
	usable := viewportWidth - padding
	if usable < 0 {
		usable = 0
	}
	s := usable / documentWidth
	if s < MinScale {
		return MinScale
	}
	if s > MaxInitialScale {
		return MaxInitialScale
	}
	return s
}

// ClampScale bounds a user-adjusted scale to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
