package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeInitialScale(t *testing.T) {
	t.Run("Wide viewport clamps to 1.0", func(t *testing.T) {
		// 800px viewport, 64px padding, US Letter landscape width.
		s := ComputeInitialScale(800, 612, 64)
		assert.Equal(t, 1.0, s, "736/612 > 1.0 must clamp to 1.0")
	})

	t.Run("Narrow viewport clamps to 0.2", func(t *testing.T) {
		s := ComputeInitialScale(400, 2000, 0)
		assert.Equal(t, 0.2, s, "400/2000 = 0.2 lower bound")

		s = ComputeInitialScale(100, 2000, 0)
		assert.Equal(t, 0.2, s)
	})

	t.Run("In-range ratio passes through", func(t *testing.T) {
		s := ComputeInitialScale(364, 600, 64)
		assert.InDelta(t, 0.5, s, 1e-9)
	})

	t.Run("Always within bounds", func(t *testing.T) {
		viewports := []float64{-100, 0, 1, 320, 800, 1920, 100000}
		widths := []float64{-1, 0, 1, 612, 842, 2000, 1e6}
		for _, vw := range viewports {
			for _, dw := range widths {
				s := ComputeInitialScale(vw, dw, DefaultViewportPadding)
				assert.GreaterOrEqual(t, s, MinScale)
				assert.LessOrEqual(t, s, MaxInitialScale)
			}
		}
	})
}

func TestClampScale(t *testing.T) {
	assert.Equal(t, MinScale, ClampScale(0.05))
	assert.Equal(t, MaxScale, ClampScale(3.5))
	assert.Equal(t, 1.3, ClampScale(1.3))
	assert.Equal(t, MinScale, ClampScale(math.Inf(-1)))
	assert.Equal(t, MaxScale, ClampScale(math.Inf(1)))
}
