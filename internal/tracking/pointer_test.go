package tracking

import (
	"testing"

	"morph-cloud/internal/core"
	"morph-cloud/pkg/morph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerFrameMirrorsHorizontally(t *testing.T) {
	size := core.Size{W: 800, H: 600}
	f := PointerFrame(600, 150, size, 0.2)
	tip, thumb, ok := f.Points()
	require.True(t, ok)
	assert.InDelta(t, 0.25, tip.X, 1e-9)
	assert.InDelta(t, 0.25, tip.Y, 1e-9)
	assert.InDelta(t, 0.45, thumb.Y, 1e-9)

	in := morph.MapSample(tip, thumb)
	assert.Greater(t, in.OffsetX, float32(0), "cursor right of centre moves the cloud right")
	assert.Equal(t, morph.ShapeSphere, in.Shape)
	assert.InDelta(t, 2, in.Expansion, 1e-5)
}

func TestPointerFrameOffSurface(t *testing.T) {
	size := core.Size{W: 100, H: 100}
	for _, c := range [][2]int{{-1, 10}, {10, -1}, {100, 10}, {10, 100}} {
		f := PointerFrame(c[0], c[1], size, 0.1)
		_, _, ok := f.Points()
		assert.False(t, ok, "cursor %v", c)
	}
	f := PointerFrame(1, 1, core.Size{}, 0.1)
	_, _, ok := f.Points()
	assert.False(t, ok)
}

func TestClampPinch(t *testing.T) {
	assert.Equal(t, PinchMin, ClampPinch(-1))
	assert.Equal(t, PinchMax, ClampPinch(3))
	assert.Equal(t, 0.2, ClampPinch(0.2))
}
