package tracking

import (
	"morph-cloud/internal/core"
	"morph-cloud/pkg/morph"
)

// Pinch bounds for pointer-driven input, in normalized units.
const (
	PinchMin     = 0.01
	PinchMax     = 0.5
	PinchDefault = 0.1
)

// PointerFrame turns a cursor position on a surface of the given size into a
// landmark frame. The horizontal axis is mirrored so the cursor behaves like
// a hand seen by a front-facing camera. A cursor off the surface yields a
// frame with no hand.
func PointerFrame(cx, cy int, size core.Size, pinch float64) morph.HandFrame {
	if size.Empty() || cx < 0 || cy < 0 || cx >= size.W || cy >= size.H {
		return morph.HandFrame{}
	}
	fingertip := morph.Landmark{
		X: 1 - float64(cx)/float64(size.W),
		Y: float64(cy) / float64(size.H),
	}
	thumb := morph.Landmark{X: fingertip.X, Y: fingertip.Y + ClampPinch(pinch)}
	return morph.HandFrame{Hands: [][]morph.Landmark{Hand(fingertip, thumb)}}
}

// ClampPinch bounds a pinch distance to [PinchMin, PinchMax].
func ClampPinch(p float64) float64 {
	if p < PinchMin {
		return PinchMin
	}
	if p > PinchMax {
		return PinchMax
	}
	return p
}
