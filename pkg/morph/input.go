package morph

import (
	"math"
)

// Landmark indices read from the first detected hand.
const (
	ThumbTipIndex  = 4
	FingertipIndex = 8
)

// Band thresholds on the fingertip's normalized vertical position.
const (
	UpperBand = 0.25
	LowerBand = 0.75
)

const (
	offsetScaleX    = -40.0
	offsetScaleY    = -30.0
	expansionScale  = 10.0
	normalizedPivot = 0.5
)

// Landmark is a normalized hand keypoint; X and Y lie in [0,1].
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

func (l Landmark) finite() bool {
	return !math.IsNaN(l.X) && !math.IsNaN(l.Y) && !math.IsInf(l.X, 0) && !math.IsInf(l.Y, 0)
}

// HandFrame is one processed video frame from the tracker. Hands holds the
// landmark list of every detected hand; it is empty when nothing was seen.
type HandFrame struct {
	Hands [][]Landmark `json:"multiHandLandmarks"`
}

// Points returns the fingertip and thumb tip of the first hand, or false if
// the frame carries no usable hand.
func (f *HandFrame) Points() (fingertip, thumb Landmark, ok bool) {
	if f == nil || len(f.Hands) == 0 {
		return Landmark{}, Landmark{}, false
	}
	hand := f.Hands[0]
	if len(hand) <= FingertipIndex {
		return Landmark{}, Landmark{}, false
	}
	fingertip, thumb = hand[FingertipIndex], hand[ThumbTipIndex]
	if !fingertip.finite() || !thumb.finite() {
		return Landmark{}, Landmark{}, false
	}
	return fingertip, thumb, true
}

// SelectShape partitions the fingertip's vertical position into bands.
// Boundaries belong to the sphere band.
func SelectShape(y float64) Shape {
	switch {
	case y < UpperBand:
		return ShapeSaturn
	case y > LowerBand:
		return ShapeHeart
	default:
		return ShapeSphere
	}
}

// MapSample turns a fingertip/thumb pair into an Intent. The horizontal and
// vertical axes are inverted to undo the mirrored camera image.
func MapSample(fingertip, thumb Landmark) Intent {
	shape := SelectShape(fingertip.Y)
	dist := math.Hypot(fingertip.X-thumb.X, fingertip.Y-thumb.Y)
	return Intent{
		Shape:     shape,
		OffsetX:   float32((fingertip.X - normalizedPivot) * offsetScaleX),
		OffsetY:   float32((fingertip.Y - normalizedPivot) * offsetScaleY),
		Expansion: float32(dist * expansionScale),
		Color:     shape.Color(),
		Fingertip: fingertip,
		Thumb:     thumb,
		Sampled:   true,
	}
}

// Adapter maps landmark frames into a State.
type Adapter struct {
	state *State

	clamp      bool
	minExpand  float32
	maxExpand  float32
	onNoSample func()
}

// NewAdapter returns an Adapter writing into state. When cfg.ClampExpansion
// is set the target expansion is bounded to [cfg.ExpansionMin, cfg.ExpansionMax].
func NewAdapter(state *State, cfg Config) *Adapter {
	return &Adapter{
		state:     state,
		clamp:     cfg.ClampExpansion,
		minExpand: float32(cfg.ExpansionMin),
		maxExpand: float32(cfg.ExpansionMax),
	}
}

// OnNoHand registers a callback for frames that carried no usable hand.
func (a *Adapter) OnNoHand(fn func()) { a.onNoSample = fn }

// Apply updates the state from frame. Frames without a usable hand leave the
// state untouched and Apply reports false.
func (a *Adapter) Apply(frame *HandFrame) bool {
	fingertip, thumb, ok := frame.Points()
	if !ok {
		if a.onNoSample != nil {
			a.onNoSample()
		}
		return false
	}
	in := MapSample(fingertip, thumb)
	if a.clamp {
		in.Expansion = clamp32(in.Expansion, a.minExpand, a.maxExpand)
	}
	a.state.Store(in)
	return true
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
