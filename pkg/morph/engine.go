package morph

import (
	"fmt"

	"morph-cloud/pkg/core"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Engine moves live particle positions and the material color toward the
// current intent, one frame per Step.
type Engine struct {
	cfg       Config
	templates *Templates
	state     *State
	rng       *core.RNG

	live   []mgl32.Vec3
	colors []mgl32.Vec3

	expansion float32
	color     colorful.Color
	rotation  float32
	dirty     bool
	frame     uint64
}

// NewEngine generates templates for cfg.Particles and returns an engine
// reading its intent from state.
func NewEngine(cfg Config, state *State) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	rng := core.NewRNG(cfg.Seed)
	ts, err := GenerateTemplates(cfg.Particles, rng)
	if err != nil {
		return nil, fmt.Errorf("generate templates: %w", err)
	}
	return newEngine(cfg, ts, state, rng), nil
}

// NewEngineWithTemplates builds an engine around caller-supplied templates.
// cfg.Particles is taken from the templates.
func NewEngineWithTemplates(cfg Config, ts *Templates, state *State) (*Engine, error) {
	if ts == nil || ts.Sphere == nil || ts.Heart == nil || ts.Saturn == nil {
		return nil, fmt.Errorf("templates: all three shapes are required")
	}
	n := ts.Sphere.Len()
	if ts.Heart.Len() != n || ts.Saturn.Len() != n {
		return nil, fmt.Errorf("templates: length mismatch %d/%d/%d", n, ts.Heart.Len(), ts.Saturn.Len())
	}
	cfg.Particles = n
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	return newEngine(cfg, ts, state, core.NewRNG(cfg.Seed)), nil
}

func newEngine(cfg Config, ts *Templates, state *State, rng *core.RNG) *Engine {
	if state == nil {
		state = NewState()
	}
	n := ts.Len()
	e := &Engine{
		cfg:       cfg,
		templates: ts,
		state:     state,
		rng:       rng,
		live:      make([]mgl32.Vec3, n),
		colors:    make([]mgl32.Vec3, n),
		expansion: state.Load().Expansion,
		color:     White,
	}
	for i := range e.colors {
		e.colors[i] = mgl32.Vec3{float32(rng.Float64()), float32(rng.Float64()), float32(rng.Float64())}
	}
	e.scatter()
	return e
}

func (e *Engine) scatter() {
	span := e.cfg.InitialSpread
	for i := range e.live {
		e.live[i] = mgl32.Vec3{
			float32(e.rng.Centered(span)),
			float32(e.rng.Centered(span)),
			float32(e.rng.Centered(span)),
		}
	}
	e.dirty = true
}

// Reset scatters live positions again. A non-zero seed reseeds the scatter.
// Templates, per-particle colors and smoothing state are kept.
func (e *Engine) Reset(seed int64) {
	if seed != 0 {
		e.rng = core.NewRNG(seed)
	}
	e.scatter()
}

// Step advances one frame.
func (e *Engine) Step() {
	in := e.state.snapshot()
	tpl := e.templates.Get(in.Shape)
	off := mgl32.Vec3{in.OffsetX, in.OffsetY, 0}
	exp := e.expansion
	alpha := float32(e.cfg.PositionAlpha)

	for i := range e.live {
		target := tpl.At(i).Mul(exp).Add(off)
		e.live[i] = e.live[i].Add(target.Sub(e.live[i]).Mul(alpha))
	}

	e.expansion += (in.Expansion - e.expansion) * float32(e.cfg.ExpansionAlpha)
	e.color = e.color.BlendRgb(in.Color, e.cfg.ColorAlpha)
	e.rotation += float32(e.cfg.RotationSpeed)
	e.dirty = true
	e.frame++
}

// Target returns the point particle i is currently heading to.
func (e *Engine) Target(i int) mgl32.Vec3 {
	in := e.state.snapshot()
	return e.templates.Get(in.Shape).At(i).Mul(e.expansion).Add(mgl32.Vec3{in.OffsetX, in.OffsetY, 0})
}

// MeanError is the mean distance between live positions and their targets.
func (e *Engine) MeanError() float64 {
	if len(e.live) == 0 {
		return 0
	}
	var sum float64
	for i, p := range e.live {
		sum += float64(e.Target(i).Sub(p).Len())
	}
	return sum / float64(len(e.live))
}

// Positions exposes the live buffer. It is written in place every Step.
func (e *Engine) Positions() []mgl32.Vec3 { return e.live }

// Colors exposes the static per-particle colors.
func (e *Engine) Colors() []mgl32.Vec3 { return e.colors }

// Color returns the current material color.
func (e *Engine) Color() colorful.Color { return e.color }

// Rotation returns the accumulated rotation about the vertical axis.
func (e *Engine) Rotation() float32 { return e.rotation }

// Expansion returns the current (smoothed) expansion.
func (e *Engine) Expansion() float32 { return e.expansion }

// Frame returns the number of steps taken.
func (e *Engine) Frame() uint64 { return e.frame }

// State returns the intent store the engine reads from.
func (e *Engine) State() *State { return e.state }


// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// TakeDirty reports whether positions changed since the last call and
// clears the flag.
func (e *Engine) TakeDirty() bool {
	d := e.dirty
	e.dirty = false
	return d
}
