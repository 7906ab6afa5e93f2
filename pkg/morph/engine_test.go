package morph

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyPoints() []mgl32.Vec3 {
	return []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
}

func toyEngine(t *testing.T) *Engine {
	t.Helper()
	tpl := NewTemplate(toyPoints())
	cfg := DefaultConfig()
	cfg.Seed = 1
	e, err := NewEngineWithTemplates(cfg, &Templates{Sphere: tpl, Heart: tpl, Saturn: tpl}, NewState())
	require.NoError(t, err)
	for i := range e.Positions() {
		e.Positions()[i] = mgl32.Vec3{}
	}
	return e
}

func TestEngineToyScenario(t *testing.T) {
	e := toyEngine(t)

	e.Step()
	p := e.Positions()[0]
	assert.InDelta(t, 0.07, p.X(), 1e-7)
	assert.Zero(t, p.Y())
	assert.Zero(t, p.Z())

	for i := 0; i < 250; i++ {
		e.Step()
	}
	p = e.Positions()[0]
	assert.InDelta(t, 1, p.X(), 1e-6)
	assert.InDelta(t, 0, p.Y(), 1e-6)
	assert.InDelta(t, 0, p.Z(), 1e-6)
	assert.InDelta(t, 1, e.Positions()[3].Z(), 1e-6)
}

func TestEngineConvergesMonotonically(t *testing.T) {
	st := NewState()
	cfg := DefaultConfig()
	cfg.Particles = 500
	cfg.Seed = 4
	e, err := NewEngine(cfg, st)
	require.NoError(t, err)

	in := MapSample(Landmark{X: 0.3, Y: 0.5}, Landmark{X: 0.3, Y: 0.6})
	in.Expansion = 1
	st.Store(in)

	prev := make([]float32, len(e.Positions()))
	for i, p := range e.Positions() {
		prev[i] = e.Target(i).Sub(p).Len()
	}
	for frame := 0; frame < 120; frame++ {
		e.Step()
		for i, p := range e.Positions() {
			d := e.Target(i).Sub(p).Len()
			require.LessOrEqual(t, d, prev[i]*(1-0.07)+1e-4, "frame %d particle %d", frame, i)
			prev[i] = d
		}
	}
	assert.Less(t, e.MeanError(), 0.1)
}

func TestEngineExpansionSmoothing(t *testing.T) {
	st := NewState()
	e := toyEngine(t)
	e.state = st

	in := DefaultIntent()
	in.Expansion = 3
	st.Store(in)

	e.Step()
	assert.InDelta(t, 1.3, e.Expansion(), 1e-6)

	for i := 0; i < 200; i++ {
		e.Step()
	}
	assert.InDelta(t, 3, e.Expansion(), 1e-4)
	assert.InDelta(t, 3, e.Positions()[0].X(), 1e-3)
}

func TestEngineColorConvergesWithoutOvershoot(t *testing.T) {
	e := toyEngine(t)
	target := ShapeHeart.Color()
	in := DefaultIntent()
	in.Shape = ShapeHeart
	in.Color = target
	e.state.Store(in)

	prev := e.Color()
	for i := 0; i < 400; i++ {
		e.Step()
		c := e.Color()
		assertApproaches(t, prev.R, c.R, target.R)
		assertApproaches(t, prev.G, c.G, target.G)
		assertApproaches(t, prev.B, c.B, target.B)
		prev = c
	}
	assert.InDelta(t, target.R, prev.R, 1e-6)
	assert.InDelta(t, target.G, prev.G, 1e-6)
	assert.InDelta(t, target.B, prev.B, 1e-6)
}

func assertApproaches(t *testing.T, before, after, target float64) {
	t.Helper()
	if before <= target {
		assert.GreaterOrEqual(t, after, before)
		assert.LessOrEqual(t, after, target)
		return
	}
	assert.LessOrEqual(t, after, before)
	assert.GreaterOrEqual(t, after, target)
}

func TestEngineRotationAndDirty(t *testing.T) {
	e := toyEngine(t)
	e.TakeDirty()
	assert.False(t, e.TakeDirty())

	for i := 0; i < 10; i++ {
		e.Step()
	}
	assert.InDelta(t, 0.02, e.Rotation(), 1e-6)
	assert.Equal(t, uint64(10), e.Frame())
	assert.True(t, e.TakeDirty())
	assert.False(t, e.TakeDirty())
}

func TestEngineOffsetLeavesDepthAlone(t *testing.T) {
	e := toyEngine(t)
	in := DefaultIntent()
	in.OffsetX, in.OffsetY = 4, -2
	e.state.Store(in)

	for i := 0; i < 300; i++ {
		e.Step()
	}
	p := e.Positions()[2]
	assert.InDelta(t, 4, p.X(), 1e-5)
	assert.InDelta(t, -2, p.Y(), 1e-5)
	assert.InDelta(t, 1, p.Z(), 1e-5)
}

func TestEngineZeroExpansionCollapsesToOffset(t *testing.T) {
	e := toyEngine(t)
	e.expansion = 0
	in := DefaultIntent()
	in.Expansion = 0
	in.OffsetX = 2
	e.state.Store(in)

	for i := 0; i < 300; i++ {
		e.Step()
	}
	for _, p := range e.Positions() {
		assert.InDelta(t, 2, p.X(), 1e-5)
		assert.InDelta(t, 0, p.Y(), 1e-5)
		assert.InDelta(t, 0, p.Z(), 1e-5)
	}
}

func TestEngineInitialScatterAndReset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Particles = 2000
	cfg.Seed = 8
	e, err := NewEngine(cfg, nil)
	require.NoError(t, err)

	buf := e.Positions()
	for _, p := range buf {
		for k := 0; k < 3; k++ {
			assert.GreaterOrEqual(t, p[k], float32(-50))
			assert.LessOrEqual(t, p[k], float32(50))
		}
	}
	colors := append([]mgl32.Vec3(nil), e.Colors()...)

	e.Step()
	e.Reset(99)
	assert.Same(t, &buf[0], &e.Positions()[0])
	assert.Equal(t, colors, e.Colors())
}

func TestNewEngineValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Particles = 0
	_, err := NewEngine(cfg, nil)
	require.ErrorIs(t, err, ErrInvalidParticleCount)

	cfg = DefaultConfig()
	cfg.PositionAlpha = 1.5
	_, err = NewEngine(cfg, nil)
	require.ErrorIs(t, err, ErrInvalidAlpha)

	tpl := NewTemplate(toyPoints())
	_, err = NewEngineWithTemplates(DefaultConfig(), &Templates{Sphere: tpl, Heart: tpl, Saturn: NewTemplate(toyPoints()[:2])}, nil)
	require.Error(t, err)
}

func TestEngineParameters(t *testing.T) {
	e := toyEngine(t)
	snap := e.Parameters()
	p, ok := snap.Lookup("shape")
	require.True(t, ok)
	assert.Equal(t, "Sphere", p.Value)
	p, ok = snap.Lookup("particles")
	require.True(t, ok)
	assert.Equal(t, "4", p.Value)
}
