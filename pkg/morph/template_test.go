package morph

import (
	"math"
	"testing"

	"morph-cloud/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTemplatesCounts(t *testing.T) {
	for _, n := range []int{1, 2, 7, 10, 333, 2500} {
		ts, err := GenerateTemplates(n, core.NewRNG(3))
		require.NoError(t, err)
		for _, s := range Shapes {
			assert.Equal(t, n, ts.Get(s).Len(), "shape %s, n=%d", s, n)
		}
	}
}

func TestGenerateTemplatesRejectsEmpty(t *testing.T) {
	_, err := GenerateTemplates(0, nil)
	require.ErrorIs(t, err, ErrInvalidParticleCount)
	_, err = GenerateTemplates(-4, nil)
	require.ErrorIs(t, err, ErrInvalidParticleCount)
}

func TestSphereTemplateOnRadius(t *testing.T) {
	ts, err := GenerateTemplates(5000, core.NewRNG(1))
	require.NoError(t, err)
	for i := 0; i < ts.Sphere.Len(); i++ {
		assert.InDelta(t, sphereRadius, ts.Sphere.At(i).Len(), 1e-4, "index %d", i)
	}
}

func TestSphereTemplateFirstPointIsSouthPole(t *testing.T) {
	ts, err := GenerateTemplates(100, core.NewRNG(1))
	require.NoError(t, err)
	p := ts.Sphere.At(0)
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, -5, p.Z(), 1e-5)
}

func TestSaturnTemplateBodyAndRing(t *testing.T) {
	const n = 4000
	ts, err := GenerateTemplates(n, core.NewRNG(9))
	require.NoError(t, err)

	coreCount := SaturnCoreCount(n)
	assert.Equal(t, 2400, coreCount)

	for i := 0; i < n; i++ {
		p := ts.Saturn.At(i)
		if float64(i) < 0.6*n {
			assert.InDelta(t, saturnCoreRadius, p.Len(), 1e-4, "body index %d", i)
			continue
		}
		horizontal := math.Hypot(float64(p.X()), float64(p.Z()))
		assert.GreaterOrEqual(t, horizontal, saturnRingMin-1e-4, "ring index %d", i)
		assert.LessOrEqual(t, horizontal, saturnRingMax+1e-4, "ring index %d", i)
		assert.GreaterOrEqual(t, p.Y(), float32(-0.2))
		assert.LessOrEqual(t, p.Y(), float32(0.2))
	}
}

func TestSaturnCoreCountMatchesIndexRule(t *testing.T) {
	for _, n := range []int{1, 3, 5, 7, 11, 101} {
		count := 0
		for i := 0; i < n; i++ {
			if float64(i) < float64(n)*saturnCoreShare {
				count++
			}
		}
		assert.Equal(t, count, SaturnCoreCount(n), "n=%d", n)
	}
}

func TestHeartTemplateWithinCurveBounds(t *testing.T) {
	ts, err := GenerateTemplates(3000, core.NewRNG(5))
	require.NoError(t, err)
	for i := 0; i < ts.Heart.Len(); i++ {
		p := ts.Heart.At(i)
		assert.LessOrEqual(t, math.Abs(float64(p.X())), 16*heartScale+1e-4)
		assert.GreaterOrEqual(t, p.Y(), float32(-17*heartScale-1e-4))
		assert.LessOrEqual(t, p.Y(), float32(12*heartScale))
		assert.GreaterOrEqual(t, p.Z(), float32(-1))
		assert.LessOrEqual(t, p.Z(), float32(1))
	}
}

func TestTemplatesAreStableAcrossReads(t *testing.T) {
	ts, err := GenerateTemplates(64, core.NewRNG(2))
	require.NoError(t, err)
	first := ts.Heart.At(10)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ts.Heart.At(10))
	}
}

func TestNewTemplateCopiesInput(t *testing.T) {
	pts := toyPoints()
	tpl := NewTemplate(pts)
	pts[0][0] = 42
	assert.Equal(t, float32(1), tpl.At(0).X())
}

func TestSphereTemplateIgnoresSeed(t *testing.T) {
	a, err := GenerateTemplates(300, core.NewRNG(1))
	require.NoError(t, err)
	b, err := GenerateTemplates(300, core.NewRNG(2))
	require.NoError(t, err)
	for i := 0; i < 300; i++ {
		assert.Equal(t, a.Sphere.At(i), b.Sphere.At(i))
	}
}
