package morph

import (
	"errors"
	"math"

	"morph-cloud/pkg/core"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	sphereRadius = 5.0

	heartScale  = 0.35
	heartZRange = 2.0

	saturnCoreShare   = 0.6
	saturnCoreRadius  = 4.0
	saturnRingMin     = 6.5
	saturnRingMax     = 9.0
	saturnRingJitterY = 0.4
)

// ErrInvalidParticleCount is returned when a template is requested for a
// non-positive number of particles.
var ErrInvalidParticleCount = errors.New("particle count must be positive")

// Template is an immutable ordered set of target points. Index i in every
// template refers to the same particle; there is no geometric correspondence
// between shapes.
type Template struct {
	pts []mgl32.Vec3
}

// NewTemplate copies pts into a new Template.
func NewTemplate(pts []mgl32.Vec3) *Template {
	return &Template{pts: append([]mgl32.Vec3(nil), pts...)}
}

// Len reports the number of points.
func (t *Template) Len() int { return len(t.pts) }

// At returns point i.
func (t *Template) At(i int) mgl32.Vec3 { return t.pts[i] }

// Templates bundles the three shapes generated for one particle count.
type Templates struct {
	Sphere *Template
	Heart  *Template
	Saturn *Template
}

// Get returns the template for s. Unknown shapes fall back to the sphere.
func (ts *Templates) Get(s Shape) *Template {
	switch s {
	case ShapeHeart:
		return ts.Heart
	case ShapeSaturn:
		return ts.Saturn
	default:
		return ts.Sphere
	}
}

// Len reports the particle count shared by all templates.
func (ts *Templates) Len() int { return ts.Sphere.Len() }

// GenerateTemplates builds the sphere, heart and saturn templates for n
// particles. Heart and saturn draw from rng once here and never again.
func GenerateTemplates(n int, rng *core.RNG) (*Templates, error) {
	if n <= 0 {
		return nil, ErrInvalidParticleCount
	}
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &Templates{
		Sphere: &Template{pts: sphere(n)},
		Heart:  &Template{pts: heart(n, rng)},
		Saturn: &Template{pts: saturn(n, rng)},
	}, nil
}

// spiralPoint places index i of count on the equal-area spiral.
func spiralPoint(i int, count, radius float64) mgl32.Vec3 {
	phi := math.Acos(-1 + 2*float64(i)/count)
	theta := math.Sqrt(count*math.Pi) * phi
	sinPhi := math.Sin(phi)
	return mgl32.Vec3{
		float32(math.Cos(theta) * sinPhi * radius),
		float32(math.Sin(theta) * sinPhi * radius),
		float32(math.Cos(phi) * radius),
	}
}

func sphere(n int) []mgl32.Vec3 {
	pts := make([]mgl32.Vec3, n)
	for i := range pts {
		pts[i] = spiralPoint(i, float64(n), sphereRadius)
	}
	return pts
}

func heart(n int, rng *core.RNG) []mgl32.Vec3 {
	pts := make([]mgl32.Vec3, n)
	for i := range pts {
		t := rng.Angle()
		s := math.Sin(t)
		x := 16 * s * s * s
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts[i] = mgl32.Vec3{
			float32(x * heartScale),
			float32(y * heartScale),
			float32(rng.Centered(heartZRange)),
		}
	}
	return pts
}

func saturn(n int, rng *core.RNG) []mgl32.Vec3 {
	pts := make([]mgl32.Vec3, n)
	coreCount := float64(n) * saturnCoreShare
	for i := range pts {
		if float64(i) < coreCount {
			pts[i] = spiralPoint(i, coreCount, saturnCoreRadius)
			continue
		}
		angle := rng.Angle()
		r := rng.Range(saturnRingMin, saturnRingMax)
		pts[i] = mgl32.Vec3{
			float32(math.Cos(angle) * r),
			float32(rng.Centered(saturnRingJitterY)),
			float32(math.Sin(angle) * r),
		}
	}
	return pts
}

// SaturnCoreCount reports how many leading saturn indices belong to the body.
func SaturnCoreCount(n int) int {
	return int(math.Ceil(float64(n) * saturnCoreShare))
}
