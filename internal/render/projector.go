package render

import (
	"morph-cloud/internal/core"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Cloud is what the painter reads from the particle engine each frame.
type Cloud interface {
	Positions() []mgl32.Vec3
	Colors() []mgl32.Vec3
	Color() colorful.Color
	Rotation() float32
	TakeDirty() bool
}

// Camera holds the fixed viewing parameters.
type Camera struct {
	Eye       mgl32.Vec3
	FovY      float32 // degrees
	Near, Far float32
	PointSize float32 // world-space sprite size before attenuation
}

// DefaultCamera looks down -Z at the origin from 20 units away.
func DefaultCamera() Camera {
	return Camera{
		Eye:       mgl32.Vec3{0, 0, 20},
		FovY:      75,
		Near:      0.1,
		Far:       1000,
		PointSize: 0.07,
	}
}

// Projected is one particle in screen space.
type Projected struct {
	X, Y  float32
	Size  float32
	Depth float32
	Index int
}

// Projector maps world points to screen coordinates for a given surface size.
type Projector struct {
	cam  Camera
	size core.Size
	view mgl32.Mat4
	proj mgl32.Mat4
	out  []Projected
}

// NewProjector returns a projector for cam. Call Resize before Project.
func NewProjector(cam Camera) *Projector {
	p := &Projector{
		cam:  cam,
		view: mgl32.LookAtV(cam.Eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
	}
	p.Resize(core.Size{W: 1, H: 1})
	return p
}

// Resize updates the aspect ratio and pixel scale.
func (p *Projector) Resize(size core.Size) {
	if size == p.size || size.Empty() {
		return
	}
	p.size = size
	p.proj = mgl32.Perspective(mgl32.DegToRad(p.cam.FovY), size.Aspect(), p.cam.Near, p.cam.Far)
}

// Size returns the current surface size.
func (p *Projector) Size() core.Size { return p.size }

// Project rotates points about the vertical axis and projects them. Points
// outside the clip volume are dropped. The returned slice is reused by the
// next call.
func (p *Projector) Project(points []mgl32.Vec3, rotation float32) []Projected {
	p.out = p.out[:0]
	mv := p.view.Mul4(mgl32.HomogRotate3DY(rotation))
	w, h := float32(p.size.W), float32(p.size.H)
	scale := h / 2

	for i, pt := range points {
		eye := mv.Mul4x1(pt.Vec4(1))
		depth := -eye.Z()
		if depth <= p.cam.Near || depth >= p.cam.Far {
			continue
		}
		clip := p.proj.Mul4x1(eye)
		nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
		if nx < -1 || nx > 1 || ny < -1 || ny > 1 {
			continue
		}
		size := p.cam.PointSize * scale / depth
		if size < 1 {
			size = 1
		}
		p.out = append(p.out, Projected{
			X:     (nx + 1) * 0.5 * w,
			Y:     (1 - ny) * 0.5 * h,
			Size:  size,
			Depth: depth,
			Index: i,
		})
	}
	return p.out
}
