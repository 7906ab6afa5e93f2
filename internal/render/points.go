//go:build ebiten

package render

import (
	"morph-cloud/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

const spriteSide = 32

// PointPainter draws a particle cloud as additive soft discs.
type PointPainter struct {
	proj    *Projector
	sprite  *ebiten.Image
	opacity float32

	pts     []Projected
	lastRot float32
	op      ebiten.DrawImageOptions
}

// NewPointPainter allocates the sprite and projector.
func NewPointPainter(cam Camera, opacity float32) *PointPainter {
	sprite := ebiten.NewImage(spriteSide, spriteSide)
	sprite.WritePixels(DiscPixels(spriteSide))
	return &PointPainter{proj: NewProjector(cam), sprite: sprite, opacity: opacity}
}

// Resize follows the window size. Only the projection changes.
func (pp *PointPainter) Resize(size core.Size) {
	if size != pp.proj.Size() {
		pp.proj.Resize(size)
		pp.pts = nil
	}
}

// Draw projects the cloud when it moved and paints every visible particle.
// Each particle is tinted by its own color times the material color.
func (pp *PointPainter) Draw(dst *ebiten.Image, cloud Cloud) {
	rot := cloud.Rotation()
	if cloud.TakeDirty() || rot != pp.lastRot || pp.pts == nil {
		pp.pts = pp.proj.Project(cloud.Positions(), rot)
		pp.lastRot = rot
	}

	mat := cloud.Color()
	mr, mg, mb := float32(mat.R)*pp.opacity, float32(mat.G)*pp.opacity, float32(mat.B)*pp.opacity
	colors := cloud.Colors()
	op := &pp.op
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear

	for _, p := range pp.pts {
		c := colors[p.Index]
		s := float64(p.Size) / spriteSide
		op.GeoM.Reset()
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(float64(p.X-p.Size/2), float64(p.Y-p.Size/2))
		op.ColorScale.Reset()
		op.ColorScale.Scale(c[0]*mr, c[1]*mg, c[2]*mb, pp.opacity)
		dst.DrawImage(pp.sprite, op)
	}
}

