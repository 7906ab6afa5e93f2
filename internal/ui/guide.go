//go:build ebiten

package ui

import (
	"image/color"

	"morph-cloud/pkg/morph"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	guideBandColor  = color.RGBA{R: 90, G: 90, B: 110, A: 160}
	guideTipColor   = color.RGBA{R: 255, G: 255, B: 255, A: 220}
	guideThumbColor = color.RGBA{R: 140, G: 200, B: 255, A: 220}
)

// Guide draws the shape-selection bands and the last tracked fingertip and
// thumb so the user can see where their hand is being read.
type Guide struct {
	state *morph.State
	show  bool
}

// NewGuide constructs a hidden guide overlay.
func NewGuide(state *morph.State) *Guide {
	return &Guide{state: state}
}

// Toggle shows or hides the overlay.
func (g *Guide) Toggle() { g.show = !g.show }

// Draw renders the overlay onto screen.
func (g *Guide) Draw(screen *ebiten.Image) {
	if !g.show {
		return
	}
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	for _, band := range []float32{morph.UpperBand, morph.LowerBand} {
		vector.StrokeLine(screen, 0, band*h, w, band*h, 1, guideBandColor, false)
	}

	in := g.state.Load()
	if !in.Sampled {
		return
	}
	// Landmarks are in camera space; mirror x back to screen space.
	tx, ty := float32(1-in.Fingertip.X)*w, float32(in.Fingertip.Y)*h
	hx, hy := float32(1-in.Thumb.X)*w, float32(in.Thumb.Y)*h
	vector.StrokeLine(screen, tx, ty, hx, hy, 1, guideThumbColor, true)
	vector.DrawFilledCircle(screen, hx, hy, 4, guideThumbColor, true)
	vector.DrawFilledCircle(screen, tx, ty, 5, guideTipColor, true)
}
