//go:build ebiten

package ui

import (
	"image/color"

	"morph-cloud/internal/core"
	pcore "morph-cloud/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 10
	hudLineHeight = 16
	hudRefreshTPS = 10
	swatchSize    = 12
)

type colorProvider interface {
	Color() colorful.Color
}

// HUD renders the active shape name and a readout of engine values in the
// top-left corner.
type HUD struct {
	src     pcore.ParameterProvider
	label   *ShapeLabel
	refresh *core.FixedStep

	lines   []string
	visible bool
	panel   *ebiten.Image
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src pcore.ParameterProvider, label *ShapeLabel, width int) *HUD {
	h := &HUD{src: src, label: label, refresh: core.NewFixedStep(hudRefreshTPS), visible: true}
	if width > 0 {
		h.panel = ebiten.NewImage(width, 1)
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Update refreshes the cached readout at a fixed low rate.
func (h *HUD) Update() {
	if h == nil || h.src == nil || !h.refresh.ShouldStep() {
		return
	}
	h.lines = Lines(h.src.Parameters(), "shape")
}

// Draw paints the HUD over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	height := hudPadding*2 + hudLineHeight*(len(h.lines)+1)
	if h.panel != nil {
		w := h.panel.Bounds().Dx()
		if h.panel.Bounds().Dy() != height {
			h.panel = ebiten.NewImage(w, height)
		}
		h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 180})
		screen.DrawImage(h.panel, nil)
	}

	face := basicfont.Face7x13
	y := hudPadding + hudLineHeight - 4
	title := "Shape: " + h.label.String()
	text.Draw(screen, title, face, hudPadding, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})

	if cp, ok := h.src.(colorProvider); ok {
		bounds := text.BoundString(face, title)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(swatchSize, swatchSize)
		op.GeoM.Translate(float64(hudPadding+bounds.Dx()+8), float64(y-swatchSize+2))
		op.ColorScale.ScaleWithColor(cp.Color().Clamped())
		screen.DrawImage(h.pixel, op)
	}

	for _, line := range h.lines {
		y += hudLineHeight
		text.Draw(screen, line, face, hudPadding, y, color.RGBA{R: 170, G: 170, B: 185, A: 255})
	}
}
