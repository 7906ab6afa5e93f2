//go:build ebiten

package app

import (
	"context"
	"time"

	"morph-cloud/internal/tracking"

	"github.com/hajimehoshi/ebiten/v2"
)

const pinchStep = 0.005

// PointerSource samples the mouse cursor as a fingertip. Up and Down widen
// and narrow the simulated pinch. It runs on its own goroutine like a camera
// pipeline would; the ebiten input queries it uses are concurrent-safe.
type PointerSource struct {
	game     *Game
	interval time.Duration
	pinch    float64
}

// PointerSource returns a source sampling at rate samples per second.
func (g *Game) PointerSource(rate int) *PointerSource {
	if rate <= 0 {
		rate = 30
	}
	return &PointerSource{game: g, interval: time.Second / time.Duration(rate), pinch: tracking.PinchDefault}
}

// Name returns the source identifier.
func (p *PointerSource) Name() string { return "pointer" }

// Run samples until ctx is done.
func (p *PointerSource) Run(ctx context.Context, apply tracking.ApplyFunc) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			p.pinch = tracking.ClampPinch(p.pinch + pinchStep)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			p.pinch = tracking.ClampPinch(p.pinch - pinchStep)
		}
		cx, cy := ebiten.CursorPosition()
		frame := tracking.PointerFrame(cx, cy, p.game.Size(), p.pinch)
		apply(&frame)
	}
}
