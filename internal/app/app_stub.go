//go:build !ebiten

package app

import (
	"fmt"

	"morph-cloud/internal/core"
	"morph-cloud/pkg/morph"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*morph.Engine, core.Logger) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Size returns an empty size in the headless build.
func (g *Game) Size() core.Size { return core.Size{} }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
