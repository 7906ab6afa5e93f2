//go:build ebiten

package app

import (
	"image/color"
	"sync/atomic"

	"morph-cloud/internal/core"
	"morph-cloud/internal/render"
	"morph-cloud/internal/ui"
	"morph-cloud/pkg/morph"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth     = 260
	pointOpacity = 0.8
)

// Game adapts the particle engine to the ebiten.Game interface. Update is
// the per-frame callback that drives the engine; landmark sources write the
// engine's state from their own goroutines.
type Game struct {
	engine  *morph.Engine
	painter *render.PointPainter
	hud     *ui.HUD
	guide   *ui.Guide
	log     core.Logger

	size atomic.Pointer[core.Size]

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided engine.
func New(engine *morph.Engine, log core.Logger) *Game {
	state := engine.State()
	g := &Game{
		engine:  engine,
		painter: render.NewPointPainter(render.DefaultCamera(), pointOpacity),
		hud:     ui.NewHUD(engine, ui.NewShapeLabel(state), hudWidth),
		guide:   ui.NewGuide(state),
		log:     core.OrNop(log),
		seed:    engine.Config().Seed,
	}
	g.size.Store(&core.Size{})
	state.Watch(func(s morph.Shape) { g.log.Debugf("shape -> %s", s) })
	return g
}

// Size returns the last laid-out screen size. Safe from any goroutine.
func (g *Game) Size() core.Size { return *g.size.Load() }

// Update handles per-frame input and advances the engine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset(g.seed)
		g.log.Infof("particles scattered")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.guide.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	if !g.paused || g.tickOnce {
		g.engine.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

// Draw renders the particle cloud and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Draw(screen, g.engine)
	g.guide.Draw(screen)
	g.hud.Draw(screen)
}

// Layout follows the window size. Resizing only touches the projection.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Size{W: outsideWidth, H: outsideHeight}
	if size != g.Size() {
		g.size.Store(&size)
		g.painter.Resize(size)
	}
	return outsideWidth, outsideHeight
}
