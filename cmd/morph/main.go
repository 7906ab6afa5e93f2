//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"morph-cloud/internal/app"
	"morph-cloud/internal/core"
	"morph-cloud/internal/tracking"
	"morph-cloud/pkg/morph"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger := core.NewLogger("morph", cfg.Debug)

	state := morph.NewState()
	engine, err := morph.NewEngine(cfg.Engine(), state)
	if err != nil {
		log.Fatal(err)
	}
	adapter := morph.NewAdapter(state, cfg.Engine())
	adapter.OnNoHand(func() { logger.Debugf("frame without a hand") })

	game := app.New(engine, logger)

	var src tracking.Source
	if cfg.Source == "pointer" {
		src = game.PointerSource(cfg.SampleRate)
	} else {
		factory, ok := tracking.Sources()[cfg.Source]
		if !ok {
			log.Fatalf("unknown source %q (have pointer, %s)", cfg.Source, strings.Join(tracking.Names(), ", "))
		}
		src = factory(cfg.Tracking(logger))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	go func() {
		if err := src.Run(ctx, func(f *morph.HandFrame) { adapter.Apply(f) }); err != nil {
			logger.Errorf("source %s: %v", src.Name(), err)
		}
	}()
	logger.Infof("%d particles, source %s", engine.Config().Particles, src.Name())

	ebiten.SetWindowTitle("morph-cloud - " + src.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
