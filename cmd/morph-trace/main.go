// Command morph-trace runs the particle engine headless against the scripted
// demo sweep and prints how quickly the cloud settles after each change.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"morph-cloud/internal/tracking"
	"morph-cloud/pkg/morph"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type options struct {
	frames int
	every  int
	report int
	script int
	gaps   int
	shape  morph.Shape
}

func main() {
	particles := flag.Int("particles", 5000, "number of particles")
	seed := flag.Int64("seed", 1337, "seed for templates and scatter")
	frames := flag.Int("frames", 1200, "frames to simulate")
	every := flag.Int("every", 2, "apply one landmark frame every N render frames")
	report := flag.Int("report", 60, "print a status line every N frames")
	script := flag.Int("script", 600, "length of the demo sweep in landmark frames")
	gaps := flag.Int("gaps", 97, "drop the hand every N landmark frames (0 = never)")
	start := flag.String("shape", "sphere", "starting shape: sphere, heart or saturn")
	var overrides kvList
	flag.Var(&overrides, "set", "engine override in key=value form (repeatable)")
	flag.Parse()

	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			continue
		}
		kv[parts[0]] = parts[1]
	}
	cfg := morph.FromMap(kv)
	if _, ok := kv["particles"]; !ok {
		cfg.Particles = *particles
	}
	if _, ok := kv["seed"]; !ok {
		cfg.Seed = *seed
	}

	shape, err := morph.ParseShape(*start)
	if err != nil {
		log.Fatal(err)
	}
	opts := options{frames: *frames, every: *every, report: *report, script: *script, gaps: *gaps, shape: shape}
	if err := run(os.Stdout, cfg, opts); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, cfg morph.Config, opts options) error {
	if opts.every <= 0 {
		opts.every = 1
	}
	state := morph.NewState()
	engine, err := morph.NewEngine(cfg, state)
	if err != nil {
		return err
	}
	if opts.shape != morph.ShapeSphere {
		in := morph.DefaultIntent()
		in.Shape = opts.shape
		in.Color = opts.shape.Color()
		state.Store(in)
	}
	adapter := morph.NewAdapter(state, cfg)
	misses := 0
	adapter.OnNoHand(func() { misses++ })

	changedAt := uint64(0)
	state.Watch(func(s morph.Shape) {
		if engine.Frame() > 0 {
			fmt.Fprintf(w, "frame %5d: shape -> %s\n", engine.Frame(), s.Label())
		}
		changedAt = engine.Frame()
	})

	script := tracking.DemoFrames(opts.script, opts.gaps)
	next := 0
	for f := 1; f <= opts.frames; f++ {
		if len(script) > 0 && f%opts.every == 0 {
			adapter.Apply(&script[next])
			next = (next + 1) % len(script)
		}
		engine.Step()
		if opts.report > 0 && f%opts.report == 0 {
			in := state.Load()
			fmt.Fprintf(w, "frame %5d: %-6s exp %.3f->%.3f offset (%6.2f,%6.2f) err %.4f color %s since-change %d\n",
				f, in.Shape, engine.Expansion(), in.Expansion, in.OffsetX, in.OffsetY,
				engine.MeanError(), engine.Color().Hex(), engine.Frame()-changedAt)
		}
	}
	fmt.Fprintf(w, "done: %d frames, %d landmark frames without a hand, final error %.4f\n",
		engine.Frame(), misses, engine.MeanError())
	return nil
}
