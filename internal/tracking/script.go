package tracking

import (
	"context"
	"math"
	"time"

	"morph-cloud/pkg/morph"
)

// Script replays a fixed list of frames at a steady interval.
type Script struct {
	Frames   []morph.HandFrame
	Interval time.Duration
	Loop     bool
}

// Name returns the source identifier.
func (s *Script) Name() string { return "demo" }

// Run emits one frame per interval until the frames run out (when not
// looping) or ctx is done.
func (s *Script) Run(ctx context.Context, apply ApplyFunc) error {
	if len(s.Frames) == 0 {
		<-ctx.Done()
		return nil
	}
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultConfig().Interval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		if i == len(s.Frames) {
			if !s.Loop {
				return nil
			}
			i = 0
		}
		frame := s.Frames[i]
		apply(&frame)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// DemoFrames builds a sweep that carries the fingertip through all three
// bands and back while the pinch opens and closes. Every gapEvery-th frame has
// no hand; zero disables gaps.
func DemoFrames(steps, gapEvery int) []morph.HandFrame {
	if steps <= 0 {
		return nil
	}
	frames := make([]morph.HandFrame, steps)
	for i := range frames {
		if gapEvery > 0 && i > 0 && i%gapEvery == 0 {
			continue
		}
		phase := float64(i) / float64(steps)
		// Triangle wave keeps y inside [0.05, 0.95].
		tri := 1 - math.Abs(2*phase-1)
		y := 0.05 + 0.9*tri
		x := 0.5 + 0.2*math.Sin(4*math.Pi*phase)
		pinch := 0.1 + 0.075*(1+math.Sin(6*math.Pi*phase))
		fingertip := morph.Landmark{X: x, Y: y}
		thumb := morph.Landmark{X: x + pinch, Y: y}
		frames[i] = morph.HandFrame{Hands: [][]morph.Landmark{Hand(fingertip, thumb)}}
	}
	return frames
}

func init() {
	Register("demo", func(cfg Config) Source {
		return &Script{Frames: DemoFrames(600, 97), Interval: cfg.Interval, Loop: true}
	})
}
