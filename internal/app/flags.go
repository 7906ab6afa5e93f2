package app

import (
	"flag"
	"fmt"
	"time"

	"morph-cloud/internal/core"
	"morph-cloud/internal/tracking"
	"morph-cloud/pkg/morph"

	"github.com/caarlos0/env/v11"
)

// Config represents the runtime parameters for the application. Values come
// from defaults, then MORPH_* environment variables, then command-line flags.
type Config struct {
	Particles  int    `env:"MORPH_PARTICLES"`
	Source     string `env:"MORPH_SOURCE"`
	Addr       string `env:"MORPH_ADDR"`
	Path       string `env:"MORPH_PATH"`
	SampleRate int    `env:"MORPH_SAMPLE_RATE"`
	TPS        int    `env:"MORPH_TPS"`
	Width      int    `env:"MORPH_WIDTH"`
	Height     int    `env:"MORPH_HEIGHT"`
	Seed       int64  `env:"MORPH_SEED"`
	Clamp      bool   `env:"MORPH_CLAMP"`
	Debug      bool   `env:"MORPH_DEBUG"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	tc := tracking.DefaultConfig()
	return &Config{
		Particles:  morph.DefaultConfig().Particles,
		Source:     "pointer",
		Addr:       tc.Addr,
		Path:       tc.Path,
		SampleRate: 30,
		TPS:        60,
		Width:      1280,
		Height:     720,
	}
}

// LoadEnv overrides fields from the environment.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Particles, "particles", c.Particles, "number of particles")
	fs.StringVar(&c.Source, "source", c.Source, "landmark source: pointer, demo or feed")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address for the landmark feed")
	fs.StringVar(&c.Path, "path", c.Path, "websocket path for the landmark feed")
	fs.IntVar(&c.SampleRate, "sample-rate", c.SampleRate, "landmark samples per second for pointer and demo sources")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for templates and scatter (0 = random)")
	fs.BoolVar(&c.Clamp, "clamp", c.Clamp, "bound the expansion factor to [0.1, 5]")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

// Load builds a Config from defaults, the environment and args.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	if err := c.LoadEnv(); err != nil {
		return nil, err
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if c.SampleRate <= 0 {
		return nil, fmt.Errorf("sample-rate=%d must be positive", c.SampleRate)
	}
	if err := c.Engine().Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Engine derives the particle engine configuration.
func (c *Config) Engine() morph.Config {
	mc := morph.DefaultConfig()
	mc.Particles = c.Particles
	mc.ClampExpansion = c.Clamp
	mc.Seed = c.Seed
	return mc
}

// Tracking derives the landmark source configuration.
func (c *Config) Tracking(log core.Logger) tracking.Config {
	tc := tracking.DefaultConfig()
	tc.Addr = c.Addr
	tc.Path = c.Path
	if c.SampleRate > 0 {
		tc.Interval = time.Second / time.Duration(c.SampleRate)
	}
	tc.Logger = log
	return tc
}
