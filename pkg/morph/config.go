package morph

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidAlpha is returned for smoothing factors outside (0, 1].
var ErrInvalidAlpha = errors.New("smoothing factor must be in (0, 1]")

// Config controls the particle engine.
type Config struct {
	Particles int

	PositionAlpha  float64
	ExpansionAlpha float64
	ColorAlpha     float64
	RotationSpeed  float64 // radians per frame
	InitialSpread  float64 // side of the cube live positions start in

	ClampExpansion bool
	ExpansionMin   float64
	ExpansionMax   float64

	// Seed drives template and scatter randomness. Zero draws a fresh seed.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Particles:      25000,
		PositionAlpha:  0.07,
		ExpansionAlpha: 0.15,
		ColorAlpha:     0.05,
		RotationSpeed:  0.002,
		InitialSpread:  100,
		ExpansionMin:   0.1,
		ExpansionMax:   5.0,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Particles <= 0 {
		return fmt.Errorf("particles=%d: %w", c.Particles, ErrInvalidParticleCount)
	}
	alphas := []struct {
		name string
		v    float64
	}{
		{"position_alpha", c.PositionAlpha},
		{"expansion_alpha", c.ExpansionAlpha},
		{"color_alpha", c.ColorAlpha},
	}
	for _, a := range alphas {
		if !(a.v > 0 && a.v <= 1) {
			return fmt.Errorf("%s=%g: %w", a.name, a.v, ErrInvalidAlpha)
		}
	}
	if c.InitialSpread < 0 {
		return fmt.Errorf("initial_spread=%g must not be negative", c.InitialSpread)
	}
	if c.ClampExpansion && c.ExpansionMin > c.ExpansionMax {
		return fmt.Errorf("expansion bounds [%g, %g] are inverted", c.ExpansionMin, c.ExpansionMax)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["particles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Particles = parsed
		}
	}
	floats := map[string]*float64{
		"position_alpha":  &c.PositionAlpha,
		"expansion_alpha": &c.ExpansionAlpha,
		"color_alpha":     &c.ColorAlpha,
		"rotation_speed":  &c.RotationSpeed,
		"initial_spread":  &c.InitialSpread,
		"expansion_min":   &c.ExpansionMin,
		"expansion_max":   &c.ExpansionMax,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["clamp_expansion"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ClampExpansion = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if c.ExpansionMax < c.ExpansionMin {
		c.ExpansionMax = c.ExpansionMin
	}
	return c
}
