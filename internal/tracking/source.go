// Package tracking adapts hand-landmark producers to the morph input adapter.
// Sources run on their own goroutines and never block the render loop.
package tracking

import (
	"context"
	"sort"
	"time"

	"morph-cloud/internal/core"
	"morph-cloud/pkg/morph"
)

// ApplyFunc receives every processed frame, including frames without a hand.
type ApplyFunc func(*morph.HandFrame)

// Source produces landmark frames until its context is cancelled.
type Source interface {
	Name() string
	// Run blocks until ctx is done or the source fails. Cancellation is not
	// an error.
	Run(ctx context.Context, apply ApplyFunc) error
}

// Config carries the options shared by source factories.
type Config struct {
	Addr     string        // listen address for network sources
	Path     string        // HTTP path for network sources
	Interval time.Duration // sample spacing for scripted sources
	Logger   core.Logger
}

// DefaultConfig returns the standard source options.
func DefaultConfig() Config {
	return Config{
		Addr:     "127.0.0.1:8765",
		Path:     "/landmarks",
		Interval: time.Second / 30,
	}
}

// Factory constructs a Source.
type Factory func(cfg Config) Source

var sources = map[string]Factory{}

// Register adds a source factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available source factories.
func Sources() map[string]Factory {
	return sources
}

// Names lists registered sources in sorted order.
func Names() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hand builds a 21-point landmark list with the fingertip and thumb tip set.
// Remaining points sit at the fingertip.
func Hand(fingertip, thumb morph.Landmark) []morph.Landmark {
	lm := make([]morph.Landmark, 21)
	for i := range lm {
		lm[i] = fingertip
	}
	lm[morph.ThumbTipIndex] = thumb
	return lm
}
