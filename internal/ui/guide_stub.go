//go:build !ebiten

package ui

import "morph-cloud/pkg/morph"

// Guide is a no-op placeholder used when the ebiten build tag is absent.
type Guide struct{}

// NewGuide constructs a stub overlay.
func NewGuide(*morph.State) *Guide { return &Guide{} }

// Toggle is a no-op in headless builds.
func (g *Guide) Toggle() {}

// Draw is a no-op placeholder.
func (g *Guide) Draw(any) {}
