package core

// Size describes the dimensions of the drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Aspect returns W/H, or 1 for a degenerate size.
func (s Size) Aspect() float32 {
	if s.W <= 0 || s.H <= 0 {
		return 1
	}
	return float32(s.W) / float32(s.H)
}

// Empty reports whether the size has no drawable area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }
