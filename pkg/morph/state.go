package morph

import (
	"sync"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
)

// Intent is the latest steering request derived from a landmark sample. It is
// treated as an immutable value: writers publish a fresh copy.
type Intent struct {
	Shape     Shape
	OffsetX   float32
	OffsetY   float32
	Expansion float32 // target; the engine smooths toward it
	Color     colorful.Color

	// Fingertip and Thumb record the sample the intent was built from.
	// Both are zero until the first sample arrives.
	Fingertip Landmark
	Thumb     Landmark
	Sampled   bool
}

// DefaultIntent is the state before any hand has been seen.
func DefaultIntent() Intent {
	return Intent{
		Shape:     ShapeSphere,
		Expansion: 1,
		Color:     ShapeSphere.Color(),
	}
}

// State shares the latest Intent between the tracking goroutine and the
// render loop. Only the newest value matters, so it is a snapshot rather than
// a queue.
type State struct {
	cur atomic.Pointer[Intent]

	mu       sync.Mutex
	watchers []func(Shape)
}

// NewState returns a State holding DefaultIntent.
func NewState() *State {
	s := &State{}
	in := DefaultIntent()
	s.cur.Store(&in)
	return s
}

// Load returns the current intent.
func (s *State) Load() Intent {
	return *s.snapshot()
}

func (s *State) snapshot() *Intent {
	p := s.cur.Load()
	if p == nil {
		in := DefaultIntent()
		s.cur.CompareAndSwap(nil, &in)
		p = s.cur.Load()
	}
	return p
}

// Store publishes in. Watchers are called synchronously on the caller's
// goroutine when the shape differs from the previous intent.
func (s *State) Store(in Intent) {
	next := in
	prev := s.cur.Swap(&next)
	if prev != nil && prev.Shape == next.Shape {
		return
	}
	s.mu.Lock()
	watchers := append([]func(Shape){}, s.watchers...)
	s.mu.Unlock()
	for _, fn := range watchers {
		fn(next.Shape)
	}
}

// Watch registers fn to be told about shape changes. fn is also called once
// with the current shape.
func (s *State) Watch(fn func(Shape)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
	fn(s.snapshot().Shape)
}
