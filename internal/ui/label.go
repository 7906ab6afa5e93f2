package ui

import (
	"fmt"
	"sync/atomic"

	"morph-cloud/pkg/core"
	"morph-cloud/pkg/morph"
)

// ShapeLabel mirrors the active shape name. It is updated synchronously from
// whichever goroutine publishes a new intent and read by the draw loop.
type ShapeLabel struct {
	v atomic.Value
}

// NewShapeLabel subscribes to shape changes on st.
func NewShapeLabel(st *morph.State) *ShapeLabel {
	l := &ShapeLabel{}
	l.v.Store("")
	st.Watch(func(s morph.Shape) { l.v.Store(s.Label()) })
	return l
}

// String returns the current shape name.
func (l *ShapeLabel) String() string {
	return l.v.Load().(string)
}

// Lines flattens a snapshot into display rows, skipping keys in hide.
func Lines(snap core.ParameterSnapshot, hide ...string) []string {
	skip := make(map[string]bool, len(hide))
	for _, k := range hide {
		skip[k] = true
	}
	var out []string
	for _, g := range snap.Groups {
		var rows []string
		for _, p := range g.Params {
			if skip[p.Key] {
				continue
			}
			rows = append(rows, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
		if len(rows) == 0 {
			continue
		}
		out = append(out, g.Name)
		out = append(out, rows...)
	}
	return out
}
