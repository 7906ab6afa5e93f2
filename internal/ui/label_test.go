package ui

import (
	"testing"

	"morph-cloud/pkg/core"
	"morph-cloud/pkg/morph"

	"github.com/stretchr/testify/assert"
)

func TestShapeLabelFollowsState(t *testing.T) {
	st := morph.NewState()
	l := NewShapeLabel(st)
	assert.Equal(t, "Sphere", l.String())

	st.Store(morph.MapSample(morph.Landmark{X: 0.5, Y: 0.9}, morph.Landmark{}))
	assert.Equal(t, "Heart", l.String())

	st.Store(morph.MapSample(morph.Landmark{X: 0.5, Y: 0.05}, morph.Landmark{}))
	assert.Equal(t, "Saturn", l.String())
}

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Shape", Params: []core.Parameter{{Key: "shape", Label: "Shape", Value: "Heart"}}},
		{Name: "Motion", Params: []core.Parameter{
			{Key: "expansion", Label: "Expansion", Value: "1.000"},
			{Key: "rotation", Label: "Rotation", Value: "0.200"},
		}},
	}}
	assert.Equal(t, []string{"Motion", "  Expansion: 1.000", "  Rotation: 0.200"}, Lines(snap, "shape"))
	assert.Len(t, Lines(snap), 5)
}
