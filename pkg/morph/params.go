package morph

import (
	"strconv"

	"morph-cloud/pkg/core"
)

// Parameters exposes the engine's live values for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	in := e.state.Load()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Shape",
				Params: []core.Parameter{
					{Key: "shape", Label: "Shape", Type: core.ParamTypeText, Value: in.Shape.Label()},
					{Key: "color", Label: "Color", Type: core.ParamTypeText, Value: e.color.Hex()},
					{Key: "target_color", Label: "Target color", Type: core.ParamTypeText, Value: in.Color.Hex()},
				},
			},
			{
				Name: "Motion",
				Params: []core.Parameter{
					floatParam("expansion", "Expansion", float64(e.expansion)),
					floatParam("target_expansion", "Target expansion", float64(in.Expansion)),
					floatParam("offset_x", "Offset X", float64(in.OffsetX)),
					floatParam("offset_y", "Offset Y", float64(in.OffsetY)),
					floatParam("rotation", "Rotation", float64(e.rotation)),
				},
			},
			{
				Name: "Engine",
				Params: []core.Parameter{
					intParam("particles", "Particles", len(e.live)),
					{Key: "frame", Label: "Frame", Type: core.ParamTypeInt, Value: strconv.FormatUint(e.frame, 10)},
					{Key: "clamp_expansion", Label: "Clamp", Type: core.ParamTypeBool, Value: strconv.FormatBool(e.cfg.ClampExpansion)},
				},
			},
		},
	}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 3, 64)}
}
