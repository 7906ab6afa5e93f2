package morph

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Shape identifies one of the precomputed templates.
type Shape uint8

const (
	ShapeSphere Shape = iota
	ShapeHeart
	ShapeSaturn
)

// Shapes lists every supported shape in template order.
var Shapes = []Shape{ShapeSphere, ShapeHeart, ShapeSaturn}

var (
	colorSphere = hexColor("#00f2ff")
	colorHeart  = hexColor("#ff0066")
	colorSaturn = hexColor("#ffaa00")

	// White is the material color before any blending has happened.
	White = colorful.Color{R: 1, G: 1, B: 1}
)

func hexColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("morph: bad color literal %q: %v", s, err))
	}
	return c
}

// String returns the lowercase identifier of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeHeart:
		return "heart"
	case ShapeSaturn:
		return "saturn"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// Label returns the display name of the shape.
func (s Shape) Label() string {
	switch s {
	case ShapeSphere:
		return "Sphere"
	case ShapeHeart:
		return "Heart"
	case ShapeSaturn:
		return "Saturn"
	default:
		return s.String()
	}
}

// Color returns the target material color associated with the shape.
func (s Shape) Color() colorful.Color {
	switch s {
	case ShapeHeart:
		return colorHeart
	case ShapeSaturn:
		return colorSaturn
	default:
		return colorSphere
	}
}

// ParseShape resolves a shape from its identifier, ignoring case.
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return ShapeSphere, fmt.Errorf("unknown shape %q", name)
}
