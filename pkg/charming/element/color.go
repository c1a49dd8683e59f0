package element

import (
	"fmt"

	"github.com/ukaji3/charming-go/internal/json"
)

// Color is a fill or stroke color: a solid CSS color or a gradient.
type Color interface {
	color()
}

// SolidColor is any CSS color string ("#5470c6", "rgba(0,0,0,0.3)", "red").
type SolidColor string

func (SolidColor) color() {}

// RGB returns the SolidColor "rgb(r,g,b)".
func RGB(r, g, b uint8) SolidColor {
	return SolidColor(fmt.Sprintf("rgb(%d,%d,%d)", r, g, b))
}

// RGBA returns the SolidColor "rgba(r,g,b,a)".
func RGBA(r, g, b uint8, a float64) SolidColor {
	return SolidColor(fmt.Sprintf("rgba(%d,%d,%d,%g)", r, g, b, a))
}

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// NewColorStop returns a stop at offset (0..1) with the given CSS color.
func NewColorStop(offset float64, color string) ColorStop {
	return ColorStop{Offset: offset, Color: color}
}

// LinearGradient fills along the vector (X, Y) to (X2, Y2). Coordinates are
// relative to the bounding box unless Global is set.
type LinearGradient struct {
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	X2         float64     `json:"x2"`
	Y2         float64     `json:"y2"`
	ColorStops []ColorStop `json:"colorStops"`
	Global     *bool       `json:"global,omitempty"`
}

func (LinearGradient) color() {}

// NewLinearGradient returns a linear gradient.
func NewLinearGradient(x, y, x2, y2 float64, stops ...ColorStop) *LinearGradient {
	return &LinearGradient{X: x, Y: y, X2: x2, Y2: y2, ColorStops: stops}
}

func (g *LinearGradient) WithGlobal(v bool) *LinearGradient {
	g.Global = &v
	return g
}

// MarshalJSON adds the "linear" type discriminator.
func (g LinearGradient) MarshalJSON() ([]byte, error) {
	type plain LinearGradient
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"linear", plain(g)})
}

// RadialGradient fills outwards from the center (X, Y) up to radius R.
type RadialGradient struct {
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	R          float64     `json:"r"`
	ColorStops []ColorStop `json:"colorStops"`
	Global     *bool       `json:"global,omitempty"`
}

func (RadialGradient) color() {}

// NewRadialGradient returns a radial gradient.
func NewRadialGradient(x, y, r float64, stops ...ColorStop) *RadialGradient {
	return &RadialGradient{X: x, Y: y, R: r, ColorStops: stops}
}

func (g *RadialGradient) WithGlobal(v bool) *RadialGradient {
	g.Global = &v
	return g
}

// MarshalJSON adds the "radial" type discriminator.
func (g RadialGradient) MarshalJSON() ([]byte, error) {
	type plain RadialGradient
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"radial", plain(g)})
}

// ColorSegment is one band of a segmented color, ending at Offset (0..1).
type ColorSegment struct {
	Offset float64
	Color  string
}

// ColorSegments splits a line into colored bands, as used by gauge axis
// lines. It is encoded as [[offset, color], ...].
type ColorSegments []ColorSegment

func (ColorSegments) color() {}

func (s ColorSegments) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, len(s))
	for i, seg := range s {
		pairs[i] = [2]any{seg.Offset, seg.Color}
	}
	return json.Marshal(pairs)
}
