package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

// Axis3D is an axis of a 3D cartesian grid (xAxis3D, yAxis3D, zAxis3D).
// These components need the echarts-gl extension at runtime.
type Axis3D struct {
	Type        element.AxisType       `json:"type,omitempty"`
	Name        *string                `json:"name,omitempty"`
	Min         element.CompositeValue `json:"min,omitempty"`
	Max         element.CompositeValue `json:"max,omitempty"`
	Grid3DIndex *float64               `json:"grid3DIndex,omitempty"`
	Data        []string               `json:"data,omitempty"`
}

func NewAxis3D() *Axis3D {
	return &Axis3D{}
}

func (a *Axis3D) WithType(v element.AxisType) *Axis3D {
	a.Type = v
	return a
}

func (a *Axis3D) WithName(v string) *Axis3D {
	a.Name = &v
	return a
}

func (a *Axis3D) WithMin(v element.CompositeValue) *Axis3D {
	a.Min = v
	return a
}

func (a *Axis3D) WithMax(v element.CompositeValue) *Axis3D {
	a.Max = v
	return a
}

func (a *Axis3D) WithGrid3DIndex(v float64) *Axis3D {
	a.Grid3DIndex = &v
	return a
}

func (a *Axis3D) WithData(v ...string) *Axis3D {
	a.Data = v
	return a
}

type Grid3D struct {
	Show      *bool    `json:"show,omitempty"`
	BoxWidth  *float64 `json:"boxWidth,omitempty"`
	BoxHeight *float64 `json:"boxHeight,omitempty"`
	BoxDepth  *float64 `json:"boxDepth,omitempty"`
}

func NewGrid3D() *Grid3D {
	return &Grid3D{}
}

func (g *Grid3D) WithShow(v bool) *Grid3D {
	g.Show = &v
	return g
}

func (g *Grid3D) WithBoxWidth(v float64) *Grid3D {
	g.BoxWidth = &v
	return g
}

func (g *Grid3D) WithBoxHeight(v float64) *Grid3D {
	g.BoxHeight = &v
	return g
}

func (g *Grid3D) WithBoxDepth(v float64) *Grid3D {
	g.BoxDepth = &v
	return g
}
