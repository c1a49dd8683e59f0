package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

type RadarShape string

const (
	RadarShapePolygon RadarShape = "polygon"
	RadarShapeCircle  RadarShape = "circle"
)

// RadarIndicator is one spoke of a radar chart.
type RadarIndicator struct {
	Name  *string       `json:"name,omitempty"`
	Max   *float64      `json:"max,omitempty"`
	Min   *float64      `json:"min,omitempty"`
	Color element.Color `json:"color,omitempty"`
}

func NewRadarIndicator() *RadarIndicator {
	return &RadarIndicator{}
}

func (r *RadarIndicator) WithName(v string) *RadarIndicator {
	r.Name = &v
	return r
}

func (r *RadarIndicator) WithMax(v float64) *RadarIndicator {
	r.Max = &v
	return r
}

func (r *RadarIndicator) WithMin(v float64) *RadarIndicator {
	r.Min = &v
	return r
}

func (r *RadarIndicator) WithColor(v element.Color) *RadarIndicator {
	r.Color = v
	return r
}

// RadarCoordinate is the "radar" component: the web of indicators radar
// series are drawn on.
type RadarCoordinate struct {
	ID          *string                `json:"id,omitempty"`
	ZLevel      *float64               `json:"zlevel,omitempty"`
	Z           *float64               `json:"z,omitempty"`
	Center      element.CompositeValue `json:"center,omitempty"`
	Radius      element.CompositeValue `json:"radius,omitempty"`
	StartAngle  *float64               `json:"startAngle,omitempty"`
	SplitNumber *float64               `json:"splitNumber,omitempty"`
	Shape       RadarShape             `json:"shape,omitempty"`
	Scale       *bool                  `json:"scale,omitempty"`
	AxisName    *element.Label         `json:"axisName,omitempty"`
	NameGap     *float64               `json:"nameGap,omitempty"`
	AxisLine    *element.AxisLine      `json:"axisLine,omitempty"`
	AxisTick    *element.AxisTick      `json:"axisTick,omitempty"`
	AxisLabel   *element.AxisLabel     `json:"axisLabel,omitempty"`
	SplitLine   *element.SplitLine     `json:"splitLine,omitempty"`
	SplitArea   *element.SplitArea     `json:"splitArea,omitempty"`
	Indicator   []*RadarIndicator      `json:"indicator,omitempty"`
}

func NewRadarCoordinate() *RadarCoordinate {
	return &RadarCoordinate{}
}

func (r *RadarCoordinate) WithID(v string) *RadarCoordinate {
	r.ID = &v
	return r
}

func (r *RadarCoordinate) WithZLevel(v float64) *RadarCoordinate {
	r.ZLevel = &v
	return r
}

func (r *RadarCoordinate) WithZ(v float64) *RadarCoordinate {
	r.Z = &v
	return r
}

func (r *RadarCoordinate) WithCenter(v element.CompositeValue) *RadarCoordinate {
	r.Center = v
	return r
}

func (r *RadarCoordinate) WithRadius(v element.CompositeValue) *RadarCoordinate {
	r.Radius = v
	return r
}

func (r *RadarCoordinate) WithStartAngle(v float64) *RadarCoordinate {
	r.StartAngle = &v
	return r
}

func (r *RadarCoordinate) WithSplitNumber(v float64) *RadarCoordinate {
	r.SplitNumber = &v
	return r
}

func (r *RadarCoordinate) WithShape(v RadarShape) *RadarCoordinate {
	r.Shape = v
	return r
}

func (r *RadarCoordinate) WithScale(v bool) *RadarCoordinate {
	r.Scale = &v
	return r
}

func (r *RadarCoordinate) WithAxisName(v *element.Label) *RadarCoordinate {
	r.AxisName = v
	return r
}

func (r *RadarCoordinate) WithNameGap(v float64) *RadarCoordinate {
	r.NameGap = &v
	return r
}

func (r *RadarCoordinate) WithAxisLine(v *element.AxisLine) *RadarCoordinate {
	r.AxisLine = v
	return r
}

func (r *RadarCoordinate) WithAxisTick(v *element.AxisTick) *RadarCoordinate {
	r.AxisTick = v
	return r
}

func (r *RadarCoordinate) WithAxisLabel(v *element.AxisLabel) *RadarCoordinate {
	r.AxisLabel = v
	return r
}

func (r *RadarCoordinate) WithSplitLine(v *element.SplitLine) *RadarCoordinate {
	r.SplitLine = v
	return r
}

func (r *RadarCoordinate) WithSplitArea(v *element.SplitArea) *RadarCoordinate {
	r.SplitArea = v
	return r
}

func (r *RadarCoordinate) WithIndicator(v ...*RadarIndicator) *RadarCoordinate {
	r.Indicator = v
	return r
}
