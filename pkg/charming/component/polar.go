package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

// PolarCoordinate is a polar coordinate system. It is paired with an
// AngleAxis and a RadiusAxis.
type PolarCoordinate struct {
	ID      *string                    `json:"id,omitempty"`
	ZLevel  *float64                   `json:"zlevel,omitempty"`
	Z       *float64                   `json:"z,omitempty"`
	Center  element.CompositeValue     `json:"center,omitempty"`
	Radius  element.CompositeValue     `json:"radius,omitempty"`
	Tooltip *element.CoordinateTooltip `json:"tooltip,omitempty"`
}

func NewPolarCoordinate() *PolarCoordinate {
	return &PolarCoordinate{}
}

func (p *PolarCoordinate) WithID(v string) *PolarCoordinate {
	p.ID = &v
	return p
}

func (p *PolarCoordinate) WithZLevel(v float64) *PolarCoordinate {
	p.ZLevel = &v
	return p
}

func (p *PolarCoordinate) WithZ(v float64) *PolarCoordinate {
	p.Z = &v
	return p
}

func (p *PolarCoordinate) WithCenter(v element.CompositeValue) *PolarCoordinate {
	p.Center = v
	return p
}

func (p *PolarCoordinate) WithRadius(v element.CompositeValue) *PolarCoordinate {
	p.Radius = v
	return p
}

func (p *PolarCoordinate) WithTooltip(v *element.CoordinateTooltip) *PolarCoordinate {
	p.Tooltip = v
	return p
}

// AngleAxis is the angular axis of a polar coordinate system.
type AngleAxis struct {
	ID             *string                 `json:"id,omitempty"`
	PolarIndex     *float64                `json:"polarIndex,omitempty"`
	StartAngle     *float64                `json:"startAngle,omitempty"`
	Clockwise      *bool                   `json:"clockwise,omitempty"`
	Type           element.AxisType        `json:"type,omitempty"`
	BoundaryGap    *element.BoundaryGap    `json:"boundaryGap,omitempty"`
	ZLevel         *float64                `json:"zlevel,omitempty"`
	Z              *float64                `json:"z,omitempty"`
	Min            *float64                `json:"min,omitempty"`
	Max            *float64                `json:"max,omitempty"`
	Scale          *bool                   `json:"scale,omitempty"`
	SplitNumber    *float64                `json:"splitNumber,omitempty"`
	MinInterval    *float64                `json:"minInterval,omitempty"`
	MaxInterval    *float64                `json:"maxInterval,omitempty"`
	Interval       *float64                `json:"interval,omitempty"`
	LogBase        *float64                `json:"logBase,omitempty"`
	Silent         *bool                   `json:"silent,omitempty"`
	TriggerEvent   *bool                   `json:"triggerEvent,omitempty"`
	AxisLine       *element.AxisLine       `json:"axisLine,omitempty"`
	AxisTick       *element.AxisTick       `json:"axisTick,omitempty"`
	AxisPointer    *element.AxisPointer    `json:"axisPointer,omitempty"`
	MinorTick      *element.MinorTick      `json:"minorTick,omitempty"`
	AxisLabel      *element.AxisLabel      `json:"axisLabel,omitempty"`
	SplitLine      *element.SplitLine      `json:"splitLine,omitempty"`
	MinorSplitLine *element.MinorSplitLine `json:"minorSplitLine,omitempty"`
	SplitArea      *element.SplitArea      `json:"splitArea,omitempty"`
	Data           []string                `json:"data,omitempty"`
}

func NewAngleAxis() *AngleAxis {
	return &AngleAxis{}
}

func (a *AngleAxis) WithID(v string) *AngleAxis {
	a.ID = &v
	return a
}

func (a *AngleAxis) WithPolarIndex(v float64) *AngleAxis {
	a.PolarIndex = &v
	return a
}

func (a *AngleAxis) WithStartAngle(v float64) *AngleAxis {
	a.StartAngle = &v
	return a
}

func (a *AngleAxis) WithClockwise(v bool) *AngleAxis {
	a.Clockwise = &v
	return a
}

func (a *AngleAxis) WithType(v element.AxisType) *AngleAxis {
	a.Type = v
	return a
}

func (a *AngleAxis) WithBoundaryGap(v *element.BoundaryGap) *AngleAxis {
	a.BoundaryGap = v
	return a
}

func (a *AngleAxis) WithZLevel(v float64) *AngleAxis {
	a.ZLevel = &v
	return a
}

func (a *AngleAxis) WithZ(v float64) *AngleAxis {
	a.Z = &v
	return a
}

func (a *AngleAxis) WithMin(v float64) *AngleAxis {
	a.Min = &v
	return a
}

func (a *AngleAxis) WithMax(v float64) *AngleAxis {
	a.Max = &v
	return a
}

func (a *AngleAxis) WithScale(v bool) *AngleAxis {
	a.Scale = &v
	return a
}

func (a *AngleAxis) WithSplitNumber(v float64) *AngleAxis {
	a.SplitNumber = &v
	return a
}

func (a *AngleAxis) WithMinInterval(v float64) *AngleAxis {
	a.MinInterval = &v
	return a
}

func (a *AngleAxis) WithMaxInterval(v float64) *AngleAxis {
	a.MaxInterval = &v
	return a
}

func (a *AngleAxis) WithInterval(v float64) *AngleAxis {
	a.Interval = &v
	return a
}

func (a *AngleAxis) WithLogBase(v float64) *AngleAxis {
	a.LogBase = &v
	return a
}

func (a *AngleAxis) WithSilent(v bool) *AngleAxis {
	a.Silent = &v
	return a
}

func (a *AngleAxis) WithTriggerEvent(v bool) *AngleAxis {
	a.TriggerEvent = &v
	return a
}

func (a *AngleAxis) WithAxisLine(v *element.AxisLine) *AngleAxis {
	a.AxisLine = v
	return a
}

func (a *AngleAxis) WithAxisTick(v *element.AxisTick) *AngleAxis {
	a.AxisTick = v
	return a
}

func (a *AngleAxis) WithAxisPointer(v *element.AxisPointer) *AngleAxis {
	a.AxisPointer = v
	return a
}

func (a *AngleAxis) WithMinorTick(v *element.MinorTick) *AngleAxis {
	a.MinorTick = v
	return a
}

func (a *AngleAxis) WithAxisLabel(v *element.AxisLabel) *AngleAxis {
	a.AxisLabel = v
	return a
}

func (a *AngleAxis) WithSplitLine(v *element.SplitLine) *AngleAxis {
	a.SplitLine = v
	return a
}

func (a *AngleAxis) WithMinorSplitLine(v *element.MinorSplitLine) *AngleAxis {
	a.MinorSplitLine = v
	return a
}

func (a *AngleAxis) WithSplitArea(v *element.SplitArea) *AngleAxis {
	a.SplitArea = v
	return a
}

func (a *AngleAxis) WithData(v ...string) *AngleAxis {
	a.Data = v
	return a
}

// RadiusAxis is the radial axis of a polar coordinate system.
type RadiusAxis struct {
	ID            *string              `json:"id,omitempty"`
	PolarIndex    *float64             `json:"polarIndex,omitempty"`
	Type          element.AxisType     `json:"type,omitempty"`
	Name          *string              `json:"name,omitempty"`
	NameLocation  element.NameLocation `json:"nameLocation,omitempty"`
	NameTextStyle *element.TextStyle   `json:"nameTextStyle,omitempty"`
	NameGap       *float64             `json:"nameGap,omitempty"`
	NameRotate    *float64             `json:"nameRotate,omitempty"`
	Inverse       *bool                `json:"inverse,omitempty"`
	BoundaryGap   *element.BoundaryGap `json:"boundaryGap,omitempty"`
	Min           *float64             `json:"min,omitempty"`
	Max           *float64             `json:"max,omitempty"`
	Scale         *bool                `json:"scale,omitempty"`
	SplitNumber   *float64             `json:"splitNumber,omitempty"`
	MinInterval   *float64             `json:"minInterval,omitempty"`
	MaxInterval   *float64             `json:"maxInterval,omitempty"`
	Interval      *float64             `json:"interval,omitempty"`
	LogBase       *float64             `json:"logBase,omitempty"`
	AxisLabel     *element.AxisLabel   `json:"axisLabel,omitempty"`
	AxisLine      *element.AxisLine    `json:"axisLine,omitempty"`
	AxisTick      *element.AxisTick    `json:"axisTick,omitempty"`
	SplitLine     *element.SplitLine   `json:"splitLine,omitempty"`
	SplitArea     *element.SplitArea   `json:"splitArea,omitempty"`
	Data          []string             `json:"data,omitempty"`
}

func NewRadiusAxis() *RadiusAxis {
	return &RadiusAxis{}
}

func (r *RadiusAxis) WithID(v string) *RadiusAxis {
	r.ID = &v
	return r
}

func (r *RadiusAxis) WithPolarIndex(v float64) *RadiusAxis {
	r.PolarIndex = &v
	return r
}

func (r *RadiusAxis) WithType(v element.AxisType) *RadiusAxis {
	r.Type = v
	return r
}

func (r *RadiusAxis) WithName(v string) *RadiusAxis {
	r.Name = &v
	return r
}

func (r *RadiusAxis) WithNameLocation(v element.NameLocation) *RadiusAxis {
	r.NameLocation = v
	return r
}

func (r *RadiusAxis) WithNameTextStyle(v *element.TextStyle) *RadiusAxis {
	r.NameTextStyle = v
	return r
}

func (r *RadiusAxis) WithNameGap(v float64) *RadiusAxis {
	r.NameGap = &v
	return r
}

func (r *RadiusAxis) WithNameRotate(v float64) *RadiusAxis {
	r.NameRotate = &v
	return r
}

func (r *RadiusAxis) WithInverse(v bool) *RadiusAxis {
	r.Inverse = &v
	return r
}

func (r *RadiusAxis) WithBoundaryGap(v *element.BoundaryGap) *RadiusAxis {
	r.BoundaryGap = v
	return r
}

func (r *RadiusAxis) WithMin(v float64) *RadiusAxis {
	r.Min = &v
	return r
}

func (r *RadiusAxis) WithMax(v float64) *RadiusAxis {
	r.Max = &v
	return r
}

func (r *RadiusAxis) WithScale(v bool) *RadiusAxis {
	r.Scale = &v
	return r
}

func (r *RadiusAxis) WithSplitNumber(v float64) *RadiusAxis {
	r.SplitNumber = &v
	return r
}

func (r *RadiusAxis) WithMinInterval(v float64) *RadiusAxis {
	r.MinInterval = &v
	return r
}

func (r *RadiusAxis) WithMaxInterval(v float64) *RadiusAxis {
	r.MaxInterval = &v
	return r
}

func (r *RadiusAxis) WithInterval(v float64) *RadiusAxis {
	r.Interval = &v
	return r
}

func (r *RadiusAxis) WithLogBase(v float64) *RadiusAxis {
	r.LogBase = &v
	return r
}

func (r *RadiusAxis) WithAxisLabel(v *element.AxisLabel) *RadiusAxis {
	r.AxisLabel = v
	return r
}

func (r *RadiusAxis) WithAxisLine(v *element.AxisLine) *RadiusAxis {
	r.AxisLine = v
	return r
}

func (r *RadiusAxis) WithAxisTick(v *element.AxisTick) *RadiusAxis {
	r.AxisTick = v
	return r
}

func (r *RadiusAxis) WithSplitLine(v *element.SplitLine) *RadiusAxis {
	r.SplitLine = v
	return r
}

func (r *RadiusAxis) WithSplitArea(v *element.SplitArea) *RadiusAxis {
	r.SplitArea = v
	return r
}

func (r *RadiusAxis) WithData(v ...string) *RadiusAxis {
	r.Data = v
	return r
}
