package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

// Axis is an x or y axis of a cartesian grid.
type Axis struct {
	// Type is the axis scale. ECharts treats an unset type as a value axis.
	Type element.AxisType `json:"type,omitempty"`
	ID   *string          `json:"id,omitempty"`
	Show *bool            `json:"show,omitempty"`
	// GridIndex is the index of the grid the axis belongs to.
	GridIndex *float64 `json:"gridIndex,omitempty"`
	Offset    *float64 `json:"offset,omitempty"`
	// Position is top/bottom for x axes and left/right for y axes.
	Position      element.CompositeValue `json:"position,omitempty"`
	Name          *string                `json:"name,omitempty"`
	NameLocation  element.NameLocation   `json:"nameLocation,omitempty"`
	NameTextStyle *element.TextStyle     `json:"nameTextStyle,omitempty"`
	NameGap       *float64               `json:"nameGap,omitempty"`
	NameRotate    *float64               `json:"nameRotate,omitempty"`
	Inverse       *bool                  `json:"inverse,omitempty"`
	AlignTicks    *bool                  `json:"alignTicks,omitempty"`
	BoundaryGap   *element.BoundaryGap   `json:"boundaryGap,omitempty"`
	// Min and Max bound the axis. Besides numbers they accept "dataMin"/"dataMax".
	Min            element.CompositeValue  `json:"min,omitempty"`
	Max            element.CompositeValue  `json:"max,omitempty"`
	Scale          *bool                   `json:"scale,omitempty"`
	SplitNumber    *float64                `json:"splitNumber,omitempty"`
	MinInterval    *float64                `json:"minInterval,omitempty"`
	MaxInterval    *float64                `json:"maxInterval,omitempty"`
	Interval       *float64                `json:"interval,omitempty"`
	LogBase        *float64                `json:"logBase,omitempty"`
	AxisLabel      *element.AxisLabel      `json:"axisLabel,omitempty"`
	AxisTick       *element.AxisTick       `json:"axisTick,omitempty"`
	MinorTick      *element.MinorTick      `json:"minorTick,omitempty"`
	AxisLine       *element.AxisLine       `json:"axisLine,omitempty"`
	AxisPointer    *element.AxisPointer    `json:"axisPointer,omitempty"`
	SplitArea      *element.SplitArea      `json:"splitArea,omitempty"`
	SplitLine      *element.SplitLine      `json:"splitLine,omitempty"`
	MinorSplitLine *element.MinorSplitLine `json:"minorSplitLine,omitempty"`
	// Data holds the categories of a category axis.
	Data []string `json:"data,omitempty"`
}

func NewAxis() *Axis {
	return &Axis{}
}

func (a *Axis) WithType(v element.AxisType) *Axis {
	a.Type = v
	return a
}

func (a *Axis) WithID(v string) *Axis {
	a.ID = &v
	return a
}

func (a *Axis) WithShow(v bool) *Axis {
	a.Show = &v
	return a
}

func (a *Axis) WithGridIndex(v float64) *Axis {
	a.GridIndex = &v
	return a
}

func (a *Axis) WithOffset(v float64) *Axis {
	a.Offset = &v
	return a
}

func (a *Axis) WithPosition(v element.CompositeValue) *Axis {
	a.Position = v
	return a
}

func (a *Axis) WithName(v string) *Axis {
	a.Name = &v
	return a
}

func (a *Axis) WithNameLocation(v element.NameLocation) *Axis {
	a.NameLocation = v
	return a
}

func (a *Axis) WithNameTextStyle(v *element.TextStyle) *Axis {
	a.NameTextStyle = v
	return a
}

func (a *Axis) WithNameGap(v float64) *Axis {
	a.NameGap = &v
	return a
}

func (a *Axis) WithNameRotate(v float64) *Axis {
	a.NameRotate = &v
	return a
}

func (a *Axis) WithInverse(v bool) *Axis {
	a.Inverse = &v
	return a
}

func (a *Axis) WithAlignTicks(v bool) *Axis {
	a.AlignTicks = &v
	return a
}

func (a *Axis) WithBoundaryGap(v *element.BoundaryGap) *Axis {
	a.BoundaryGap = v
	return a
}

func (a *Axis) WithMin(v element.CompositeValue) *Axis {
	a.Min = v
	return a
}

func (a *Axis) WithMax(v element.CompositeValue) *Axis {
	a.Max = v
	return a
}

func (a *Axis) WithScale(v bool) *Axis {
	a.Scale = &v
	return a
}

func (a *Axis) WithSplitNumber(v float64) *Axis {
	a.SplitNumber = &v
	return a
}

func (a *Axis) WithMinInterval(v float64) *Axis {
	a.MinInterval = &v
	return a
}

func (a *Axis) WithMaxInterval(v float64) *Axis {
	a.MaxInterval = &v
	return a
}

func (a *Axis) WithInterval(v float64) *Axis {
	a.Interval = &v
	return a
}

func (a *Axis) WithLogBase(v float64) *Axis {
	a.LogBase = &v
	return a
}

func (a *Axis) WithAxisLabel(v *element.AxisLabel) *Axis {
	a.AxisLabel = v
	return a
}

func (a *Axis) WithAxisTick(v *element.AxisTick) *Axis {
	a.AxisTick = v
	return a
}

func (a *Axis) WithMinorTick(v *element.MinorTick) *Axis {
	a.MinorTick = v
	return a
}

func (a *Axis) WithAxisLine(v *element.AxisLine) *Axis {
	a.AxisLine = v
	return a
}

func (a *Axis) WithAxisPointer(v *element.AxisPointer) *Axis {
	a.AxisPointer = v
	return a
}

func (a *Axis) WithSplitArea(v *element.SplitArea) *Axis {
	a.SplitArea = v
	return a
}

func (a *Axis) WithSplitLine(v *element.SplitLine) *Axis {
	a.SplitLine = v
	return a
}

func (a *Axis) WithMinorSplitLine(v *element.MinorSplitLine) *Axis {
	a.MinorSplitLine = v
	return a
}

func (a *Axis) WithData(v ...string) *Axis {
	a.Data = v
	return a
}
