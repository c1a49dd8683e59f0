package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

// ParallelAxis is one vertical (or horizontal) axis of a parallel coordinate system.
type ParallelAxis struct {
	// Dim is the data dimension the axis shows.
	Dim           *float64             `json:"dim,omitempty"`
	ParallelIndex *float64             `json:"parallelIndex,omitempty"`
	Realtime      *bool                `json:"realtime,omitempty"`
	Type          element.AxisType     `json:"type,omitempty"`
	Name          *string              `json:"name,omitempty"`
	NameLocation  element.NameLocation `json:"nameLocation,omitempty"`
	NameGap       *float64             `json:"nameGap,omitempty"`
	Inverse       *bool                `json:"inverse,omitempty"`
	Max           *float64             `json:"max,omitempty"`
	Min           *float64             `json:"min,omitempty"`
	AxisLabel     *element.AxisLabel   `json:"axisLabel,omitempty"`
	Data          []string             `json:"data,omitempty"`
}

func NewParallelAxis() *ParallelAxis {
	return &ParallelAxis{}
}

func (p *ParallelAxis) WithDim(v float64) *ParallelAxis {
	p.Dim = &v
	return p
}

func (p *ParallelAxis) WithParallelIndex(v float64) *ParallelAxis {
	p.ParallelIndex = &v
	return p
}

func (p *ParallelAxis) WithRealtime(v bool) *ParallelAxis {
	p.Realtime = &v
	return p
}

func (p *ParallelAxis) WithType(v element.AxisType) *ParallelAxis {
	p.Type = v
	return p
}

func (p *ParallelAxis) WithName(v string) *ParallelAxis {
	p.Name = &v
	return p
}

func (p *ParallelAxis) WithNameLocation(v element.NameLocation) *ParallelAxis {
	p.NameLocation = v
	return p
}

func (p *ParallelAxis) WithNameGap(v float64) *ParallelAxis {
	p.NameGap = &v
	return p
}

func (p *ParallelAxis) WithInverse(v bool) *ParallelAxis {
	p.Inverse = &v
	return p
}

func (p *ParallelAxis) WithMax(v float64) *ParallelAxis {
	p.Max = &v
	return p
}

func (p *ParallelAxis) WithMin(v float64) *ParallelAxis {
	p.Min = &v
	return p
}

func (p *ParallelAxis) WithAxisLabel(v *element.AxisLabel) *ParallelAxis {
	p.AxisLabel = v
	return p
}

func (p *ParallelAxis) WithData(v ...string) *ParallelAxis {
	p.Data = v
	return p
}

// ParallelCoordinate is the "parallel" component hosting parallel axes.
type ParallelCoordinate struct {
	ID                  *string                `json:"id,omitempty"`
	ZLevel              *float64               `json:"zlevel,omitempty"`
	Z                   *float64               `json:"z,omitempty"`
	Left                element.CompositeValue `json:"left,omitempty"`
	Top                 element.CompositeValue `json:"top,omitempty"`
	Right               element.CompositeValue `json:"right,omitempty"`
	Bottom              element.CompositeValue `json:"bottom,omitempty"`
	Width               element.CompositeValue `json:"width,omitempty"`
	Height              element.CompositeValue `json:"height,omitempty"`
	Layout              element.Orient         `json:"layout,omitempty"`
	AxisExpandable      *bool                  `json:"axisExpandable,omitempty"`
	ParallelAxisDefault *ParallelAxis          `json:"parallelAxisDefault,omitempty"`
}

func NewParallelCoordinate() *ParallelCoordinate {
	return &ParallelCoordinate{}
}

func (p *ParallelCoordinate) WithID(v string) *ParallelCoordinate {
	p.ID = &v
	return p
}

func (p *ParallelCoordinate) WithZLevel(v float64) *ParallelCoordinate {
	p.ZLevel = &v
	return p
}

func (p *ParallelCoordinate) WithZ(v float64) *ParallelCoordinate {
	p.Z = &v
	return p
}

func (p *ParallelCoordinate) WithLeft(v element.CompositeValue) *ParallelCoordinate {
	p.Left = v
	return p
}

func (p *ParallelCoordinate) WithTop(v element.CompositeValue) *ParallelCoordinate {
	p.Top = v
	return p
}

func (p *ParallelCoordinate) WithRight(v element.CompositeValue) *ParallelCoordinate {
	p.Right = v
	return p
}

func (p *ParallelCoordinate) WithBottom(v element.CompositeValue) *ParallelCoordinate {
	p.Bottom = v
	return p
}

func (p *ParallelCoordinate) WithWidth(v element.CompositeValue) *ParallelCoordinate {
	p.Width = v
	return p
}

func (p *ParallelCoordinate) WithHeight(v element.CompositeValue) *ParallelCoordinate {
	p.Height = v
	return p
}

func (p *ParallelCoordinate) WithLayout(v element.Orient) *ParallelCoordinate {
	p.Layout = v
	return p
}

func (p *ParallelCoordinate) WithAxisExpandable(v bool) *ParallelCoordinate {
	p.AxisExpandable = &v
	return p
}

func (p *ParallelCoordinate) WithParallelAxisDefault(v *ParallelAxis) *ParallelCoordinate {
	p.ParallelAxisDefault = v
	return p
}
