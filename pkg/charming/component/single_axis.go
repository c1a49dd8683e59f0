package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

// SingleAxis is a standalone axis used by theme river and single axis scatter charts.
type SingleAxis struct {
	ID          *string                    `json:"id,omitempty"`
	Type        element.AxisType           `json:"type,omitempty"`
	Name        *string                    `json:"name,omitempty"`
	Left        element.CompositeValue     `json:"left,omitempty"`
	Top         element.CompositeValue     `json:"top,omitempty"`
	Right       element.CompositeValue     `json:"right,omitempty"`
	Bottom      element.CompositeValue     `json:"bottom,omitempty"`
	Width       element.CompositeValue     `json:"width,omitempty"`
	Height      element.CompositeValue     `json:"height,omitempty"`
	Orient      element.Orient             `json:"orient,omitempty"`
	Inverse     *bool                      `json:"inverse,omitempty"`
	BoundaryGap *element.BoundaryGap       `json:"boundaryGap,omitempty"`
	Min         element.CompositeValue     `json:"min,omitempty"`
	Max         element.CompositeValue     `json:"max,omitempty"`
	AxisLabel   *element.AxisLabel         `json:"axisLabel,omitempty"`
	AxisTick    *element.AxisTick          `json:"axisTick,omitempty"`
	AxisLine    *element.AxisLine          `json:"axisLine,omitempty"`
	AxisPointer *element.AxisPointer       `json:"axisPointer,omitempty"`
	SplitLine   *element.SplitLine         `json:"splitLine,omitempty"`
	Tooltip     *element.CoordinateTooltip `json:"tooltip,omitempty"`
	Data        []string                   `json:"data,omitempty"`
}

func NewSingleAxis() *SingleAxis {
	return &SingleAxis{}
}

func (s *SingleAxis) WithID(v string) *SingleAxis {
	s.ID = &v
	return s
}

func (s *SingleAxis) WithType(v element.AxisType) *SingleAxis {
	s.Type = v
	return s
}

func (s *SingleAxis) WithName(v string) *SingleAxis {
	s.Name = &v
	return s
}

func (s *SingleAxis) WithLeft(v element.CompositeValue) *SingleAxis {
	s.Left = v
	return s
}

func (s *SingleAxis) WithTop(v element.CompositeValue) *SingleAxis {
	s.Top = v
	return s
}

func (s *SingleAxis) WithRight(v element.CompositeValue) *SingleAxis {
	s.Right = v
	return s
}

func (s *SingleAxis) WithBottom(v element.CompositeValue) *SingleAxis {
	s.Bottom = v
	return s
}

func (s *SingleAxis) WithWidth(v element.CompositeValue) *SingleAxis {
	s.Width = v
	return s
}

func (s *SingleAxis) WithHeight(v element.CompositeValue) *SingleAxis {
	s.Height = v
	return s
}

func (s *SingleAxis) WithOrient(v element.Orient) *SingleAxis {
	s.Orient = v
	return s
}

func (s *SingleAxis) WithInverse(v bool) *SingleAxis {
	s.Inverse = &v
	return s
}

func (s *SingleAxis) WithBoundaryGap(v *element.BoundaryGap) *SingleAxis {
	s.BoundaryGap = v
	return s
}

func (s *SingleAxis) WithMin(v element.CompositeValue) *SingleAxis {
	s.Min = v
	return s
}

func (s *SingleAxis) WithMax(v element.CompositeValue) *SingleAxis {
	s.Max = v
	return s
}

func (s *SingleAxis) WithAxisLabel(v *element.AxisLabel) *SingleAxis {
	s.AxisLabel = v
	return s
}

func (s *SingleAxis) WithAxisTick(v *element.AxisTick) *SingleAxis {
	s.AxisTick = v
	return s
}

func (s *SingleAxis) WithAxisLine(v *element.AxisLine) *SingleAxis {
	s.AxisLine = v
	return s
}

func (s *SingleAxis) WithAxisPointer(v *element.AxisPointer) *SingleAxis {
	s.AxisPointer = v
	return s
}

func (s *SingleAxis) WithSplitLine(v *element.SplitLine) *SingleAxis {
	s.SplitLine = v
	return s
}

func (s *SingleAxis) WithTooltip(v *element.CoordinateTooltip) *SingleAxis {
	s.Tooltip = v
	return s
}

func (s *SingleAxis) WithData(v ...string) *SingleAxis {
	s.Data = v
	return s
}
