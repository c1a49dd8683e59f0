package element

type AxisTick struct {
	Show           *bool      `json:"show,omitempty"`
	AlignWithLabel *bool      `json:"alignWithLabel,omitempty"`
	SplitNumber    *float64   `json:"splitNumber,omitempty"`
	Length         *float64   `json:"length,omitempty"`
	Distance       *float64   `json:"distance,omitempty"`
	LineStyle      *LineStyle `json:"lineStyle,omitempty"`
}

func NewAxisTick() *AxisTick {
	return &AxisTick{}
}

func (a *AxisTick) WithShow(v bool) *AxisTick {
	a.Show = &v
	return a
}

func (a *AxisTick) WithAlignWithLabel(v bool) *AxisTick {
	a.AlignWithLabel = &v
	return a
}

func (a *AxisTick) WithSplitNumber(v float64) *AxisTick {
	a.SplitNumber = &v
	return a
}

func (a *AxisTick) WithLength(v float64) *AxisTick {
	a.Length = &v
	return a
}

func (a *AxisTick) WithDistance(v float64) *AxisTick {
	a.Distance = &v
	return a
}

func (a *AxisTick) WithLineStyle(v *LineStyle) *AxisTick {
	a.LineStyle = v
	return a
}

// MinorTick adds ticks between the main ticks of a value axis.
type MinorTick struct {
	Show        *bool      `json:"show,omitempty"`
	SplitNumber *float64   `json:"splitNumber,omitempty"`
	Length      *float64   `json:"length,omitempty"`
	LineStyle   *LineStyle `json:"lineStyle,omitempty"`
}

func NewMinorTick() *MinorTick {
	return &MinorTick{}
}

func (m *MinorTick) WithShow(v bool) *MinorTick {
	m.Show = &v
	return m
}

func (m *MinorTick) WithSplitNumber(v float64) *MinorTick {
	m.SplitNumber = &v
	return m
}

func (m *MinorTick) WithLength(v float64) *MinorTick {
	m.Length = &v
	return m
}

func (m *MinorTick) WithLineStyle(v *LineStyle) *MinorTick {
	m.LineStyle = v
	return m
}
