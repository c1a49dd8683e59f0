package element

// AxisLabel styles the tick labels of an axis.
type AxisLabel struct {
	Show      *bool     `json:"show,omitempty"`
	Inside    *bool     `json:"inside,omitempty"`
	Distance  *float64  `json:"distance,omitempty"`
	FontSize  *float64  `json:"fontSize,omitempty"`
	Color     Color     `json:"color,omitempty"`
	Formatter Formatter `json:"formatter,omitempty"`
	Rotate    *float64  `json:"rotate,omitempty"`
	Interval  *float64  `json:"interval,omitempty"`
}

func NewAxisLabel() *AxisLabel {
	return &AxisLabel{}
}

func (a *AxisLabel) WithShow(v bool) *AxisLabel {
	a.Show = &v
	return a
}

func (a *AxisLabel) WithInside(v bool) *AxisLabel {
	a.Inside = &v
	return a
}

func (a *AxisLabel) WithDistance(v float64) *AxisLabel {
	a.Distance = &v
	return a
}

func (a *AxisLabel) WithFontSize(v float64) *AxisLabel {
	a.FontSize = &v
	return a
}

func (a *AxisLabel) WithColor(v Color) *AxisLabel {
	a.Color = v
	return a
}

func (a *AxisLabel) WithFormatter(v Formatter) *AxisLabel {
	a.Formatter = v
	return a
}

func (a *AxisLabel) WithRotate(v float64) *AxisLabel {
	a.Rotate = &v
	return a
}

func (a *AxisLabel) WithInterval(v float64) *AxisLabel {
	a.Interval = &v
	return a
}
