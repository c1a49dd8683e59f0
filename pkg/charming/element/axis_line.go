package element

// AxisLine is the line of an axis itself.
type AxisLine struct {
	Show            *bool      `json:"show,omitempty"`
	OnZero          *bool      `json:"onZero,omitempty"`
	OnZeroAxisIndex *int       `json:"onZeroAxisIndex,omitempty"`
	Symbol          []Symbol   `json:"symbol,omitempty"`
	LineStyle       *LineStyle `json:"lineStyle,omitempty"`
}

func NewAxisLine() *AxisLine {
	return &AxisLine{}
}

func (a *AxisLine) WithShow(v bool) *AxisLine {
	a.Show = &v
	return a
}

func (a *AxisLine) WithOnZero(v bool) *AxisLine {
	a.OnZero = &v
	return a
}

func (a *AxisLine) WithOnZeroAxisIndex(v int) *AxisLine {
	a.OnZeroAxisIndex = &v
	return a
}

func (a *AxisLine) WithSymbol(v ...Symbol) *AxisLine {
	a.Symbol = v
	return a
}

func (a *AxisLine) WithLineStyle(v *LineStyle) *AxisLine {
	a.LineStyle = v
	return a
}
