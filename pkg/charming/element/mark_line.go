package element

// MarkLineData is a marked line, or one end of it.
type MarkLineData struct {
	// Type draws the line at a statistic of the series.
	Type   MarkLineDataType `json:"type,omitempty"`
	Name   *string          `json:"name,omitempty"`
	Symbol Symbol           `json:"symbol,omitempty"`
	// X and Y are pixel or percent positions in the container.
	X CompositeValue `json:"x,omitempty"`
	Y CompositeValue `json:"y,omitempty"`
	// XAxis and YAxis are positions in data coordinates.
	XAxis      CompositeValue `json:"xAxis,omitempty"`
	YAxis      CompositeValue `json:"yAxis,omitempty"`
	Coord      CompositeValue `json:"coord,omitempty"`
	ValueIndex *int           `json:"valueIndex,omitempty"`
	Label      *Label         `json:"label,omitempty"`
	LineStyle  *LineStyle     `json:"lineStyle,omitempty"`
}

func NewMarkLineData() *MarkLineData {
	return &MarkLineData{}
}

func (m *MarkLineData) WithType(v MarkLineDataType) *MarkLineData {
	m.Type = v
	return m
}

func (m *MarkLineData) WithName(v string) *MarkLineData {
	m.Name = &v
	return m
}

func (m *MarkLineData) WithSymbol(v Symbol) *MarkLineData {
	m.Symbol = v
	return m
}

func (m *MarkLineData) WithX(v CompositeValue) *MarkLineData {
	m.X = v
	return m
}

func (m *MarkLineData) WithY(v CompositeValue) *MarkLineData {
	m.Y = v
	return m
}

func (m *MarkLineData) WithXAxis(v CompositeValue) *MarkLineData {
	m.XAxis = v
	return m
}

func (m *MarkLineData) WithYAxis(v CompositeValue) *MarkLineData {
	m.YAxis = v
	return m
}

func (m *MarkLineData) WithCoord(v CompositeValue) *MarkLineData {
	m.Coord = v
	return m
}

func (m *MarkLineData) WithValueIndex(v int) *MarkLineData {
	m.ValueIndex = &v
	return m
}

func (m *MarkLineData) WithLabel(v *Label) *MarkLineData {
	m.Label = v
	return m
}

func (m *MarkLineData) WithLineStyle(v *LineStyle) *MarkLineData {
	m.LineStyle = v
	return m
}

// MarkLine draws reference lines over a series.
type MarkLine struct {
	Silent    *bool             `json:"silent,omitempty"`
	Label     *Label            `json:"label,omitempty"`
	LineStyle *LineStyle        `json:"lineStyle,omitempty"`
	ZLevel    *float64          `json:"zlevel,omitempty"`
	Z         *float64          `json:"z,omitempty"`
	Symbol    []Symbol          `json:"symbol,omitempty"`
	Precision *int              `json:"precision,omitempty"`
	Data      []MarkLineVariant `json:"data,omitempty"`
}

func NewMarkLine() *MarkLine {
	return &MarkLine{}
}

func (m *MarkLine) WithSilent(v bool) *MarkLine {
	m.Silent = &v
	return m
}

func (m *MarkLine) WithLabel(v *Label) *MarkLine {
	m.Label = v
	return m
}

func (m *MarkLine) WithLineStyle(v *LineStyle) *MarkLine {
	m.LineStyle = v
	return m
}

func (m *MarkLine) WithZLevel(v float64) *MarkLine {
	m.ZLevel = &v
	return m
}

func (m *MarkLine) WithZ(v float64) *MarkLine {
	m.Z = &v
	return m
}

func (m *MarkLine) WithSymbol(v ...Symbol) *MarkLine {
	m.Symbol = v
	return m
}

func (m *MarkLine) WithPrecision(v int) *MarkLine {
	m.Precision = &v
	return m
}
