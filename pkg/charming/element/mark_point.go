package element

type MarkPointData struct {
	Type      MarkPointDataType `json:"type,omitempty"`
	Name      *string           `json:"name,omitempty"`
	XAxis     CompositeValue    `json:"xAxis,omitempty"`
	YAxis     CompositeValue    `json:"yAxis,omitempty"`
	Coord     CompositeValue    `json:"coord,omitempty"`
	Value     CompositeValue    `json:"value,omitempty"`
	ItemStyle *ItemStyle        `json:"itemStyle,omitempty"`
}

func NewMarkPointData() *MarkPointData {
	return &MarkPointData{}
}

func (m *MarkPointData) WithType(v MarkPointDataType) *MarkPointData {
	m.Type = v
	return m
}

func (m *MarkPointData) WithName(v string) *MarkPointData {
	m.Name = &v
	return m
}

func (m *MarkPointData) WithXAxis(v CompositeValue) *MarkPointData {
	m.XAxis = v
	return m
}

func (m *MarkPointData) WithYAxis(v CompositeValue) *MarkPointData {
	m.YAxis = v
	return m
}

func (m *MarkPointData) WithCoord(v CompositeValue) *MarkPointData {
	m.Coord = v
	return m
}

func (m *MarkPointData) WithValue(v CompositeValue) *MarkPointData {
	m.Value = v
	return m
}

func (m *MarkPointData) WithItemStyle(v *ItemStyle) *MarkPointData {
	m.ItemStyle = v
	return m
}

// MarkPoint pins markers such as the maximum or minimum onto a series.
type MarkPoint struct {
	Symbol     Symbol           `json:"symbol,omitempty"`
	SymbolSize SymbolSize       `json:"symbolSize,omitempty"`
	Label      *Label           `json:"label,omitempty"`
	ItemStyle  *ItemStyle       `json:"itemStyle,omitempty"`
	Data       []*MarkPointData `json:"data,omitempty"`
}

func NewMarkPoint() *MarkPoint {
	return &MarkPoint{}
}

func (m *MarkPoint) WithSymbol(v Symbol) *MarkPoint {
	m.Symbol = v
	return m
}

func (m *MarkPoint) WithSymbolSize(v SymbolSize) *MarkPoint {
	m.SymbolSize = v
	return m
}

func (m *MarkPoint) WithLabel(v *Label) *MarkPoint {
	m.Label = v
	return m
}

func (m *MarkPoint) WithItemStyle(v *ItemStyle) *MarkPoint {
	m.ItemStyle = v
	return m
}

func (m *MarkPoint) WithData(v ...*MarkPointData) *MarkPoint {
	m.Data = v
	return m
}
