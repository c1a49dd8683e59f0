package element

// MarkAreaData is one corner of a marked area.
type MarkAreaData struct {
	Name      *string        `json:"name,omitempty"`
	XAxis     CompositeValue `json:"xAxis,omitempty"`
	YAxis     CompositeValue `json:"yAxis,omitempty"`
	Coord     CompositeValue `json:"coord,omitempty"`
	ItemStyle *ItemStyle     `json:"itemStyle,omitempty"`
}

func NewMarkAreaData() *MarkAreaData {
	return &MarkAreaData{}
}

func (m *MarkAreaData) WithName(v string) *MarkAreaData {
	m.Name = &v
	return m
}

func (m *MarkAreaData) WithXAxis(v CompositeValue) *MarkAreaData {
	m.XAxis = v
	return m
}

func (m *MarkAreaData) WithYAxis(v CompositeValue) *MarkAreaData {
	m.YAxis = v
	return m
}

func (m *MarkAreaData) WithCoord(v CompositeValue) *MarkAreaData {
	m.Coord = v
	return m
}

func (m *MarkAreaData) WithItemStyle(v *ItemStyle) *MarkAreaData {
	m.ItemStyle = v
	return m
}

// MarkArea highlights rectangular ranges of a series. Each data entry is
// the pair of opposite corners.
type MarkArea struct {
	Silent    *bool              `json:"silent,omitempty"`
	Label     *Label             `json:"label,omitempty"`
	ItemStyle *ItemStyle         `json:"itemStyle,omitempty"`
	Emphasis  *Emphasis          `json:"emphasis,omitempty"`
	Blur      *Blur              `json:"blur,omitempty"`
	Data      [][2]*MarkAreaData `json:"data,omitempty"`
}

func NewMarkArea() *MarkArea {
	return &MarkArea{}
}

func (m *MarkArea) WithSilent(v bool) *MarkArea {
	m.Silent = &v
	return m
}

func (m *MarkArea) WithLabel(v *Label) *MarkArea {
	m.Label = v
	return m
}

func (m *MarkArea) WithItemStyle(v *ItemStyle) *MarkArea {
	m.ItemStyle = v
	return m
}

func (m *MarkArea) WithEmphasis(v *Emphasis) *MarkArea {
	m.Emphasis = v
	return m
}

func (m *MarkArea) WithBlur(v *Blur) *MarkArea {
	m.Blur = v
	return m
}

func (m *MarkArea) WithData(v ...[2]*MarkAreaData) *MarkArea {
	m.Data = v
	return m
}
