package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

type VisualMapType string

const (
	VisualMapTypeContinuous VisualMapType = "continuous"
	VisualMapTypePiecewise  VisualMapType = "piecewise"
)

// VisualMapPiece is one interval (or exact value) of a piecewise visual map.
type VisualMapPiece struct {
	Min    *float64               `json:"min,omitempty"`
	Max    *float64               `json:"max,omitempty"`
	Lt     *float64               `json:"lt,omitempty"`
	Lte    *float64               `json:"lte,omitempty"`
	Gt     *float64               `json:"gt,omitempty"`
	Gte    *float64               `json:"gte,omitempty"`
	Value  element.CompositeValue `json:"value,omitempty"`
	Label  *string                `json:"label,omitempty"`
	Color  element.Color          `json:"color,omitempty"`
	Symbol element.Symbol         `json:"symbol,omitempty"`
}

func NewVisualMapPiece() *VisualMapPiece {
	return &VisualMapPiece{}
}

func (p *VisualMapPiece) WithMin(v float64) *VisualMapPiece {
	p.Min = &v
	return p
}

func (p *VisualMapPiece) WithMax(v float64) *VisualMapPiece {
	p.Max = &v
	return p
}

func (p *VisualMapPiece) WithLt(v float64) *VisualMapPiece {
	p.Lt = &v
	return p
}

func (p *VisualMapPiece) WithLte(v float64) *VisualMapPiece {
	p.Lte = &v
	return p
}

func (p *VisualMapPiece) WithGt(v float64) *VisualMapPiece {
	p.Gt = &v
	return p
}

func (p *VisualMapPiece) WithGte(v float64) *VisualMapPiece {
	p.Gte = &v
	return p
}

func (p *VisualMapPiece) WithValue(v element.CompositeValue) *VisualMapPiece {
	p.Value = v
	return p
}

func (p *VisualMapPiece) WithLabel(v string) *VisualMapPiece {
	p.Label = &v
	return p
}

func (p *VisualMapPiece) WithColor(v element.Color) *VisualMapPiece {
	p.Color = v
	return p
}

func (p *VisualMapPiece) WithSymbol(v element.Symbol) *VisualMapPiece {
	p.Symbol = v
	return p
}

// VisualMapChannel is the set of visual encodings applied inside or outside
// the selected range.
type VisualMapChannel struct {
	Color      []element.Color  `json:"color,omitempty"`
	Symbol     []element.Symbol `json:"symbol,omitempty"`
	SymbolSize []float64        `json:"symbolSize,omitempty"`
	Opacity    []float64        `json:"opacity,omitempty"`
}

func NewVisualMapChannel() *VisualMapChannel {
	return &VisualMapChannel{}
}

func (c *VisualMapChannel) WithColor(v ...element.Color) *VisualMapChannel {
	c.Color = v
	return c
}

func (c *VisualMapChannel) WithSymbol(v ...element.Symbol) *VisualMapChannel {
	c.Symbol = v
	return c
}

func (c *VisualMapChannel) WithSymbolSize(v ...float64) *VisualMapChannel {
	c.SymbolSize = v
	return c
}

func (c *VisualMapChannel) WithOpacity(v ...float64) *VisualMapChannel {
	c.Opacity = v
	return c
}

// VisualMap maps data values to visual channels such as color and size.
type VisualMap struct {
	Type VisualMapType `json:"type,omitempty"`
	ID   *string       `json:"id,omitempty"`
	Show *bool         `json:"show,omitempty"`
	// Dimension is the data dimension mapped to visuals.
	Dimension   element.CompositeValue `json:"dimension,omitempty"`
	SeriesIndex element.CompositeValue `json:"seriesIndex,omitempty"`
	Min         *float64               `json:"min,omitempty"`
	Max         *float64               `json:"max,omitempty"`
	Range       *[2]float64            `json:"range,omitempty"`
	Categories  []string               `json:"categories,omitempty"`
	Calculable  *bool                  `json:"calculable,omitempty"`
	Realtime    *bool                  `json:"realtime,omitempty"`
	Inverse     *bool                  `json:"inverse,omitempty"`
	Precision   *float64               `json:"precision,omitempty"`
	SplitNumber *float64               `json:"splitNumber,omitempty"`
	ItemWidth   *float64               `json:"itemWidth,omitempty"`
	ItemHeight  *float64               `json:"itemHeight,omitempty"`
	Orient      element.Orient         `json:"orient,omitempty"`
	Left        element.CompositeValue `json:"left,omitempty"`
	Top         element.CompositeValue `json:"top,omitempty"`
	Right       element.CompositeValue `json:"right,omitempty"`
	Bottom      element.CompositeValue `json:"bottom,omitempty"`
	// Text is the pair of labels drawn at the high and low ends.
	Text      *[2]string         `json:"text,omitempty"`
	TextStyle *element.TextStyle `json:"textStyle,omitempty"`
	// Color is the legacy shorthand for InRange colors, listed from high to low.
	Color      []element.Color   `json:"color,omitempty"`
	InRange    *VisualMapChannel `json:"inRange,omitempty"`
	OutOfRange *VisualMapChannel `json:"outOfRange,omitempty"`
	Pieces     []*VisualMapPiece `json:"pieces,omitempty"`
}

func NewVisualMap() *VisualMap {
	return &VisualMap{}
}

func (m *VisualMap) WithType(v VisualMapType) *VisualMap {
	m.Type = v
	return m
}

func (m *VisualMap) WithID(v string) *VisualMap {
	m.ID = &v
	return m
}

func (m *VisualMap) WithShow(v bool) *VisualMap {
	m.Show = &v
	return m
}

func (m *VisualMap) WithDimension(v element.CompositeValue) *VisualMap {
	m.Dimension = v
	return m
}

func (m *VisualMap) WithSeriesIndex(v element.CompositeValue) *VisualMap {
	m.SeriesIndex = v
	return m
}

func (m *VisualMap) WithMin(v float64) *VisualMap {
	m.Min = &v
	return m
}

func (m *VisualMap) WithMax(v float64) *VisualMap {
	m.Max = &v
	return m
}

func (m *VisualMap) WithRange(min, max float64) *VisualMap {
	m.Range = &[2]float64{min, max}
	return m
}

func (m *VisualMap) WithCategories(v ...string) *VisualMap {
	m.Categories = v
	return m
}

func (m *VisualMap) WithCalculable(v bool) *VisualMap {
	m.Calculable = &v
	return m
}

func (m *VisualMap) WithRealtime(v bool) *VisualMap {
	m.Realtime = &v
	return m
}

func (m *VisualMap) WithInverse(v bool) *VisualMap {
	m.Inverse = &v
	return m
}

func (m *VisualMap) WithPrecision(v float64) *VisualMap {
	m.Precision = &v
	return m
}

func (m *VisualMap) WithSplitNumber(v float64) *VisualMap {
	m.SplitNumber = &v
	return m
}

func (m *VisualMap) WithItemWidth(v float64) *VisualMap {
	m.ItemWidth = &v
	return m
}

func (m *VisualMap) WithItemHeight(v float64) *VisualMap {
	m.ItemHeight = &v
	return m
}

func (m *VisualMap) WithOrient(v element.Orient) *VisualMap {
	m.Orient = v
	return m
}

func (m *VisualMap) WithLeft(v element.CompositeValue) *VisualMap {
	m.Left = v
	return m
}

func (m *VisualMap) WithTop(v element.CompositeValue) *VisualMap {
	m.Top = v
	return m
}

func (m *VisualMap) WithRight(v element.CompositeValue) *VisualMap {
	m.Right = v
	return m
}

func (m *VisualMap) WithBottom(v element.CompositeValue) *VisualMap {
	m.Bottom = v
	return m
}

func (m *VisualMap) WithText(high, low string) *VisualMap {
	m.Text = &[2]string{high, low}
	return m
}

func (m *VisualMap) WithTextStyle(v *element.TextStyle) *VisualMap {
	m.TextStyle = v
	return m
}

func (m *VisualMap) WithColor(v ...element.Color) *VisualMap {
	m.Color = v
	return m
}

func (m *VisualMap) WithInRange(v *VisualMapChannel) *VisualMap {
	m.InRange = v
	return m
}

func (m *VisualMap) WithOutOfRange(v *VisualMapChannel) *VisualMap {
	m.OutOfRange = v
	return m
}

func (m *VisualMap) WithPieces(v ...*VisualMapPiece) *VisualMap {
	m.Pieces = v
	return m
}
