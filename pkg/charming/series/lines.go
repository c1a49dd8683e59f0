package series

import "github.com/ukaji3/charming-go/pkg/charming/element"

// LinesData is one polyline of a lines series, given by its coordinates.
type LinesData struct {
	Name      *string                `json:"name,omitempty"`
	Coords    [][2]float64           `json:"coords,omitempty"`
	Value     element.CompositeValue `json:"value,omitempty"`
	LineStyle *element.LineStyle     `json:"lineStyle,omitempty"`
}

func NewLinesData() *LinesData {
	return &LinesData{}
}

func (l *LinesData) WithName(v string) *LinesData {
	l.Name = &v
	return l
}

func (l *LinesData) WithCoords(v ...[2]float64) *LinesData {
	l.Coords = v
	return l
}

func (l *LinesData) WithValue(v element.CompositeValue) *LinesData {
	l.Value = v
	return l
}

func (l *LinesData) WithLineStyle(v *element.LineStyle) *LinesData {
	l.LineStyle = v
	return l
}

type LinesEffect struct {
	Show        *bool              `json:"show,omitempty"`
	Period      *float64           `json:"period,omitempty"`
	TrailLength *float64           `json:"trailLength,omitempty"`
	Color       element.Color      `json:"color,omitempty"`
	Symbol      element.Symbol     `json:"symbol,omitempty"`
	SymbolSize  element.SymbolSize `json:"symbolSize,omitempty"`
	Loop        *bool              `json:"loop,omitempty"`
}

func NewLinesEffect() *LinesEffect {
	return &LinesEffect{}
}

func (l *LinesEffect) WithShow(v bool) *LinesEffect {
	l.Show = &v
	return l
}

func (l *LinesEffect) WithPeriod(v float64) *LinesEffect {
	l.Period = &v
	return l
}

func (l *LinesEffect) WithTrailLength(v float64) *LinesEffect {
	l.TrailLength = &v
	return l
}

func (l *LinesEffect) WithColor(v element.Color) *LinesEffect {
	l.Color = v
	return l
}

func (l *LinesEffect) WithSymbol(v element.Symbol) *LinesEffect {
	l.Symbol = v
	return l
}

func (l *LinesEffect) WithSymbolSize(v element.SymbolSize) *LinesEffect {
	l.SymbolSize = v
	return l
}

func (l *LinesEffect) WithLoop(v bool) *LinesEffect {
	l.Loop = &v
	return l
}

// Lines draws routes or flows between coordinates, usually on a geo component.
type Lines struct {
	Type             string                   `json:"type"`
	ID               *string                  `json:"id,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	ColorBy          element.ColorBy          `json:"colorBy,omitempty"`
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *float64                 `json:"xAxisIndex,omitempty"`
	YAxisIndex       *float64                 `json:"yAxisIndex,omitempty"`
	GeoIndex         *float64                 `json:"geoIndex,omitempty"`
	Polyline         *bool                    `json:"polyline,omitempty"`
	Effect           *LinesEffect             `json:"effect,omitempty"`
	Large            *bool                    `json:"large,omitempty"`
	LargeThreshold   *float64                 `json:"largeThreshold,omitempty"`
	Symbol           []element.Symbol         `json:"symbol,omitempty"`
	SymbolSize       *float64                 `json:"symbolSize,omitempty"`
	LineStyle        *element.LineStyle       `json:"lineStyle,omitempty"`
	Label            *element.Label           `json:"label,omitempty"`
	LabelLayout      *element.LabelLayout     `json:"labelLayout,omitempty"`
	Emphasis         *element.Emphasis        `json:"emphasis,omitempty"`
	Data             []*LinesData             `json:"data,omitempty"`
}

func NewLines() *Lines {
	return &Lines{Type: "lines"}
}

func (l *Lines) SeriesType() string {
	return l.Type
}

func (l *Lines) WithID(v string) *Lines {
	l.ID = &v
	return l
}

func (l *Lines) WithName(v string) *Lines {
	l.Name = &v
	return l
}

func (l *Lines) WithColorBy(v element.ColorBy) *Lines {
	l.ColorBy = v
	return l
}

func (l *Lines) WithCoordinateSystem(v element.CoordinateSystem) *Lines {
	l.CoordinateSystem = v
	return l
}

func (l *Lines) WithXAxisIndex(v float64) *Lines {
	l.XAxisIndex = &v
	return l
}

func (l *Lines) WithYAxisIndex(v float64) *Lines {
	l.YAxisIndex = &v
	return l
}

func (l *Lines) WithGeoIndex(v float64) *Lines {
	l.GeoIndex = &v
	return l
}

func (l *Lines) WithPolyline(v bool) *Lines {
	l.Polyline = &v
	return l
}

func (l *Lines) WithEffect(v *LinesEffect) *Lines {
	l.Effect = v
	return l
}

func (l *Lines) WithLarge(v bool) *Lines {
	l.Large = &v
	return l
}

func (l *Lines) WithLargeThreshold(v float64) *Lines {
	l.LargeThreshold = &v
	return l
}

func (l *Lines) WithSymbol(v ...element.Symbol) *Lines {
	l.Symbol = v
	return l
}

func (l *Lines) WithSymbolSize(v float64) *Lines {
	l.SymbolSize = &v
	return l
}

func (l *Lines) WithLineStyle(v *element.LineStyle) *Lines {
	l.LineStyle = v
	return l
}

func (l *Lines) WithLabel(v *element.Label) *Lines {
	l.Label = v
	return l
}

func (l *Lines) WithLabelLayout(v *element.LabelLayout) *Lines {
	l.LabelLayout = v
	return l
}

func (l *Lines) WithEmphasis(v *element.Emphasis) *Lines {
	l.Emphasis = v
	return l
}

func (l *Lines) WithData(v ...*LinesData) *Lines {
	l.Data = v
	return l
}
