package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Scatter is a scatter (bubble) series.
type Scatter struct {
	Type             string                   `json:"type"`
	ID               *string                  `json:"id,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	ColorBy          element.ColorBy          `json:"colorBy,omitempty"`
	DatasetIndex     *float64                 `json:"datasetIndex,omitempty"`
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *float64                 `json:"xAxisIndex,omitempty"`
	YAxisIndex       *float64                 `json:"yAxisIndex,omitempty"`
	PolarIndex       *float64                 `json:"polarIndex,omitempty"`
	SingleAxisIndex  *float64                 `json:"singleAxisIndex,omitempty"`
	GeoIndex         *float64                 `json:"geoIndex,omitempty"`
	CalendarIndex    *float64                 `json:"calendarIndex,omitempty"`
	Symbol           element.Symbol           `json:"symbol,omitempty"`
	SymbolSize       element.SymbolSize       `json:"symbolSize,omitempty"`
	SymbolRotate     *float64                 `json:"symbolRotate,omitempty"`
	Large            *bool                    `json:"large,omitempty"`
	LargeThreshold   *float64                 `json:"largeThreshold,omitempty"`
	Label            *element.Label           `json:"label,omitempty"`
	LabelLayout      *element.LabelLayout     `json:"labelLayout,omitempty"`
	Encode           *element.DimensionEncode `json:"encode,omitempty"`
	MarkPoint        *element.MarkPoint       `json:"markPoint,omitempty"`
	MarkLine         *element.MarkLine        `json:"markLine,omitempty"`
	MarkArea         *element.MarkArea        `json:"markArea,omitempty"`
	ItemStyle        *element.ItemStyle       `json:"itemStyle,omitempty"`
	Emphasis         *element.Emphasis        `json:"emphasis,omitempty"`
	Tooltip          *element.Tooltip         `json:"tooltip,omitempty"`
	Data             datatype.DataFrame       `json:"data,omitempty"`
}

func NewScatter() *Scatter {
	return &Scatter{Type: "scatter"}
}

func (s *Scatter) SeriesType() string {
	return s.Type
}

func (s *Scatter) WithID(v string) *Scatter {
	s.ID = &v
	return s
}

func (s *Scatter) WithName(v string) *Scatter {
	s.Name = &v
	return s
}

func (s *Scatter) WithColorBy(v element.ColorBy) *Scatter {
	s.ColorBy = v
	return s
}

func (s *Scatter) WithDatasetIndex(v float64) *Scatter {
	s.DatasetIndex = &v
	return s
}

func (s *Scatter) WithCoordinateSystem(v element.CoordinateSystem) *Scatter {
	s.CoordinateSystem = v
	return s
}

func (s *Scatter) WithXAxisIndex(v float64) *Scatter {
	s.XAxisIndex = &v
	return s
}

func (s *Scatter) WithYAxisIndex(v float64) *Scatter {
	s.YAxisIndex = &v
	return s
}

func (s *Scatter) WithPolarIndex(v float64) *Scatter {
	s.PolarIndex = &v
	return s
}

func (s *Scatter) WithSingleAxisIndex(v float64) *Scatter {
	s.SingleAxisIndex = &v
	return s
}

func (s *Scatter) WithGeoIndex(v float64) *Scatter {
	s.GeoIndex = &v
	return s
}

func (s *Scatter) WithCalendarIndex(v float64) *Scatter {
	s.CalendarIndex = &v
	return s
}

func (s *Scatter) WithSymbol(v element.Symbol) *Scatter {
	s.Symbol = v
	return s
}

func (s *Scatter) WithSymbolSize(v element.SymbolSize) *Scatter {
	s.SymbolSize = v
	return s
}

func (s *Scatter) WithSymbolRotate(v float64) *Scatter {
	s.SymbolRotate = &v
	return s
}

func (s *Scatter) WithLarge(v bool) *Scatter {
	s.Large = &v
	return s
}

func (s *Scatter) WithLargeThreshold(v float64) *Scatter {
	s.LargeThreshold = &v
	return s
}

func (s *Scatter) WithLabel(v *element.Label) *Scatter {
	s.Label = v
	return s
}

func (s *Scatter) WithLabelLayout(v *element.LabelLayout) *Scatter {
	s.LabelLayout = v
	return s
}

func (s *Scatter) WithEncode(v *element.DimensionEncode) *Scatter {
	s.Encode = v
	return s
}

func (s *Scatter) WithMarkPoint(v *element.MarkPoint) *Scatter {
	s.MarkPoint = v
	return s
}

func (s *Scatter) WithMarkLine(v *element.MarkLine) *Scatter {
	s.MarkLine = v
	return s
}

func (s *Scatter) WithMarkArea(v *element.MarkArea) *Scatter {
	s.MarkArea = v
	return s
}

func (s *Scatter) WithItemStyle(v *element.ItemStyle) *Scatter {
	s.ItemStyle = v
	return s
}

func (s *Scatter) WithEmphasis(v *element.Emphasis) *Scatter {
	s.Emphasis = v
	return s
}

func (s *Scatter) WithTooltip(v *element.Tooltip) *Scatter {
	s.Tooltip = v
	return s
}

func (s *Scatter) WithData(v datatype.DataFrame) *Scatter {
	s.Data = v
	return s
}
