package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Line is a line or area series.
type Line struct {
	Type             string                   `json:"type"`
	ID               *string                  `json:"id,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	ColorBy          element.ColorBy          `json:"colorBy,omitempty"`
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *float64                 `json:"xAxisIndex,omitempty"`
	YAxisIndex       *float64                 `json:"yAxisIndex,omitempty"`
	PolarIndex       *float64                 `json:"polarIndex,omitempty"`
	Symbol           element.Symbol           `json:"symbol,omitempty"`
	SymbolSize       element.SymbolSize       `json:"symbolSize,omitempty"`
	SymbolRotate     *float64                 `json:"symbolRotate,omitempty"`
	ShowSymbol       *bool                    `json:"showSymbol,omitempty"`
	ShowAllSymbol    *bool                    `json:"showAllSymbol,omitempty"`
	Stack            *string                  `json:"stack,omitempty"`
	// Smooth draws the line as a smoothed curve.
	Smooth *bool `json:"smooth,omitempty"`
	// Step draws a step line, turning at the start, middle or end of each interval.
	Step *string `json:"step,omitempty"`
	// ConnectNulls bridges gaps left by null data points.
	ConnectNulls *bool                `json:"connectNulls,omitempty"`
	Clip         *bool                `json:"clip,omitempty"`
	Label        *element.Label       `json:"label,omitempty"`
	EndLabel     *element.Label       `json:"endLabel,omitempty"`
	LabelLine    *element.LabelLine   `json:"labelLine,omitempty"`
	LabelLayout  *element.LabelLayout `json:"labelLayout,omitempty"`
	LineStyle    *element.LineStyle   `json:"lineStyle,omitempty"`
	// AreaStyle turns the line into an area chart.
	AreaStyle      *element.AreaStyle       `json:"areaStyle,omitempty"`
	ItemStyle      *element.ItemStyle       `json:"itemStyle,omitempty"`
	Emphasis       *element.Emphasis        `json:"emphasis,omitempty"`
	Blur           *element.Blur            `json:"blur,omitempty"`
	Select         *element.Select          `json:"select,omitempty"`
	Sampling       *string                  `json:"sampling,omitempty"`
	DatasetIndex   *float64                 `json:"datasetIndex,omitempty"`
	SeriesLayoutBy *string                  `json:"seriesLayoutBy,omitempty"`
	Encode         *element.DimensionEncode `json:"encode,omitempty"`
	MarkPoint      *element.MarkPoint       `json:"markPoint,omitempty"`
	MarkLine       *element.MarkLine        `json:"markLine,omitempty"`
	MarkArea       *element.MarkArea        `json:"markArea,omitempty"`
	ZLevel         *float64                 `json:"zlevel,omitempty"`
	Z              *float64                 `json:"z,omitempty"`
	Silent         *bool                    `json:"silent,omitempty"`
	Tooltip        *element.Tooltip         `json:"tooltip,omitempty"`
	Data           datatype.DataFrame       `json:"data,omitempty"`
}

func NewLine() *Line {
	return &Line{Type: "line"}
}

func (l *Line) SeriesType() string {
	return l.Type
}

func (l *Line) WithID(v string) *Line {
	l.ID = &v
	return l
}

func (l *Line) WithName(v string) *Line {
	l.Name = &v
	return l
}

func (l *Line) WithColorBy(v element.ColorBy) *Line {
	l.ColorBy = v
	return l
}

func (l *Line) WithCoordinateSystem(v element.CoordinateSystem) *Line {
	l.CoordinateSystem = v
	return l
}

func (l *Line) WithXAxisIndex(v float64) *Line {
	l.XAxisIndex = &v
	return l
}

func (l *Line) WithYAxisIndex(v float64) *Line {
	l.YAxisIndex = &v
	return l
}

func (l *Line) WithPolarIndex(v float64) *Line {
	l.PolarIndex = &v
	return l
}

func (l *Line) WithSymbol(v element.Symbol) *Line {
	l.Symbol = v
	return l
}

func (l *Line) WithSymbolSize(v element.SymbolSize) *Line {
	l.SymbolSize = v
	return l
}

func (l *Line) WithSymbolRotate(v float64) *Line {
	l.SymbolRotate = &v
	return l
}

func (l *Line) WithShowSymbol(v bool) *Line {
	l.ShowSymbol = &v
	return l
}

func (l *Line) WithShowAllSymbol(v bool) *Line {
	l.ShowAllSymbol = &v
	return l
}

func (l *Line) WithStack(v string) *Line {
	l.Stack = &v
	return l
}

func (l *Line) WithSmooth(v bool) *Line {
	l.Smooth = &v
	return l
}

func (l *Line) WithStep(v string) *Line {
	l.Step = &v
	return l
}

func (l *Line) WithConnectNulls(v bool) *Line {
	l.ConnectNulls = &v
	return l
}

func (l *Line) WithClip(v bool) *Line {
	l.Clip = &v
	return l
}

func (l *Line) WithLabel(v *element.Label) *Line {
	l.Label = v
	return l
}

func (l *Line) WithEndLabel(v *element.Label) *Line {
	l.EndLabel = v
	return l
}

func (l *Line) WithLabelLine(v *element.LabelLine) *Line {
	l.LabelLine = v
	return l
}

func (l *Line) WithLabelLayout(v *element.LabelLayout) *Line {
	l.LabelLayout = v
	return l
}

func (l *Line) WithLineStyle(v *element.LineStyle) *Line {
	l.LineStyle = v
	return l
}

func (l *Line) WithAreaStyle(v *element.AreaStyle) *Line {
	l.AreaStyle = v
	return l
}

func (l *Line) WithItemStyle(v *element.ItemStyle) *Line {
	l.ItemStyle = v
	return l
}

func (l *Line) WithEmphasis(v *element.Emphasis) *Line {
	l.Emphasis = v
	return l
}

func (l *Line) WithBlur(v *element.Blur) *Line {
	l.Blur = v
	return l
}

func (l *Line) WithSelect(v *element.Select) *Line {
	l.Select = v
	return l
}

func (l *Line) WithSampling(v string) *Line {
	l.Sampling = &v
	return l
}

func (l *Line) WithDatasetIndex(v float64) *Line {
	l.DatasetIndex = &v
	return l
}

func (l *Line) WithSeriesLayoutBy(v string) *Line {
	l.SeriesLayoutBy = &v
	return l
}

func (l *Line) WithEncode(v *element.DimensionEncode) *Line {
	l.Encode = v
	return l
}

func (l *Line) WithMarkPoint(v *element.MarkPoint) *Line {
	l.MarkPoint = v
	return l
}

func (l *Line) WithMarkLine(v *element.MarkLine) *Line {
	l.MarkLine = v
	return l
}

func (l *Line) WithMarkArea(v *element.MarkArea) *Line {
	l.MarkArea = v
	return l
}

func (l *Line) WithZLevel(v float64) *Line {
	l.ZLevel = &v
	return l
}

func (l *Line) WithZ(v float64) *Line {
	l.Z = &v
	return l
}

func (l *Line) WithSilent(v bool) *Line {
	l.Silent = &v
	return l
}

func (l *Line) WithTooltip(v *element.Tooltip) *Line {
	l.Tooltip = v
	return l
}

func (l *Line) WithData(v datatype.DataFrame) *Line {
	l.Data = v
	return l
}
