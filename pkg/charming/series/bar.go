// Package series holds the series types of a chart. Every series carries
// its ECharts "type" key, set by its constructor.
package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Bar is a bar (column) series.
type Bar struct {
	Type string  `json:"type"`
	ID   *string `json:"id,omitempty"`
	// Name shows in tooltips and legends, and filters the series in legend clicks.
	Name            *string         `json:"name,omitempty"`
	ColorBy         element.ColorBy `json:"colorBy,omitempty"`
	LegendHoverLink *bool           `json:"legendHoverLink,omitempty"`
	// CoordinateSystem is cartesian2d (the default) or polar.
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *float64                 `json:"xAxisIndex,omitempty"`
	YAxisIndex       *float64                 `json:"yAxisIndex,omitempty"`
	PolarIndex       *float64                 `json:"polarIndex,omitempty"`
	// RoundCap rounds the bar ends in a polar coordinate system.
	RoundCap        *bool                    `json:"roundCap,omitempty"`
	RealtimeSort    *bool                    `json:"realtimeSort,omitempty"`
	ShowBackground  *bool                    `json:"showBackground,omitempty"`
	BackgroundStyle *element.BackgroundStyle `json:"backgroundStyle,omitempty"`
	Label           *element.Label           `json:"label,omitempty"`
	LabelLine       *element.LabelLine       `json:"labelLine,omitempty"`
	LabelLayout     *element.LabelLayout     `json:"labelLayout,omitempty"`
	ItemStyle       *element.ItemStyle       `json:"itemStyle,omitempty"`
	Emphasis        *element.Emphasis        `json:"emphasis,omitempty"`
	Blur            *element.Blur            `json:"blur,omitempty"`
	Select          *element.Select          `json:"select,omitempty"`
	SelectedMode    *bool                    `json:"selectedMode,omitempty"`
	// Stack stacks every bar series sharing the same stack name on the same category axis.
	Stack *string `json:"stack,omitempty"`
	// BarWidth is a pixel width or a percentage of the category width.
	BarWidth     element.CompositeValue `json:"barWidth,omitempty"`
	BarMaxWidth  element.CompositeValue `json:"barMaxWidth,omitempty"`
	BarMinWidth  element.CompositeValue `json:"barMinWidth,omitempty"`
	BarMinHeight *float64               `json:"barMinHeight,omitempty"`
	// BarGap is the gap between bars of different series, e.g. "30%" or "-100%" to overlap.
	BarGap         *string                  `json:"barGap,omitempty"`
	BarCategoryGap *string                  `json:"barCategoryGap,omitempty"`
	Large          *bool                    `json:"large,omitempty"`
	LargeThreshold *float64                 `json:"largeThreshold,omitempty"`
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

// NewBar returns a bar series.
func NewBar() *Bar {
	return &Bar{Type: "bar"}
}

func (b *Bar) SeriesType() string {
	return b.Type
}

func (b *Bar) WithID(v string) *Bar {
	b.ID = &v
	return b
}

func (b *Bar) WithName(v string) *Bar {
	b.Name = &v
	return b
}

func (b *Bar) WithColorBy(v element.ColorBy) *Bar {
	b.ColorBy = v
	return b
}

func (b *Bar) WithLegendHoverLink(v bool) *Bar {
	b.LegendHoverLink = &v
	return b
}

func (b *Bar) WithCoordinateSystem(v element.CoordinateSystem) *Bar {
	b.CoordinateSystem = v
	return b
}

func (b *Bar) WithXAxisIndex(v float64) *Bar {
	b.XAxisIndex = &v
	return b
}

func (b *Bar) WithYAxisIndex(v float64) *Bar {
	b.YAxisIndex = &v
	return b
}

func (b *Bar) WithPolarIndex(v float64) *Bar {
	b.PolarIndex = &v
	return b
}

func (b *Bar) WithRoundCap(v bool) *Bar {
	b.RoundCap = &v
	return b
}

func (b *Bar) WithRealtimeSort(v bool) *Bar {
	b.RealtimeSort = &v
	return b
}

func (b *Bar) WithShowBackground(v bool) *Bar {
	b.ShowBackground = &v
	return b
}

func (b *Bar) WithBackgroundStyle(v *element.BackgroundStyle) *Bar {
	b.BackgroundStyle = v
	return b
}

func (b *Bar) WithLabel(v *element.Label) *Bar {
	b.Label = v
	return b
}

func (b *Bar) WithLabelLine(v *element.LabelLine) *Bar {
	b.LabelLine = v
	return b
}

func (b *Bar) WithLabelLayout(v *element.LabelLayout) *Bar {
	b.LabelLayout = v
	return b
}

func (b *Bar) WithItemStyle(v *element.ItemStyle) *Bar {
	b.ItemStyle = v
	return b
}

func (b *Bar) WithEmphasis(v *element.Emphasis) *Bar {
	b.Emphasis = v
	return b
}

func (b *Bar) WithBlur(v *element.Blur) *Bar {
	b.Blur = v
	return b
}

func (b *Bar) WithSelect(v *element.Select) *Bar {
	b.Select = v
	return b
}

func (b *Bar) WithSelectedMode(v bool) *Bar {
	b.SelectedMode = &v
	return b
}

func (b *Bar) WithStack(v string) *Bar {
	b.Stack = &v
	return b
}

func (b *Bar) WithBarWidth(v element.CompositeValue) *Bar {
	b.BarWidth = v
	return b
}

func (b *Bar) WithBarMaxWidth(v element.CompositeValue) *Bar {
	b.BarMaxWidth = v
	return b
}

func (b *Bar) WithBarMinWidth(v element.CompositeValue) *Bar {
	b.BarMinWidth = v
	return b
}

func (b *Bar) WithBarMinHeight(v float64) *Bar {
	b.BarMinHeight = &v
	return b
}

func (b *Bar) WithBarGap(v string) *Bar {
	b.BarGap = &v
	return b
}

func (b *Bar) WithBarCategoryGap(v string) *Bar {
	b.BarCategoryGap = &v
	return b
}

func (b *Bar) WithLarge(v bool) *Bar {
	b.Large = &v
	return b
}

func (b *Bar) WithLargeThreshold(v float64) *Bar {
	b.LargeThreshold = &v
	return b
}

func (b *Bar) WithDatasetIndex(v float64) *Bar {
	b.DatasetIndex = &v
	return b
}

func (b *Bar) WithSeriesLayoutBy(v string) *Bar {
	b.SeriesLayoutBy = &v
	return b
}

func (b *Bar) WithEncode(v *element.DimensionEncode) *Bar {
	b.Encode = v
	return b
}

func (b *Bar) WithMarkPoint(v *element.MarkPoint) *Bar {
	b.MarkPoint = v
	return b
}

func (b *Bar) WithMarkLine(v *element.MarkLine) *Bar {
	b.MarkLine = v
	return b
}

func (b *Bar) WithMarkArea(v *element.MarkArea) *Bar {
	b.MarkArea = v
	return b
}

func (b *Bar) WithZLevel(v float64) *Bar {
	b.ZLevel = &v
	return b
}

func (b *Bar) WithZ(v float64) *Bar {
	b.Z = &v
	return b
}

func (b *Bar) WithSilent(v bool) *Bar {
	b.Silent = &v
	return b
}

func (b *Bar) WithTooltip(v *element.Tooltip) *Bar {
	b.Tooltip = v
	return b
}

func (b *Bar) WithData(v datatype.DataFrame) *Bar {
	b.Data = v
	return b
}
