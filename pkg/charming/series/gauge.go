package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// GaugeDetail is the value text of a gauge.
type GaugeDetail struct {
	Show           *bool             `json:"show,omitempty"`
	Color          element.Color     `json:"color,omitempty"`
	FontStyle      *string           `json:"fontStyle,omitempty"`
	FontWeight     *string           `json:"fontWeight,omitempty"`
	FontFamily     *string           `json:"fontFamily,omitempty"`
	FontSize       *float64          `json:"fontSize,omitempty"`
	OffsetCenter   *[2]string        `json:"offsetCenter,omitempty"`
	Precision      *float64          `json:"precision,omitempty"`
	ValueAnimation *bool             `json:"valueAnimation,omitempty"`
	Formatter      element.Formatter `json:"formatter,omitempty"`
}

func NewGaugeDetail() *GaugeDetail {
	return &GaugeDetail{}
}

func (g *GaugeDetail) WithShow(v bool) *GaugeDetail {
	g.Show = &v
	return g
}

func (g *GaugeDetail) WithColor(v element.Color) *GaugeDetail {
	g.Color = v
	return g
}

func (g *GaugeDetail) WithFontStyle(v string) *GaugeDetail {
	g.FontStyle = &v
	return g
}

func (g *GaugeDetail) WithFontWeight(v string) *GaugeDetail {
	g.FontWeight = &v
	return g
}

func (g *GaugeDetail) WithFontFamily(v string) *GaugeDetail {
	g.FontFamily = &v
	return g
}

func (g *GaugeDetail) WithFontSize(v float64) *GaugeDetail {
	g.FontSize = &v
	return g
}

func (g *GaugeDetail) WithOffsetCenter(x, y string) *GaugeDetail {
	g.OffsetCenter = &[2]string{x, y}
	return g
}

func (g *GaugeDetail) WithPrecision(v float64) *GaugeDetail {
	g.Precision = &v
	return g
}

func (g *GaugeDetail) WithValueAnimation(v bool) *GaugeDetail {
	g.ValueAnimation = &v
	return g
}

func (g *GaugeDetail) WithFormatter(v element.Formatter) *GaugeDetail {
	g.Formatter = v
	return g
}

type GaugeTitle struct {
	Show         *bool         `json:"show,omitempty"`
	OffsetCenter *[2]string    `json:"offsetCenter,omitempty"`
	FontSize     *float64      `json:"fontSize,omitempty"`
	Color        element.Color `json:"color,omitempty"`
}

func NewGaugeTitle() *GaugeTitle {
	return &GaugeTitle{}
}

func (g *GaugeTitle) WithShow(v bool) *GaugeTitle {
	g.Show = &v
	return g
}

func (g *GaugeTitle) WithOffsetCenter(x, y string) *GaugeTitle {
	g.OffsetCenter = &[2]string{x, y}
	return g
}

func (g *GaugeTitle) WithFontSize(v float64) *GaugeTitle {
	g.FontSize = &v
	return g
}

func (g *GaugeTitle) WithColor(v element.Color) *GaugeTitle {
	g.Color = v
	return g
}

// GaugeProgress draws the value as a progress bar along the axis.
type GaugeProgress struct {
	Show      *bool              `json:"show,omitempty"`
	Overlap   *bool              `json:"overlap,omitempty"`
	Width     *float64           `json:"width,omitempty"`
	RoundCap  *bool              `json:"roundCap,omitempty"`
	Clip      *bool              `json:"clip,omitempty"`
	ItemStyle *element.ItemStyle `json:"itemStyle,omitempty"`
}

func NewGaugeProgress() *GaugeProgress {
	return &GaugeProgress{}
}

func (g *GaugeProgress) WithShow(v bool) *GaugeProgress {
	g.Show = &v
	return g
}

func (g *GaugeProgress) WithOverlap(v bool) *GaugeProgress {
	g.Overlap = &v
	return g
}

func (g *GaugeProgress) WithWidth(v float64) *GaugeProgress {
	g.Width = &v
	return g
}

func (g *GaugeProgress) WithRoundCap(v bool) *GaugeProgress {
	g.RoundCap = &v
	return g
}

func (g *GaugeProgress) WithClip(v bool) *GaugeProgress {
	g.Clip = &v
	return g
}

func (g *GaugeProgress) WithItemStyle(v *element.ItemStyle) *GaugeProgress {
	g.ItemStyle = v
	return g
}

// Gauge is a dial showing one or more values against a scale.
type Gauge struct {
	Type            string                 `json:"type"`
	ID              *string                `json:"id,omitempty"`
	Name            *string                `json:"name,omitempty"`
	ColorBy         element.ColorBy        `json:"colorBy,omitempty"`
	ZLevel          *float64               `json:"zlevel,omitempty"`
	Z               *float64               `json:"z,omitempty"`
	Center          *[2]string             `json:"center,omitempty"`
	Radius          element.CompositeValue `json:"radius,omitempty"`
	LegendHoverLink *bool                  `json:"legendHoverLink,omitempty"`
	StartAngle      *float64               `json:"startAngle,omitempty"`
	EndAngle        *float64               `json:"endAngle,omitempty"`
	Clockwise       *bool                  `json:"clockwise,omitempty"`
	Min             *float64               `json:"min,omitempty"`
	Max             *float64               `json:"max,omitempty"`
	SplitNumber     *float64               `json:"splitNumber,omitempty"`
	Progress        *GaugeProgress         `json:"progress,omitempty"`
	AxisLine        *element.AxisLine      `json:"axisLine,omitempty"`
	AxisTick        *element.AxisTick      `json:"axisTick,omitempty"`
	AxisLabel       *element.AxisLabel     `json:"axisLabel,omitempty"`
	SplitLine       *element.SplitLine     `json:"splitLine,omitempty"`
	Pointer         *element.Pointer       `json:"pointer,omitempty"`
	Anchor          *element.Anchor        `json:"anchor,omitempty"`
	ItemStyle       *element.ItemStyle     `json:"itemStyle,omitempty"`
	Detail          *GaugeDetail           `json:"detail,omitempty"`
	Title           *GaugeTitle            `json:"title,omitempty"`
	Data            datatype.DataFrame     `json:"data,omitempty"`
}

func NewGauge() *Gauge {
	return &Gauge{Type: "gauge"}
}

func (g *Gauge) SeriesType() string {
	return g.Type
}

func (g *Gauge) WithID(v string) *Gauge {
	g.ID = &v
	return g
}

func (g *Gauge) WithName(v string) *Gauge {
	g.Name = &v
	return g
}

func (g *Gauge) WithColorBy(v element.ColorBy) *Gauge {
	g.ColorBy = v
	return g
}

func (g *Gauge) WithZLevel(v float64) *Gauge {
	g.ZLevel = &v
	return g
}

func (g *Gauge) WithZ(v float64) *Gauge {
	g.Z = &v
	return g
}

func (g *Gauge) WithCenter(x, y string) *Gauge {
	g.Center = &[2]string{x, y}
	return g
}

func (g *Gauge) WithRadius(v element.CompositeValue) *Gauge {
	g.Radius = v
	return g
}

func (g *Gauge) WithLegendHoverLink(v bool) *Gauge {
	g.LegendHoverLink = &v
	return g
}

func (g *Gauge) WithStartAngle(v float64) *Gauge {
	g.StartAngle = &v
	return g
}

func (g *Gauge) WithEndAngle(v float64) *Gauge {
	g.EndAngle = &v
	return g
}

func (g *Gauge) WithClockwise(v bool) *Gauge {
	g.Clockwise = &v
	return g
}

func (g *Gauge) WithMin(v float64) *Gauge {
	g.Min = &v
	return g
}

func (g *Gauge) WithMax(v float64) *Gauge {
	g.Max = &v
	return g
}

func (g *Gauge) WithSplitNumber(v float64) *Gauge {
	g.SplitNumber = &v
	return g
}

func (g *Gauge) WithProgress(v *GaugeProgress) *Gauge {
	g.Progress = v
	return g
}

func (g *Gauge) WithAxisLine(v *element.AxisLine) *Gauge {
	g.AxisLine = v
	return g
}

func (g *Gauge) WithAxisTick(v *element.AxisTick) *Gauge {
	g.AxisTick = v
	return g
}

func (g *Gauge) WithAxisLabel(v *element.AxisLabel) *Gauge {
	g.AxisLabel = v
	return g
}

func (g *Gauge) WithSplitLine(v *element.SplitLine) *Gauge {
	g.SplitLine = v
	return g
}

func (g *Gauge) WithPointer(v *element.Pointer) *Gauge {
	g.Pointer = v
	return g
}

func (g *Gauge) WithAnchor(v *element.Anchor) *Gauge {
	g.Anchor = v
	return g
}

func (g *Gauge) WithItemStyle(v *element.ItemStyle) *Gauge {
	g.ItemStyle = v
	return g
}

func (g *Gauge) WithDetail(v *GaugeDetail) *Gauge {
	g.Detail = v
	return g
}

func (g *Gauge) WithTitle(v *GaugeTitle) *Gauge {
	g.Title = v
	return g
}

func (g *Gauge) WithData(v datatype.DataFrame) *Gauge {
	g.Data = v
	return g
}
