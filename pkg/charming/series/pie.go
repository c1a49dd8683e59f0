package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// PieRoseType turns a pie into a Nightingale (rose) chart.
type PieRoseType string

const (
	// PieRoseTypeRadius encodes values in both the sector angle and radius.
	PieRoseTypeRadius PieRoseType = "radius"
	// PieRoseTypeArea keeps equal angles and encodes values in the radius.
	PieRoseTypeArea PieRoseType = "area"
)

// Pie is a pie, doughnut or rose series.
type Pie struct {
	Type              string                   `json:"type"`
	ID                *string                  `json:"id,omitempty"`
	Name              *string                  `json:"name,omitempty"`
	ColorBy           element.ColorBy          `json:"colorBy,omitempty"`
	LegendHoverLink   *bool                    `json:"legendHoverLink,omitempty"`
	CoordinateSystem  element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	GeoIndex          *float64                 `json:"geoIndex,omitempty"`
	CalendarIndex     *float64                 `json:"calendarIndex,omitempty"`
	SelectedMode      *bool                    `json:"selectedMode,omitempty"`
	SelectedOffset    *float64                 `json:"selectedOffset,omitempty"`
	Clockwise         *bool                    `json:"clockwise,omitempty"`
	StartAngle        *float64                 `json:"startAngle,omitempty"`
	MinAngle          *float64                 `json:"minAngle,omitempty"`
	AvoidLabelOverlap *bool                    `json:"avoidLabelOverlap,omitempty"`
	PercentPrecision  *int                     `json:"percentPrecision,omitempty"`
	RoseType          PieRoseType              `json:"roseType,omitempty"`
	Label             *element.Label           `json:"label,omitempty"`
	LabelLine         *element.LabelLine       `json:"labelLine,omitempty"`
	LabelLayout       *element.LabelLayout     `json:"labelLayout,omitempty"`
	ItemStyle         *element.ItemStyle       `json:"itemStyle,omitempty"`
	Emphasis          *element.Emphasis        `json:"emphasis,omitempty"`
	Left              element.CompositeValue   `json:"left,omitempty"`
	Top               element.CompositeValue   `json:"top,omitempty"`
	Right             element.CompositeValue   `json:"right,omitempty"`
	Bottom            element.CompositeValue   `json:"bottom,omitempty"`
	Width             element.CompositeValue   `json:"width,omitempty"`
	Height            element.CompositeValue   `json:"height,omitempty"`
	Center            element.CompositeValue   `json:"center,omitempty"`
	Radius            element.CompositeValue   `json:"radius,omitempty"`
	DatasetIndex      *float64                 `json:"datasetIndex,omitempty"`
	Encode            *element.DimensionEncode `json:"encode,omitempty"`
	Tooltip           *element.Tooltip         `json:"tooltip,omitempty"`
	Data              datatype.DataFrame       `json:"data,omitempty"`
}

func NewPie() *Pie {
	return &Pie{Type: "pie"}
}

func (p *Pie) SeriesType() string {
	return p.Type
}

func (p *Pie) WithID(v string) *Pie {
	p.ID = &v
	return p
}

func (p *Pie) WithName(v string) *Pie {
	p.Name = &v
	return p
}

func (p *Pie) WithColorBy(v element.ColorBy) *Pie {
	p.ColorBy = v
	return p
}

func (p *Pie) WithLegendHoverLink(v bool) *Pie {
	p.LegendHoverLink = &v
	return p
}

func (p *Pie) WithCoordinateSystem(v element.CoordinateSystem) *Pie {
	p.CoordinateSystem = v
	return p
}

func (p *Pie) WithGeoIndex(v float64) *Pie {
	p.GeoIndex = &v
	return p
}

func (p *Pie) WithCalendarIndex(v float64) *Pie {
	p.CalendarIndex = &v
	return p
}

func (p *Pie) WithSelectedMode(v bool) *Pie {
	p.SelectedMode = &v
	return p
}

func (p *Pie) WithSelectedOffset(v float64) *Pie {
	p.SelectedOffset = &v
	return p
}

func (p *Pie) WithClockwise(v bool) *Pie {
	p.Clockwise = &v
	return p
}

func (p *Pie) WithStartAngle(v float64) *Pie {
	p.StartAngle = &v
	return p
}

func (p *Pie) WithMinAngle(v float64) *Pie {
	p.MinAngle = &v
	return p
}

func (p *Pie) WithAvoidLabelOverlap(v bool) *Pie {
	p.AvoidLabelOverlap = &v
	return p
}

func (p *Pie) WithPercentPrecision(v int) *Pie {
	p.PercentPrecision = &v
	return p
}

func (p *Pie) WithRoseType(v PieRoseType) *Pie {
	p.RoseType = v
	return p
}

func (p *Pie) WithLabel(v *element.Label) *Pie {
	p.Label = v
	return p
}

func (p *Pie) WithLabelLine(v *element.LabelLine) *Pie {
	p.LabelLine = v
	return p
}

func (p *Pie) WithLabelLayout(v *element.LabelLayout) *Pie {
	p.LabelLayout = v
	return p
}

func (p *Pie) WithItemStyle(v *element.ItemStyle) *Pie {
	p.ItemStyle = v
	return p
}

func (p *Pie) WithEmphasis(v *element.Emphasis) *Pie {
	p.Emphasis = v
	return p
}

func (p *Pie) WithLeft(v element.CompositeValue) *Pie {
	p.Left = v
	return p
}

func (p *Pie) WithTop(v element.CompositeValue) *Pie {
	p.Top = v
	return p
}

func (p *Pie) WithRight(v element.CompositeValue) *Pie {
	p.Right = v
	return p
}

func (p *Pie) WithBottom(v element.CompositeValue) *Pie {
	p.Bottom = v
	return p
}

func (p *Pie) WithWidth(v element.CompositeValue) *Pie {
	p.Width = v
	return p
}

func (p *Pie) WithHeight(v element.CompositeValue) *Pie {
	p.Height = v
	return p
}

func (p *Pie) WithCenter(v element.CompositeValue) *Pie {
	p.Center = v
	return p
}

func (p *Pie) WithRadius(v element.CompositeValue) *Pie {
	p.Radius = v
	return p
}

func (p *Pie) WithDatasetIndex(v float64) *Pie {
	p.DatasetIndex = &v
	return p
}

func (p *Pie) WithEncode(v *element.DimensionEncode) *Pie {
	p.Encode = v
	return p
}

func (p *Pie) WithTooltip(v *element.Tooltip) *Pie {
	p.Tooltip = v
	return p
}

func (p *Pie) WithData(v datatype.DataFrame) *Pie {
	p.Data = v
	return p
}
