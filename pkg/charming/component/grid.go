package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

type GridTooltip struct {
	Show            *bool              `json:"show,omitempty"`
	Trigger         element.Trigger    `json:"trigger,omitempty"`
	Position        *[2]string         `json:"position,omitempty"`
	Formatter       element.Formatter  `json:"formatter,omitempty"`
	ValueFormatter  element.Formatter  `json:"valueFormatter,omitempty"`
	BackgroundColor element.Color      `json:"backgroundColor,omitempty"`
	BorderColor     element.Color      `json:"borderColor,omitempty"`
	BorderWidth     *float64           `json:"borderWidth,omitempty"`
	Padding         element.Padding    `json:"padding,omitempty"`
	TextStyle       *element.TextStyle `json:"textStyle,omitempty"`
	ExtraCSSText    *string            `json:"extraCssText,omitempty"`
}

func NewGridTooltip() *GridTooltip {
	return &GridTooltip{}
}

func (g *GridTooltip) WithShow(v bool) *GridTooltip {
	g.Show = &v
	return g
}

func (g *GridTooltip) WithTrigger(v element.Trigger) *GridTooltip {
	g.Trigger = v
	return g
}

func (g *GridTooltip) WithPosition(x, y string) *GridTooltip {
	g.Position = &[2]string{x, y}
	return g
}

func (g *GridTooltip) WithFormatter(v element.Formatter) *GridTooltip {
	g.Formatter = v
	return g
}

func (g *GridTooltip) WithValueFormatter(v element.Formatter) *GridTooltip {
	g.ValueFormatter = v
	return g
}

func (g *GridTooltip) WithBackgroundColor(v element.Color) *GridTooltip {
	g.BackgroundColor = v
	return g
}

func (g *GridTooltip) WithBorderColor(v element.Color) *GridTooltip {
	g.BorderColor = v
	return g
}

func (g *GridTooltip) WithBorderWidth(v float64) *GridTooltip {
	g.BorderWidth = &v
	return g
}

func (g *GridTooltip) WithPadding(v ...float64) *GridTooltip {
	g.Padding = element.Padding(v)
	return g
}

func (g *GridTooltip) WithTextStyle(v *element.TextStyle) *GridTooltip {
	g.TextStyle = v
	return g
}

func (g *GridTooltip) WithExtraCSSText(v string) *GridTooltip {
	g.ExtraCSSText = &v
	return g
}

// Grid is the drawing area of a rectangular (cartesian) coordinate system.
type Grid struct {
	ID              *string                `json:"id,omitempty"`
	Show            *bool                  `json:"show,omitempty"`
	ZLevel          *float64               `json:"zlevel,omitempty"`
	Z               *float64               `json:"z,omitempty"`
	Left            element.CompositeValue `json:"left,omitempty"`
	Top             element.CompositeValue `json:"top,omitempty"`
	Right           element.CompositeValue `json:"right,omitempty"`
	Bottom          element.CompositeValue `json:"bottom,omitempty"`
	Width           element.CompositeValue `json:"width,omitempty"`
	Height          element.CompositeValue `json:"height,omitempty"`
	ContainLabel    *bool                  `json:"containLabel,omitempty"`
	BackgroundColor element.Color          `json:"backgroundColor,omitempty"`
	BorderColor     element.Color          `json:"borderColor,omitempty"`
	BorderWidth     *float64               `json:"borderWidth,omitempty"`
	ShadowBlur      *float64               `json:"shadowBlur,omitempty"`
	ShadowColor     element.Color          `json:"shadowColor,omitempty"`
	ShadowOffsetX   *float64               `json:"shadowOffsetX,omitempty"`
	ShadowOffsetY   *float64               `json:"shadowOffsetY,omitempty"`
	Tooltip         *GridTooltip           `json:"tooltip,omitempty"`
}

func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) WithID(v string) *Grid {
	g.ID = &v
	return g
}

func (g *Grid) WithShow(v bool) *Grid {
	g.Show = &v
	return g
}

func (g *Grid) WithZLevel(v float64) *Grid {
	g.ZLevel = &v
	return g
}

func (g *Grid) WithZ(v float64) *Grid {
	g.Z = &v
	return g
}

func (g *Grid) WithLeft(v element.CompositeValue) *Grid {
	g.Left = v
	return g
}

func (g *Grid) WithTop(v element.CompositeValue) *Grid {
	g.Top = v
	return g
}

func (g *Grid) WithRight(v element.CompositeValue) *Grid {
	g.Right = v
	return g
}

func (g *Grid) WithBottom(v element.CompositeValue) *Grid {
	g.Bottom = v
	return g
}

func (g *Grid) WithWidth(v element.CompositeValue) *Grid {
	g.Width = v
	return g
}

func (g *Grid) WithHeight(v element.CompositeValue) *Grid {
	g.Height = v
	return g
}

func (g *Grid) WithContainLabel(v bool) *Grid {
	g.ContainLabel = &v
	return g
}

func (g *Grid) WithBackgroundColor(v element.Color) *Grid {
	g.BackgroundColor = v
	return g
}

func (g *Grid) WithBorderColor(v element.Color) *Grid {
	g.BorderColor = v
	return g
}

func (g *Grid) WithBorderWidth(v float64) *Grid {
	g.BorderWidth = &v
	return g
}

func (g *Grid) WithShadowBlur(v float64) *Grid {
	g.ShadowBlur = &v
	return g
}

func (g *Grid) WithShadowColor(v element.Color) *Grid {
	g.ShadowColor = v
	return g
}

func (g *Grid) WithShadowOffsetX(v float64) *Grid {
	g.ShadowOffsetX = &v
	return g
}

func (g *Grid) WithShadowOffsetY(v float64) *Grid {
	g.ShadowOffsetY = &v
	return g
}

func (g *Grid) WithTooltip(v *GridTooltip) *Grid {
	g.Tooltip = v
	return g
}
