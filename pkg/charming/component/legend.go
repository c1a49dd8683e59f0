package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

// LegendType selects a plain legend or a scrollable one for many items.
type LegendType string

const (
	LegendTypePlain  LegendType = "plain"
	LegendTypeScroll LegendType = "scroll"
)

type LegendSelectedMode string

const (
	LegendSelectedModeMultiple LegendSelectedMode = "multiple"
	LegendSelectedModeSingle   LegendSelectedMode = "single"
)

// Legend lists the series (or pie items) with their symbols and lets users toggle them.
type Legend struct {
	Type          LegendType             `json:"type,omitempty"`
	ID            *string                `json:"id,omitempty"`
	Show          *bool                  `json:"show,omitempty"`
	ZLevel        *float64               `json:"zlevel,omitempty"`
	Z             *float64               `json:"z,omitempty"`
	Left          element.CompositeValue `json:"left,omitempty"`
	Top           element.CompositeValue `json:"top,omitempty"`
	Right         element.CompositeValue `json:"right,omitempty"`
	Bottom        element.CompositeValue `json:"bottom,omitempty"`
	Width         element.CompositeValue `json:"width,omitempty"`
	Height        element.CompositeValue `json:"height,omitempty"`
	Orient        element.Orient         `json:"orient,omitempty"`
	Align         element.LabelAlign     `json:"align,omitempty"`
	Padding       element.Padding        `json:"padding,omitempty"`
	ItemGap       *float64               `json:"itemGap,omitempty"`
	ItemWidth     *float64               `json:"itemWidth,omitempty"`
	ItemHeight    *float64               `json:"itemHeight,omitempty"`
	ItemStyle     *element.ItemStyle     `json:"itemStyle,omitempty"`
	LineStyle     *element.LineStyle     `json:"lineStyle,omitempty"`
	TextStyle     *element.TextStyle     `json:"textStyle,omitempty"`
	Icon          element.Icon           `json:"icon,omitempty"`
	SymbolRotate  element.CompositeValue `json:"symbolRotate,omitempty"`
	Formatter     element.Formatter      `json:"formatter,omitempty"`
	SelectedMode  LegendSelectedMode     `json:"selectedMode,omitempty"`
	Selected      map[string]bool        `json:"selected,omitempty"`
	BorderColor   element.Color          `json:"borderColor,omitempty"`
	InactiveColor element.Color          `json:"inactiveColor,omitempty"`
	Data          []*LegendItem          `json:"data,omitempty"`
}

func NewLegend() *Legend {
	return &Legend{}
}

func (l *Legend) WithType(v LegendType) *Legend {
	l.Type = v
	return l
}

func (l *Legend) WithID(v string) *Legend {
	l.ID = &v
	return l
}

func (l *Legend) WithShow(v bool) *Legend {
	l.Show = &v
	return l
}

func (l *Legend) WithZLevel(v float64) *Legend {
	l.ZLevel = &v
	return l
}

func (l *Legend) WithZ(v float64) *Legend {
	l.Z = &v
	return l
}

func (l *Legend) WithLeft(v element.CompositeValue) *Legend {
	l.Left = v
	return l
}

func (l *Legend) WithTop(v element.CompositeValue) *Legend {
	l.Top = v
	return l
}

func (l *Legend) WithRight(v element.CompositeValue) *Legend {
	l.Right = v
	return l
}

func (l *Legend) WithBottom(v element.CompositeValue) *Legend {
	l.Bottom = v
	return l
}

func (l *Legend) WithWidth(v element.CompositeValue) *Legend {
	l.Width = v
	return l
}

func (l *Legend) WithHeight(v element.CompositeValue) *Legend {
	l.Height = v
	return l
}

func (l *Legend) WithOrient(v element.Orient) *Legend {
	l.Orient = v
	return l
}

func (l *Legend) WithAlign(v element.LabelAlign) *Legend {
	l.Align = v
	return l
}

func (l *Legend) WithPadding(v ...float64) *Legend {
	l.Padding = element.Padding(v)
	return l
}

func (l *Legend) WithItemGap(v float64) *Legend {
	l.ItemGap = &v
	return l
}

func (l *Legend) WithItemWidth(v float64) *Legend {
	l.ItemWidth = &v
	return l
}

func (l *Legend) WithItemHeight(v float64) *Legend {
	l.ItemHeight = &v
	return l
}

func (l *Legend) WithItemStyle(v *element.ItemStyle) *Legend {
	l.ItemStyle = v
	return l
}

func (l *Legend) WithLineStyle(v *element.LineStyle) *Legend {
	l.LineStyle = v
	return l
}

func (l *Legend) WithTextStyle(v *element.TextStyle) *Legend {
	l.TextStyle = v
	return l
}

func (l *Legend) WithIcon(v element.Icon) *Legend {
	l.Icon = v
	return l
}

func (l *Legend) WithSymbolRotate(v element.CompositeValue) *Legend {
	l.SymbolRotate = v
	return l
}

func (l *Legend) WithFormatter(v element.Formatter) *Legend {
	l.Formatter = v
	return l
}

func (l *Legend) WithSelectedMode(v LegendSelectedMode) *Legend {
	l.SelectedMode = v
	return l
}

func (l *Legend) WithSelected(v map[string]bool) *Legend {
	l.Selected = v
	return l
}

func (l *Legend) WithBorderColor(v element.Color) *Legend {
	l.BorderColor = v
	return l
}

func (l *Legend) WithInactiveColor(v element.Color) *Legend {
	l.InactiveColor = v
	return l
}

func (l *Legend) WithData(v ...*LegendItem) *Legend {
	l.Data = v
	return l
}
