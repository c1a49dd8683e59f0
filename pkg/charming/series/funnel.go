package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

type FunnelAlign string

const (
	FunnelAlignLeft   FunnelAlign = "left"
	FunnelAlignRight  FunnelAlign = "right"
	FunnelAlignCenter FunnelAlign = "center"
)

type Funnel struct {
	Type            string                 `json:"type"`
	ID              *string                `json:"id,omitempty"`
	Name            *string                `json:"name,omitempty"`
	ColorBy         element.ColorBy        `json:"colorBy,omitempty"`
	Min             *float64               `json:"min,omitempty"`
	Max             *float64               `json:"max,omitempty"`
	MinSize         *string                `json:"minSize,omitempty"`
	MaxSize         *string                `json:"maxSize,omitempty"`
	Left            element.CompositeValue `json:"left,omitempty"`
	Top             element.CompositeValue `json:"top,omitempty"`
	Right           element.CompositeValue `json:"right,omitempty"`
	Bottom          element.CompositeValue `json:"bottom,omitempty"`
	Width           element.CompositeValue `json:"width,omitempty"`
	Height          element.CompositeValue `json:"height,omitempty"`
	Orient          element.Orient         `json:"orient,omitempty"`
	Sort            element.Sort           `json:"sort,omitempty"`
	Gap             *float64               `json:"gap,omitempty"`
	LegendHoverLink *bool                  `json:"legendHoverLink,omitempty"`
	FunnelAlign     FunnelAlign            `json:"funnelAlign,omitempty"`
	Label           *element.Label         `json:"label,omitempty"`
	LabelLine       *element.LabelLine     `json:"labelLine,omitempty"`
	ItemStyle       *element.ItemStyle     `json:"itemStyle,omitempty"`
	Emphasis        *element.Emphasis      `json:"emphasis,omitempty"`
	Tooltip         *element.Tooltip       `json:"tooltip,omitempty"`
	Data            datatype.DataFrame     `json:"data,omitempty"`
}

func NewFunnel() *Funnel {
	return &Funnel{Type: "funnel"}
}

func (f *Funnel) SeriesType() string {
	return f.Type
}

func (f *Funnel) WithID(v string) *Funnel {
	f.ID = &v
	return f
}

func (f *Funnel) WithName(v string) *Funnel {
	f.Name = &v
	return f
}

func (f *Funnel) WithColorBy(v element.ColorBy) *Funnel {
	f.ColorBy = v
	return f
}

func (f *Funnel) WithMin(v float64) *Funnel {
	f.Min = &v
	return f
}

func (f *Funnel) WithMax(v float64) *Funnel {
	f.Max = &v
	return f
}

func (f *Funnel) WithMinSize(v string) *Funnel {
	f.MinSize = &v
	return f
}

func (f *Funnel) WithMaxSize(v string) *Funnel {
	f.MaxSize = &v
	return f
}

func (f *Funnel) WithLeft(v element.CompositeValue) *Funnel {
	f.Left = v
	return f
}

func (f *Funnel) WithTop(v element.CompositeValue) *Funnel {
	f.Top = v
	return f
}

func (f *Funnel) WithRight(v element.CompositeValue) *Funnel {
	f.Right = v
	return f
}

func (f *Funnel) WithBottom(v element.CompositeValue) *Funnel {
	f.Bottom = v
	return f
}

func (f *Funnel) WithWidth(v element.CompositeValue) *Funnel {
	f.Width = v
	return f
}

func (f *Funnel) WithHeight(v element.CompositeValue) *Funnel {
	f.Height = v
	return f
}

func (f *Funnel) WithOrient(v element.Orient) *Funnel {
	f.Orient = v
	return f
}

func (f *Funnel) WithSort(v element.Sort) *Funnel {
	f.Sort = v
	return f
}

func (f *Funnel) WithGap(v float64) *Funnel {
	f.Gap = &v
	return f
}

func (f *Funnel) WithLegendHoverLink(v bool) *Funnel {
	f.LegendHoverLink = &v
	return f
}

func (f *Funnel) WithFunnelAlign(v FunnelAlign) *Funnel {
	f.FunnelAlign = v
	return f
}

func (f *Funnel) WithLabel(v *element.Label) *Funnel {
	f.Label = v
	return f
}

func (f *Funnel) WithLabelLine(v *element.LabelLine) *Funnel {
	f.LabelLine = v
	return f
}

func (f *Funnel) WithItemStyle(v *element.ItemStyle) *Funnel {
	f.ItemStyle = v
	return f
}

func (f *Funnel) WithEmphasis(v *element.Emphasis) *Funnel {
	f.Emphasis = v
	return f
}

func (f *Funnel) WithTooltip(v *element.Tooltip) *Funnel {
	f.Tooltip = v
	return f
}

func (f *Funnel) WithData(v datatype.DataFrame) *Funnel {
	f.Data = v
	return f
}
