package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// PictorialBar is a bar series drawn with (optionally repeated) symbols.
type PictorialBar struct {
	Type               string                   `json:"type"`
	ID                 *string                  `json:"id,omitempty"`
	Name               *string                  `json:"name,omitempty"`
	ColorBy            element.ColorBy          `json:"colorBy,omitempty"`
	LegendHoverLink    *bool                    `json:"legendHoverLink,omitempty"`
	CoordinateSystem   element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex         *float64                 `json:"xAxisIndex,omitempty"`
	YAxisIndex         *float64                 `json:"yAxisIndex,omitempty"`
	Cursor             element.Cursor           `json:"cursor,omitempty"`
	Label              *element.Label           `json:"label,omitempty"`
	LabelLine          *element.LabelLine       `json:"labelLine,omitempty"`
	LabelLayout        *element.LabelLayout     `json:"labelLayout,omitempty"`
	ItemStyle          *element.ItemStyle       `json:"itemStyle,omitempty"`
	Emphasis           *element.Emphasis        `json:"emphasis,omitempty"`
	Symbol             element.Symbol           `json:"symbol,omitempty"`
	SymbolSize         element.CompositeValue   `json:"symbolSize,omitempty"`
	SymbolRepeat       element.CompositeValue   `json:"symbolRepeat,omitempty"`
	SymbolMargin       element.CompositeValue   `json:"symbolMargin,omitempty"`
	SymbolClip         *bool                    `json:"symbolClip,omitempty"`
	SymbolBoundingData *float64                 `json:"symbolBoundingData,omitempty"`
	SymbolPosition     *string                  `json:"symbolPosition,omitempty"`
	BarGap             *string                  `json:"barGap,omitempty"`
	Z                  *float64                 `json:"z,omitempty"`
	Data               datatype.DataFrame       `json:"data,omitempty"`
}

func NewPictorialBar() *PictorialBar {
	return &PictorialBar{Type: "pictorialBar"}
}

func (p *PictorialBar) SeriesType() string {
	return p.Type
}

func (p *PictorialBar) WithID(v string) *PictorialBar {
	p.ID = &v
	return p
}

func (p *PictorialBar) WithName(v string) *PictorialBar {
	p.Name = &v
	return p
}

func (p *PictorialBar) WithColorBy(v element.ColorBy) *PictorialBar {
	p.ColorBy = v
	return p
}

func (p *PictorialBar) WithLegendHoverLink(v bool) *PictorialBar {
	p.LegendHoverLink = &v
	return p
}

func (p *PictorialBar) WithCoordinateSystem(v element.CoordinateSystem) *PictorialBar {
	p.CoordinateSystem = v
	return p
}

func (p *PictorialBar) WithXAxisIndex(v float64) *PictorialBar {
	p.XAxisIndex = &v
	return p
}

func (p *PictorialBar) WithYAxisIndex(v float64) *PictorialBar {
	p.YAxisIndex = &v
	return p
}

func (p *PictorialBar) WithCursor(v element.Cursor) *PictorialBar {
	p.Cursor = v
	return p
}

func (p *PictorialBar) WithLabel(v *element.Label) *PictorialBar {
	p.Label = v
	return p
}

func (p *PictorialBar) WithLabelLine(v *element.LabelLine) *PictorialBar {
	p.LabelLine = v
	return p
}

func (p *PictorialBar) WithLabelLayout(v *element.LabelLayout) *PictorialBar {
	p.LabelLayout = v
	return p
}

func (p *PictorialBar) WithItemStyle(v *element.ItemStyle) *PictorialBar {
	p.ItemStyle = v
	return p
}

func (p *PictorialBar) WithEmphasis(v *element.Emphasis) *PictorialBar {
	p.Emphasis = v
	return p
}

func (p *PictorialBar) WithSymbol(v element.Symbol) *PictorialBar {
	p.Symbol = v
	return p
}

func (p *PictorialBar) WithSymbolSize(v element.CompositeValue) *PictorialBar {
	p.SymbolSize = v
	return p
}

func (p *PictorialBar) WithSymbolRepeat(v element.CompositeValue) *PictorialBar {
	p.SymbolRepeat = v
	return p
}

func (p *PictorialBar) WithSymbolMargin(v element.CompositeValue) *PictorialBar {
	p.SymbolMargin = v
	return p
}

func (p *PictorialBar) WithSymbolClip(v bool) *PictorialBar {
	p.SymbolClip = &v
	return p
}

func (p *PictorialBar) WithSymbolBoundingData(v float64) *PictorialBar {
	p.SymbolBoundingData = &v
	return p
}

func (p *PictorialBar) WithSymbolPosition(v string) *PictorialBar {
	p.SymbolPosition = &v
	return p
}

func (p *PictorialBar) WithBarGap(v string) *PictorialBar {
	p.BarGap = &v
	return p
}

func (p *PictorialBar) WithZ(v float64) *PictorialBar {
	p.Z = &v
	return p
}

func (p *PictorialBar) WithData(v datatype.DataFrame) *PictorialBar {
	p.Data = v
	return p
}
