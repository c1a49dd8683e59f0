package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

type EffectType string

const (
	EffectTypeRipple EffectType = "ripple"
)

type ShowEffectOn string

const (
	ShowEffectOnRender   ShowEffectOn = "render"
	ShowEffectOnEmphasis ShowEffectOn = "emphasis"
)

type RippleEffectBrushType string

const (
	RippleEffectBrushTypeFill   RippleEffectBrushType = "fill"
	RippleEffectBrushTypeStroke RippleEffectBrushType = "stroke"
)

// RippleEffect is the animated ripple drawn around effect scatter symbols.
type RippleEffect struct {
	Color     element.Color         `json:"color,omitempty"`
	Number    *float64              `json:"number,omitempty"`
	Period    *float64              `json:"period,omitempty"`
	Scale     *float64              `json:"scale,omitempty"`
	BrushType RippleEffectBrushType `json:"brushType,omitempty"`
}

func NewRippleEffect() *RippleEffect {
	return &RippleEffect{}
}

func (r *RippleEffect) WithColor(v element.Color) *RippleEffect {
	r.Color = v
	return r
}

func (r *RippleEffect) WithNumber(v float64) *RippleEffect {
	r.Number = &v
	return r
}

func (r *RippleEffect) WithPeriod(v float64) *RippleEffect {
	r.Period = &v
	return r
}

func (r *RippleEffect) WithScale(v float64) *RippleEffect {
	r.Scale = &v
	return r
}

func (r *RippleEffect) WithBrushType(v RippleEffectBrushType) *RippleEffect {
	r.BrushType = v
	return r
}

// EffectScatter is a scatter series with ripple animations, used to point out
// selected items.
type EffectScatter struct {
	Type             string                   `json:"type"`
	ID               *string                  `json:"id,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	ColorBy          element.ColorBy          `json:"colorBy,omitempty"`
	LegendHoverLink  *bool                    `json:"legendHoverLink,omitempty"`
	EffectType       EffectType               `json:"effectType,omitempty"`
	ShowEffectOn     ShowEffectOn             `json:"showEffectOn,omitempty"`
	RippleEffect     *RippleEffect            `json:"rippleEffect,omitempty"`
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *float64                 `json:"xAxisIndex,omitempty"`
	YAxisIndex       *float64                 `json:"yAxisIndex,omitempty"`
	PolarIndex       *float64                 `json:"polarIndex,omitempty"`
	GeoIndex         *float64                 `json:"geoIndex,omitempty"`
	CalendarIndex    *float64                 `json:"calendarIndex,omitempty"`
	Symbol           element.Symbol           `json:"symbol,omitempty"`
	SymbolSize       element.SymbolSize       `json:"symbolSize,omitempty"`
	SymbolRotate     *float64                 `json:"symbolRotate,omitempty"`
	SymbolKeepAspect *bool                    `json:"symbolKeepAspect,omitempty"`
	SymbolOffset     *[2]string               `json:"symbolOffset,omitempty"`
	Label            *element.Label           `json:"label,omitempty"`
	LabelLine        *element.LabelLine       `json:"labelLine,omitempty"`
	LabelLayout      *element.LabelLayout     `json:"labelLayout,omitempty"`
	ItemStyle        *element.ItemStyle       `json:"itemStyle,omitempty"`
	Emphasis         *element.Emphasis        `json:"emphasis,omitempty"`
	Data             datatype.DataFrame       `json:"data,omitempty"`
}

func NewEffectScatter() *EffectScatter {
	return &EffectScatter{Type: "effectScatter"}
}

func (e *EffectScatter) SeriesType() string {
	return e.Type
}

func (e *EffectScatter) WithID(v string) *EffectScatter {
	e.ID = &v
	return e
}

func (e *EffectScatter) WithName(v string) *EffectScatter {
	e.Name = &v
	return e
}

func (e *EffectScatter) WithColorBy(v element.ColorBy) *EffectScatter {
	e.ColorBy = v
	return e
}

func (e *EffectScatter) WithLegendHoverLink(v bool) *EffectScatter {
	e.LegendHoverLink = &v
	return e
}

func (e *EffectScatter) WithEffectType(v EffectType) *EffectScatter {
	e.EffectType = v
	return e
}

func (e *EffectScatter) WithShowEffectOn(v ShowEffectOn) *EffectScatter {
	e.ShowEffectOn = v
	return e
}

func (e *EffectScatter) WithRippleEffect(v *RippleEffect) *EffectScatter {
	e.RippleEffect = v
	return e
}

func (e *EffectScatter) WithCoordinateSystem(v element.CoordinateSystem) *EffectScatter {
	e.CoordinateSystem = v
	return e
}

func (e *EffectScatter) WithXAxisIndex(v float64) *EffectScatter {
	e.XAxisIndex = &v
	return e
}

func (e *EffectScatter) WithYAxisIndex(v float64) *EffectScatter {
	e.YAxisIndex = &v
	return e
}

func (e *EffectScatter) WithPolarIndex(v float64) *EffectScatter {
	e.PolarIndex = &v
	return e
}

func (e *EffectScatter) WithGeoIndex(v float64) *EffectScatter {
	e.GeoIndex = &v
	return e
}

func (e *EffectScatter) WithCalendarIndex(v float64) *EffectScatter {
	e.CalendarIndex = &v
	return e
}

func (e *EffectScatter) WithSymbol(v element.Symbol) *EffectScatter {
	e.Symbol = v
	return e
}

func (e *EffectScatter) WithSymbolSize(v element.SymbolSize) *EffectScatter {
	e.SymbolSize = v
	return e
}

func (e *EffectScatter) WithSymbolRotate(v float64) *EffectScatter {
	e.SymbolRotate = &v
	return e
}

func (e *EffectScatter) WithSymbolKeepAspect(v bool) *EffectScatter {
	e.SymbolKeepAspect = &v
	return e
}

func (e *EffectScatter) WithSymbolOffset(x, y string) *EffectScatter {
	e.SymbolOffset = &[2]string{x, y}
	return e
}

func (e *EffectScatter) WithLabel(v *element.Label) *EffectScatter {
	e.Label = v
	return e
}

func (e *EffectScatter) WithLabelLine(v *element.LabelLine) *EffectScatter {
	e.LabelLine = v
	return e
}

func (e *EffectScatter) WithLabelLayout(v *element.LabelLayout) *EffectScatter {
	e.LabelLayout = v
	return e
}

func (e *EffectScatter) WithItemStyle(v *element.ItemStyle) *EffectScatter {
	e.ItemStyle = v
	return e
}

func (e *EffectScatter) WithEmphasis(v *element.Emphasis) *EffectScatter {
	e.Emphasis = v
	return e
}

func (e *EffectScatter) WithData(v datatype.DataFrame) *EffectScatter {
	e.Data = v
	return e
}
