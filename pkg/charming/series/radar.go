package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

type Radar struct {
	Type             string             `json:"type"`
	ID               *string            `json:"id,omitempty"`
	Name             *string            `json:"name,omitempty"`
	ColorBy          element.ColorBy    `json:"colorBy,omitempty"`
	RadarIndex       *float64           `json:"radarIndex,omitempty"`
	Symbol           element.Symbol     `json:"symbol,omitempty"`
	SymbolSize       element.SymbolSize `json:"symbolSize,omitempty"`
	SymbolRotate     *float64           `json:"symbolRotate,omitempty"`
	SymbolKeepAspect *bool              `json:"symbolKeepAspect,omitempty"`
	Label            *element.Label     `json:"label,omitempty"`
	ItemStyle        *element.ItemStyle `json:"itemStyle,omitempty"`
	LineStyle        *element.LineStyle `json:"lineStyle,omitempty"`
	AreaStyle        *element.AreaStyle `json:"areaStyle,omitempty"`
	Emphasis         *element.Emphasis  `json:"emphasis,omitempty"`
	Tooltip          *element.Tooltip   `json:"tooltip,omitempty"`
	// Data items are usually objects with a name and one value per indicator.
	Data datatype.DataFrame `json:"data,omitempty"`
}

func NewRadar() *Radar {
	return &Radar{Type: "radar"}
}

func (r *Radar) SeriesType() string {
	return r.Type
}

func (r *Radar) WithID(v string) *Radar {
	r.ID = &v
	return r
}

func (r *Radar) WithName(v string) *Radar {
	r.Name = &v
	return r
}

func (r *Radar) WithColorBy(v element.ColorBy) *Radar {
	r.ColorBy = v
	return r
}

func (r *Radar) WithRadarIndex(v float64) *Radar {
	r.RadarIndex = &v
	return r
}

func (r *Radar) WithSymbol(v element.Symbol) *Radar {
	r.Symbol = v
	return r
}

func (r *Radar) WithSymbolSize(v element.SymbolSize) *Radar {
	r.SymbolSize = v
	return r
}

func (r *Radar) WithSymbolRotate(v float64) *Radar {
	r.SymbolRotate = &v
	return r
}

func (r *Radar) WithSymbolKeepAspect(v bool) *Radar {
	r.SymbolKeepAspect = &v
	return r
}

func (r *Radar) WithLabel(v *element.Label) *Radar {
	r.Label = v
	return r
}

func (r *Radar) WithItemStyle(v *element.ItemStyle) *Radar {
	r.ItemStyle = v
	return r
}

func (r *Radar) WithLineStyle(v *element.LineStyle) *Radar {
	r.LineStyle = v
	return r
}

func (r *Radar) WithAreaStyle(v *element.AreaStyle) *Radar {
	r.AreaStyle = v
	return r
}

func (r *Radar) WithEmphasis(v *element.Emphasis) *Radar {
	r.Emphasis = v
	return r
}

func (r *Radar) WithTooltip(v *element.Tooltip) *Radar {
	r.Tooltip = v
	return r
}

func (r *Radar) WithData(v datatype.DataFrame) *Radar {
	r.Data = v
	return r
}
