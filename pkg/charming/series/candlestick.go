package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Candlestick is a K line series. Each data item is [open, close, lowest, highest].
type Candlestick struct {
	Type             string                   `json:"type"`
	ID               *string                  `json:"id,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *float64                 `json:"xAxisIndex,omitempty"`
	YAxisIndex       *float64                 `json:"yAxisIndex,omitempty"`
	ColorBy          element.ColorBy          `json:"colorBy,omitempty"`
	LegendHoverLink  *bool                    `json:"legendHoverLink,omitempty"`
	BarWidth         element.CompositeValue   `json:"barWidth,omitempty"`
	BarMaxWidth      element.CompositeValue   `json:"barMaxWidth,omitempty"`
	ItemStyle        *element.ItemStyle       `json:"itemStyle,omitempty"`
	Emphasis         *element.Emphasis        `json:"emphasis,omitempty"`
	MarkPoint        *element.MarkPoint       `json:"markPoint,omitempty"`
	MarkLine         *element.MarkLine        `json:"markLine,omitempty"`
	Encode           *element.DimensionEncode `json:"encode,omitempty"`
	Data             datatype.DataFrame       `json:"data,omitempty"`
}

func NewCandlestick() *Candlestick {
	return &Candlestick{Type: "candlestick"}
}

func (c *Candlestick) SeriesType() string {
	return c.Type
}

func (c *Candlestick) WithID(v string) *Candlestick {
	c.ID = &v
	return c
}

func (c *Candlestick) WithName(v string) *Candlestick {
	c.Name = &v
	return c
}

func (c *Candlestick) WithCoordinateSystem(v element.CoordinateSystem) *Candlestick {
	c.CoordinateSystem = v
	return c
}

func (c *Candlestick) WithXAxisIndex(v float64) *Candlestick {
	c.XAxisIndex = &v
	return c
}

func (c *Candlestick) WithYAxisIndex(v float64) *Candlestick {
	c.YAxisIndex = &v
	return c
}

func (c *Candlestick) WithColorBy(v element.ColorBy) *Candlestick {
	c.ColorBy = v
	return c
}

func (c *Candlestick) WithLegendHoverLink(v bool) *Candlestick {
	c.LegendHoverLink = &v
	return c
}

func (c *Candlestick) WithBarWidth(v element.CompositeValue) *Candlestick {
	c.BarWidth = v
	return c
}

func (c *Candlestick) WithBarMaxWidth(v element.CompositeValue) *Candlestick {
	c.BarMaxWidth = v
	return c
}

func (c *Candlestick) WithItemStyle(v *element.ItemStyle) *Candlestick {
	c.ItemStyle = v
	return c
}

func (c *Candlestick) WithEmphasis(v *element.Emphasis) *Candlestick {
	c.Emphasis = v
	return c
}

func (c *Candlestick) WithMarkPoint(v *element.MarkPoint) *Candlestick {
	c.MarkPoint = v
	return c
}

func (c *Candlestick) WithMarkLine(v *element.MarkLine) *Candlestick {
	c.MarkLine = v
	return c
}

func (c *Candlestick) WithEncode(v *element.DimensionEncode) *Candlestick {
	c.Encode = v
	return c
}

func (c *Candlestick) WithData(v datatype.DataFrame) *Candlestick {
	c.Data = v
	return c
}
