package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Boxplot draws the five number summary (min, Q1, median, Q3, max) of each category.
type Boxplot struct {
	Type             string                   `json:"type"`
	ID               *string                  `json:"id,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *float64                 `json:"xAxisIndex,omitempty"`
	YAxisIndex       *float64                 `json:"yAxisIndex,omitempty"`
	ColorBy          element.ColorBy          `json:"colorBy,omitempty"`
	LegendHoverLink  *bool                    `json:"legendHoverLink,omitempty"`
	HoverAnimation   *bool                    `json:"hoverAnimation,omitempty"`
	Layout           element.Orient           `json:"layout,omitempty"`
	BoxWidth         element.Array            `json:"boxWidth,omitempty"`
	ItemStyle        *element.ItemStyle       `json:"itemStyle,omitempty"`
	Emphasis         *element.Emphasis        `json:"emphasis,omitempty"`
	DatasetIndex     *int                     `json:"datasetIndex,omitempty"`
	Encode           *element.DimensionEncode `json:"encode,omitempty"`
	Data             datatype.DataFrame       `json:"data,omitempty"`
}

func NewBoxplot() *Boxplot {
	return &Boxplot{Type: "boxplot"}
}

func (b *Boxplot) SeriesType() string {
	return b.Type
}

func (b *Boxplot) WithID(v string) *Boxplot {
	b.ID = &v
	return b
}

func (b *Boxplot) WithName(v string) *Boxplot {
	b.Name = &v
	return b
}

func (b *Boxplot) WithCoordinateSystem(v element.CoordinateSystem) *Boxplot {
	b.CoordinateSystem = v
	return b
}

func (b *Boxplot) WithXAxisIndex(v float64) *Boxplot {
	b.XAxisIndex = &v
	return b
}

func (b *Boxplot) WithYAxisIndex(v float64) *Boxplot {
	b.YAxisIndex = &v
	return b
}

func (b *Boxplot) WithColorBy(v element.ColorBy) *Boxplot {
	b.ColorBy = v
	return b
}

func (b *Boxplot) WithLegendHoverLink(v bool) *Boxplot {
	b.LegendHoverLink = &v
	return b
}

func (b *Boxplot) WithHoverAnimation(v bool) *Boxplot {
	b.HoverAnimation = &v
	return b
}

func (b *Boxplot) WithLayout(v element.Orient) *Boxplot {
	b.Layout = v
	return b
}

func (b *Boxplot) WithBoxWidth(v element.Array) *Boxplot {
	b.BoxWidth = v
	return b
}

func (b *Boxplot) WithItemStyle(v *element.ItemStyle) *Boxplot {
	b.ItemStyle = v
	return b
}

func (b *Boxplot) WithEmphasis(v *element.Emphasis) *Boxplot {
	b.Emphasis = v
	return b
}

func (b *Boxplot) WithDatasetIndex(v int) *Boxplot {
	b.DatasetIndex = &v
	return b
}

func (b *Boxplot) WithEncode(v *element.DimensionEncode) *Boxplot {
	b.Encode = v
	return b
}

func (b *Boxplot) WithData(v datatype.DataFrame) *Boxplot {
	b.Data = v
	return b
}
