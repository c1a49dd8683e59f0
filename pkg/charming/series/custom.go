package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Custom is a series drawn by a user supplied renderItem function.
type Custom struct {
	Type             string                   `json:"type"`
	ID               *string                  `json:"id,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	ColorBy          element.ColorBy          `json:"colorBy,omitempty"`
	LegendHoverLink  *bool                    `json:"legendHoverLink,omitempty"`
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       element.CompositeValue   `json:"xAxisIndex,omitempty"`
	YAxisIndex       element.CompositeValue   `json:"yAxisIndex,omitempty"`
	PolarIndex       element.CompositeValue   `json:"polarIndex,omitempty"`
	GeoIndex         element.CompositeValue   `json:"geoIndex,omitempty"`
	CalendarIndex    element.CompositeValue   `json:"calendarIndex,omitempty"`
	// RenderItem is the JS callback returning the graphic element of each data item.
	RenderItem   element.RawString        `json:"renderItem,omitempty"`
	ItemStyle    *element.ItemStyle       `json:"itemStyle,omitempty"`
	LabelLine    *element.LabelLine       `json:"labelLine,omitempty"`
	LabelLayout  *element.LabelLayout     `json:"labelLayout,omitempty"`
	SelectedMode *bool                    `json:"selectedMode,omitempty"`
	Dimensions   []*datatype.Dimension    `json:"dimensions,omitempty"`
	Encode       *element.DimensionEncode `json:"encode,omitempty"`
	Data         datatype.DataFrame       `json:"data,omitempty"`
}

func NewCustom() *Custom {
	return &Custom{Type: "custom"}
}

func (c *Custom) SeriesType() string {
	return c.Type
}

func (c *Custom) WithID(v string) *Custom {
	c.ID = &v
	return c
}

func (c *Custom) WithName(v string) *Custom {
	c.Name = &v
	return c
}

func (c *Custom) WithColorBy(v element.ColorBy) *Custom {
	c.ColorBy = v
	return c
}

func (c *Custom) WithLegendHoverLink(v bool) *Custom {
	c.LegendHoverLink = &v
	return c
}

func (c *Custom) WithCoordinateSystem(v element.CoordinateSystem) *Custom {
	c.CoordinateSystem = v
	return c
}

func (c *Custom) WithXAxisIndex(v element.CompositeValue) *Custom {
	c.XAxisIndex = v
	return c
}

func (c *Custom) WithYAxisIndex(v element.CompositeValue) *Custom {
	c.YAxisIndex = v
	return c
}

func (c *Custom) WithPolarIndex(v element.CompositeValue) *Custom {
	c.PolarIndex = v
	return c
}

func (c *Custom) WithGeoIndex(v element.CompositeValue) *Custom {
	c.GeoIndex = v
	return c
}

func (c *Custom) WithCalendarIndex(v element.CompositeValue) *Custom {
	c.CalendarIndex = v
	return c
}

func (c *Custom) WithRenderItem(v element.RawString) *Custom {
	c.RenderItem = v
	return c
}

func (c *Custom) WithItemStyle(v *element.ItemStyle) *Custom {
	c.ItemStyle = v
	return c
}

func (c *Custom) WithLabelLine(v *element.LabelLine) *Custom {
	c.LabelLine = v
	return c
}

func (c *Custom) WithLabelLayout(v *element.LabelLayout) *Custom {
	c.LabelLayout = v
	return c
}

func (c *Custom) WithSelectedMode(v bool) *Custom {
	c.SelectedMode = &v
	return c
}

func (c *Custom) WithDimensions(v ...*datatype.Dimension) *Custom {
	c.Dimensions = v
	return c
}

func (c *Custom) WithEncode(v *element.DimensionEncode) *Custom {
	c.Encode = v
	return c
}

func (c *Custom) WithData(v datatype.DataFrame) *Custom {
	c.Data = v
	return c
}
