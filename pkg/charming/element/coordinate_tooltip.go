package element

// CoordinateTooltip is a tooltip configured on a coordinate system such as
// a polar or radar component.
type CoordinateTooltip struct {
	Show            *bool          `json:"show,omitempty"`
	Trigger         Trigger        `json:"trigger,omitempty"`
	Position        CompositeValue `json:"position,omitempty"`
	Formatter       Formatter      `json:"formatter,omitempty"`
	ValueFormatter  Formatter      `json:"valueFormatter,omitempty"`
	BackgroundColor Color          `json:"backgroundColor,omitempty"`
	BorderColor     Color          `json:"borderColor,omitempty"`
	Padding         Padding        `json:"padding,omitempty"`
	TextStyle       *TextStyle     `json:"textStyle,omitempty"`
}

func NewCoordinateTooltip() *CoordinateTooltip {
	return &CoordinateTooltip{}
}

func (c *CoordinateTooltip) WithShow(v bool) *CoordinateTooltip {
	c.Show = &v
	return c
}

func (c *CoordinateTooltip) WithTrigger(v Trigger) *CoordinateTooltip {
	c.Trigger = v
	return c
}

func (c *CoordinateTooltip) WithPosition(v CompositeValue) *CoordinateTooltip {
	c.Position = v
	return c
}

func (c *CoordinateTooltip) WithFormatter(v Formatter) *CoordinateTooltip {
	c.Formatter = v
	return c
}

func (c *CoordinateTooltip) WithValueFormatter(v Formatter) *CoordinateTooltip {
	c.ValueFormatter = v
	return c
}

func (c *CoordinateTooltip) WithBackgroundColor(v Color) *CoordinateTooltip {
	c.BackgroundColor = v
	return c
}

func (c *CoordinateTooltip) WithBorderColor(v Color) *CoordinateTooltip {
	c.BorderColor = v
	return c
}

func (c *CoordinateTooltip) WithPadding(v ...float64) *CoordinateTooltip {
	c.Padding = Padding(v)
	return c
}

func (c *CoordinateTooltip) WithTextStyle(v *TextStyle) *CoordinateTooltip {
	c.TextStyle = v
	return c
}
