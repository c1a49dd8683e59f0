package element

// BackgroundStyle is the style of the bar background when showBackground is on.
type BackgroundStyle struct {
	Color        Color      `json:"color,omitempty"`
	BorderColor  Color      `json:"borderColor,omitempty"`
	BorderWidth  *float64   `json:"borderWidth,omitempty"`
	BorderType   BorderType `json:"borderType,omitempty"`
	BorderRadius *float64   `json:"borderRadius,omitempty"`
	Opacity      *float64   `json:"opacity,omitempty"`
}

func NewBackgroundStyle() *BackgroundStyle {
	return &BackgroundStyle{}
}

func (b *BackgroundStyle) WithColor(v Color) *BackgroundStyle {
	b.Color = v
	return b
}

func (b *BackgroundStyle) WithBorderColor(v Color) *BackgroundStyle {
	b.BorderColor = v
	return b
}

func (b *BackgroundStyle) WithBorderWidth(v float64) *BackgroundStyle {
	b.BorderWidth = &v
	return b
}

func (b *BackgroundStyle) WithBorderType(v BorderType) *BackgroundStyle {
	b.BorderType = v
	return b
}

func (b *BackgroundStyle) WithBorderRadius(v float64) *BackgroundStyle {
	b.BorderRadius = &v
	return b
}

func (b *BackgroundStyle) WithOpacity(v float64) *BackgroundStyle {
	b.Opacity = &v
	return b
}

// DataBackground is the data shadow drawn inside a slider data zoom.
type DataBackground struct {
	LineStyle *LineStyle `json:"lineStyle,omitempty"`
	AreaStyle *AreaStyle `json:"areaStyle,omitempty"`
}

func NewDataBackground() *DataBackground {
	return &DataBackground{}
}

func (d *DataBackground) WithLineStyle(v *LineStyle) *DataBackground {
	d.LineStyle = v
	return d
}

func (d *DataBackground) WithAreaStyle(v *AreaStyle) *DataBackground {
	d.AreaStyle = v
	return d
}
