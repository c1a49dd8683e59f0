package element

// AreaStyle fills the area under a line or inside a radar polygon.
type AreaStyle struct {
	Color       Color          `json:"color,omitempty"`
	Origin      OriginPosition `json:"origin,omitempty"`
	Opacity     *float64       `json:"opacity,omitempty"`
	ShadowBlur  *float64       `json:"shadowBlur,omitempty"`
	ShadowColor Color          `json:"shadowColor,omitempty"`
}

func NewAreaStyle() *AreaStyle {
	return &AreaStyle{}
}

func (a *AreaStyle) WithColor(v Color) *AreaStyle {
	a.Color = v
	return a
}

func (a *AreaStyle) WithOrigin(v OriginPosition) *AreaStyle {
	a.Origin = v
	return a
}

func (a *AreaStyle) WithOpacity(v float64) *AreaStyle {
	a.Opacity = &v
	return a
}

func (a *AreaStyle) WithShadowBlur(v float64) *AreaStyle {
	a.ShadowBlur = &v
	return a
}

func (a *AreaStyle) WithShadowColor(v Color) *AreaStyle {
	a.ShadowColor = v
	return a
}
