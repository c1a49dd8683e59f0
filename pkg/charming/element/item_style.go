package element

// ItemStyle is the graphic style of a data item: bar, slice, symbol or node.
type ItemStyle struct {
	// Color fills the item. Candlesticks use it for rising items.
	Color Color `json:"color,omitempty"`
	// Color0 fills falling candlesticks.
	Color0       Color      `json:"color0,omitempty"`
	BorderColor  Color      `json:"borderColor,omitempty"`
	BorderColor0 Color      `json:"borderColor0,omitempty"`
	BorderWidth  *float64   `json:"borderWidth,omitempty"`
	BorderType   BorderType `json:"borderType,omitempty"`
	// BorderRadius is a single radius or one per corner.
	BorderRadius CompositeValue `json:"borderRadius,omitempty"`
	Opacity      *float64       `json:"opacity,omitempty"`
	// AreaColor fills geo regions.
	AreaColor     Color    `json:"areaColor,omitempty"`
	ShadowBlur    *float64 `json:"shadowBlur,omitempty"`
	ShadowColor   Color    `json:"shadowColor,omitempty"`
	ShadowOffsetX *float64 `json:"shadowOffsetX,omitempty"`
	ShadowOffsetY *float64 `json:"shadowOffsetY,omitempty"`
}

func NewItemStyle() *ItemStyle {
	return &ItemStyle{}
}

func (i *ItemStyle) WithColor(v Color) *ItemStyle {
	i.Color = v
	return i
}

func (i *ItemStyle) WithColor0(v Color) *ItemStyle {
	i.Color0 = v
	return i
}

func (i *ItemStyle) WithBorderColor(v Color) *ItemStyle {
	i.BorderColor = v
	return i
}

func (i *ItemStyle) WithBorderColor0(v Color) *ItemStyle {
	i.BorderColor0 = v
	return i
}

func (i *ItemStyle) WithBorderWidth(v float64) *ItemStyle {
	i.BorderWidth = &v
	return i
}

func (i *ItemStyle) WithBorderType(v BorderType) *ItemStyle {
	i.BorderType = v
	return i
}

func (i *ItemStyle) WithBorderRadius(v CompositeValue) *ItemStyle {
	i.BorderRadius = v
	return i
}

func (i *ItemStyle) WithOpacity(v float64) *ItemStyle {
	i.Opacity = &v
	return i
}

func (i *ItemStyle) WithAreaColor(v Color) *ItemStyle {
	i.AreaColor = v
	return i
}

func (i *ItemStyle) WithShadowBlur(v float64) *ItemStyle {
	i.ShadowBlur = &v
	return i
}

func (i *ItemStyle) WithShadowColor(v Color) *ItemStyle {
	i.ShadowColor = v
	return i
}

func (i *ItemStyle) WithShadowOffsetX(v float64) *ItemStyle {
	i.ShadowOffsetX = &v
	return i
}

func (i *ItemStyle) WithShadowOffsetY(v float64) *ItemStyle {
	i.ShadowOffsetY = &v
	return i
}
