package element

type TextStyle struct {
	Color         Color             `json:"color,omitempty"`
	FontStyle     *string           `json:"fontStyle,omitempty"`
	FontWeight    *string           `json:"fontWeight,omitempty"`
	FontFamily    *string           `json:"fontFamily,omitempty"`
	FontSize      *float64          `json:"fontSize,omitempty"`
	LineHeight    *float64          `json:"lineHeight,omitempty"`
	Align         TextAlign         `json:"align,omitempty"`
	VerticalAlign TextVerticalAlign `json:"verticalAlign,omitempty"`
}

func NewTextStyle() *TextStyle {
	return &TextStyle{}
}

func (t *TextStyle) WithColor(v Color) *TextStyle {
	t.Color = v
	return t
}

func (t *TextStyle) WithFontStyle(v string) *TextStyle {
	t.FontStyle = &v
	return t
}

func (t *TextStyle) WithFontWeight(v string) *TextStyle {
	t.FontWeight = &v
	return t
}

func (t *TextStyle) WithFontFamily(v string) *TextStyle {
	t.FontFamily = &v
	return t
}

func (t *TextStyle) WithFontSize(v float64) *TextStyle {
	t.FontSize = &v
	return t
}

func (t *TextStyle) WithLineHeight(v float64) *TextStyle {
	t.LineHeight = &v
	return t
}

func (t *TextStyle) WithAlign(v TextAlign) *TextStyle {
	t.Align = v
	return t
}

func (t *TextStyle) WithVerticalAlign(v TextVerticalAlign) *TextStyle {
	t.VerticalAlign = v
	return t
}
