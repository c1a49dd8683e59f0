package element

type LineStyleType string

const (
	LineStyleTypeSolid  LineStyleType = "solid"
	LineStyleTypeDashed LineStyleType = "dashed"
	LineStyleTypeDotted LineStyleType = "dotted"
)

type LineStyle struct {
	Color       Color         `json:"color,omitempty"`
	Width       *float64      `json:"width,omitempty"`
	Type        LineStyleType `json:"type,omitempty"`
	Opacity     *float64      `json:"opacity,omitempty"`
	Curveness   *float64      `json:"curveness,omitempty"`
	ShadowBlur  *float64      `json:"shadowBlur,omitempty"`
	ShadowColor Color         `json:"shadowColor,omitempty"`
}

func NewLineStyle() *LineStyle {
	return &LineStyle{}
}

func (l *LineStyle) WithColor(v Color) *LineStyle {
	l.Color = v
	return l
}

func (l *LineStyle) WithWidth(v float64) *LineStyle {
	l.Width = &v
	return l
}

func (l *LineStyle) WithType(v LineStyleType) *LineStyle {
	l.Type = v
	return l
}

func (l *LineStyle) WithOpacity(v float64) *LineStyle {
	l.Opacity = &v
	return l
}

func (l *LineStyle) WithCurveness(v float64) *LineStyle {
	l.Curveness = &v
	return l
}

func (l *LineStyle) WithShadowBlur(v float64) *LineStyle {
	l.ShadowBlur = &v
	return l
}

func (l *LineStyle) WithShadowColor(v Color) *LineStyle {
	l.ShadowColor = v
	return l
}
