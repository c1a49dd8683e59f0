package element

// LabelPosition places a label relative to its graphic.
type LabelPosition string

const (
	LabelPositionTop               LabelPosition = "top"
	LabelPositionLeft              LabelPosition = "left"
	LabelPositionRight             LabelPosition = "right"
	LabelPositionBottom            LabelPosition = "bottom"
	LabelPositionInside            LabelPosition = "inside"
	LabelPositionInsideLeft        LabelPosition = "insideLeft"
	LabelPositionInsideRight       LabelPosition = "insideRight"
	LabelPositionInsideTop         LabelPosition = "insideTop"
	LabelPositionInsideBottom      LabelPosition = "insideBottom"
	LabelPositionInsideTopLeft     LabelPosition = "insideTopLeft"
	LabelPositionInsideBottomLeft  LabelPosition = "insideBottomLeft"
	LabelPositionInsideTopRight    LabelPosition = "insideTopRight"
	LabelPositionInsideBottomRight LabelPosition = "insideBottomRight"
	LabelPositionStart             LabelPosition = "start"
	LabelPositionOutside           LabelPosition = "outside"
	LabelPositionMiddle            LabelPosition = "middle"
	LabelPositionCenter            LabelPosition = "center"
	LabelPositionEnd               LabelPosition = "end"
)

type LabelAlign string

const (
	LabelAlignLeft   LabelAlign = "left"
	LabelAlignCenter LabelAlign = "center"
	LabelAlignRight  LabelAlign = "right"
)

type LabelVerticalAlign string

const (
	LabelVerticalAlignTop    LabelVerticalAlign = "top"
	LabelVerticalAlignMiddle LabelVerticalAlign = "middle"
	LabelVerticalAlignBottom LabelVerticalAlign = "bottom"
)

// Label is the text attached to a graphic element.
type Label struct {
	// Show toggles the label.
	Show *bool `json:"show,omitempty"`
	// Position places the label relative to the graphic.
	Position LabelPosition `json:"position,omitempty"`
	// Distance is the gap to the graphic, used by positions like top or insideRight.
	Distance *float64 `json:"distance,omitempty"`
	// Rotate is the rotation in degrees, or "radial"/"tangential" on pies.
	Rotate CompositeValue `json:"rotate,omitempty"`
	// Offset moves the label by [x, y] pixels.
	Offset *[2]float64 `json:"offset,omitempty"`
	// Formatter is a template such as "{b}: {c}" or a JS callback.
	Formatter     Formatter          `json:"formatter,omitempty"`
	Color         Color              `json:"color,omitempty"`
	FontSize      *float64           `json:"fontSize,omitempty"`
	FontWeight    *string            `json:"fontWeight,omitempty"`
	Padding       *[4]float64        `json:"padding,omitempty"`
	Align         LabelAlign         `json:"align,omitempty"`
	VerticalAlign LabelVerticalAlign `json:"verticalAlign,omitempty"`
	// Silent stops the label from responding to the mouse.
	Silent          *bool    `json:"silent,omitempty"`
	BackgroundColor Color    `json:"backgroundColor,omitempty"`
	BorderColor     Color    `json:"borderColor,omitempty"`
	BorderWidth     *float64 `json:"borderWidth,omitempty"`
	ShadowBlur      *float64 `json:"shadowBlur,omitempty"`
	ShadowOffsetX   *float64 `json:"shadowOffsetX,omitempty"`
	ShadowOffsetY   *float64 `json:"shadowOffsetY,omitempty"`
}

func NewLabel() *Label {
	return &Label{}
}

func (l *Label) WithShow(v bool) *Label {
	l.Show = &v
	return l
}

func (l *Label) WithPosition(v LabelPosition) *Label {
	l.Position = v
	return l
}

func (l *Label) WithDistance(v float64) *Label {
	l.Distance = &v
	return l
}

func (l *Label) WithRotate(v CompositeValue) *Label {
	l.Rotate = v
	return l
}

func (l *Label) WithOffset(x, y float64) *Label {
	l.Offset = &[2]float64{x, y}
	return l
}

func (l *Label) WithFormatter(v Formatter) *Label {
	l.Formatter = v
	return l
}

func (l *Label) WithColor(v Color) *Label {
	l.Color = v
	return l
}

func (l *Label) WithFontSize(v float64) *Label {
	l.FontSize = &v
	return l
}

func (l *Label) WithFontWeight(v string) *Label {
	l.FontWeight = &v
	return l
}

func (l *Label) WithPadding(top, right, bottom, left float64) *Label {
	l.Padding = &[4]float64{top, right, bottom, left}
	return l
}

func (l *Label) WithAlign(v LabelAlign) *Label {
	l.Align = v
	return l
}

func (l *Label) WithVerticalAlign(v LabelVerticalAlign) *Label {
	l.VerticalAlign = v
	return l
}

func (l *Label) WithSilent(v bool) *Label {
	l.Silent = &v
	return l
}

func (l *Label) WithBackgroundColor(v Color) *Label {
	l.BackgroundColor = v
	return l
}

func (l *Label) WithBorderColor(v Color) *Label {
	l.BorderColor = v
	return l
}

func (l *Label) WithBorderWidth(v float64) *Label {
	l.BorderWidth = &v
	return l
}

func (l *Label) WithShadowBlur(v float64) *Label {
	l.ShadowBlur = &v
	return l
}

func (l *Label) WithShadowOffsetX(v float64) *Label {
	l.ShadowOffsetX = &v
	return l
}

func (l *Label) WithShadowOffsetY(v float64) *Label {
	l.ShadowOffsetY = &v
	return l
}

// LabelLine is the guide line between a graphic and its outside label.
type LabelLine struct {
	Show         *bool      `json:"show,omitempty"`
	ShowAbove    *bool      `json:"showAbove,omitempty"`
	Length       *float64   `json:"length,omitempty"`
	Length2      *float64   `json:"length2,omitempty"`
	Smooth       *bool      `json:"smooth,omitempty"`
	MinTurnAngle *float64   `json:"minTurnAngle,omitempty"`
	LineStyle    *LineStyle `json:"lineStyle,omitempty"`
}

func NewLabelLine() *LabelLine {
	return &LabelLine{}
}

func (l *LabelLine) WithShow(v bool) *LabelLine {
	l.Show = &v
	return l
}

func (l *LabelLine) WithShowAbove(v bool) *LabelLine {
	l.ShowAbove = &v
	return l
}

func (l *LabelLine) WithLength(v float64) *LabelLine {
	l.Length = &v
	return l
}

func (l *LabelLine) WithLength2(v float64) *LabelLine {
	l.Length2 = &v
	return l
}

func (l *LabelLine) WithSmooth(v bool) *LabelLine {
	l.Smooth = &v
	return l
}

func (l *LabelLine) WithMinTurnAngle(v float64) *LabelLine {
	l.MinTurnAngle = &v
	return l
}

func (l *LabelLine) WithLineStyle(v *LineStyle) *LabelLine {
	l.LineStyle = v
	return l
}

// LabelLayout adjusts label placement after layout, e.g. to hide overlapping labels.
type LabelLayout struct {
	HideOverlap *bool    `json:"hideOverlap,omitempty"`
	MoveOverlap *string  `json:"moveOverlap,omitempty"`
	Rotate      *float64 `json:"rotate,omitempty"`
}

func NewLabelLayout() *LabelLayout {
	return &LabelLayout{}
}

func (l *LabelLayout) WithHideOverlap(v bool) *LabelLayout {
	l.HideOverlap = &v
	return l
}

func (l *LabelLayout) WithMoveOverlap(v string) *LabelLayout {
	l.MoveOverlap = &v
	return l
}

func (l *LabelLayout) WithRotate(v float64) *LabelLayout {
	l.Rotate = &v
	return l
}
