package element

type Trigger string

const (
	// TriggerItem fires on data items, for charts without category axes.
	TriggerItem Trigger = "item"
	// TriggerAxis fires on axes, for bar and line charts.
	TriggerAxis Trigger = "axis"
	// TriggerNone never fires.
	TriggerNone Trigger = "none"
)

type TriggerOn string

const (
	TriggerOnMousemove         TriggerOn = "mousemove"
	TriggerOnClick             TriggerOn = "click"
	TriggerOnMousemoveAndClick TriggerOn = "mousemove|click"
	TriggerOnNone              TriggerOn = "none"
)

// Tooltip is the floating box describing the hovered item or axis value.
type Tooltip struct {
	Show *bool `json:"show,omitempty"`
	// Trigger is what the tooltip reacts to.
	Trigger Trigger `json:"trigger,omitempty"`
	// TriggerOn is the mouse action that shows the tooltip.
	TriggerOn   TriggerOn    `json:"triggerOn,omitempty"`
	AxisPointer *AxisPointer `json:"axisPointer,omitempty"`
	// Formatter renders the content from a template or a JS callback.
	Formatter Formatter `json:"formatter,omitempty"`
	// ValueFormatter renders only the value part of the default content.
	ValueFormatter Formatter `json:"valueFormatter,omitempty"`
	// Position is a preset such as "inside" or an [x, y] pair.
	Position        CompositeValue `json:"position,omitempty"`
	Padding         Padding        `json:"padding,omitempty"`
	BackgroundColor Color          `json:"backgroundColor,omitempty"`
	BorderColor     Color          `json:"borderColor,omitempty"`
	BorderWidth     *float64       `json:"borderWidth,omitempty"`
	TextStyle       *TextStyle     `json:"textStyle,omitempty"`
	ExtraCSSText    *string        `json:"extraCssText,omitempty"`
}

func NewTooltip() *Tooltip {
	return &Tooltip{}
}

func (t *Tooltip) WithShow(v bool) *Tooltip {
	t.Show = &v
	return t
}

func (t *Tooltip) WithTrigger(v Trigger) *Tooltip {
	t.Trigger = v
	return t
}

func (t *Tooltip) WithTriggerOn(v TriggerOn) *Tooltip {
	t.TriggerOn = v
	return t
}

func (t *Tooltip) WithAxisPointer(v *AxisPointer) *Tooltip {
	t.AxisPointer = v
	return t
}

func (t *Tooltip) WithFormatter(v Formatter) *Tooltip {
	t.Formatter = v
	return t
}

func (t *Tooltip) WithValueFormatter(v Formatter) *Tooltip {
	t.ValueFormatter = v
	return t
}

func (t *Tooltip) WithPosition(v CompositeValue) *Tooltip {
	t.Position = v
	return t
}

func (t *Tooltip) WithPadding(v ...float64) *Tooltip {
	t.Padding = Padding(v)
	return t
}

func (t *Tooltip) WithBackgroundColor(v Color) *Tooltip {
	t.BackgroundColor = v
	return t
}

func (t *Tooltip) WithBorderColor(v Color) *Tooltip {
	t.BorderColor = v
	return t
}

func (t *Tooltip) WithBorderWidth(v float64) *Tooltip {
	t.BorderWidth = &v
	return t
}

func (t *Tooltip) WithTextStyle(v *TextStyle) *Tooltip {
	t.TextStyle = v
	return t
}

func (t *Tooltip) WithExtraCSSText(v string) *Tooltip {
	t.ExtraCSSText = &v
	return t
}
