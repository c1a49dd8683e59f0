package element

type AxisPointerType string

const (
	AxisPointerTypeLine   AxisPointerType = "line"
	AxisPointerTypeShadow AxisPointerType = "shadow"
	AxisPointerTypeCross  AxisPointerType = "cross"
	AxisPointerTypeNone   AxisPointerType = "none"
)

type AxisPointerAxis string

const (
	AxisPointerAxisX      AxisPointerAxis = "x"
	AxisPointerAxisY      AxisPointerAxis = "y"
	AxisPointerAxisRadius AxisPointerAxis = "radius"
	AxisPointerAxisAngle  AxisPointerAxis = "angle"
)

// AxisPointerLink links the pointers of several axes so they move together.
type AxisPointerLink struct {
	XAxisIndex CompositeValue `json:"xAxisIndex,omitempty"`
	XAxisName  *string        `json:"xAxisName,omitempty"`
	YAxisIndex CompositeValue `json:"yAxisIndex,omitempty"`
	YAxisName  *string        `json:"yAxisName,omitempty"`
}

func NewAxisPointerLink() *AxisPointerLink {
	return &AxisPointerLink{}
}

func (a *AxisPointerLink) WithXAxisIndex(v CompositeValue) *AxisPointerLink {
	a.XAxisIndex = v
	return a
}

func (a *AxisPointerLink) WithXAxisName(v string) *AxisPointerLink {
	a.XAxisName = &v
	return a
}

func (a *AxisPointerLink) WithYAxisIndex(v CompositeValue) *AxisPointerLink {
	a.YAxisIndex = v
	return a
}

func (a *AxisPointerLink) WithYAxisName(v string) *AxisPointerLink {
	a.YAxisName = &v
	return a
}

// AxisPointer is the indicator that follows the mouse along an axis.
type AxisPointer struct {
	ID   *string `json:"id,omitempty"`
	Show *bool   `json:"show,omitempty"`
	// Type is the pointer shape: a line, a shadow band or a crosshair.
	Type AxisPointerType `json:"type,omitempty"`
	// Snap makes the pointer jump to the nearest data point.
	Snap      *bool    `json:"snap,omitempty"`
	Animation *bool    `json:"animation,omitempty"`
	Z         *float64 `json:"z,omitempty"`
	// Axis restricts a tooltip axis pointer to one axis.
	Axis      AxisPointerAxis    `json:"axis,omitempty"`
	Label     *Label             `json:"label,omitempty"`
	LineStyle *LineStyle         `json:"lineStyle,omitempty"`
	Link      []*AxisPointerLink `json:"link,omitempty"`
}

func NewAxisPointer() *AxisPointer {
	return &AxisPointer{}
}

func (a *AxisPointer) WithID(v string) *AxisPointer {
	a.ID = &v
	return a
}

func (a *AxisPointer) WithShow(v bool) *AxisPointer {
	a.Show = &v
	return a
}

func (a *AxisPointer) WithType(v AxisPointerType) *AxisPointer {
	a.Type = v
	return a
}

func (a *AxisPointer) WithSnap(v bool) *AxisPointer {
	a.Snap = &v
	return a
}

func (a *AxisPointer) WithAnimation(v bool) *AxisPointer {
	a.Animation = &v
	return a
}

func (a *AxisPointer) WithZ(v float64) *AxisPointer {
	a.Z = &v
	return a
}

func (a *AxisPointer) WithAxis(v AxisPointerAxis) *AxisPointer {
	a.Axis = v
	return a
}

func (a *AxisPointer) WithLabel(v *Label) *AxisPointer {
	a.Label = v
	return a
}

func (a *AxisPointer) WithLineStyle(v *LineStyle) *AxisPointer {
	a.LineStyle = v
	return a
}

func (a *AxisPointer) WithLink(v ...*AxisPointerLink) *AxisPointer {
	a.Link = v
	return a
}
