package element

// Pointer is the needle of a gauge.
type Pointer struct {
	Show         *bool          `json:"show,omitempty"`
	ShowAbove    *bool          `json:"showAbove,omitempty"`
	Icon         Icon           `json:"icon,omitempty"`
	OffsetCenter *[2]string     `json:"offsetCenter,omitempty"`
	Length       CompositeValue `json:"length,omitempty"`
	Width        *float64       `json:"width,omitempty"`
	KeepAspect   *bool          `json:"keepAspect,omitempty"`
	ItemStyle    *ItemStyle     `json:"itemStyle,omitempty"`
}

func NewPointer() *Pointer {
	return &Pointer{}
}

func (p *Pointer) WithShow(v bool) *Pointer {
	p.Show = &v
	return p
}

func (p *Pointer) WithShowAbove(v bool) *Pointer {
	p.ShowAbove = &v
	return p
}

func (p *Pointer) WithIcon(v Icon) *Pointer {
	p.Icon = v
	return p
}

func (p *Pointer) WithOffsetCenter(x, y string) *Pointer {
	p.OffsetCenter = &[2]string{x, y}
	return p
}

func (p *Pointer) WithLength(v CompositeValue) *Pointer {
	p.Length = v
	return p
}

func (p *Pointer) WithWidth(v float64) *Pointer {
	p.Width = &v
	return p
}

func (p *Pointer) WithKeepAspect(v bool) *Pointer {
	p.KeepAspect = &v
	return p
}

func (p *Pointer) WithItemStyle(v *ItemStyle) *Pointer {
	p.ItemStyle = v
	return p
}

// ScaleLimit bounds the zoom level of a roaming component.
type ScaleLimit struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

func NewScaleLimit() *ScaleLimit {
	return &ScaleLimit{}
}

func (s *ScaleLimit) WithMin(v float64) *ScaleLimit {
	s.Min = &v
	return s
}

func (s *ScaleLimit) WithMax(v float64) *ScaleLimit {
	s.Max = &v
	return s
}
