package element

// Anchor is the fixed point at the center of a gauge pointer.
type Anchor struct {
	Show         *bool      `json:"show,omitempty"`
	ShowAbove    *bool      `json:"showAbove,omitempty"`
	Size         *float64   `json:"size,omitempty"`
	Icon         Icon       `json:"icon,omitempty"`
	OffsetCenter *[2]string `json:"offsetCenter,omitempty"`
	KeepAspect   *bool      `json:"keepAspect,omitempty"`
	ItemStyle    *ItemStyle `json:"itemStyle,omitempty"`
}

func NewAnchor() *Anchor {
	return &Anchor{}
}

func (a *Anchor) WithShow(v bool) *Anchor {
	a.Show = &v
	return a
}

func (a *Anchor) WithShowAbove(v bool) *Anchor {
	a.ShowAbove = &v
	return a
}

func (a *Anchor) WithSize(v float64) *Anchor {
	a.Size = &v
	return a
}

func (a *Anchor) WithIcon(v Icon) *Anchor {
	a.Icon = v
	return a
}

func (a *Anchor) WithOffsetCenter(x, y string) *Anchor {
	a.OffsetCenter = &[2]string{x, y}
	return a
}

func (a *Anchor) WithKeepAspect(v bool) *Anchor {
	a.KeepAspect = &v
	return a
}

func (a *Anchor) WithItemStyle(v *ItemStyle) *Anchor {
	a.ItemStyle = v
	return a
}
