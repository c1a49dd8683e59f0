package element

// Blur is the style of graphics faded out while another item is emphasized.
type Blur struct {
	Label     *Label     `json:"label,omitempty"`
	ItemStyle *ItemStyle `json:"itemStyle,omitempty"`
}

func NewBlur() *Blur {
	return &Blur{}
}

func (b *Blur) WithLabel(v *Label) *Blur {
	b.Label = v
	return b
}

func (b *Blur) WithItemStyle(v *ItemStyle) *Blur {
	b.ItemStyle = v
	return b
}

// Select is the style of selected items.
type Select struct {
	Disabled  *bool      `json:"disabled,omitempty"`
	Label     *Label     `json:"label,omitempty"`
	ItemStyle *ItemStyle `json:"itemStyle,omitempty"`
}

func NewSelect() *Select {
	return &Select{}
}

func (s *Select) WithDisabled(v bool) *Select {
	s.Disabled = &v
	return s
}

func (s *Select) WithLabel(v *Label) *Select {
	s.Label = v
	return s
}

func (s *Select) WithItemStyle(v *ItemStyle) *Select {
	s.ItemStyle = v
	return s
}
