package component

type AriaLabel struct {
	Enabled     *bool   `json:"enabled,omitempty"`
	Description *string `json:"description,omitempty"`
}

func NewAriaLabel() *AriaLabel {
	return &AriaLabel{}
}

func (a *AriaLabel) WithEnabled(v bool) *AriaLabel {
	a.Enabled = &v
	return a
}

func (a *AriaLabel) WithDescription(v string) *AriaLabel {
	a.Description = &v
	return a
}

type AriaDecal struct {
	Show *bool `json:"show,omitempty"`
}

func NewAriaDecal() *AriaDecal {
	return &AriaDecal{}
}

func (a *AriaDecal) WithShow(v bool) *AriaDecal {
	a.Show = &v
	return a
}

// Aria turns on accessibility: generated chart descriptions and decal patterns.
type Aria struct {
	Enabled *bool      `json:"enabled,omitempty"`
	Label   *AriaLabel `json:"label,omitempty"`
	Decal   *AriaDecal `json:"decal,omitempty"`
}

func NewAria() *Aria {
	return &Aria{}
}

func (a *Aria) WithEnabled(v bool) *Aria {
	a.Enabled = &v
	return a
}

func (a *Aria) WithLabel(v *AriaLabel) *Aria {
	a.Label = v
	return a
}

func (a *Aria) WithDecal(v *AriaDecal) *Aria {
	a.Decal = v
	return a
}
