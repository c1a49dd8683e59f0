package element

// EmphasisFocus selects which other graphics stay highlighted while one is hovered.
type EmphasisFocus string

const (
	EmphasisFocusNone       EmphasisFocus = "none"
	EmphasisFocusSelf       EmphasisFocus = "self"
	EmphasisFocusSeries     EmphasisFocus = "series"
	EmphasisFocusAncestor   EmphasisFocus = "ancestor"
	EmphasisFocusDescendant EmphasisFocus = "descendant"
	EmphasisFocusRelative   EmphasisFocus = "relative"
	EmphasisFocusAdjacency  EmphasisFocus = "adjacency"
)

// Emphasis is the highlighted state of a graphic.
type Emphasis struct {
	Disabled  *bool         `json:"disabled,omitempty"`
	Focus     EmphasisFocus `json:"focus,omitempty"`
	Scale     *bool         `json:"scale,omitempty"`
	ItemStyle *ItemStyle    `json:"itemStyle,omitempty"`
	AreaStyle *AreaStyle    `json:"areaStyle,omitempty"`
	LineStyle *LineStyle    `json:"lineStyle,omitempty"`
	Label     *Label        `json:"label,omitempty"`
}

func NewEmphasis() *Emphasis {
	return &Emphasis{}
}

func (e *Emphasis) WithDisabled(v bool) *Emphasis {
	e.Disabled = &v
	return e
}

func (e *Emphasis) WithFocus(v EmphasisFocus) *Emphasis {
	e.Focus = v
	return e
}

func (e *Emphasis) WithScale(v bool) *Emphasis {
	e.Scale = &v
	return e
}

func (e *Emphasis) WithItemStyle(v *ItemStyle) *Emphasis {
	e.ItemStyle = v
	return e
}

func (e *Emphasis) WithAreaStyle(v *AreaStyle) *Emphasis {
	e.AreaStyle = v
	return e
}

func (e *Emphasis) WithLineStyle(v *LineStyle) *Emphasis {
	e.LineStyle = v
	return e
}

func (e *Emphasis) WithLabel(v *Label) *Emphasis {
	e.Label = v
	return e
}
