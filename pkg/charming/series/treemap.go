package series

import "github.com/ukaji3/charming-go/pkg/charming/element"

// Treemap draws a hierarchy as nested rectangles sized by value.
type Treemap struct {
	Type       string                 `json:"type"`
	ID         *string                `json:"id,omitempty"`
	Name       *string                `json:"name,omitempty"`
	ZLevel     *float64               `json:"zlevel,omitempty"`
	Z          *float64               `json:"z,omitempty"`
	Left       element.CompositeValue `json:"left,omitempty"`
	Top        element.CompositeValue `json:"top,omitempty"`
	Right      element.CompositeValue `json:"right,omitempty"`
	Bottom     element.CompositeValue `json:"bottom,omitempty"`
	Width      element.CompositeValue `json:"width,omitempty"`
	Height     element.CompositeValue `json:"height,omitempty"`
	Roam       *bool                  `json:"roam,omitempty"`
	NodeClick  *string                `json:"nodeClick,omitempty"`
	LeafDepth  *int                   `json:"leafDepth,omitempty"`
	VisibleMin *float64               `json:"visibleMin,omitempty"`
	Label      *element.Label         `json:"label,omitempty"`
	UpperLabel *element.Label         `json:"upperLabel,omitempty"`
	ItemStyle  *element.ItemStyle     `json:"itemStyle,omitempty"`
	Emphasis   *element.Emphasis      `json:"emphasis,omitempty"`
	Data       []*TreeNode            `json:"data,omitempty"`
}

func NewTreemap() *Treemap {
	return &Treemap{Type: "treemap"}
}

func (t *Treemap) SeriesType() string {
	return t.Type
}

func (t *Treemap) WithID(v string) *Treemap {
	t.ID = &v
	return t
}

func (t *Treemap) WithName(v string) *Treemap {
	t.Name = &v
	return t
}

func (t *Treemap) WithZLevel(v float64) *Treemap {
	t.ZLevel = &v
	return t
}

func (t *Treemap) WithZ(v float64) *Treemap {
	t.Z = &v
	return t
}

func (t *Treemap) WithLeft(v element.CompositeValue) *Treemap {
	t.Left = v
	return t
}

func (t *Treemap) WithTop(v element.CompositeValue) *Treemap {
	t.Top = v
	return t
}

func (t *Treemap) WithRight(v element.CompositeValue) *Treemap {
	t.Right = v
	return t
}

func (t *Treemap) WithBottom(v element.CompositeValue) *Treemap {
	t.Bottom = v
	return t
}

func (t *Treemap) WithWidth(v element.CompositeValue) *Treemap {
	t.Width = v
	return t
}

func (t *Treemap) WithHeight(v element.CompositeValue) *Treemap {
	t.Height = v
	return t
}

func (t *Treemap) WithRoam(v bool) *Treemap {
	t.Roam = &v
	return t
}

func (t *Treemap) WithNodeClick(v string) *Treemap {
	t.NodeClick = &v
	return t
}

func (t *Treemap) WithLeafDepth(v int) *Treemap {
	t.LeafDepth = &v
	return t
}

func (t *Treemap) WithVisibleMin(v float64) *Treemap {
	t.VisibleMin = &v
	return t
}

func (t *Treemap) WithLabel(v *element.Label) *Treemap {
	t.Label = v
	return t
}

func (t *Treemap) WithUpperLabel(v *element.Label) *Treemap {
	t.UpperLabel = v
	return t
}

func (t *Treemap) WithItemStyle(v *element.ItemStyle) *Treemap {
	t.ItemStyle = v
	return t
}

func (t *Treemap) WithEmphasis(v *element.Emphasis) *Treemap {
	t.Emphasis = v
	return t
}

func (t *Treemap) WithData(v ...*TreeNode) *Treemap {
	t.Data = v
	return t
}
