package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

// Geo is a geographic coordinate system drawn from a registered map.
type Geo struct {
	ID   *string `json:"id,omitempty"`
	Show *bool   `json:"show,omitempty"`
	// Map is the name the map was registered under.
	Map            *string                `json:"map,omitempty"`
	Roam           *bool                  `json:"roam,omitempty"`
	Center         element.CompositeValue `json:"center,omitempty"`
	AspectScale    *float64               `json:"aspectScale,omitempty"`
	BoundingCoords *[2][2]float64         `json:"boundingCoords,omitempty"`
	Zoom           *float64               `json:"zoom,omitempty"`
	ScaleLimit     *element.ScaleLimit    `json:"scaleLimit,omitempty"`
	// NameMap renames regions, keyed by the name in the map data.
	NameMap      map[string]string      `json:"nameMap,omitempty"`
	NameProperty *string                `json:"nameProperty,omitempty"`
	SelectedMode *bool                  `json:"selectedMode,omitempty"`
	Label        *element.Label         `json:"label,omitempty"`
	ItemStyle    *element.ItemStyle     `json:"itemStyle,omitempty"`
	Emphasis     *element.Emphasis      `json:"emphasis,omitempty"`
	Select       *element.Select        `json:"select,omitempty"`
	Blur         *element.Blur          `json:"blur,omitempty"`
	ZLevel       *float64               `json:"zlevel,omitempty"`
	Z            *float64               `json:"z,omitempty"`
	Left         element.CompositeValue `json:"left,omitempty"`
	Top          element.CompositeValue `json:"top,omitempty"`
	Right        element.CompositeValue `json:"right,omitempty"`
	Bottom       element.CompositeValue `json:"bottom,omitempty"`
	LayoutCenter *[2]string             `json:"layoutCenter,omitempty"`
	LayoutSize   element.CompositeValue `json:"layoutSize,omitempty"`
	Silent       *bool                  `json:"silent,omitempty"`
}

func NewGeo() *Geo {
	return &Geo{}
}

func (g *Geo) WithID(v string) *Geo {
	g.ID = &v
	return g
}

func (g *Geo) WithShow(v bool) *Geo {
	g.Show = &v
	return g
}

func (g *Geo) WithMap(v string) *Geo {
	g.Map = &v
	return g
}

func (g *Geo) WithRoam(v bool) *Geo {
	g.Roam = &v
	return g
}

func (g *Geo) WithCenter(v element.CompositeValue) *Geo {
	g.Center = v
	return g
}

func (g *Geo) WithAspectScale(v float64) *Geo {
	g.AspectScale = &v
	return g
}

func (g *Geo) WithZoom(v float64) *Geo {
	g.Zoom = &v
	return g
}

func (g *Geo) WithScaleLimit(v *element.ScaleLimit) *Geo {
	g.ScaleLimit = v
	return g
}

func (g *Geo) WithNameMap(v map[string]string) *Geo {
	g.NameMap = v
	return g
}

func (g *Geo) WithNameProperty(v string) *Geo {
	g.NameProperty = &v
	return g
}

func (g *Geo) WithSelectedMode(v bool) *Geo {
	g.SelectedMode = &v
	return g
}

func (g *Geo) WithLabel(v *element.Label) *Geo {
	g.Label = v
	return g
}

func (g *Geo) WithItemStyle(v *element.ItemStyle) *Geo {
	g.ItemStyle = v
	return g
}

func (g *Geo) WithEmphasis(v *element.Emphasis) *Geo {
	g.Emphasis = v
	return g
}

func (g *Geo) WithSelect(v *element.Select) *Geo {
	g.Select = v
	return g
}

func (g *Geo) WithBlur(v *element.Blur) *Geo {
	g.Blur = v
	return g
}

func (g *Geo) WithZLevel(v float64) *Geo {
	g.ZLevel = &v
	return g
}

func (g *Geo) WithZ(v float64) *Geo {
	g.Z = &v
	return g
}

func (g *Geo) WithLeft(v element.CompositeValue) *Geo {
	g.Left = v
	return g
}

func (g *Geo) WithTop(v element.CompositeValue) *Geo {
	g.Top = v
	return g
}

func (g *Geo) WithRight(v element.CompositeValue) *Geo {
	g.Right = v
	return g
}

func (g *Geo) WithBottom(v element.CompositeValue) *Geo {
	g.Bottom = v
	return g
}

func (g *Geo) WithLayoutCenter(x, y string) *Geo {
	g.LayoutCenter = &[2]string{x, y}
	return g
}

func (g *Geo) WithLayoutSize(v element.CompositeValue) *Geo {
	g.LayoutSize = v
	return g
}

func (g *Geo) WithSilent(v bool) *Geo {
	g.Silent = &v
	return g
}
