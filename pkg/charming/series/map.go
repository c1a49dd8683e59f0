package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Map is a choropleth series colouring the regions of a registered map.
type Map struct {
	Type string  `json:"type"`
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	// Map is the name of a map registered with Chart.WithGeoMap.
	Map *string `json:"map,omitempty"`
	// GeoIndex shares an existing geo component instead of drawing a map.
	GeoIndex         *float64               `json:"geoIndex,omitempty"`
	Roam             *bool                  `json:"roam,omitempty"`
	Center           element.CompositeValue `json:"center,omitempty"`
	Zoom             *float64               `json:"zoom,omitempty"`
	AspectScale      *float64               `json:"aspectScale,omitempty"`
	NameMap          map[string]string      `json:"nameMap,omitempty"`
	NameProperty     *string                `json:"nameProperty,omitempty"`
	SelectedMode     *bool                  `json:"selectedMode,omitempty"`
	ShowLegendSymbol *bool                  `json:"showLegendSymbol,omitempty"`
	Label            *element.Label         `json:"label,omitempty"`
	ItemStyle        *element.ItemStyle     `json:"itemStyle,omitempty"`
	Emphasis         *element.Emphasis      `json:"emphasis,omitempty"`
	Select           *element.Select        `json:"select,omitempty"`
	Left             element.CompositeValue `json:"left,omitempty"`
	Top              element.CompositeValue `json:"top,omitempty"`
	Right            element.CompositeValue `json:"right,omitempty"`
	Bottom           element.CompositeValue `json:"bottom,omitempty"`
	LayoutCenter     *[2]string             `json:"layoutCenter,omitempty"`
	LayoutSize       element.CompositeValue `json:"layoutSize,omitempty"`
	Data             datatype.DataFrame     `json:"data,omitempty"`
}

func NewMap() *Map {
	return &Map{Type: "map"}
}

func (m *Map) SeriesType() string {
	return m.Type
}

func (m *Map) WithID(v string) *Map {
	m.ID = &v
	return m
}

func (m *Map) WithName(v string) *Map {
	m.Name = &v
	return m
}

func (m *Map) WithMap(v string) *Map {
	m.Map = &v
	return m
}

func (m *Map) WithGeoIndex(v float64) *Map {
	m.GeoIndex = &v
	return m
}

func (m *Map) WithRoam(v bool) *Map {
	m.Roam = &v
	return m
}

func (m *Map) WithCenter(v element.CompositeValue) *Map {
	m.Center = v
	return m
}

func (m *Map) WithZoom(v float64) *Map {
	m.Zoom = &v
	return m
}

func (m *Map) WithAspectScale(v float64) *Map {
	m.AspectScale = &v
	return m
}

func (m *Map) WithNameMap(v map[string]string) *Map {
	m.NameMap = v
	return m
}

func (m *Map) WithNameProperty(v string) *Map {
	m.NameProperty = &v
	return m
}

func (m *Map) WithSelectedMode(v bool) *Map {
	m.SelectedMode = &v
	return m
}

func (m *Map) WithShowLegendSymbol(v bool) *Map {
	m.ShowLegendSymbol = &v
	return m
}

func (m *Map) WithLabel(v *element.Label) *Map {
	m.Label = v
	return m
}

func (m *Map) WithItemStyle(v *element.ItemStyle) *Map {
	m.ItemStyle = v
	return m
}

func (m *Map) WithEmphasis(v *element.Emphasis) *Map {
	m.Emphasis = v
	return m
}

func (m *Map) WithSelect(v *element.Select) *Map {
	m.Select = v
	return m
}

func (m *Map) WithLeft(v element.CompositeValue) *Map {
	m.Left = v
	return m
}

func (m *Map) WithTop(v element.CompositeValue) *Map {
	m.Top = v
	return m
}

func (m *Map) WithRight(v element.CompositeValue) *Map {
	m.Right = v
	return m
}

func (m *Map) WithBottom(v element.CompositeValue) *Map {
	m.Bottom = v
	return m
}

func (m *Map) WithLayoutCenter(x, y string) *Map {
	m.LayoutCenter = &[2]string{x, y}
	return m
}

func (m *Map) WithLayoutSize(v element.CompositeValue) *Map {
	m.LayoutSize = v
	return m
}

func (m *Map) WithData(v datatype.DataFrame) *Map {
	m.Data = v
	return m
}
