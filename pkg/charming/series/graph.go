package series

import "github.com/ukaji3/charming-go/pkg/charming/element"

type GraphLayout string

const (
	GraphLayoutNone         GraphLayout = "none"
	GraphLayoutTypeCircular GraphLayout = "circular"
	GraphLayoutTypeForce    GraphLayout = "force"
)

type GraphLayoutCircular struct {
	RotateLabel *bool `json:"rotateLabel,omitempty"`
}

func NewGraphLayoutCircular() *GraphLayoutCircular {
	return &GraphLayoutCircular{}
}

func (g *GraphLayoutCircular) WithRotateLabel(v bool) *GraphLayoutCircular {
	g.RotateLabel = &v
	return g
}

// GraphLayoutForce configures the force directed layout.
type GraphLayoutForce struct {
	InitLayout      *string                `json:"initLayout,omitempty"`
	Repulsion       element.CompositeValue `json:"repulsion,omitempty"`
	Gravity         *float64               `json:"gravity,omitempty"`
	EdgeLength      element.CompositeValue `json:"edgeLength,omitempty"`
	LayoutAnimation *bool                  `json:"layoutAnimation,omitempty"`
	Friction        *float64               `json:"friction,omitempty"`
}

func NewGraphLayoutForce() *GraphLayoutForce {
	return &GraphLayoutForce{}
}

func (g *GraphLayoutForce) WithInitLayout(v string) *GraphLayoutForce {
	g.InitLayout = &v
	return g
}

func (g *GraphLayoutForce) WithRepulsion(v element.CompositeValue) *GraphLayoutForce {
	g.Repulsion = v
	return g
}

func (g *GraphLayoutForce) WithGravity(v float64) *GraphLayoutForce {
	g.Gravity = &v
	return g
}

func (g *GraphLayoutForce) WithEdgeLength(v element.CompositeValue) *GraphLayoutForce {
	g.EdgeLength = v
	return g
}

func (g *GraphLayoutForce) WithLayoutAnimation(v bool) *GraphLayoutForce {
	g.LayoutAnimation = &v
	return g
}

func (g *GraphLayoutForce) WithFriction(v float64) *GraphLayoutForce {
	g.Friction = &v
	return g
}

// Graph is a relation graph of nodes and links.
type Graph struct {
	Type             string                   `json:"type"`
	ID               *string                  `json:"id,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	LegendHoverLink  *bool                    `json:"legendHoverLink,omitempty"`
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                     `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                     `json:"yAxisIndex,omitempty"`
	PolarIndex       *int                     `json:"polarIndex,omitempty"`
	GeoIndex         *int                     `json:"geoIndex,omitempty"`
	CalendarIndex    *int                     `json:"calendarIndex,omitempty"`
	Layout           GraphLayout              `json:"layout,omitempty"`
	Circular         *GraphLayoutCircular     `json:"circular,omitempty"`
	Force            *GraphLayoutForce        `json:"force,omitempty"`
	Roam             *bool                    `json:"roam,omitempty"`
	Draggable        *bool                    `json:"draggable,omitempty"`
	Symbol           element.Symbol           `json:"symbol,omitempty"`
	SymbolSize       element.SymbolSize       `json:"symbolSize,omitempty"`
	EdgeSymbol       []element.Symbol         `json:"edgeSymbol,omitempty"`
	Label            *element.Label           `json:"label,omitempty"`
	LabelLayout      *element.LabelLayout     `json:"labelLayout,omitempty"`
	ScaleLimit       *element.ScaleLimit      `json:"scaleLimit,omitempty"`
	ItemStyle        *element.ItemStyle       `json:"itemStyle,omitempty"`
	LineStyle        *element.LineStyle       `json:"lineStyle,omitempty"`
	Emphasis         *element.Emphasis        `json:"emphasis,omitempty"`
	Categories       []*GraphCategory         `json:"categories,omitempty"`
	Links            []*GraphLink             `json:"links,omitempty"`
	Data             []*GraphNode             `json:"data,omitempty"`
}

func NewGraph() *Graph {
	return &Graph{Type: "graph"}
}

func (g *Graph) SeriesType() string {
	return g.Type
}

func (g *Graph) WithID(v string) *Graph {
	g.ID = &v
	return g
}

func (g *Graph) WithName(v string) *Graph {
	g.Name = &v
	return g
}

func (g *Graph) WithLegendHoverLink(v bool) *Graph {
	g.LegendHoverLink = &v
	return g
}

func (g *Graph) WithCoordinateSystem(v element.CoordinateSystem) *Graph {
	g.CoordinateSystem = v
	return g
}

func (g *Graph) WithXAxisIndex(v int) *Graph {
	g.XAxisIndex = &v
	return g
}

func (g *Graph) WithYAxisIndex(v int) *Graph {
	g.YAxisIndex = &v
	return g
}

func (g *Graph) WithPolarIndex(v int) *Graph {
	g.PolarIndex = &v
	return g
}

func (g *Graph) WithGeoIndex(v int) *Graph {
	g.GeoIndex = &v
	return g
}

func (g *Graph) WithCalendarIndex(v int) *Graph {
	g.CalendarIndex = &v
	return g
}

func (g *Graph) WithLayout(v GraphLayout) *Graph {
	g.Layout = v
	return g
}

func (g *Graph) WithCircular(v *GraphLayoutCircular) *Graph {
	g.Circular = v
	return g
}

func (g *Graph) WithForce(v *GraphLayoutForce) *Graph {
	g.Force = v
	return g
}

func (g *Graph) WithRoam(v bool) *Graph {
	g.Roam = &v
	return g
}

func (g *Graph) WithDraggable(v bool) *Graph {
	g.Draggable = &v
	return g
}

func (g *Graph) WithSymbol(v element.Symbol) *Graph {
	g.Symbol = v
	return g
}

func (g *Graph) WithSymbolSize(v element.SymbolSize) *Graph {
	g.SymbolSize = v
	return g
}

func (g *Graph) WithEdgeSymbol(v ...element.Symbol) *Graph {
	g.EdgeSymbol = v
	return g
}

func (g *Graph) WithLabel(v *element.Label) *Graph {
	g.Label = v
	return g
}

func (g *Graph) WithLabelLayout(v *element.LabelLayout) *Graph {
	g.LabelLayout = v
	return g
}

func (g *Graph) WithScaleLimit(v *element.ScaleLimit) *Graph {
	g.ScaleLimit = v
	return g
}

func (g *Graph) WithItemStyle(v *element.ItemStyle) *Graph {
	g.ItemStyle = v
	return g
}

func (g *Graph) WithLineStyle(v *element.LineStyle) *Graph {
	g.LineStyle = v
	return g
}

func (g *Graph) WithEmphasis(v *element.Emphasis) *Graph {
	g.Emphasis = v
	return g
}

func (g *Graph) WithCategories(v ...*GraphCategory) *Graph {
	g.Categories = v
	return g
}

func (g *Graph) WithLinks(v ...*GraphLink) *Graph {
	g.Links = v
	return g
}

func (g *Graph) WithData(v ...*GraphNode) *Graph {
	g.Data = v
	return g
}
