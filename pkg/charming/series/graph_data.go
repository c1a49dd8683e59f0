package series

import (
	"fmt"

	"github.com/ukaji3/charming-go/internal/json"
)

// GraphNodeLabel is the label of a single graph node.
type GraphNodeLabel struct {
	Show      *bool   `json:"show,omitempty"`
	Position  *string `json:"position,omitempty"`
	Formatter *string `json:"formatter,omitempty"`
	Color     *string `json:"color,omitempty"`
	FontSize  *int    `json:"fontSize,omitempty"`
}

// GraphNode is a node of a graph series.
type GraphNode struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Value      float64         `json:"value"`
	Category   int             `json:"category"`
	SymbolSize float64         `json:"symbolSize"`
	Label      *GraphNodeLabel `json:"label,omitempty"`
}

// GraphLink is an edge between two nodes, referenced by node id or name.
type GraphLink struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Value  *float64 `json:"value,omitempty"`
}

// NewGraphLink returns the link from source to target.
func NewGraphLink(source, target string) *GraphLink {
	return &GraphLink{Source: source, Target: target}
}

func (l *GraphLink) WithValue(v float64) *GraphLink {
	l.Value = &v
	return l
}

// GraphCategory is a node category; nodes refer to it by index.
type GraphCategory struct {
	Name string `json:"name"`
}

// GraphData is the nodes, links and categories of a graph, in the layout
// used by the ECharts graph examples (e.g. les-miserables.json).
type GraphData struct {
	Nodes      []*GraphNode     `json:"nodes"`
	Links      []*GraphLink     `json:"links"`
	Categories []*GraphCategory `json:"categories"`
}

// ParseGraphData decodes graph data from JSON.
func ParseGraphData(b []byte) (*GraphData, error) {
	var d GraphData
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("parse graph data: %w", err)
	}
	return &d, nil
}

// WithGraphData sets the nodes, links and categories at once.
func (g *Graph) WithGraphData(d *GraphData) *Graph {
	g.Data = d.Nodes
	g.Links = d.Links
	g.Categories = d.Categories
	return g
}
