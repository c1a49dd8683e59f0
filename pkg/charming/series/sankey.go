package series

import "github.com/ukaji3/charming-go/pkg/charming/element"

type SankeyNodeAlign string

const (
	SankeyNodeAlignLeft    SankeyNodeAlign = "left"
	SankeyNodeAlignRight   SankeyNodeAlign = "right"
	SankeyNodeAlignJustify SankeyNodeAlign = "justify"
)

// Sankey is a flow diagram whose link widths are proportional to the flow.
type Sankey struct {
	Type             string                 `json:"type"`
	ID               *string                `json:"id,omitempty"`
	Name             *string                `json:"name,omitempty"`
	ZLevel           *float64               `json:"zlevel,omitempty"`
	Z                *float64               `json:"z,omitempty"`
	Left             element.CompositeValue `json:"left,omitempty"`
	Top              element.CompositeValue `json:"top,omitempty"`
	Right            element.CompositeValue `json:"right,omitempty"`
	Bottom           element.CompositeValue `json:"bottom,omitempty"`
	Width            *float64               `json:"width,omitempty"`
	Height           *float64               `json:"height,omitempty"`
	NodeWidth        *float64               `json:"nodeWidth,omitempty"`
	NodeGap          *float64               `json:"nodeGap,omitempty"`
	NodeAlign        SankeyNodeAlign        `json:"nodeAlign,omitempty"`
	LayoutIterations *int                   `json:"layoutIterations,omitempty"`
	Orient           element.Orient         `json:"orient,omitempty"`
	Draggable        *bool                  `json:"draggable,omitempty"`
	Emphasis         *element.Emphasis      `json:"emphasis,omitempty"`
	Label            *element.Label         `json:"label,omitempty"`
	ItemStyle        *element.ItemStyle     `json:"itemStyle,omitempty"`
	LineStyle        *element.LineStyle     `json:"lineStyle,omitempty"`
	Links            []*SankeyLink          `json:"links,omitempty"`
	Data             []*SankeyNode          `json:"data,omitempty"`
}

func NewSankey() *Sankey {
	return &Sankey{Type: "sankey"}
}

func (s *Sankey) SeriesType() string {
	return s.Type
}

func (s *Sankey) WithID(v string) *Sankey {
	s.ID = &v
	return s
}

func (s *Sankey) WithName(v string) *Sankey {
	s.Name = &v
	return s
}

func (s *Sankey) WithZLevel(v float64) *Sankey {
	s.ZLevel = &v
	return s
}

func (s *Sankey) WithZ(v float64) *Sankey {
	s.Z = &v
	return s
}

func (s *Sankey) WithLeft(v element.CompositeValue) *Sankey {
	s.Left = v
	return s
}

func (s *Sankey) WithTop(v element.CompositeValue) *Sankey {
	s.Top = v
	return s
}

func (s *Sankey) WithRight(v element.CompositeValue) *Sankey {
	s.Right = v
	return s
}

func (s *Sankey) WithBottom(v element.CompositeValue) *Sankey {
	s.Bottom = v
	return s
}

func (s *Sankey) WithWidth(v float64) *Sankey {
	s.Width = &v
	return s
}

func (s *Sankey) WithHeight(v float64) *Sankey {
	s.Height = &v
	return s
}

func (s *Sankey) WithNodeWidth(v float64) *Sankey {
	s.NodeWidth = &v
	return s
}

func (s *Sankey) WithNodeGap(v float64) *Sankey {
	s.NodeGap = &v
	return s
}

func (s *Sankey) WithNodeAlign(v SankeyNodeAlign) *Sankey {
	s.NodeAlign = v
	return s
}

func (s *Sankey) WithLayoutIterations(v int) *Sankey {
	s.LayoutIterations = &v
	return s
}

func (s *Sankey) WithOrient(v element.Orient) *Sankey {
	s.Orient = v
	return s
}

func (s *Sankey) WithDraggable(v bool) *Sankey {
	s.Draggable = &v
	return s
}

func (s *Sankey) WithEmphasis(v *element.Emphasis) *Sankey {
	s.Emphasis = v
	return s
}

func (s *Sankey) WithLabel(v *element.Label) *Sankey {
	s.Label = v
	return s
}

func (s *Sankey) WithItemStyle(v *element.ItemStyle) *Sankey {
	s.ItemStyle = v
	return s
}

func (s *Sankey) WithLineStyle(v *element.LineStyle) *Sankey {
	s.LineStyle = v
	return s
}

func (s *Sankey) WithLinks(v ...*SankeyLink) *Sankey {
	s.Links = v
	return s
}

func (s *Sankey) WithData(v ...*SankeyNode) *Sankey {
	s.Data = v
	return s
}
