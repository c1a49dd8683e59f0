package series

// SankeyNode is a node of a sankey diagram. Depth pins the node to a column.
type SankeyNode struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value,omitempty"`
	Depth *float64 `json:"depth,omitempty"`
}

func NewSankeyNode(name string) *SankeyNode {
	return &SankeyNode{Name: name}
}

func (n *SankeyNode) WithValue(v float64) *SankeyNode {
	n.Value = &v
	return n
}

func (n *SankeyNode) WithDepth(v float64) *SankeyNode {
	n.Depth = &v
	return n
}

// SankeyNodes returns one node per name.
func SankeyNodes(names ...string) []*SankeyNode {
	nodes := make([]*SankeyNode, len(names))
	for i, n := range names {
		nodes[i] = NewSankeyNode(n)
	}
	return nodes
}

// SankeyLink is a flow of Value from the node named Source to the node named
// Target.
type SankeyLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

func NewSankeyLink(source, target string, value float64) *SankeyLink {
	return &SankeyLink{Source: source, Target: target, Value: value}
}
