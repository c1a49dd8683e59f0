package series

import "github.com/ukaji3/charming-go/pkg/charming/element"

// TreeNode is a node of a tree or treemap series.
type TreeNode struct {
	Name      string      `json:"name"`
	Value     *float64    `json:"value,omitempty"`
	Collapsed *bool       `json:"collapsed,omitempty"`
	Children  []*TreeNode `json:"children,omitempty"`
}

func NewTreeNode(name string) *TreeNode {
	return &TreeNode{Name: name}
}

func (n *TreeNode) WithValue(v float64) *TreeNode {
	n.Value = &v
	return n
}

func (n *TreeNode) WithCollapsed(v bool) *TreeNode {
	n.Collapsed = &v
	return n
}

// WithChildren appends child nodes.
func (n *TreeNode) WithChildren(children ...*TreeNode) *TreeNode {
	n.Children = append(n.Children, children...)
	return n
}

// Leaf returns a childless node with a value.
func Leaf(name string, value float64) *TreeNode {
	return NewTreeNode(name).WithValue(value)
}

// SunburstNode is a node of a sunburst. A node without a value takes the sum
// of its children.
type SunburstNode struct {
	Name      string             `json:"name"`
	Value     *float64           `json:"value,omitempty"`
	ItemStyle *element.ItemStyle `json:"itemStyle,omitempty"`
	Children  []*SunburstNode    `json:"children,omitempty"`
}

func NewSunburstNode(name string) *SunburstNode {
	return &SunburstNode{Name: name}
}

func (n *SunburstNode) WithValue(v float64) *SunburstNode {
	n.Value = &v
	return n
}

func (n *SunburstNode) WithItemStyle(v *element.ItemStyle) *SunburstNode {
	n.ItemStyle = v
	return n
}

// WithChildren appends child nodes.
func (n *SunburstNode) WithChildren(children ...*SunburstNode) *SunburstNode {
	n.Children = append(n.Children, children...)
	return n
}
