package series

import "github.com/ukaji3/charming-go/pkg/charming/element"

type TreeLayout string

const (
	TreeLayoutOrthogonal TreeLayout = "orthogonal"
	TreeLayoutRadial     TreeLayout = "radial"
)

// TreeOrient is the direction an orthogonal tree grows in.
type TreeOrient string

const (
	TreeOrientLeftRight TreeOrient = "LR"
	TreeOrientRightLeft TreeOrient = "RL"
	TreeOrientTopBottom TreeOrient = "TB"
	TreeOrientBottomTop TreeOrient = "BT"
)

type TreeEdgeShape string

const (
	TreeEdgeShapeCurve    TreeEdgeShape = "curve"
	TreeEdgeShapePolyline TreeEdgeShape = "polyline"
)

type TreeLeaves struct {
	Label     *element.Label     `json:"label,omitempty"`
	ItemStyle *element.ItemStyle `json:"itemStyle,omitempty"`
}

func NewTreeLeaves() *TreeLeaves {
	return &TreeLeaves{}
}

func (t *TreeLeaves) WithLabel(v *element.Label) *TreeLeaves {
	t.Label = v
	return t
}

func (t *TreeLeaves) WithItemStyle(v *element.ItemStyle) *TreeLeaves {
	t.ItemStyle = v
	return t
}

// Tree draws a hierarchy as a node-link tree.
type Tree struct {
	Type                    string                 `json:"type"`
	ID                      *string                `json:"id,omitempty"`
	Name                    *string                `json:"name,omitempty"`
	ZLevel                  *int                   `json:"zlevel,omitempty"`
	Z                       *int                   `json:"z,omitempty"`
	Left                    element.CompositeValue `json:"left,omitempty"`
	Top                     element.CompositeValue `json:"top,omitempty"`
	Right                   element.CompositeValue `json:"right,omitempty"`
	Bottom                  element.CompositeValue `json:"bottom,omitempty"`
	Width                   element.CompositeValue `json:"width,omitempty"`
	Height                  element.CompositeValue `json:"height,omitempty"`
	Center                  element.CompositeValue `json:"center,omitempty"`
	Zoom                    *float64               `json:"zoom,omitempty"`
	Layout                  TreeLayout             `json:"layout,omitempty"`
	Orient                  TreeOrient             `json:"orient,omitempty"`
	Symbol                  element.Symbol         `json:"symbol,omitempty"`
	SymbolSize              element.SymbolSize     `json:"symbolSize,omitempty"`
	SymbolRotate            *float64               `json:"symbolRotate,omitempty"`
	SymbolKeepAspect        *bool                  `json:"symbolKeepAspect,omitempty"`
	SymbolOffset            element.CompositeValue `json:"symbolOffset,omitempty"`
	EdgeShape               TreeEdgeShape          `json:"edgeShape,omitempty"`
	EdgeForkPosition        *string                `json:"edgeForkPosition,omitempty"`
	Roam                    *bool                  `json:"roam,omitempty"`
	ExpandAndCollapse       *bool                  `json:"expandAndCollapse,omitempty"`
	InitialTreeDepth        *float64               `json:"initialTreeDepth,omitempty"`
	ItemStyle               *element.ItemStyle     `json:"itemStyle,omitempty"`
	Label                   *element.Label         `json:"label,omitempty"`
	LineStyle               *element.LineStyle     `json:"lineStyle,omitempty"`
	Emphasis                *element.Emphasis      `json:"emphasis,omitempty"`
	Blur                    *element.Blur          `json:"blur,omitempty"`
	Select                  *element.Select        `json:"select,omitempty"`
	SelectedMode            *bool                  `json:"selectedMode,omitempty"`
	AnimationDuration       *float64               `json:"animationDuration,omitempty"`
	AnimationDurationUpdate *float64               `json:"animationDurationUpdate,omitempty"`
	Leaves                  *TreeLeaves            `json:"leaves,omitempty"`
	Data                    []*TreeNode            `json:"data,omitempty"`
}

func NewTree() *Tree {
	return &Tree{Type: "tree"}
}

func (t *Tree) SeriesType() string {
	return t.Type
}

func (t *Tree) WithID(v string) *Tree {
	t.ID = &v
	return t
}

func (t *Tree) WithName(v string) *Tree {
	t.Name = &v
	return t
}

func (t *Tree) WithZLevel(v int) *Tree {
	t.ZLevel = &v
	return t
}

func (t *Tree) WithZ(v int) *Tree {
	t.Z = &v
	return t
}

func (t *Tree) WithLeft(v element.CompositeValue) *Tree {
	t.Left = v
	return t
}

func (t *Tree) WithTop(v element.CompositeValue) *Tree {
	t.Top = v
	return t
}

func (t *Tree) WithRight(v element.CompositeValue) *Tree {
	t.Right = v
	return t
}

func (t *Tree) WithBottom(v element.CompositeValue) *Tree {
	t.Bottom = v
	return t
}

func (t *Tree) WithWidth(v element.CompositeValue) *Tree {
	t.Width = v
	return t
}

func (t *Tree) WithHeight(v element.CompositeValue) *Tree {
	t.Height = v
	return t
}

func (t *Tree) WithCenter(v element.CompositeValue) *Tree {
	t.Center = v
	return t
}

func (t *Tree) WithZoom(v float64) *Tree {
	t.Zoom = &v
	return t
}

func (t *Tree) WithLayout(v TreeLayout) *Tree {
	t.Layout = v
	return t
}

func (t *Tree) WithOrient(v TreeOrient) *Tree {
	t.Orient = v
	return t
}

func (t *Tree) WithSymbol(v element.Symbol) *Tree {
	t.Symbol = v
	return t
}

func (t *Tree) WithSymbolSize(v element.SymbolSize) *Tree {
	t.SymbolSize = v
	return t
}

func (t *Tree) WithSymbolRotate(v float64) *Tree {
	t.SymbolRotate = &v
	return t
}

func (t *Tree) WithSymbolKeepAspect(v bool) *Tree {
	t.SymbolKeepAspect = &v
	return t
}

func (t *Tree) WithSymbolOffset(v element.CompositeValue) *Tree {
	t.SymbolOffset = v
	return t
}

func (t *Tree) WithEdgeShape(v TreeEdgeShape) *Tree {
	t.EdgeShape = v
	return t
}

func (t *Tree) WithEdgeForkPosition(v string) *Tree {
	t.EdgeForkPosition = &v
	return t
}

func (t *Tree) WithRoam(v bool) *Tree {
	t.Roam = &v
	return t
}

func (t *Tree) WithExpandAndCollapse(v bool) *Tree {
	t.ExpandAndCollapse = &v
	return t
}

func (t *Tree) WithInitialTreeDepth(v float64) *Tree {
	t.InitialTreeDepth = &v
	return t
}

func (t *Tree) WithItemStyle(v *element.ItemStyle) *Tree {
	t.ItemStyle = v
	return t
}

func (t *Tree) WithLabel(v *element.Label) *Tree {
	t.Label = v
	return t
}

func (t *Tree) WithLineStyle(v *element.LineStyle) *Tree {
	t.LineStyle = v
	return t
}

func (t *Tree) WithEmphasis(v *element.Emphasis) *Tree {
	t.Emphasis = v
	return t
}

func (t *Tree) WithBlur(v *element.Blur) *Tree {
	t.Blur = v
	return t
}

func (t *Tree) WithSelect(v *element.Select) *Tree {
	t.Select = v
	return t
}

func (t *Tree) WithSelectedMode(v bool) *Tree {
	t.SelectedMode = &v
	return t
}

func (t *Tree) WithAnimationDuration(v float64) *Tree {
	t.AnimationDuration = &v
	return t
}

func (t *Tree) WithAnimationDurationUpdate(v float64) *Tree {
	t.AnimationDurationUpdate = &v
	return t
}

func (t *Tree) WithLeaves(v *TreeLeaves) *Tree {
	t.Leaves = v
	return t
}

func (t *Tree) WithData(v ...*TreeNode) *Tree {
	t.Data = v
	return t
}
