package series

import "github.com/ukaji3/charming-go/pkg/charming/element"

// SunburstLevel styles one ring of a sunburst. The first level is the center.
type SunburstLevel struct {
	R0        element.CompositeValue `json:"r0,omitempty"`
	R         element.CompositeValue `json:"r,omitempty"`
	ItemStyle *element.ItemStyle     `json:"itemStyle,omitempty"`
	Label     *element.Label         `json:"label,omitempty"`
	Emphasis  *element.Emphasis      `json:"emphasis,omitempty"`
}

func NewSunburstLevel() *SunburstLevel {
	return &SunburstLevel{}
}

func (s *SunburstLevel) WithR0(v element.CompositeValue) *SunburstLevel {
	s.R0 = v
	return s
}

func (s *SunburstLevel) WithR(v element.CompositeValue) *SunburstLevel {
	s.R = v
	return s
}

func (s *SunburstLevel) WithItemStyle(v *element.ItemStyle) *SunburstLevel {
	s.ItemStyle = v
	return s
}

func (s *SunburstLevel) WithLabel(v *element.Label) *SunburstLevel {
	s.Label = v
	return s
}

func (s *SunburstLevel) WithEmphasis(v *element.Emphasis) *SunburstLevel {
	s.Emphasis = v
	return s
}

// Sunburst draws a hierarchy as concentric rings.
type Sunburst struct {
	Type                   string             `json:"type"`
	ID                     *string            `json:"id,omitempty"`
	Name                   *string            `json:"name,omitempty"`
	ZLevel                 *int               `json:"zlevel,omitempty"`
	Z                      *int               `json:"z,omitempty"`
	Center                 *[2]string         `json:"center,omitempty"`
	Radius                 *[2]string         `json:"radius,omitempty"`
	StartAngle             *float64           `json:"startAngle,omitempty"`
	MinAngle               *float64           `json:"minAngle,omitempty"`
	NodeClick              *string            `json:"nodeClick,omitempty"`
	Sort                   element.Sort       `json:"sort,omitempty"`
	RenderLabelForZeroData *bool              `json:"renderLabelForZeroData,omitempty"`
	Label                  *element.Label     `json:"label,omitempty"`
	ItemStyle              *element.ItemStyle `json:"itemStyle,omitempty"`
	Emphasis               *element.Emphasis  `json:"emphasis,omitempty"`
	Levels                 []*SunburstLevel   `json:"levels,omitempty"`
	Data                   []*SunburstNode    `json:"data,omitempty"`
}

func NewSunburst() *Sunburst {
	return &Sunburst{Type: "sunburst"}
}

func (s *Sunburst) SeriesType() string {
	return s.Type
}

func (s *Sunburst) WithID(v string) *Sunburst {
	s.ID = &v
	return s
}

func (s *Sunburst) WithName(v string) *Sunburst {
	s.Name = &v
	return s
}

func (s *Sunburst) WithZLevel(v int) *Sunburst {
	s.ZLevel = &v
	return s
}

func (s *Sunburst) WithZ(v int) *Sunburst {
	s.Z = &v
	return s
}

func (s *Sunburst) WithCenter(x, y string) *Sunburst {
	s.Center = &[2]string{x, y}
	return s
}

func (s *Sunburst) WithRadius(inner, outer string) *Sunburst {
	s.Radius = &[2]string{inner, outer}
	return s
}

func (s *Sunburst) WithStartAngle(v float64) *Sunburst {
	s.StartAngle = &v
	return s
}

func (s *Sunburst) WithMinAngle(v float64) *Sunburst {
	s.MinAngle = &v
	return s
}

func (s *Sunburst) WithNodeClick(v string) *Sunburst {
	s.NodeClick = &v
	return s
}

func (s *Sunburst) WithSort(v element.Sort) *Sunburst {
	s.Sort = v
	return s
}

func (s *Sunburst) WithRenderLabelForZeroData(v bool) *Sunburst {
	s.RenderLabelForZeroData = &v
	return s
}

func (s *Sunburst) WithLabel(v *element.Label) *Sunburst {
	s.Label = v
	return s
}

func (s *Sunburst) WithItemStyle(v *element.ItemStyle) *Sunburst {
	s.ItemStyle = v
	return s
}

func (s *Sunburst) WithEmphasis(v *element.Emphasis) *Sunburst {
	s.Emphasis = v
	return s
}

func (s *Sunburst) WithLevels(v ...*SunburstLevel) *Sunburst {
	s.Levels = v
	return s
}

func (s *Sunburst) WithData(v ...*SunburstNode) *Sunburst {
	s.Data = v
	return s
}
