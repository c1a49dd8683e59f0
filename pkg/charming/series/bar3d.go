package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Bar3D is a 3D bar series from the echarts-gl extension.
type Bar3D struct {
	Type             string                   `json:"type"`
	Name             *string                  `json:"name,omitempty"`
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	Grid3DIndex      element.CompositeValue   `json:"grid3DIndex,omitempty"`
	Geo3DIndex       element.CompositeValue   `json:"geo3DIndex,omitempty"`
	GlobeIndex       element.CompositeValue   `json:"globeIndex,omitempty"`
	BarSize          element.CompositeValue   `json:"barSize,omitempty"`
	BevelSize        *float64                 `json:"bevelSize,omitempty"`
	Shading          *string                  `json:"shading,omitempty"`
	Stack            *string                  `json:"stack,omitempty"`
	Label            *element.Label           `json:"label,omitempty"`
	ItemStyle        *element.ItemStyle       `json:"itemStyle,omitempty"`
	Emphasis         *element.Emphasis        `json:"emphasis,omitempty"`
	Encode           *element.DimensionEncode `json:"encode,omitempty"`
	Data             datatype.DataFrame       `json:"data,omitempty"`
}

func NewBar3D() *Bar3D {
	return &Bar3D{Type: "bar3D"}
}

func (b *Bar3D) SeriesType() string {
	return b.Type
}

func (b *Bar3D) WithName(v string) *Bar3D {
	b.Name = &v
	return b
}

func (b *Bar3D) WithCoordinateSystem(v element.CoordinateSystem) *Bar3D {
	b.CoordinateSystem = v
	return b
}

func (b *Bar3D) WithGrid3DIndex(v element.CompositeValue) *Bar3D {
	b.Grid3DIndex = v
	return b
}

func (b *Bar3D) WithGeo3DIndex(v element.CompositeValue) *Bar3D {
	b.Geo3DIndex = v
	return b
}

func (b *Bar3D) WithGlobeIndex(v element.CompositeValue) *Bar3D {
	b.GlobeIndex = v
	return b
}

func (b *Bar3D) WithBarSize(v element.CompositeValue) *Bar3D {
	b.BarSize = v
	return b
}

func (b *Bar3D) WithBevelSize(v float64) *Bar3D {
	b.BevelSize = &v
	return b
}

func (b *Bar3D) WithShading(v string) *Bar3D {
	b.Shading = &v
	return b
}

func (b *Bar3D) WithStack(v string) *Bar3D {
	b.Stack = &v
	return b
}

func (b *Bar3D) WithLabel(v *element.Label) *Bar3D {
	b.Label = v
	return b
}

func (b *Bar3D) WithItemStyle(v *element.ItemStyle) *Bar3D {
	b.ItemStyle = v
	return b
}

func (b *Bar3D) WithEmphasis(v *element.Emphasis) *Bar3D {
	b.Emphasis = v
	return b
}

func (b *Bar3D) WithEncode(v *element.DimensionEncode) *Bar3D {
	b.Encode = v
	return b
}

func (b *Bar3D) WithData(v datatype.DataFrame) *Bar3D {
	b.Data = v
	return b
}
