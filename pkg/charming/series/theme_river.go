package series

import "github.com/ukaji3/charming-go/pkg/charming/element"

// ThemeRiver shows how several themes change over time as flowing streams
// around a single time axis.
type ThemeRiver struct {
	Type             string                   `json:"type"`
	ID               *string                  `json:"id,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	ColorBy          element.ColorBy          `json:"colorBy,omitempty"`
	Left             element.CompositeValue   `json:"left,omitempty"`
	Top              element.CompositeValue   `json:"top,omitempty"`
	Right            element.CompositeValue   `json:"right,omitempty"`
	Bottom           element.CompositeValue   `json:"bottom,omitempty"`
	Width            element.CompositeValue   `json:"width,omitempty"`
	Height           element.CompositeValue   `json:"height,omitempty"`
	CoordinateSystem element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	SingleAxisIndex  *float64                 `json:"singleAxisIndex,omitempty"`
	BoundaryGap      *element.BoundaryGap     `json:"boundaryGap,omitempty"`
	Label            *element.Label           `json:"label,omitempty"`
	Emphasis         *element.Emphasis        `json:"emphasis,omitempty"`
	Data             []ThemeRiverData         `json:"data,omitempty"`
}

func NewThemeRiver() *ThemeRiver {
	return &ThemeRiver{Type: "themeRiver"}
}

func (t *ThemeRiver) SeriesType() string {
	return t.Type
}

func (t *ThemeRiver) WithID(v string) *ThemeRiver {
	t.ID = &v
	return t
}

func (t *ThemeRiver) WithName(v string) *ThemeRiver {
	t.Name = &v
	return t
}

func (t *ThemeRiver) WithColorBy(v element.ColorBy) *ThemeRiver {
	t.ColorBy = v
	return t
}

func (t *ThemeRiver) WithLeft(v element.CompositeValue) *ThemeRiver {
	t.Left = v
	return t
}

func (t *ThemeRiver) WithTop(v element.CompositeValue) *ThemeRiver {
	t.Top = v
	return t
}

func (t *ThemeRiver) WithRight(v element.CompositeValue) *ThemeRiver {
	t.Right = v
	return t
}

func (t *ThemeRiver) WithBottom(v element.CompositeValue) *ThemeRiver {
	t.Bottom = v
	return t
}

func (t *ThemeRiver) WithWidth(v element.CompositeValue) *ThemeRiver {
	t.Width = v
	return t
}

func (t *ThemeRiver) WithHeight(v element.CompositeValue) *ThemeRiver {
	t.Height = v
	return t
}

func (t *ThemeRiver) WithCoordinateSystem(v element.CoordinateSystem) *ThemeRiver {
	t.CoordinateSystem = v
	return t
}

func (t *ThemeRiver) WithSingleAxisIndex(v float64) *ThemeRiver {
	t.SingleAxisIndex = &v
	return t
}

func (t *ThemeRiver) WithBoundaryGap(v *element.BoundaryGap) *ThemeRiver {
	t.BoundaryGap = v
	return t
}

func (t *ThemeRiver) WithLabel(v *element.Label) *ThemeRiver {
	t.Label = v
	return t
}

func (t *ThemeRiver) WithEmphasis(v *element.Emphasis) *ThemeRiver {
	t.Emphasis = v
	return t
}

func (t *ThemeRiver) WithData(v ...ThemeRiverData) *ThemeRiver {
	t.Data = v
	return t
}
