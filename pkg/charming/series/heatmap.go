package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Heatmap colors the cells of a cartesian grid or calendar, or blurs points
// on a geo component, by value.
type Heatmap struct {
	Type                 string                   `json:"type"`
	ID                   *string                  `json:"id,omitempty"`
	Name                 *string                  `json:"name,omitempty"`
	CoordinateSystem     element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex           *float64                 `json:"xAxisIndex,omitempty"`
	YAxisIndex           *float64                 `json:"yAxisIndex,omitempty"`
	GeoIndex             *float64                 `json:"geoIndex,omitempty"`
	CalendarIndex        *float64                 `json:"calendarIndex,omitempty"`
	PointSize            *float64                 `json:"pointSize,omitempty"`
	BlurSize             *float64                 `json:"blurSize,omitempty"`
	MinOpacity           *float64                 `json:"minOpacity,omitempty"`
	MaxOpacity           *float64                 `json:"maxOpacity,omitempty"`
	Progressive          *float64                 `json:"progressive,omitempty"`
	ProgressiveThreshold *float64                 `json:"progressiveThreshold,omitempty"`
	Label                *element.Label           `json:"label,omitempty"`
	ItemStyle            *element.ItemStyle       `json:"itemStyle,omitempty"`
	Emphasis             *element.Emphasis        `json:"emphasis,omitempty"`
	// Data holds one [x, y, value] row per cell.
	Data []datatype.DataFrame `json:"data,omitempty"`
}

func NewHeatmap() *Heatmap {
	return &Heatmap{Type: "heatmap"}
}

func (h *Heatmap) SeriesType() string {
	return h.Type
}

func (h *Heatmap) WithID(v string) *Heatmap {
	h.ID = &v
	return h
}

func (h *Heatmap) WithName(v string) *Heatmap {
	h.Name = &v
	return h
}

func (h *Heatmap) WithCoordinateSystem(v element.CoordinateSystem) *Heatmap {
	h.CoordinateSystem = v
	return h
}

func (h *Heatmap) WithXAxisIndex(v float64) *Heatmap {
	h.XAxisIndex = &v
	return h
}

func (h *Heatmap) WithYAxisIndex(v float64) *Heatmap {
	h.YAxisIndex = &v
	return h
}

func (h *Heatmap) WithGeoIndex(v float64) *Heatmap {
	h.GeoIndex = &v
	return h
}

func (h *Heatmap) WithCalendarIndex(v float64) *Heatmap {
	h.CalendarIndex = &v
	return h
}

func (h *Heatmap) WithPointSize(v float64) *Heatmap {
	h.PointSize = &v
	return h
}

func (h *Heatmap) WithBlurSize(v float64) *Heatmap {
	h.BlurSize = &v
	return h
}

func (h *Heatmap) WithMinOpacity(v float64) *Heatmap {
	h.MinOpacity = &v
	return h
}

func (h *Heatmap) WithMaxOpacity(v float64) *Heatmap {
	h.MaxOpacity = &v
	return h
}

func (h *Heatmap) WithProgressive(v float64) *Heatmap {
	h.Progressive = &v
	return h
}

func (h *Heatmap) WithProgressiveThreshold(v float64) *Heatmap {
	h.ProgressiveThreshold = &v
	return h
}

func (h *Heatmap) WithLabel(v *element.Label) *Heatmap {
	h.Label = v
	return h
}

func (h *Heatmap) WithItemStyle(v *element.ItemStyle) *Heatmap {
	h.ItemStyle = v
	return h
}

func (h *Heatmap) WithEmphasis(v *element.Emphasis) *Heatmap {
	h.Emphasis = v
	return h
}

func (h *Heatmap) WithData(v ...datatype.DataFrame) *Heatmap {
	h.Data = v
	return h
}
