package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

// FilterMode is how data outside the zoom window is treated.
type FilterMode string

const (
	FilterModeFilter     FilterMode = "filter"
	FilterModeWeakFilter FilterMode = "weakFilter"
	FilterModeEmpty      FilterMode = "empty"
	FilterModeNone       FilterMode = "none"
)

type DataZoomType string

const (
	DataZoomTypeInside DataZoomType = "inside"
	DataZoomTypeSlider DataZoomType = "slider"
	DataZoomTypeSelect DataZoomType = "select"
)

// DataZoom zooms into a part of the data along one or more axes.
type DataZoom struct {
	// Type is inside (wheel and drag), slider or select (toolbox box zoom).
	Type                   DataZoomType            `json:"type,omitempty"`
	ID                     *string                 `json:"id,omitempty"`
	Show                   *bool                   `json:"show,omitempty"`
	Disabled               *bool                   `json:"disabled,omitempty"`
	Realtime               *bool                   `json:"realtime,omitempty"`
	BackgroundColor        element.Color           `json:"backgroundColor,omitempty"`
	DataBackground         *element.DataBackground `json:"dataBackground,omitempty"`
	SelectedDataBackground *element.DataBackground `json:"selectedDataBackground,omitempty"`
	FillerColor            element.Color           `json:"fillerColor,omitempty"`
	BorderColor            element.Color           `json:"borderColor,omitempty"`
	// Start and End are percentages of the data range.
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`
	// StartValue and EndValue are data values; they take precedence over Start and End.
	StartValue      element.CompositeValue `json:"startValue,omitempty"`
	EndValue        element.CompositeValue `json:"endValue,omitempty"`
	MinSpan         *float64               `json:"minSpan,omitempty"`
	MaxSpan         *float64               `json:"maxSpan,omitempty"`
	MinValueSpan    *float64               `json:"minValueSpan,omitempty"`
	MaxValueSpan    *float64               `json:"maxValueSpan,omitempty"`
	Orient          element.Orient         `json:"orient,omitempty"`
	ZoomLock        *bool                  `json:"zoomLock,omitempty"`
	Throttle        *float64               `json:"throttle,omitempty"`
	Left            element.CompositeValue `json:"left,omitempty"`
	Top             element.CompositeValue `json:"top,omitempty"`
	Right           element.CompositeValue `json:"right,omitempty"`
	Bottom          element.CompositeValue `json:"bottom,omitempty"`
	XAxisIndex      element.CompositeValue `json:"xAxisIndex,omitempty"`
	YAxisIndex      element.CompositeValue `json:"yAxisIndex,omitempty"`
	RadiusAxisIndex *float64               `json:"radiusAxisIndex,omitempty"`
	AngleAxisIndex  *float64               `json:"angleAxisIndex,omitempty"`
	FilterMode      FilterMode             `json:"filterMode,omitempty"`
	TextStyle       *element.TextStyle     `json:"textStyle,omitempty"`
	HandleIcon      *string                `json:"handleIcon,omitempty"`
	BrushSelect     *bool                  `json:"brushSelect,omitempty"`
}

func NewDataZoom() *DataZoom {
	return &DataZoom{}
}

func (d *DataZoom) WithType(v DataZoomType) *DataZoom {
	d.Type = v
	return d
}

func (d *DataZoom) WithID(v string) *DataZoom {
	d.ID = &v
	return d
}

func (d *DataZoom) WithShow(v bool) *DataZoom {
	d.Show = &v
	return d
}

func (d *DataZoom) WithDisabled(v bool) *DataZoom {
	d.Disabled = &v
	return d
}

func (d *DataZoom) WithRealtime(v bool) *DataZoom {
	d.Realtime = &v
	return d
}

func (d *DataZoom) WithBackgroundColor(v element.Color) *DataZoom {
	d.BackgroundColor = v
	return d
}

func (d *DataZoom) WithDataBackground(v *element.DataBackground) *DataZoom {
	d.DataBackground = v
	return d
}

func (d *DataZoom) WithSelectedDataBackground(v *element.DataBackground) *DataZoom {
	d.SelectedDataBackground = v
	return d
}

func (d *DataZoom) WithFillerColor(v element.Color) *DataZoom {
	d.FillerColor = v
	return d
}

func (d *DataZoom) WithBorderColor(v element.Color) *DataZoom {
	d.BorderColor = v
	return d
}

func (d *DataZoom) WithStart(v float64) *DataZoom {
	d.Start = &v
	return d
}

func (d *DataZoom) WithEnd(v float64) *DataZoom {
	d.End = &v
	return d
}

func (d *DataZoom) WithStartValue(v element.CompositeValue) *DataZoom {
	d.StartValue = v
	return d
}

func (d *DataZoom) WithEndValue(v element.CompositeValue) *DataZoom {
	d.EndValue = v
	return d
}

func (d *DataZoom) WithMinSpan(v float64) *DataZoom {
	d.MinSpan = &v
	return d
}

func (d *DataZoom) WithMaxSpan(v float64) *DataZoom {
	d.MaxSpan = &v
	return d
}

func (d *DataZoom) WithMinValueSpan(v float64) *DataZoom {
	d.MinValueSpan = &v
	return d
}

func (d *DataZoom) WithMaxValueSpan(v float64) *DataZoom {
	d.MaxValueSpan = &v
	return d
}

func (d *DataZoom) WithOrient(v element.Orient) *DataZoom {
	d.Orient = v
	return d
}

func (d *DataZoom) WithZoomLock(v bool) *DataZoom {
	d.ZoomLock = &v
	return d
}

func (d *DataZoom) WithThrottle(v float64) *DataZoom {
	d.Throttle = &v
	return d
}

func (d *DataZoom) WithLeft(v element.CompositeValue) *DataZoom {
	d.Left = v
	return d
}

func (d *DataZoom) WithTop(v element.CompositeValue) *DataZoom {
	d.Top = v
	return d
}

func (d *DataZoom) WithRight(v element.CompositeValue) *DataZoom {
	d.Right = v
	return d
}

func (d *DataZoom) WithBottom(v element.CompositeValue) *DataZoom {
	d.Bottom = v
	return d
}

func (d *DataZoom) WithXAxisIndex(v element.CompositeValue) *DataZoom {
	d.XAxisIndex = v
	return d
}

func (d *DataZoom) WithYAxisIndex(v element.CompositeValue) *DataZoom {
	d.YAxisIndex = v
	return d
}

func (d *DataZoom) WithRadiusAxisIndex(v float64) *DataZoom {
	d.RadiusAxisIndex = &v
	return d
}

func (d *DataZoom) WithAngleAxisIndex(v float64) *DataZoom {
	d.AngleAxisIndex = &v
	return d
}

func (d *DataZoom) WithFilterMode(v FilterMode) *DataZoom {
	d.FilterMode = v
	return d
}

func (d *DataZoom) WithTextStyle(v *element.TextStyle) *DataZoom {
	d.TextStyle = v
	return d
}

func (d *DataZoom) WithHandleIcon(v string) *DataZoom {
	d.HandleIcon = &v
	return d
}

func (d *DataZoom) WithBrushSelect(v bool) *DataZoom {
	d.BrushSelect = &v
	return d
}
