package element

// AxisType is the scale of an axis.
type AxisType string

const (
	// AxisTypeValue is a numerical axis for continuous data.
	AxisTypeValue AxisType = "value"
	// AxisTypeCategory is a category axis for discrete data.
	AxisTypeCategory AxisType = "category"
	// AxisTypeTime is a time axis for continuous time series.
	AxisTypeTime AxisType = "time"
	// AxisTypeLog is a logarithmic axis.
	AxisTypeLog AxisType = "log"
)

type BorderType string

const (
	BorderTypeSolid  BorderType = "solid"
	BorderTypeDashed BorderType = "dashed"
	BorderTypeDotted BorderType = "dotted"
)

// CoordinateSystem names the coordinate system a series is laid out on.
type CoordinateSystem string

const (
	CoordinateSystemCartesian2D CoordinateSystem = "cartesian2d"
	CoordinateSystemCartesian3D CoordinateSystem = "cartesian3D"
	CoordinateSystemPolar       CoordinateSystem = "polar"
	CoordinateSystemSingle      CoordinateSystem = "single"
	CoordinateSystemGeo         CoordinateSystem = "geo"
	CoordinateSystemCalendar    CoordinateSystem = "calendar"
	CoordinateSystemParallel    CoordinateSystem = "parallel"
)

// ColorBy selects whether palette colors are assigned per series or per data item.
type ColorBy string

const (
	ColorBySeries ColorBy = "series"
	ColorByData   ColorBy = "data"
)

// Cursor is the mouse cursor shown when hovering a graphic element.
type Cursor string

const (
	CursorPointer   Cursor = "pointer"
	CursorMove      Cursor = "move"
	CursorDefault   Cursor = "default"
	CursorCrosshair Cursor = "crosshair"
)

type NameLocation string

const (
	NameLocationStart  NameLocation = "start"
	NameLocationMiddle NameLocation = "middle"
	NameLocationCenter NameLocation = "center"
	NameLocationEnd    NameLocation = "end"
)

type Orient string

const (
	OrientHorizontal Orient = "horizontal"
	OrientVertical   Orient = "vertical"
)

// OriginPosition is where an area fill starts from.
type OriginPosition string

const (
	OriginPositionAuto  OriginPosition = "auto"
	OriginPositionStart OriginPosition = "start"
	OriginPositionEnd   OriginPosition = "end"
)

type TextAlign string

const (
	TextAlignAuto   TextAlign = "auto"
	TextAlignLeft   TextAlign = "left"
	TextAlignRight  TextAlign = "right"
	TextAlignCenter TextAlign = "center"
)

type TextVerticalAlign string

const (
	TextVerticalAlignAuto   TextVerticalAlign = "auto"
	TextVerticalAlignTop    TextVerticalAlign = "top"
	TextVerticalAlignBottom TextVerticalAlign = "bottom"
	TextVerticalAlignMiddle TextVerticalAlign = "middle"
)
