// Package charming builds ECharts option documents.
//
// A Chart is the root of the document. Components and series are added with
// the With* builders and the document is produced with JSON, JSONIndent or
// String:
//
//	chart := charming.NewChart().
//		WithXAxis(component.NewAxis().WithType(element.AxisTypeCategory).
//			WithData("Mon", "Tue", "Wed")).
//		WithYAxis(component.NewAxis().WithType(element.AxisTypeValue)).
//		WithSeries(series.NewBar().WithData(datatype.Values(120, 200, 150)))
//
// JSON keeps raw JS strings as marked JSON strings. String substitutes them,
// so its output is a JS expression meant for setOption.
package charming

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/tidwall/sjson"
	"github.com/tiendc/go-deepcopy"

	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming/component"
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
	"github.com/ukaji3/charming-go/pkg/charming/series"
)

// Chart is the root of an option document.
type Chart struct {
	Title           []*component.Title            `json:"title,omitempty"`
	Tooltip         *element.Tooltip              `json:"tooltip,omitempty"`
	Legend          *component.Legend             `json:"legend,omitempty"`
	Toolbox         *component.Toolbox            `json:"toolbox,omitempty"`
	Grid            []*component.Grid             `json:"grid,omitempty"`
	XAxis           []*component.Axis             `json:"xAxis,omitempty"`
	YAxis           []*component.Axis             `json:"yAxis,omitempty"`
	Polar           []*component.PolarCoordinate  `json:"polar,omitempty"`
	AngleAxis       []*component.AngleAxis        `json:"angleAxis,omitempty"`
	RadiusAxis      []*component.RadiusAxis       `json:"radiusAxis,omitempty"`
	SingleAxis      *component.SingleAxis         `json:"singleAxis,omitempty"`
	ParallelAxis    []*component.ParallelAxis     `json:"parallelAxis,omitempty"`
	Parallel        *component.ParallelCoordinate `json:"parallel,omitempty"`
	Radar           []*component.RadarCoordinate  `json:"radar,omitempty"`
	VisualMap       []*component.VisualMap        `json:"visualMap,omitempty"`
	DataZoom        []*component.DataZoom         `json:"dataZoom,omitempty"`
	Dataset         *datatype.Dataset             `json:"dataset,omitempty"`
	Color           []element.Color               `json:"color,omitempty"`
	BackgroundColor element.Color                 `json:"backgroundColor,omitempty"`
	AxisPointer     []*element.AxisPointer        `json:"axisPointer,omitempty"`
	Geo             *component.Geo                `json:"geo,omitempty"`
	Aria            *component.Aria               `json:"aria,omitempty"`
	XAxis3D         []*component.Axis3D           `json:"xAxis3D,omitempty"`
	YAxis3D         []*component.Axis3D           `json:"yAxis3D,omitempty"`
	ZAxis3D         []*component.Axis3D           `json:"zAxis3D,omitempty"`
	Grid3D          []*component.Grid3D           `json:"grid3D,omitempty"`
	Series          []series.Series               `json:"series,omitempty"`

	geoMaps []*component.GeoMap
	patches []patch
}

type patch struct {
	path  string
	value any
}

// NewChart returns an empty chart.
func NewChart() *Chart {
	return &Chart{}
}

func (c *Chart) WithTitle(v *component.Title) *Chart {
	c.Title = append(c.Title, v)
	return c
}

func (c *Chart) WithTooltip(v *element.Tooltip) *Chart {
	c.Tooltip = v
	return c
}

func (c *Chart) WithLegend(v *component.Legend) *Chart {
	c.Legend = v
	return c
}

func (c *Chart) WithToolbox(v *component.Toolbox) *Chart {
	c.Toolbox = v
	return c
}

func (c *Chart) WithGrid(v *component.Grid) *Chart {
	c.Grid = append(c.Grid, v)
	return c
}

func (c *Chart) WithXAxis(v *component.Axis) *Chart {
	c.XAxis = append(c.XAxis, v)
	return c
}

func (c *Chart) WithYAxis(v *component.Axis) *Chart {
	c.YAxis = append(c.YAxis, v)
	return c
}

func (c *Chart) WithPolar(v *component.PolarCoordinate) *Chart {
	c.Polar = append(c.Polar, v)
	return c
}

func (c *Chart) WithAngleAxis(v *component.AngleAxis) *Chart {
	c.AngleAxis = append(c.AngleAxis, v)
	return c
}

func (c *Chart) WithRadiusAxis(v *component.RadiusAxis) *Chart {
	c.RadiusAxis = append(c.RadiusAxis, v)
	return c
}

func (c *Chart) WithSingleAxis(v *component.SingleAxis) *Chart {
	c.SingleAxis = v
	return c
}

func (c *Chart) WithParallelAxis(v *component.ParallelAxis) *Chart {
	c.ParallelAxis = append(c.ParallelAxis, v)
	return c
}

func (c *Chart) WithParallel(v *component.ParallelCoordinate) *Chart {
	c.Parallel = v
	return c
}

func (c *Chart) WithRadar(v *component.RadarCoordinate) *Chart {
	c.Radar = append(c.Radar, v)
	return c
}

func (c *Chart) WithVisualMap(v *component.VisualMap) *Chart {
	c.VisualMap = append(c.VisualMap, v)
	return c
}

func (c *Chart) WithDataZoom(v *component.DataZoom) *Chart {
	c.DataZoom = append(c.DataZoom, v)
	return c
}

func (c *Chart) WithDataset(v *datatype.Dataset) *Chart {
	c.Dataset = v
	return c
}

// WithColor replaces the palette series colors are picked from.
func (c *Chart) WithColor(v ...element.Color) *Chart {
	c.Color = v
	return c
}

func (c *Chart) WithBackgroundColor(v element.Color) *Chart {
	c.BackgroundColor = v
	return c
}

func (c *Chart) WithAxisPointer(v *element.AxisPointer) *Chart {
	c.AxisPointer = append(c.AxisPointer, v)
	return c
}

func (c *Chart) WithGeo(v *component.Geo) *Chart {
	c.Geo = v
	return c
}

func (c *Chart) WithAria(v *component.Aria) *Chart {
	c.Aria = v
	return c
}

func (c *Chart) WithXAxis3D(v *component.Axis3D) *Chart {
	c.XAxis3D = append(c.XAxis3D, v)
	return c
}

func (c *Chart) WithYAxis3D(v *component.Axis3D) *Chart {
	c.YAxis3D = append(c.YAxis3D, v)
	return c
}

func (c *Chart) WithZAxis3D(v *component.Axis3D) *Chart {
	c.ZAxis3D = append(c.ZAxis3D, v)
	return c
}

func (c *Chart) WithGrid3D(v *component.Grid3D) *Chart {
	c.Grid3D = append(c.Grid3D, v)
	return c
}

func (c *Chart) WithSeries(v series.Series) *Chart {
	c.Series = append(c.Series, v)
	return c
}

// WithGeoMap registers a map for the page writer. Maps are not part of the
// option document.
func (c *Chart) WithGeoMap(m *component.GeoMap) *Chart {
	c.geoMaps = append(c.geoMaps, m)
	return c
}

// GeoMaps returns the registered maps in registration order.
func (c *Chart) GeoMaps() []*component.GeoMap {
	return c.geoMaps
}

// WithPatch sets the value at an sjson path of the encoded document, for
// options the typed builders do not cover. A nil value deletes the path.
// Patches are applied in order after encoding.
func (c *Chart) WithPatch(path string, value any) *Chart {
	c.patches = append(c.patches, patch{path: path, value: value})
	return c
}

// MarshalJSON encodes the chart and applies its patches.
func (c *Chart) MarshalJSON() ([]byte, error) {
	type plain Chart
	doc, err := json.Marshal((*plain)(c))
	if err != nil {
		return nil, err
	}
	for _, p := range c.patches {
		if doc, err = applyPatch(doc, p); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func applyPatch(doc []byte, p patch) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if p.value == nil {
		out, err = sjson.DeleteBytes(doc, p.path)
	} else {
		var raw []byte
		if raw, err = json.Marshal(p.value); err == nil {
			out, err = sjson.SetRawBytes(doc, p.path, raw)
		}
	}
	if err != nil {
		return nil, &PatchError{Path: p.path, Err: err}
	}
	return out, nil
}

// JSON returns the compact document. Raw JS strings keep their markers, so
// the result is always valid JSON.
func (c *Chart) JSON() ([]byte, error) {
	return json.Marshal(c)
}

// JSONIndent returns the document indented with two spaces.
func (c *Chart) JSONIndent() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// String returns the indented document with raw JS strings substituted.
func (c *Chart) String() string {
	doc, err := c.JSONIndent()
	if err != nil {
		return fmt.Sprintf("%%!(charming: %v)", err)
	}
	return string(element.ExpandRaw(doc))
}

// Clone returns a deep copy of the chart, including registered maps and
// patches. Patch values are shared.
func (c *Chart) Clone() (*Chart, error) {
	out := new(Chart)
	if err := deepcopy.Copy(&out, c); err != nil {
		return nil, fmt.Errorf("clone chart: %w", err)
	}
	out.geoMaps = nil
	for _, m := range c.geoMaps {
		if m == nil {
			out.geoMaps = append(out.geoMaps, nil)
			continue
		}
		var cp *component.GeoMap
		if err := deepcopy.Copy(&cp, m); err != nil {
			return nil, fmt.Errorf("clone geo map %q: %w", m.Name, err)
		}
		out.geoMaps = append(out.geoMaps, cp)
	}
	out.patches = append([]patch(nil), c.patches...)
	return out, nil
}

// Validate reports structural problems: nil entries in the component and
// series lists, and registered maps without a name or source. Whether a
// series fits its coordinate system is left to ECharts.
func (c *Chart) Validate() error {
	var errs []error
	for i, s := range c.Series {
		if isNil(s) {
			errs = append(errs, fmt.Errorf("%w: series[%d]", ErrNilSeries, i))
		}
	}
	check := func(name string, n int, at func(int) bool) {
		for i := 0; i < n; i++ {
			if at(i) {
				errs = append(errs, fmt.Errorf("%w: %s[%d]", ErrNilComponent, name, i))
			}
		}
	}
	check("title", len(c.Title), func(i int) bool { return c.Title[i] == nil })
	check("grid", len(c.Grid), func(i int) bool { return c.Grid[i] == nil })
	check("xAxis", len(c.XAxis), func(i int) bool { return c.XAxis[i] == nil })
	check("yAxis", len(c.YAxis), func(i int) bool { return c.YAxis[i] == nil })
	check("polar", len(c.Polar), func(i int) bool { return c.Polar[i] == nil })
	check("angleAxis", len(c.AngleAxis), func(i int) bool { return c.AngleAxis[i] == nil })
	check("radiusAxis", len(c.RadiusAxis), func(i int) bool { return c.RadiusAxis[i] == nil })
	check("parallelAxis", len(c.ParallelAxis), func(i int) bool { return c.ParallelAxis[i] == nil })
	check("radar", len(c.Radar), func(i int) bool { return c.Radar[i] == nil })
	check("visualMap", len(c.VisualMap), func(i int) bool { return c.VisualMap[i] == nil })
	check("dataZoom", len(c.DataZoom), func(i int) bool { return c.DataZoom[i] == nil })
	check("color", len(c.Color), func(i int) bool { return c.Color[i] == nil })
	check("axisPointer", len(c.AxisPointer), func(i int) bool { return c.AxisPointer[i] == nil })
	check("xAxis3D", len(c.XAxis3D), func(i int) bool { return c.XAxis3D[i] == nil })
	check("yAxis3D", len(c.YAxis3D), func(i int) bool { return c.YAxis3D[i] == nil })
	check("zAxis3D", len(c.ZAxis3D), func(i int) bool { return c.ZAxis3D[i] == nil })
	check("grid3D", len(c.Grid3D), func(i int) bool { return c.Grid3D[i] == nil })

	seen := make(map[string]bool, len(c.geoMaps))
	for i, m := range c.geoMaps {
		switch {
		case m == nil:
			errs = append(errs, fmt.Errorf("%w: geo map %d is nil", ErrGeoMap, i))
		case m.Name == "":
			errs = append(errs, fmt.Errorf("%w: geo map %d has no name", ErrGeoMap, i))
		case m.Opt == nil:
			errs = append(errs, fmt.Errorf("%w: geo map %q has no source", ErrGeoMap, m.Name))
		case seen[m.Name]:
			errs = append(errs, fmt.Errorf("%w: geo map %q registered twice", ErrGeoMap, m.Name))
		}
		if m != nil {
			seen[m.Name] = true
		}
	}
	return errors.Join(errs...)
}

// isNil reports a nil interface or a typed nil pointer inside it.
func isNil(s series.Series) bool {
	if s == nil {
		return true
	}
	return reflect.ValueOf(s).Kind() == reflect.Ptr && reflect.ValueOf(s).IsNil()
}
