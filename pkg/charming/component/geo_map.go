package component

import "github.com/ukaji3/charming-go/internal/json"

// WithBoundingCoords fixes the geo area to the box between the top left and
// bottom right [longitude, latitude] corners.
func (g *Geo) WithBoundingCoords(topLeft, bottomRight [2]float64) *Geo {
	g.BoundingCoords = &[2][2]float64{topLeft, bottomRight}
	return g
}

// GeoMapOpt is the source of a map registered with echarts.registerMap.
type GeoMapOpt interface {
	geoMapOpt()
}

// GeoJSONOpt registers a GeoJSON feature collection. SpecialAreas relocates
// regions, e.g. to draw remote islands in an inset.
type GeoJSONOpt struct {
	GeoJSON      json.RawMessage `json:"geoJSON"`
	SpecialAreas json.RawMessage `json:"specialAreas,omitempty"`
}

func (GeoJSONOpt) geoMapOpt() {}

// SVGOpt registers an SVG document as a map.
type SVGOpt struct {
	SVG string `json:"svg"`
}

func (SVGOpt) geoMapOpt() {}

// GeoMap is a map to register before the option is applied. It is not part
// of the option document itself.
type GeoMap struct {
	Name string
	Opt  GeoMapOpt
}

// NewGeoJSONMap returns a GeoJSON map registered under name.
func NewGeoJSONMap(name string, geoJSON json.RawMessage) *GeoMap {
	return &GeoMap{Name: name, Opt: GeoJSONOpt{GeoJSON: geoJSON}}
}

// NewSVGMap returns an SVG map registered under name.
func NewSVGMap(name, svg string) *GeoMap {
	return &GeoMap{Name: name, Opt: SVGOpt{SVG: svg}}
}

// WithSpecialAreas sets the special areas of a GeoJSON map. It is a no-op for
// SVG maps.
func (m *GeoMap) WithSpecialAreas(areas json.RawMessage) *GeoMap {
	if opt, ok := m.Opt.(GeoJSONOpt); ok {
		opt.SpecialAreas = areas
		m.Opt = opt
	}
	return m
}

// OptJSON encodes the registration options passed to echarts.registerMap.
func (m *GeoMap) OptJSON() ([]byte, error) {
	return json.Marshal(m.Opt)
}
