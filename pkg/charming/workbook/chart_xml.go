package workbook

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// ChartKind is the kind of a native Excel chart.
type ChartKind string

const (
	KindLine      ChartKind = "line"
	KindLine3D    ChartKind = "line3D"
	KindBar       ChartKind = "bar"
	KindBar3D     ChartKind = "bar3D"
	KindArea      ChartKind = "area"
	KindArea3D    ChartKind = "area3D"
	KindPie       ChartKind = "pie"
	KindPie3D     ChartKind = "pie3D"
	KindDoughnut  ChartKind = "doughnut"
	KindOfPie     ChartKind = "ofPie"
	KindScatter   ChartKind = "scatter"
	KindBubble    ChartKind = "bubble"
	KindRadar     ChartKind = "radar"
	KindStock     ChartKind = "stock"
	KindSurface   ChartKind = "surface"
	KindSurface3D ChartKind = "surface3D"
)

// ChartKinds maps OOXML plot element tags to chart kinds.
var ChartKinds = map[string]ChartKind{
	"lineChart":      KindLine,
	"line3DChart":    KindLine3D,
	"barChart":       KindBar,
	"bar3DChart":     KindBar3D,
	"areaChart":      KindArea,
	"area3DChart":    KindArea3D,
	"pieChart":       KindPie,
	"pie3DChart":     KindPie3D,
	"doughnutChart":  KindDoughnut,
	"ofPieChart":     KindOfPie,
	"scatterChart":   KindScatter,
	"bubbleChart":    KindBubble,
	"radarChart":     KindRadar,
	"stockChart":     KindStock,
	"surfaceChart":   KindSurface,
	"surface3DChart": KindSurface3D,
}

// seriesRef is a chart series as stored in the chart part: range formulas
// plus the values Excel cached when it last saved the file.
type seriesRef struct {
	Name      string
	NameRange string
	CatRange  string
	CatCache  []string
	ValRange  string
	ValCache  []string
	SizeRange string
	SizeCache []string
}

// plotGroup is one plot element of the plot area. Combo charts have several.
type plotGroup struct {
	Kind     ChartKind
	BarDir   string // "bar" or "col"
	Grouping string // "standard", "clustered", "stacked", "percentStacked"
	Series   []seriesRef
}

// stacked reports whether the series of the group are stacked.
func (g plotGroup) stacked() bool {
	return g.Grouping == "stacked" || g.Grouping == "percentStacked"
}

// chartDef is the metadata of a chart part.
type chartDef struct {
	Name          string
	Title         string
	Groups        []plotGroup
	CatAxisTitle  string
	ValAxisTitle  string
	ValAxisRange  []float64
	Left, Top     int
	Width, Height int
}

// parseChartXML parses a chart part. It returns nil when the part has no
// chart element.
func parseChartXML(data []byte) *chartDef {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			def := &chartDef{}
			parseChartElement(decoder, def)
			return def
		}
	}
}

// parseChartElement parses c:chart.
func parseChartElement(decoder *xml.Decoder, def *chartDef) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				def.Title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, def)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle joins the text runs of a title.
func parseChartTitle(decoder *xml.Decoder) string {
	var runs []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" || t.Name.Local == "v" {
				if txt, err := readElementText(decoder); err == nil {
					runs = append(runs, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(strings.Join(runs, ""))
}

// axisInfo is an axis of the plot area before it is assigned a role.
type axisInfo struct {
	tag   string
	title string
	rng   []float64
	pos   string
}

// parsePlotArea parses the plot groups and axes of c:plotArea.
func parsePlotArea(decoder *xml.Decoder, def *chartDef) {
	var axes []axisInfo
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if kind, ok := ChartKinds[t.Name.Local]; ok {
				def.Groups = append(def.Groups, parsePlotGroup(decoder, kind))
				depth--
				continue
			}
			switch t.Name.Local {
			case "valAx", "catAx", "dateAx":
				title, rng, pos := parseAxis(decoder)
				axes = append(axes, axisInfo{tag: t.Name.Local, title: title, rng: rng, pos: pos})
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	assignAxes(def, axes)
}

// assignAxes picks the category and value axes. With a category axis present
// the value axis is the valAx wherever it sits (horizontal bars put it at the
// bottom). Scatter charts have two valAx; the horizontal one holds x.
func assignAxes(def *chartDef, axes []axisInfo) {
	hasCat := false
	for _, ax := range axes {
		if ax.tag != "valAx" {
			hasCat = true
			def.CatAxisTitle = ax.title
		}
	}
	for _, ax := range axes {
		if ax.tag != "valAx" {
			continue
		}
		if !hasCat && (ax.pos == "b" || ax.pos == "t") {
			def.CatAxisTitle = ax.title
			continue
		}
		def.ValAxisTitle, def.ValAxisRange = ax.title, ax.rng
	}
}

// parsePlotGroup parses a plot element such as c:barChart.
func parsePlotGroup(decoder *xml.Decoder, kind ChartKind) plotGroup {
	group := plotGroup{Kind: kind}
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "barDir":
				group.BarDir, _ = attr(t, "val")
			case "grouping":
				group.Grouping, _ = attr(t, "val")
			case "ser":
				group.Series = append(group.Series, parseSingleSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return group
}

// parseSingleSeries parses c:ser.
func parseSingleSeries(decoder *xml.Decoder) seriesRef {
	var s seriesRef
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				var cache []string
				s.NameRange, cache = parseDataSource(decoder)
				if len(cache) > 0 {
					s.Name = cache[0]
				}
				depth--
			case "cat", "xVal":
				s.CatRange, s.CatCache = parseDataSource(decoder)
				depth--
			case "val", "yVal":
				s.ValRange, s.ValCache = parseDataSource(decoder)
				depth--
			case "bubbleSize":
				s.SizeRange, s.SizeCache = parseDataSource(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseDataSource reads the formula and the cached points of a data source
// (c:tx, c:cat, c:val and friends). A literal name is returned as the only
// cached value.
func parseDataSource(decoder *xml.Decoder) (ref string, cache []string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					cache = append(cache, strings.TrimSpace(txt))
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseAxis reads the title, the scaling bounds and the position of an axis.
func parseAxis(decoder *xml.Decoder) (title string, axisRange []float64, pos string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = parseChartTitle(decoder)
				depth--
			case "scaling":
				axisRange = parseAxisScaling(decoder)
				depth--
			case "axPos":
				pos, _ = attr(t, "val")
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseAxisScaling returns [min, max] when both are fixed.
func parseAxisScaling(decoder *xml.Decoder) []float64 {
	var min, max *float64
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local != "min" && t.Name.Local != "max" {
				continue
			}
			v, ok := attr(t, "val")
			if !ok {
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			if t.Name.Local == "min" {
				min = &f
			} else {
				max = &f
			}
		case xml.EndElement:
			depth--
		}
	}

	if min != nil && max != nil {
		return []float64{*min, *max}
	}
	return nil
}
