package workbook

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"
)

// chartInfo locates a chart part and its frame in the drawing.
type chartInfo struct {
	name      string
	chartPath string
	left      int
	top       int
	width     int
	height    int
}

// getSheetChartMap returns the charts of every sheet, keyed by sheet name.
func getSheetChartMap(r *zip.Reader) map[string][]chartInfo {
	result := make(map[string][]chartInfo)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result
	}
	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result
	}

	for sheetName, sheetPath := range parseWorkbookRels(wbRelsXML, sheetsInfo) {
		relsPath := strings.Replace(sheetPath, "worksheets/", "worksheets/_rels/", 1)
		relsPath = strings.Replace(relsPath, ".xml", ".xml.rels", 1)

		sheetRelsXML, err := readZipFile(r, relsPath)
		if err != nil || sheetRelsXML == nil {
			continue
		}
		drawingPath := findDrawingRelationship(sheetRelsXML)
		if drawingPath == "" {
			continue
		}

		infos := getChartInfosFromDrawing(r, resolveRelativePath(drawingPath, "xl/drawings"))
		if len(infos) > 0 {
			result[sheetName] = infos
		}
	}

	return result
}

// getChartInfosFromDrawing returns the charts of a drawing, top to bottom
// and left to right.
func getChartInfosFromDrawing(r *zip.Reader, drawingPath string) []chartInfo {
	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return nil
	}
	positions := parseDrawingForCharts(drawingXML)
	if len(positions) == 0 {
		return nil
	}

	relsPath := strings.Replace(drawingPath, "drawings/", "drawings/_rels/", 1)
	relsPath = strings.Replace(relsPath, ".xml", ".xml.rels", 1)
	relsXML, err := readZipFile(r, relsPath)
	if err != nil || relsXML == nil {
		return nil
	}
	chartPaths := parseDrawingRels(relsXML)

	var result []chartInfo
	for rID, pos := range positions {
		if chartPath, ok := chartPaths[rID]; ok {
			result = append(result, chartInfo{
				name:      pos.name,
				chartPath: resolveRelativePath(chartPath, "xl/charts"),
				left:      pos.left,
				top:       pos.top,
				width:     pos.width,
				height:    pos.height,
			})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.top != b.top {
			return a.top < b.top
		}
		if a.left != b.left {
			return a.left < b.left
		}
		return a.chartPath < b.chartPath
	})
	return result
}

// framePosition is the name and frame of a graphicFrame in drawing.xml.
type framePosition struct {
	name   string
	left   int
	top    int
	width  int
	height int
}

// parseDrawingForCharts returns the chart frames of a drawing keyed by the
// relationship id of their chart part.
func parseDrawingForCharts(data []byte) map[string]framePosition {
	result := make(map[string]framePosition)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
			if rID, pos := parseAnchor(decoder); rID != "" {
				result[rID] = pos
			}
		}
	}

	return result
}

// parseAnchor scans an anchor for a graphicFrame holding a chart.
func parseAnchor(decoder *xml.Decoder) (string, framePosition) {
	var rID string
	var pos framePosition
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "graphicFrame" {
				rID, pos = parseGraphicFrame(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return rID, pos
}

func parseGraphicFrame(decoder *xml.Decoder) (string, framePosition) {
	var rID string
	var pos framePosition
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
			case "cNvPr":
				if v, ok := attr(t, "name"); ok {
					pos.name = v
				}
			case "xfrm":
				pos.left, pos.top, pos.width, pos.height = parseXfrm(decoder)
				depth--
			case "chart":
				if v, ok := attr(t, "id"); ok {
					rID = v
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return rID, pos
}

// emuPerPixel scales DrawingML frame offsets and extents to CSS pixels
// (914400 EMU per inch, 96 px per inch).
const emuPerPixel = 9525

// parseXfrm reads the offset and extent of a frame in pixels.
func parseXfrm(decoder *xml.Decoder) (left, top, width, height int) {
	px := func(se xml.StartElement, name string) int {
		v, ok := attr(se, name)
		if !ok {
			return 0
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return int(n / emuPerPixel)
	}

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
			case "off":
				left, top = px(t, "x"), px(t, "y")
			case "ext":
				width, height = px(t, "cx"), px(t, "cy")
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseDrawingRels returns the chart part targets of a drawing by id.
func parseDrawingRels(data []byte) map[string]string {
	result := make(map[string]string)
	for _, rel := range parseRelationships(data) {
		if strings.Contains(strings.ToLower(rel.relType), "chart") {
			result[rel.id] = rel.target
		}
	}
	return result
}

// parseWorkbookSheets returns sheet names keyed by relationship id.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, _ := attr(se, "name")
			rID, _ := attr(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// parseWorkbookRels returns worksheet part paths keyed by sheet name.
func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string)
	for _, rel := range parseRelationships(data) {
		if sheetName, ok := sheetsInfo[rel.id]; ok && strings.Contains(strings.ToLower(rel.target), "worksheet") {
			result[sheetName] = resolveRelativePath(rel.target, "xl")
		}
	}
	return result
}

// findDrawingRelationship returns the drawing target of a sheet, if any.
func findDrawingRelationship(data []byte) string {
	for _, rel := range parseRelationships(data) {
		if strings.HasSuffix(strings.ToLower(rel.relType), "/drawing") {
			return rel.target
		}
	}
	return ""
}

type relationship struct {
	id      string
	relType string
	target  string
}

func parseRelationships(data []byte) []relationship {
	var result []relationship
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rel relationship
			rel.id, _ = attr(se, "Id")
			rel.relType, _ = attr(se, "Type")
			rel.target, _ = attr(se, "Target")
			result = append(result, rel)
		}
	}

	return result
}

func attr(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

// resolveRelativePath turns a relationship target into a package path.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	return baseDir + "/" + target
}
