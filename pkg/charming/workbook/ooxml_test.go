package workbook

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const drawingXML = `<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <xdr:twoCellAnchor>
    <xdr:from><xdr:col>4</xdr:col><xdr:row>1</xdr:row></xdr:from>
    <xdr:to><xdr:col>12</xdr:col><xdr:row>16</xdr:row></xdr:to>
    <xdr:graphicFrame macro="">
      <xdr:nvGraphicFramePr><xdr:cNvPr id="2" name="Sales Chart"/><xdr:cNvGraphicFramePr/></xdr:nvGraphicFramePr>
      <xdr:xfrm><a:off x="95250" y="190500"/><a:ext cx="4572000" cy="2743200"/></xdr:xfrm>
      <a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart r:id="rId3"/></a:graphicData></a:graphic>
    </xdr:graphicFrame>
    <xdr:clientData/>
  </xdr:twoCellAnchor>
  <xdr:twoCellAnchor>
    <xdr:sp><xdr:nvSpPr><xdr:cNvPr id="3" name="Box"/></xdr:nvSpPr></xdr:sp>
  </xdr:twoCellAnchor>
</xdr:wsDr>`

func TestParseDrawingForCharts(t *testing.T) {
	frames := parseDrawingForCharts([]byte(drawingXML))
	require.Len(t, frames, 1)

	pos, ok := frames["rId3"]
	require.True(t, ok)
	assert.Equal(t, framePosition{name: "Sales Chart", left: 10, top: 20, width: 480, height: 288}, pos)
}

func TestParseRelationships(t *testing.T) {
	rels := []byte(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/vmlDrawing" Target="../drawings/vmlDrawing1.vml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing" Target="../drawings/drawing1.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart" Target="../charts/chart7.xml"/>
</Relationships>`)

	assert.Equal(t, "../drawings/drawing1.xml", findDrawingRelationship(rels))
	assert.Equal(t, map[string]string{"rId3": "../charts/chart7.xml"}, parseDrawingRels(rels))
}

func TestParseWorkbookSheets(t *testing.T) {
	wb := []byte(`<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets><sheet name="Sales" sheetId="1" r:id="rId1"/><sheet name="Notes" sheetId="2" r:id="rId2"/></sheets>
</workbook>`)
	rels := []byte(`<Relationships>
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="/xl/worksheets/sheet2.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`)

	sheets := parseWorkbookSheets(wb)
	assert.Equal(t, map[string]string{"rId1": "Sales", "rId2": "Notes"}, sheets)
	assert.Equal(t, map[string]string{
		"Sales": "xl/worksheets/sheet1.xml",
		"Notes": "xl/worksheets/sheet2.xml",
	}, parseWorkbookRels(rels, sheets))
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target  string
		baseDir string
		want    string
	}{
		{"../charts/chart1.xml", "xl/charts", "xl/charts/chart1.xml"},
		{"/xl/drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveRelativePath(tt.target, tt.baseDir), tt.target)
	}
}

func TestParseXfrm(t *testing.T) {
	decoder := xml.NewDecoder(strings.NewReader(
		`<xfrm><a:off x="914400" y="9524"/><a:ext cx="4572000" cy="bad"/></xfrm>`))
	_, err := decoder.Token()
	require.NoError(t, err)

	left, top, width, height := parseXfrm(decoder)
	assert.Equal(t, 96, left)
	assert.Equal(t, 0, top)
	assert.Equal(t, 480, width)
	assert.Equal(t, 0, height)
}
