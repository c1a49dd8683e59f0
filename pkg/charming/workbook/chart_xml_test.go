package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const stackedBarXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <c:chart>
    <c:title><c:tx><c:rich><a:bodyPr/><a:p><a:r><a:t>Quarterly </a:t></a:r><a:r><a:t>Sales</a:t></a:r></a:p></c:rich></c:tx></c:title>
    <c:plotArea>
      <c:layout/>
      <c:barChart>
        <c:barDir val="bar"/>
        <c:grouping val="stacked"/>
        <c:ser>
          <c:idx val="0"/><c:order val="0"/>
          <c:tx><c:strRef><c:f>Data!$A$2</c:f><c:strCache><c:ptCount val="1"/><c:pt idx="0"><c:v>North</c:v></c:pt></c:strCache></c:strRef></c:tx>
          <c:cat><c:strRef><c:f>Data!$B$1:$C$1</c:f><c:strCache><c:ptCount val="2"/><c:pt idx="0"><c:v>Q1</c:v></c:pt><c:pt idx="1"><c:v>Q2</c:v></c:pt></c:strCache></c:strRef></c:cat>
          <c:val><c:numRef><c:f>Data!$B$2:$C$2</c:f><c:numCache><c:formatCode>General</c:formatCode><c:ptCount val="2"/><c:pt idx="0"><c:v>10</c:v></c:pt><c:pt idx="1"><c:v>20</c:v></c:pt></c:numCache></c:numRef></c:val>
        </c:ser>
        <c:ser>
          <c:idx val="1"/><c:order val="1"/>
          <c:tx><c:v>South</c:v></c:tx>
          <c:cat><c:strRef><c:f>Data!$B$1:$C$1</c:f><c:strCache><c:ptCount val="2"/><c:pt idx="0"><c:v>Q1</c:v></c:pt><c:pt idx="1"><c:v>Q2</c:v></c:pt></c:strCache></c:strRef></c:cat>
          <c:val><c:numRef><c:f>Data!$B$3:$C$3</c:f><c:numCache><c:ptCount val="2"/><c:pt idx="0"><c:v>5</c:v></c:pt><c:pt idx="1"><c:v>n/a</c:v></c:pt></c:numCache></c:numRef></c:val>
        </c:ser>
        <c:axId val="1"/><c:axId val="2"/>
      </c:barChart>
      <c:catAx>
        <c:axId val="1"/><c:axPos val="l"/>
        <c:title><c:tx><c:rich><a:p><a:r><a:t>Quarter</a:t></a:r></a:p></c:rich></c:tx></c:title>
      </c:catAx>
      <c:valAx>
        <c:axId val="2"/>
        <c:scaling><c:orientation val="minMax"/><c:max val="50"/><c:min val="0"/></c:scaling>
        <c:axPos val="b"/>
        <c:title><c:tx><c:rich><a:p><a:r><a:t>Units</a:t></a:r></a:p></c:rich></c:tx></c:title>
      </c:valAx>
    </c:plotArea>
  </c:chart>
</c:chartSpace>`

const scatterXML = `<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <c:chart>
    <c:plotArea>
      <c:scatterChart>
        <c:ser>
          <c:xVal><c:numRef><c:numCache><c:pt idx="0"><c:v>1.5</c:v></c:pt><c:pt idx="1"><c:v>2.5</c:v></c:pt></c:numCache></c:numRef></c:xVal>
          <c:yVal><c:numRef><c:numCache><c:pt idx="0"><c:v>3</c:v></c:pt><c:pt idx="1"><c:v>4</c:v></c:pt></c:numCache></c:numRef></c:yVal>
        </c:ser>
      </c:scatterChart>
      <c:valAx><c:axPos val="b"/><c:title><c:tx><c:rich><a:p><a:r><a:t>Height</a:t></a:r></a:p></c:rich></c:tx></c:title></c:valAx>
      <c:valAx><c:axPos val="l"/><c:title><c:tx><c:rich><a:p><a:r><a:t>Weight</a:t></a:r></a:p></c:rich></c:tx></c:title></c:valAx>
    </c:plotArea>
  </c:chart>
</c:chartSpace>`

func TestParseChartXML(t *testing.T) {
	def := parseChartXML([]byte(stackedBarXML))
	require.NotNil(t, def)

	assert.Equal(t, "Quarterly Sales", def.Title)
	assert.Equal(t, "Quarter", def.CatAxisTitle)
	assert.Equal(t, "Units", def.ValAxisTitle)
	assert.Equal(t, []float64{0, 50}, def.ValAxisRange)

	require.Len(t, def.Groups, 1)
	g := def.Groups[0]
	assert.Equal(t, KindBar, g.Kind)
	assert.Equal(t, "bar", g.BarDir)
	assert.True(t, g.stacked())
	require.Len(t, g.Series, 2)

	north := g.Series[0]
	assert.Equal(t, "North", north.Name)
	assert.Equal(t, "Data!$A$2", north.NameRange)
	assert.Equal(t, "Data!$B$1:$C$1", north.CatRange)
	assert.Equal(t, []string{"Q1", "Q2"}, north.CatCache)
	assert.Equal(t, "Data!$B$2:$C$2", north.ValRange)
	assert.Equal(t, []string{"10", "20"}, north.ValCache)

	assert.Equal(t, "South", g.Series[1].Name)
	assert.Empty(t, g.Series[1].NameRange)
}

func TestParseChartXMLWithoutChart(t *testing.T) {
	assert.Nil(t, parseChartXML([]byte(`<c:chartSpace xmlns:c="x"/>`)))
	assert.Nil(t, parseChartXML([]byte(`not xml`)))
}

func TestBuildChartFromCache(t *testing.T) {
	chart, err := buildChart(nil, parseChartXML([]byte(stackedBarXML)))
	require.NoError(t, err)

	doc, err := chart.JSON()
	require.NoError(t, err)
	out := string(doc)

	assert.Equal(t, "Quarterly Sales", gjson.Get(out, "title.0.text").String())
	assert.Equal(t, "axis", gjson.Get(out, "tooltip.trigger").String())
	assert.Equal(t, "value", gjson.Get(out, "xAxis.0.type").String())
	assert.Equal(t, "Units", gjson.Get(out, "xAxis.0.name").String())
	assert.Equal(t, `0`, gjson.Get(out, "xAxis.0.min").Raw)
	assert.Equal(t, `50`, gjson.Get(out, "xAxis.0.max").Raw)
	assert.Equal(t, "category", gjson.Get(out, "yAxis.0.type").String())
	assert.Equal(t, `["Q1","Q2"]`, gjson.Get(out, "yAxis.0.data").Raw)
	assert.Equal(t, "Quarter", gjson.Get(out, "yAxis.0.name").String())

	assert.Equal(t, "bar", gjson.Get(out, "series.0.type").String())
	assert.Equal(t, "North", gjson.Get(out, "series.0.name").String())
	assert.Equal(t, "total", gjson.Get(out, "series.0.stack").String())
	assert.Equal(t, `[10,20]`, gjson.Get(out, "series.0.data").Raw)
	assert.Equal(t, `[5,null]`, gjson.Get(out, "series.1.data").Raw)
	assert.Equal(t, `["North","South"]`, gjson.Get(out, "legend.data.#.name").Raw)
}

func TestBuildScatterFromCache(t *testing.T) {
	def := parseChartXML([]byte(scatterXML))
	require.NotNil(t, def)
	assert.Equal(t, "Height", def.CatAxisTitle)
	assert.Equal(t, "Weight", def.ValAxisTitle)

	chart, err := buildChart(nil, def)
	require.NoError(t, err)
	doc, err := chart.JSON()
	require.NoError(t, err)
	out := string(doc)

	assert.Equal(t, "item", gjson.Get(out, "tooltip.trigger").String())
	assert.Equal(t, "value", gjson.Get(out, "xAxis.0.type").String())
	assert.False(t, gjson.Get(out, "xAxis.0.data").Exists())
	assert.Equal(t, "Series1", gjson.Get(out, "series.0.name").String())
	assert.Equal(t, `[[1.5,3],[2.5,4]]`, gjson.Get(out, "series.0.data").Raw)
	assert.False(t, gjson.Get(out, "legend").Exists())
}

func TestBuildChartKinds(t *testing.T) {
	values := []string{"1", "2", "3", "4"}
	cats := []string{"a", "b", "c", "d"}
	ref := func(name string, vals ...string) seriesRef {
		return seriesRef{Name: name, CatCache: cats, ValCache: vals}
	}

	tests := []struct {
		name  string
		group plotGroup
		check func(t *testing.T, out string)
	}{
		{
			name:  "area",
			group: plotGroup{Kind: KindArea, Series: []seriesRef{ref("s", values...)}},
			check: func(t *testing.T, out string) {
				assert.Equal(t, "line", gjson.Get(out, "series.0.type").String())
				assert.Equal(t, `{}`, gjson.Get(out, "series.0.areaStyle").Raw)
			},
		},
		{
			name:  "doughnut",
			group: plotGroup{Kind: KindDoughnut, Series: []seriesRef{ref("s", values...), ref("ignored", values...)}},
			check: func(t *testing.T, out string) {
				assert.Equal(t, int64(1), gjson.Get(out, "series.#").Int())
				assert.Equal(t, `["40%","70%"]`, gjson.Get(out, "series.0.radius").Raw)
				assert.Equal(t, "c", gjson.Get(out, "series.0.data.2.name").String())
				assert.Equal(t, int64(3), gjson.Get(out, "series.0.data.2.value").Int())
				assert.Equal(t, `["a","b","c","d"]`, gjson.Get(out, "legend.data.#.name").Raw)
				assert.False(t, gjson.Get(out, "xAxis").Exists())
			},
		},
		{
			name:  "radar",
			group: plotGroup{Kind: KindRadar, Series: []seriesRef{ref("x", values...), ref("y", "4", "3", "2", "1")}},
			check: func(t *testing.T, out string) {
				assert.Equal(t, `["a","b","c","d"]`, gjson.Get(out, "radar.0.indicator.#.name").Raw)
				assert.Equal(t, float64(4), gjson.Get(out, "radar.0.indicator.0.max").Float())
				assert.Equal(t, "y", gjson.Get(out, "series.0.data.1.name").String())
				assert.Equal(t, `[4,3,2,1]`, gjson.Get(out, "series.0.data.1.value").Raw)
			},
		},
		{
			name: "stock",
			group: plotGroup{Kind: KindStock, Series: []seriesRef{
				ref("open", "10", "11"), ref("high", "15", "16"), ref("low", "8", "9"), ref("close", "12", "10"),
			}},
			check: func(t *testing.T, out string) {
				assert.Equal(t, "candlestick", gjson.Get(out, "series.0.type").String())
				assert.Equal(t, `[[10,12,8,15],[11,10,9,16]]`, gjson.Get(out, "series.0.data").Raw)
			},
		},
		{
			name:  "bubble",
			group: plotGroup{Kind: KindBubble, Series: []seriesRef{{ValCache: []string{"3"}, SizeCache: []string{"9"}}}},
			check: func(t *testing.T, out string) {
				assert.Equal(t, `[[1,3,9]]`, gjson.Get(out, "series.0.data").Raw)
				assert.Contains(t, gjson.Get(out, "series.0.symbolSize").String(), "Math.sqrt")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := buildChart(nil, &chartDef{Groups: []plotGroup{tt.group}})
			require.NoError(t, err)
			doc, err := chart.JSON()
			require.NoError(t, err)
			tt.check(t, string(doc))
		})
	}
}

func TestBuildChartUnsupported(t *testing.T) {
	_, err := buildChart(nil, &chartDef{Groups: []plotGroup{{Kind: KindSurface}}})
	assert.ErrorIs(t, err, ErrUnsupportedChart)

	_, err = buildChart(nil, &chartDef{})
	assert.ErrorIs(t, err, ErrUnsupportedChart)
}
