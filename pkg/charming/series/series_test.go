package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestSeriesTypeKey(t *testing.T) {
	tests := []struct {
		series Series
		want   string
	}{
		{NewBar(), "bar"},
		{NewBar3D(), "bar3D"},
		{NewBoxplot(), "boxplot"},
		{NewCandlestick(), "candlestick"},
		{NewCustom(), "custom"},
		{NewEffectScatter(), "effectScatter"},
		{NewFunnel(), "funnel"},
		{NewGauge(), "gauge"},
		{NewGraph(), "graph"},
		{NewHeatmap(), "heatmap"},
		{NewLine(), "line"},
		{NewLines(), "lines"},
		{NewMap(), "map"},
		{NewParallel(), "parallel"},
		{NewPictorialBar(), "pictorialBar"},
		{NewPie(), "pie"},
		{NewRadar(), "radar"},
		{NewSankey(), "sankey"},
		{NewScatter(), "scatter"},
		{NewSunburst(), "sunburst"},
		{NewThemeRiver(), "themeRiver"},
		{NewTree(), "tree"},
		{NewTreemap(), "treemap"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.series.SeriesType())
			assert.JSONEq(t, `{"type":"`+tt.want+`"}`, marshal(t, tt.series))
		})
	}
}

func TestBar(t *testing.T) {
	bar := NewBar().
		WithName("Income").
		WithStack("Total").
		WithBarWidth(element.Percent(60)).
		WithLabel(element.NewLabel().WithShow(true).WithPosition(element.LabelPositionInside)).
		WithItemStyle(element.NewItemStyle().
			WithBorderColor(element.SolidColor("transparent")).
			WithColor(element.SolidColor("transparent"))).
		WithEmphasis(element.NewEmphasis().WithItemStyle(element.NewItemStyle().
			WithBorderColor(element.SolidColor("transparent")))).
		WithData(datatype.Values(900, 345, 393, -108))

	out := marshal(t, bar)
	assert.Equal(t, "bar", gjson.Get(out, "type").String())
	assert.Equal(t, "Total", gjson.Get(out, "stack").String())
	assert.Equal(t, "60%", gjson.Get(out, "barWidth").String())
	assert.Equal(t, "inside", gjson.Get(out, "label.position").String())
	assert.Equal(t, "transparent", gjson.Get(out, "emphasis.itemStyle.borderColor").String())
	assert.Equal(t, `[900,345,393,-108]`, gjson.Get(out, "data").Raw)
	assert.False(t, gjson.Get(out, "markLine").Exists())
}

func TestLineWithMarks(t *testing.T) {
	line := NewLine().
		WithSmooth(true).
		WithSymbol(element.SymbolNone).
		WithAreaStyle(element.NewAreaStyle()).
		WithMarkPoint(element.NewMarkPoint().WithData(
			element.NewMarkPointData().WithType(element.MarkPointDataTypeMax).WithName("Max"),
		)).
		WithMarkLine(element.NewMarkLine().WithData(
			element.NewMarkLineData().WithType(element.MarkLineDataTypeAverage),
		)).
		WithData(datatype.DF(820, nil, 901))

	out := marshal(t, line)
	assert.Equal(t, "true", gjson.Get(out, "smooth").Raw)
	assert.Equal(t, "none", gjson.Get(out, "symbol").String())
	assert.Equal(t, `{}`, gjson.Get(out, "areaStyle").Raw)
	assert.Equal(t, "max", gjson.Get(out, "markPoint.data.0.type").String())
	assert.Equal(t, "average", gjson.Get(out, "markLine.data.0.type").String())
	assert.Equal(t, `[820,null,901]`, gjson.Get(out, "data").Raw)
}

func TestNightingalePie(t *testing.T) {
	pie := NewPie().
		WithName("Nightingale Chart").
		WithRoseType(PieRoseTypeRadius).
		WithRadius(element.Strings("50", "250")).
		WithCenter(element.Strings("50%", "50%")).
		WithItemStyle(element.NewItemStyle().WithBorderRadius(element.Number(8))).
		WithData(datatype.DF(
			datatype.Named("rose 1", 40),
			datatype.Named("rose 2", 38),
		))

	out := marshal(t, pie)
	assert.Equal(t, "radius", gjson.Get(out, "roseType").String())
	assert.Equal(t, `["50","250"]`, gjson.Get(out, "radius").Raw)
	assert.Equal(t, int64(8), gjson.Get(out, "itemStyle.borderRadius").Int())
	assert.Equal(t, "rose 2", gjson.Get(out, "data.1.name").String())
}

func TestScatterSymbolSizeCallback(t *testing.T) {
	sc := NewScatter().WithSymbolSize(element.RawString("function (d) { return Math.sqrt(d[2]) / 5e2; }"))
	out := marshal(t, sc)
	assert.Contains(t, string(element.ExpandRaw([]byte(out))), `"symbolSize":function (d)`)
}

func TestGraph(t *testing.T) {
	raw := []byte(`{
		"nodes": [{"id": "0", "name": "Myriel", "x": -266.8, "y": 299.6, "value": 28.7, "category": 0, "symbolSize": 28.7}],
		"links": [{"source": "1", "target": "0"}],
		"categories": [{"name": "A"}]
	}`)
	data, err := ParseGraphData(raw)
	require.NoError(t, err)

	g := NewGraph().WithLayout(GraphLayoutNone).WithRoam(true).WithGraphData(data)
	out := marshal(t, g)
	assert.Equal(t, "none", gjson.Get(out, "layout").String())
	assert.Equal(t, "Myriel", gjson.Get(out, "data.0.name").String())
	assert.Equal(t, `{"source":"1","target":"0"}`, gjson.Get(out, "links.0").Raw)
	assert.Equal(t, "A", gjson.Get(out, "categories.0.name").String())

	_, err = ParseGraphData([]byte(`{"nodes": 3}`))
	assert.Error(t, err)
}

func TestGraphLayouts(t *testing.T) {
	tests := []struct {
		name  string
		graph *Graph
		want  map[string]string
	}{
		{
			name:  "circular",
			graph: NewGraph().WithLayout(GraphLayoutTypeCircular).WithCircular(NewGraphLayoutCircular().WithRotateLabel(true)),
			want: map[string]string{
				"layout":               `"circular"`,
				"circular":             `{"rotateLabel":true}`,
				"circular.rotateLabel": `true`,
			},
		},
		{
			name: "force",
			graph: NewGraph().WithLayout(GraphLayoutTypeForce).WithForce(NewGraphLayoutForce().
				WithInitLayout("circular").
				WithRepulsion(element.Number(100)).
				WithGravity(0.1).
				WithEdgeLength(element.Numbers(50, 200)).
				WithLayoutAnimation(false).
				WithFriction(0.6)),
			want: map[string]string{
				"layout":                `"force"`,
				"force.initLayout":      `"circular"`,
				"force.repulsion":       `100`,
				"force.gravity":         `0.1`,
				"force.edgeLength":      `[50,200]`,
				"force.layoutAnimation": `false`,
				"force.friction":        `0.6`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := marshal(t, tt.graph)
			assert.Equal(t, "graph", gjson.Get(out, "type").String())
			for path, raw := range tt.want {
				assert.Equal(t, raw, gjson.Get(out, path).Raw, path)
			}
		})
	}
}

func TestSankey(t *testing.T) {
	s := NewSankey().
		WithNodeAlign(SankeyNodeAlignJustify).
		WithZLevel(2).
		WithData(SankeyNodes("a", "b")...).
		WithLinks(NewSankeyLink("a", "b", 5))

	out := marshal(t, s)
	assert.Equal(t, int64(2), gjson.Get(out, "zlevel").Int())
	assert.Equal(t, "justify", gjson.Get(out, "nodeAlign").String())
	assert.Equal(t, `[{"name":"a"},{"name":"b"}]`, gjson.Get(out, "data").Raw)
	assert.Equal(t, `[{"source":"a","target":"b","value":5}]`, gjson.Get(out, "links").Raw)
}

func TestFunnelAndSunburstSort(t *testing.T) {
	out := marshal(t, NewFunnel().WithSort(element.SortNone))
	assert.Equal(t, `{"type":"funnel","sort":null}`, out)

	out = marshal(t, NewSunburst().WithSort(element.SortDescending).WithRadius("0", "90%"))
	assert.Equal(t, "descending", gjson.Get(out, "sort").String())
	assert.Equal(t, `["0","90%"]`, gjson.Get(out, "radius").Raw)
}

func TestTree(t *testing.T) {
	root := NewTreeNode("flare").WithChildren(
		NewTreeNode("analytics").WithCollapsed(true).WithChildren(Leaf("cluster", 3938)),
		Leaf("animate", 1),
	)
	tree := NewTree().WithOrient(TreeOrientRightLeft).WithLayout(TreeLayoutOrthogonal).WithData(root)

	out := marshal(t, tree)
	assert.Equal(t, "RL", gjson.Get(out, "orient").String())
	assert.Equal(t, "cluster", gjson.Get(out, "data.0.children.0.children.0.name").String())
	assert.Equal(t, true, gjson.Get(out, "data.0.children.0.collapsed").Bool())
	assert.False(t, gjson.Get(out, "data.0.children.1.children").Exists())
}

func TestThemeRiver(t *testing.T) {
	tr := NewThemeRiver().WithData(
		NewThemeRiverData("2015/11/08", 10, "DQ"),
		ThemeRiverData{Date: element.String("2015/11/09"), Value: element.Number(15), Name: element.String("TY")},
	)
	out := marshal(t, tr)
	assert.Equal(t, `[["2015/11/08",10,"DQ"],["2015/11/09",15,"TY"]]`, gjson.Get(out, "data").Raw)
}

func TestHeatmapRows(t *testing.T) {
	hm := NewHeatmap().WithData(datatype.Values(0, 0, 5), datatype.Values(0, 1, 1))
	out := marshal(t, hm)
	assert.Equal(t, `[[0,0,5],[0,1,1]]`, gjson.Get(out, "data").Raw)
}

func TestCustomRenderItem(t *testing.T) {
	c := NewCustom().
		WithRenderItem("renderItem").
		WithDimensions(datatype.NewDimension("start").WithType(datatype.DimensionTypeTime)).
		WithEncode(element.NewDimensionEncode().WithX(element.Numbers(1, 2)).WithY(element.Number(0)))

	out := string(element.ExpandRaw([]byte(marshal(t, c))))
	assert.Contains(t, out, `"renderItem":renderItem`)
	assert.Contains(t, out, `"encode":{"x":[1,2],"y":0}`)
}

func TestGauge(t *testing.T) {
	g := NewGauge().
		WithAxisLine(element.NewAxisLine().WithLineStyle(element.NewLineStyle().
			WithWidth(30).
			WithColor(element.ColorSegments{{Offset: 0.3, Color: "#67e0e3"}, {Offset: 1, Color: "#fd666d"}}))).
		WithPointer(element.NewPointer().WithItemStyle(element.NewItemStyle().WithColor(element.SolidColor("auto")))).
		WithDetail(NewGaugeDetail().WithValueAnimation(true).WithFormatter(element.FormatString("{value} km/h"))).
		WithData(datatype.DF(datatype.Named("SCORE", 50)))

	out := marshal(t, g)
	assert.Equal(t, `[[0.3,"#67e0e3"],[1,"#fd666d"]]`, gjson.Get(out, "axisLine.lineStyle.color").Raw)
	assert.Equal(t, "{value} km/h", gjson.Get(out, "detail.formatter").String())
	assert.Equal(t, "SCORE", gjson.Get(out, "data.0.name").String())
}

func TestLinesAndMap(t *testing.T) {
	l := NewLines().
		WithCoordinateSystem(element.CoordinateSystemGeo).
		WithPolyline(true).
		WithData(NewLinesData().WithCoords([2]float64{116.4, 39.9}, [2]float64{121.4, 31.2}))
	out := marshal(t, l)
	assert.Equal(t, `[[116.4,39.9],[121.4,31.2]]`, gjson.Get(out, "data.0.coords").Raw)

	m := NewMap().WithMap("USA").WithRoam(true).WithData(datatype.DF(datatype.Named("Alabama", 4822023)))
	out = marshal(t, m)
	assert.Equal(t, "USA", gjson.Get(out, "map").String())
	assert.Equal(t, "Alabama", gjson.Get(out, "data.0.name").String())
}

func TestBar3D(t *testing.T) {
	b := NewBar3D().WithShading("lambert").WithGrid3DIndex(element.Number(0)).WithData(datatype.DF([]any{0, 0, 5}))
	assert.JSONEq(t, `{"type":"bar3D","grid3DIndex":0,"shading":"lambert","data":[[0,0,5]]}`, marshal(t, b))
}
