package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestTitle(t *testing.T) {
	title := NewTitle().
		WithText("Nightingale Chart").
		WithSubtext("Fake Data").
		WithLeft(element.String("center")).
		WithTextAlign(element.TextAlignCenter).
		WithPadding(5, 10)

	assert.JSONEq(t,
		`{"text":"Nightingale Chart","subtext":"Fake Data","textAlign":"center","padding":[5,10],"left":"center"}`,
		marshal(t, title))
}

func TestLegend(t *testing.T) {
	tests := []struct {
		name   string
		legend *Legend
		want   string
	}{
		{name: "empty", legend: NewLegend(), want: `{}`},
		{
			name:   "names",
			legend: NewLegend().WithNames("Email", "Video"),
			want:   `{"data":[{"name":"Email"},{"name":"Video"}]}`,
		},
		{
			name: "items with icons",
			legend: NewLegend().WithType(LegendTypeScroll).WithOrient(element.OrientVertical).
				WithData(NewLegendItem("a").WithIcon(element.IconCircle)),
			want: `{"type":"scroll","orient":"vertical","data":[{"name":"a","icon":"circle"}]}`,
		},
		{
			name:   "selected",
			legend: NewLegend().WithSelected(map[string]bool{"b": false, "a": true}),
			want:   `{"selected":{"a":true,"b":false}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, marshal(t, tt.legend))
		})
	}
}

func TestAxis(t *testing.T) {
	axis := NewAxis().
		WithType(element.AxisTypeCategory).
		WithBoundaryGap(element.BoundaryGapOf(false)).
		WithData("Mon", "Tue", "Wed").
		WithMin(element.String("dataMin")).
		WithAxisLabel(element.NewAxisLabel().WithFormatter(element.FormatString("{value} °C")))

	out := marshal(t, axis)
	assert.Equal(t, "category", gjson.Get(out, "type").String())
	assert.Equal(t, "false", gjson.Get(out, "boundaryGap").Raw)
	assert.Equal(t, 3, len(gjson.Get(out, "data").Array()))
	assert.Equal(t, "dataMin", gjson.Get(out, "min").String())
	assert.Equal(t, "{value} °C", gjson.Get(out, "axisLabel.formatter").String())
	assert.False(t, gjson.Get(out, "max").Exists())
}

func TestPolar(t *testing.T) {
	out := marshal(t, NewRadiusAxis().WithType(element.AxisTypeValue).WithPolarIndex(0))
	assert.JSONEq(t, `{"type":"value","polarIndex":0}`, out)

	out = marshal(t, NewPolarCoordinate().WithRadius(element.Array{element.Number(30), element.Percent(80)}))
	assert.JSONEq(t, `{"radius":[30,"80%"]}`, out)
}

func TestDataZoom(t *testing.T) {
	dz := NewDataZoom().
		WithType(DataZoomTypeSlider).
		WithFilterMode(FilterModeWeakFilter).
		WithStart(30).WithEnd(70).
		WithXAxisIndex(element.Numbers(0, 1))

	assert.JSONEq(t,
		`{"type":"slider","start":30,"end":70,"xAxisIndex":[0,1],"filterMode":"weakFilter"}`,
		marshal(t, dz))
}

func TestVisualMap(t *testing.T) {
	vm := NewVisualMap().
		WithType(VisualMapTypePiecewise).
		WithPieces(
			NewVisualMapPiece().WithGt(0).WithLte(50).WithColor(element.SolidColor("#93CE07")),
			NewVisualMapPiece().WithGt(300).WithColor(element.SolidColor("#AC3B2A")),
		).
		WithOutOfRange(NewVisualMapChannel().WithColor(element.SolidColor("#999"))).
		WithRange(10, 90)

	out := marshal(t, vm)
	assert.Equal(t, "piecewise", gjson.Get(out, "type").String())
	assert.JSONEq(t, `{"gt":0,"lte":50,"color":"#93CE07"}`, gjson.Get(out, "pieces.0").Raw)
	assert.Equal(t, `["#999"]`, gjson.Get(out, "outOfRange.color").Raw)
	assert.Equal(t, `[10,90]`, gjson.Get(out, "range").Raw)
}

func TestToolbox(t *testing.T) {
	tb := NewToolbox().WithFeature(NewFeature().
		WithSaveAsImage(NewSaveAsImage().WithType(SaveAsImageTypeSVG)).
		WithMagicType(NewMagicType().WithType(MagicTypeTypeLine, MagicTypeTypeBar)).
		WithBrush(NewBrush().WithType(BrushTypeLineX, BrushTypeClear)).
		WithDataZoom(NewToolboxDataZoom().WithYAxisIndex(element.String("none"))))

	out := marshal(t, tb)
	assert.Equal(t, "svg", gjson.Get(out, "feature.saveAsImage.type").String())
	assert.Equal(t, `["line","bar"]`, gjson.Get(out, "feature.magicType.type").Raw)
	assert.Equal(t, `["lineX","clear"]`, gjson.Get(out, "feature.brush.type").Raw)
	assert.Equal(t, "none", gjson.Get(out, "feature.dataZoom.yAxisIndex").String())

	got, ok := tb.SaveAsImageType()
	assert.True(t, ok)
	assert.Equal(t, SaveAsImageTypeSVG, got)
}

func TestSaveAsImageTypeAbsent(t *testing.T) {
	tests := []struct {
		name string
		tb   *Toolbox
	}{
		{name: "nil toolbox", tb: nil},
		{name: "no feature", tb: NewToolbox()},
		{name: "no tool", tb: NewToolbox().WithFeature(NewFeature())},
		{name: "no type", tb: NewToolbox().WithFeature(NewFeature().WithSaveAsImage(NewSaveAsImage()))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.tb.SaveAsImageType()
			assert.False(t, ok)
		})
	}
}

func TestParseMagicTypeType(t *testing.T) {
	got, err := ParseMagicTypeType("Stack")
	require.NoError(t, err)
	assert.Equal(t, MagicTypeTypeStack, got)

	_, err = ParseMagicTypeType("pie")
	assert.ErrorIs(t, err, element.ErrUnknownVariant)
}

func TestGeo(t *testing.T) {
	geo := NewGeo().
		WithMap("world").
		WithRoam(true).
		WithBoundingCoords([2]float64{-180, 90}, [2]float64{180, -90}).
		WithScaleLimit(element.NewScaleLimit().WithMin(1).WithMax(2)).
		WithNameMap(map[string]string{"China": "中国"})

	out := marshal(t, geo)
	assert.Equal(t, `[[-180,90],[180,-90]]`, gjson.Get(out, "boundingCoords").Raw)
	assert.Equal(t, `{"min":1,"max":2}`, gjson.Get(out, "scaleLimit").Raw)
	assert.Equal(t, "中国", gjson.Get(out, "nameMap.China").String())
}

func TestGeoMapOpt(t *testing.T) {
	m := NewGeoJSONMap("USA", json.RawMessage(`{"type":"FeatureCollection","features":[]}`)).
		WithSpecialAreas(json.RawMessage(`{"Alaska":{"left":-131,"top":25,"width":15}}`))
	b, err := m.OptJSON()
	require.NoError(t, err)
	assert.Equal(t, "FeatureCollection", gjson.GetBytes(b, "geoJSON.type").String())
	assert.Equal(t, int64(15), gjson.GetBytes(b, "specialAreas.Alaska.width").Int())

	svg := NewSVGMap("organ", "<svg></svg>").WithSpecialAreas(json.RawMessage(`{}`))
	b, err = svg.OptJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"svg":"<svg></svg>"}`, string(b))
}

func TestRadarAndParallel(t *testing.T) {
	radar := NewRadarCoordinate().
		WithShape(RadarShapeCircle).
		WithIndicator(
			NewRadarIndicator().WithName("Sales").WithMax(6500),
			NewRadarIndicator().WithName("Admin").WithMax(16000),
		)
	out := marshal(t, radar)
	assert.Equal(t, "circle", gjson.Get(out, "shape").String())
	assert.Equal(t, int64(16000), gjson.Get(out, "indicator.1.max").Int())

	pa := NewParallelAxis().WithDim(2).WithName("Score").WithType(element.AxisTypeCategory).WithData("A", "B")
	assert.JSONEq(t, `{"dim":2,"type":"category","name":"Score","data":["A","B"]}`, marshal(t, pa))

	pc := NewParallelCoordinate().WithLayout(element.OrientVertical).WithParallelAxisDefault(NewParallelAxis().WithRealtime(false))
	assert.JSONEq(t, `{"layout":"vertical","parallelAxisDefault":{"realtime":false}}`, marshal(t, pc))
}

func TestAria(t *testing.T) {
	aria := NewAria().WithEnabled(true).WithDecal(NewAriaDecal().WithShow(true))
	assert.JSONEq(t, `{"enabled":true,"decal":{"show":true}}`, marshal(t, aria))
}

func TestAxis3D(t *testing.T) {
	assert.JSONEq(t, `{"type":"category"}`, marshal(t, NewAxis3D().WithType(element.AxisTypeCategory)))
	assert.Equal(t, `{}`, marshal(t, NewGrid3D()))
}
