package charming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming/component"
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
	"github.com/ukaji3/charming-go/pkg/charming/series"
)

func waterfall() *Chart {
	return NewChart().
		WithTitle(component.NewTitle().WithText("Waterfall Chart").WithSubtext("Living Expenses in Shenzhen")).
		WithTooltip(element.NewTooltip().WithTrigger(element.TriggerAxis)).
		WithXAxis(component.NewAxis().
			WithType(element.AxisTypeCategory).
			WithData("Total", "Rent", "Utilities", "Transportation", "Meals", "Other")).
		WithYAxis(component.NewAxis().WithType(element.AxisTypeValue)).
		WithSeries(series.NewBar().
			WithStack("Total").
			WithItemStyle(element.NewItemStyle().
				WithBorderColor(element.SolidColor("transparent")).
				WithColor(element.SolidColor("transparent"))).
			WithData(datatype.Values(0, 1700, 1400, 1200, 300, 0))).
		WithSeries(series.NewBar().
			WithName("Life Cost").
			WithStack("Total").
			WithLabel(element.NewLabel().WithShow(true).WithPosition(element.LabelPositionInside)).
			WithData(datatype.Values(2900, 1200, 300, 200, 900, 300)))
}

func TestEmptyChart(t *testing.T) {
	doc, err := NewChart().JSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(doc))
}

func TestChartJSON(t *testing.T) {
	doc, err := waterfall().JSON()
	require.NoError(t, err)
	out := string(doc)

	assert.True(t, json.Valid(doc))
	assert.Equal(t, "Waterfall Chart", gjson.Get(out, "title.0.text").String())
	assert.Equal(t, "axis", gjson.Get(out, "tooltip.trigger").String())
	assert.Equal(t, "category", gjson.Get(out, "xAxis.0.type").String())
	assert.Equal(t, int64(6), gjson.Get(out, "xAxis.0.data.#").Int())
	assert.Equal(t, int64(2), gjson.Get(out, "series.#").Int())
	assert.Equal(t, "bar", gjson.Get(out, "series.1.type").String())
	assert.Equal(t, "inside", gjson.Get(out, "series.1.label.position").String())
	assert.Equal(t, `[2900,1200,300,200,900,300]`, gjson.Get(out, "series.1.data").Raw)
	assert.False(t, gjson.Get(out, "legend").Exists())
	assert.False(t, gjson.Get(out, "series.0.name").Exists())
}

func TestChartListsAppend(t *testing.T) {
	c := NewChart().
		WithYAxis(component.NewAxis().WithName("Precipitation")).
		WithYAxis(component.NewAxis().WithName("Temperature")).
		WithColor(element.SolidColor("#5470c6")).
		WithColor(element.SolidColor("#91cc75"), element.RGB(250, 200, 88))

	doc, err := c.JSON()
	require.NoError(t, err)
	out := string(doc)
	assert.Equal(t, "Temperature", gjson.Get(out, "yAxis.1.name").String())
	assert.Equal(t, `["#91cc75","rgb(250,200,88)"]`, gjson.Get(out, "color").Raw)
}

func TestChartGradientBackground(t *testing.T) {
	c := NewChart().WithBackgroundColor(element.NewRadialGradient(0.3, 0.3, 0.8,
		element.NewColorStop(0, "#f7f8fa"),
		element.NewColorStop(1, "#cdd0d5"),
	))
	doc, err := c.JSON()
	require.NoError(t, err)
	out := string(doc)
	assert.Equal(t, "radial", gjson.Get(out, "backgroundColor.type").String())
	assert.Equal(t, "#cdd0d5", gjson.Get(out, "backgroundColor.colorStops.1.color").String())
}

func TestChartPatch(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value any
		check func(t *testing.T, out string)
	}{
		{
			name:  "set scalar",
			path:  "tooltip.confine",
			value: true,
			check: func(t *testing.T, out string) {
				assert.Equal(t, "true", gjson.Get(out, "tooltip.confine").Raw)
			},
		},
		{
			name:  "set object",
			path:  "graphic",
			value: map[string]any{"type": "text", "left": "center"},
			check: func(t *testing.T, out string) {
				assert.Equal(t, `{"left":"center","type":"text"}`, gjson.Get(out, "graphic").Raw)
			},
		},
		{
			name:  "set inside series",
			path:  "series.0.barWidth",
			value: "40%",
			check: func(t *testing.T, out string) {
				assert.Equal(t, "40%", gjson.Get(out, "series.0.barWidth").String())
			},
		},
		{
			name:  "delete",
			path:  "title",
			value: nil,
			check: func(t *testing.T, out string) {
				assert.False(t, gjson.Get(out, "title").Exists())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := waterfall().WithPatch(tt.path, tt.value).JSON()
			require.NoError(t, err)
			tt.check(t, string(doc))
		})
	}
}

func TestChartPatchError(t *testing.T) {
	_, err := NewChart().WithPatch("", 1).JSON()
	require.Error(t, err)

	var pe *PatchError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "", pe.Path)
}

func TestChartString(t *testing.T) {
	c := NewChart().WithTooltip(element.NewTooltip().
		WithFormatter(element.RawString("function (p) { return p.name; }")))

	doc, err := c.JSON()
	require.NoError(t, err)
	assert.True(t, element.HasRaw(doc))

	s := c.String()
	assert.Contains(t, s, `"formatter": function (p) { return p.name; }`)
	assert.NotContains(t, s, "@@raw@@")
}

func TestChartClone(t *testing.T) {
	orig := waterfall().
		WithGeoMap(component.NewSVGMap("organ", "<svg/>")).
		WithPatch("animation", false)

	clone, err := orig.Clone()
	require.NoError(t, err)

	clone.WithSeries(series.NewLine())
	*clone.Title[0].Text = "Changed"
	clone.WithGeoMap(component.NewSVGMap("extra", "<svg/>"))
	clone.GeoMaps()[0].Name = "renamed"

	assert.Len(t, orig.Series, 2)
	assert.Equal(t, "Waterfall Chart", *orig.Title[0].Text)
	require.Len(t, orig.GeoMaps(), 1)
	assert.Equal(t, "organ", orig.GeoMaps()[0].Name)

	doc, err := clone.JSON()
	require.NoError(t, err)
	assert.Equal(t, "false", gjson.GetBytes(doc, "animation").Raw)
	assert.Equal(t, "line", gjson.GetBytes(doc, "series.2.type").String())
}

func TestChartGeoMapsNotEncoded(t *testing.T) {
	c := NewChart().
		WithGeo(component.NewGeo().WithMap("USA")).
		WithGeoMap(component.NewGeoJSONMap("USA", json.RawMessage(`{"type":"FeatureCollection","features":[]}`)))

	doc, err := c.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"geo":{"map":"USA"}}`, string(doc))
	assert.Len(t, c.GeoMaps(), 1)
}

func TestChartValidate(t *testing.T) {
	tests := []struct {
		name  string
		chart *Chart
		want  []error
	}{
		{
			name:  "valid",
			chart: waterfall().WithGeoMap(component.NewSVGMap("a", "<svg/>")),
		},
		{
			name:  "nil series",
			chart: NewChart().WithSeries(nil),
			want:  []error{ErrNilSeries},
		},
		{
			name:  "typed nil series",
			chart: NewChart().WithSeries((*series.Bar)(nil)),
			want:  []error{ErrNilSeries},
		},
		{
			name:  "nil axis",
			chart: NewChart().WithXAxis(nil),
			want:  []error{ErrNilComponent},
		},
		{
			name: "duplicate geo map",
			chart: NewChart().
				WithGeoMap(component.NewSVGMap("a", "<svg/>")).
				WithGeoMap(component.NewSVGMap("a", "<svg/>")),
			want: []error{ErrGeoMap},
		},
		{
			name:  "several problems",
			chart: NewChart().WithSeries(nil).WithTitle(nil).WithGeoMap(&component.GeoMap{Name: "x"}),
			want:  []error{ErrNilSeries, ErrNilComponent, ErrGeoMap},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.chart.Validate()
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}
