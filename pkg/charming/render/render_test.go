package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming"
	"github.com/ukaji3/charming-go/pkg/charming/component"
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
	"github.com/ukaji3/charming-go/pkg/charming/series"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.ContainerID = "main"
	return opts
}

func renderChart(t *testing.T, opts Options, c *charming.Chart) string {
	t.Helper()
	p, err := NewPage(opts)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, p.RenderChart(&buf, c))
	return buf.String()
}

func TestRenderChart(t *testing.T) {
	c := charming.NewChart().
		WithTooltip(element.NewTooltip().WithFormatter(element.RawString("function (p) { return p.value; }"))).
		WithSeries(series.NewPie().WithData(datatype.DF(datatype.Named("a", 1))))

	page := renderChart(t, testOptions(), c)

	assert.Contains(t, page, `<script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>`)
	assert.Contains(t, page, `<div id="main" style="width: 1000px; height: 800px;"></div>`)
	assert.Contains(t, page, `echarts.init(document.getElementById("main"), null, {renderer: "canvas"});`)
	assert.Contains(t, page, `"formatter":function (p) { return p.value; }`)
	assert.Contains(t, page, `"type":"pie"`)
	assert.NotContains(t, page, "@@raw@@")
	assert.NotContains(t, page, "registerMap")
	assert.NotContains(t, page, "/theme/")
}

func TestRenderChartTheme(t *testing.T) {
	tests := []struct {
		theme     Theme
		wantArg   string
		wantAsset bool
	}{
		{ThemeDefault, "null", false},
		{ThemeDark, `"dark"`, false},
		{ThemeVintage, `"vintage"`, true},
		{ThemePurplePassion, `"purple-passion"`, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			opts := testOptions()
			opts.Theme = tt.theme
			opts.Renderer = RendererSVG
			page := renderChart(t, opts, charming.NewChart())

			assert.Contains(t, page, `getElementById("main"), `+tt.wantArg+`, {renderer: "svg"}`)
			asset := `<script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/theme/` + string(tt.theme) + `.js"></script>`
			assert.Equal(t, tt.wantAsset, strings.Contains(page, asset))
		})
	}
}

func TestRenderChartGeoMaps(t *testing.T) {
	c := charming.NewChart().
		WithGeoMap(component.NewGeoJSONMap("USA", json.RawMessage(`{"type":"FeatureCollection","features":[]}`))).
		WithGeoMap(component.NewSVGMap("organ", `<svg></svg>`)).
		WithSeries(series.NewMap().WithMap("USA"))

	page := renderChart(t, testOptions(), c)

	assert.Contains(t, page, `echarts.registerMap("USA", {"geoJSON":{"type":"FeatureCollection","features":[]}});`)
	assert.Contains(t, page, `echarts.registerMap("organ", {"svg":"\u003csvg\u003e\u003c/svg\u003e"});`)
	assert.Less(t, strings.Index(page, "registerMap"), strings.Index(page, "setOption"))
}

func TestRenderChartEscapesTitle(t *testing.T) {
	opts := testOptions()
	opts.PageTitle = "Sales <2024>"
	page := renderChart(t, opts, charming.NewChart())
	assert.Contains(t, page, "<title>Sales &lt;2024&gt;</title>")
}

func TestRenderChartInlineScriptSafe(t *testing.T) {
	c := charming.NewChart().
		WithTitle(component.NewTitle().WithText("Q1 </script><script>alert(1)</script> & <!-- more")).
		WithTooltip(element.NewTooltip().WithFormatter(element.RawString(
			`function (p) { return p.value < 3 && p.name !== '</script>'; }`)))

	page := renderChart(t, testOptions(), c)
	assert.Equal(t, 2, strings.Count(page, "</script>"))
	assert.NotContains(t, page, "<!--")
	assert.Contains(t, page, `"text":"Q1 \u003c/script\u003e\u003cscript\u003ealert(1)\u003c/script\u003e \u0026 \u003c!-- more"`)
	assert.Contains(t, page, `"formatter":function (p) { return p.value < 3 && p.name !== '<\/script>'; }`)
}

func TestRenderDocumentInlineScriptSafe(t *testing.T) {
	var buf bytes.Buffer
	doc := []byte(`{"title":{"text":"</SCRIPT><img src=x onerror=alert(1)>"}}`)
	require.NoError(t, RenderDocument(&buf, doc))
	page := buf.String()
	assert.Equal(t, 2, strings.Count(strings.ToLower(page), "</script>"))
	assert.Contains(t, page, `chart.setOption({"title":{"text":"\u003c/SCRIPT\u003e\u003cimg src=x onerror=alert(1)\u003e"}});`)
}

func TestRenderChartRandomContainer(t *testing.T) {
	opts := DefaultOptions()
	a := renderChart(t, opts, charming.NewChart())
	b := renderChart(t, opts, charming.NewChart())
	assert.Contains(t, a, `<div id="chart-`)
	assert.NotEqual(t, a, b)
}

func TestRenderDocument(t *testing.T) {
	var buf bytes.Buffer
	err := RenderDocument(&buf, []byte(`{"series":[{"type":"line","data":[1,2]}]}`))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `chart.setOption({"series":[{"type":"line","data":[1,2]}]});`)

	buf.Reset()
	err = RenderDocument(&buf, []byte(`{"series":`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "encode", re.Stage)
	assert.Zero(t, buf.Len())
}

func TestNewPageValidates(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		want   error
	}{
		{"unknown theme", func(o *Options) { o.Theme = "neon" }, ErrUnknownTheme},
		{"unknown renderer", func(o *Options) { o.Renderer = "webgl" }, ErrUnknownRenderer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			_, err := NewPage(opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	opts := DefaultOptions()
	opts.Width = 0
	_, err := NewPage(opts)
	assert.Error(t, err)
}

func TestParseTheme(t *testing.T) {
	assert.Len(t, Themes(), 14)

	th, err := ParseTheme("westeros")
	require.NoError(t, err)
	assert.Equal(t, ThemeWesteros, th)

	th, err = ParseTheme("")
	require.NoError(t, err)
	assert.Equal(t, ThemeDefault, th)

	_, err = ParseTheme("Westeros")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	opts, err := LoadConfig(write("ok.yaml", "width: 640\ntheme: dark\nrenderer: svg\npageTitle: Report\n"))
	require.NoError(t, err)
	assert.Equal(t, 640, opts.Width)
	assert.Equal(t, 800, opts.Height)
	assert.Equal(t, ThemeDark, opts.Theme)
	assert.Equal(t, RendererSVG, opts.Renderer)
	assert.Equal(t, "Report", opts.PageTitle)
	assert.Equal(t, DefaultOptions().AssetURL, opts.AssetURL)

	opts, err = LoadConfig(write("empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)

	_, err = LoadConfig(write("unknown.yaml", "colour: red\n"))
	assert.Error(t, err)

	_, err = LoadConfig(write("theme.yaml", "theme: neon\n"))
	assert.ErrorIs(t, err, ErrUnknownTheme)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
