// Package render writes standalone HTML pages that display charming charts
// with the ECharts runtime. The page only hands the option document to
// setOption; it does not draw anything itself.
package render

import (
	"bytes"
	"html/template"
	"io"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming"
	"github.com/ukaji3/charming-go/pkg/charming/component"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="{{.AssetURL}}"></script>
{{- if .ThemeURL}}
  <script src="{{.ThemeURL}}"></script>
{{- end}}
</head>
<body>
  <div id="{{.ID}}" style="width: {{.Width}}px; height: {{.Height}}px;"></div>
  <script type="text/javascript">
{{- range .Maps}}
    echarts.registerMap({{.Name}}, {{.Opt}});
{{- end}}
    var chart = echarts.init(document.getElementById({{.ID}}), {{.Theme}}, {renderer: {{.Renderer}}});
    chart.setOption({{.Option}});
  </script>
</body>
</html>
`))

type pageMap struct {
	Name string
	Opt  template.JS
}

type pageData struct {
	Title    string
	AssetURL string
	ThemeURL string
	ID       string
	Width    int
	Height   int
	Theme    template.JS
	Renderer string
	Maps     []pageMap
	Option   template.JS
}

// Page writes HTML pages with fixed options.
type Page struct {
	opts Options
}

// NewPage returns a page writer. It fails on an unknown theme or renderer.
func NewPage(opts Options) (*Page, error) {
	if err := opts.Validate(); err != nil {
		return nil, newRenderError("config", err)
	}
	if opts.Renderer == "" {
		opts.Renderer = RendererCanvas
	}
	return &Page{opts: opts}, nil
}

// Options returns the options of the page writer.
func (p *Page) Options() Options {
	return p.opts
}

// RenderChart writes the page of a chart, registering its geo maps first.
func (p *Page) RenderChart(w io.Writer, c *charming.Chart) error {
	doc, err := c.JSON()
	if err != nil {
		return newRenderError("encode", err)
	}
	maps, err := pageMaps(c.GeoMaps())
	if err != nil {
		return newRenderError("maps", err)
	}
	return p.write(w, doc, maps)
}

// RenderDocument writes the page of an already encoded option document,
// such as one read from disk. Raw JS markers in it are substituted.
func (p *Page) RenderDocument(w io.Writer, doc []byte) error {
	if !json.Valid(doc) {
		return newRenderError("encode", ErrInvalidDocument)
	}
	return p.write(w, doc, nil)
}

func (p *Page) write(w io.Writer, doc []byte, maps []pageMap) error {
	theme, err := themeArg(p.opts.Theme)
	if err != nil {
		return newRenderError("config", err)
	}
	data := pageData{
		Title:    p.opts.PageTitle,
		AssetURL: p.opts.AssetURL,
		ThemeURL: p.opts.ThemeURL(),
		ID:       p.opts.ResolveContainerID(),
		Width:    p.opts.Width,
		Height:   p.opts.Height,
		Theme:    theme,
		Renderer: string(p.opts.Renderer),
		Maps:     maps,
		Option:   scriptJS(doc),
	}
	fLogger.WithFields(logrus.Fields{
		"container": data.ID,
		"theme":     p.opts.Theme,
		"maps":      len(maps),
	}).Debug("rendering page")

	// Execute into a buffer so a template failure leaves w untouched.
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return newRenderError("template", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return newRenderError("template", err)
	}
	return nil
}

// scriptEnd matches sequences that end or confuse an inline script element.
var scriptEnd = regexp.MustCompile(`(?i)<(/script|!--)`)

// scriptJS makes an encoded document safe to inline in a script element.
// String values get \u escapes for <, > and &; raw JS expressions expanded
// afterwards only get their "</script" and "<!--" sequences broken up.
func scriptJS(doc []byte) template.JS {
	var buf bytes.Buffer
	json.HTMLEscape(&buf, doc)
	code := element.ExpandRaw(buf.Bytes())
	return template.JS(scriptEnd.ReplaceAll(code, []byte(`<\$1`)))
}

func themeArg(t Theme) (template.JS, error) {
	if t == "" || t == ThemeDefault {
		return "null", nil
	}
	b, err := json.Marshal(string(t))
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func pageMaps(maps []*component.GeoMap) ([]pageMap, error) {
	out := make([]pageMap, 0, len(maps))
	for _, m := range maps {
		opt, err := m.OptJSON()
		if err != nil {
			return nil, err
		}
		out = append(out, pageMap{Name: m.Name, Opt: scriptJS(opt)})
	}
	return out, nil
}

// RenderChart writes the page of a chart with DefaultOptions.
func RenderChart(w io.Writer, c *charming.Chart) error {
	p, err := NewPage(DefaultOptions())
	if err != nil {
		return err
	}
	return p.RenderChart(w, c)
}

// RenderDocument writes the page of an encoded document with DefaultOptions.
func RenderDocument(w io.Writer, doc []byte) error {
	p, err := NewPage(DefaultOptions())
	if err != nil {
		return err
	}
	return p.RenderDocument(w, doc)
}
