package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Theme is an ECharts theme name.
type Theme string

const (
	ThemeDefault       Theme = "default"
	ThemeDark          Theme = "dark"
	ThemeVintage       Theme = "vintage"
	ThemeWesteros      Theme = "westeros"
	ThemeEssos         Theme = "essos"
	ThemeWonderland    Theme = "wonderland"
	ThemeWalden        Theme = "walden"
	ThemeChalk         Theme = "chalk"
	ThemeInfographic   Theme = "infographic"
	ThemeMacarons      Theme = "macarons"
	ThemeRoma          Theme = "roma"
	ThemeShine         Theme = "shine"
	ThemePurplePassion Theme = "purple-passion"
	ThemeHalloween     Theme = "halloween"
)

// Themes returns every supported theme.
func Themes() []Theme {
	return []Theme{
		ThemeDefault, ThemeDark, ThemeVintage, ThemeWesteros, ThemeEssos,
		ThemeWonderland, ThemeWalden, ThemeChalk, ThemeInfographic, ThemeMacarons,
		ThemeRoma, ThemeShine, ThemePurplePassion, ThemeHalloween,
	}
}

// ParseTheme returns the theme with the given name.
func ParseTheme(name string) (Theme, error) {
	if name == "" {
		return ThemeDefault, nil
	}
	for _, t := range Themes() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// builtin reports whether the ECharts bundle ships the theme itself.
func (t Theme) builtin() bool {
	return t == ThemeDefault || t == ThemeDark || t == ""
}

// Renderer is the ECharts rendering backend.
type Renderer string

const (
	RendererCanvas Renderer = "canvas"
	RendererSVG    Renderer = "svg"
)

// Options configures the page writer.
type Options struct {
	// Width of the chart container in pixels.
	Width int `yaml:"width"`
	// Height of the chart container in pixels.
	Height int `yaml:"height"`
	// Theme applied by echarts.init.
	Theme Theme `yaml:"theme"`
	// Renderer is canvas or svg.
	Renderer Renderer `yaml:"renderer"`
	// AssetURL is the script URL of the ECharts bundle.
	AssetURL string `yaml:"assetURL"`
	// ThemeBaseURL is the directory theme scripts are loaded from as <theme>.js.
	ThemeBaseURL string `yaml:"themeBaseURL"`
	// PageTitle is the HTML title of the page.
	PageTitle string `yaml:"pageTitle"`
	// ContainerID is the id of the chart div.
	// If empty, a random id is generated per page.
	ContainerID string `yaml:"containerID"`
}

// DefaultOptions returns default page options.
func DefaultOptions() Options {
	return Options{
		Width:        1000,
		Height:       800,
		Theme:        ThemeDefault,
		Renderer:     RendererCanvas,
		AssetURL:     "https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js",
		ThemeBaseURL: "https://cdn.jsdelivr.net/npm/echarts@5.4.3/theme/",
		PageTitle:    "Charming Chart",
	}
}

// Validate checks the theme and renderer names.
func (o Options) Validate() error {
	if _, err := ParseTheme(string(o.Theme)); err != nil {
		return err
	}
	switch o.Renderer {
	case "", RendererCanvas, RendererSVG:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, o.Renderer)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", o.Width, o.Height)
	}
	return nil
}

// ResolveContainerID returns ContainerID, or a fresh random id when unset.
func (o Options) ResolveContainerID() string {
	if o.ContainerID != "" {
		return o.ContainerID
	}
	return "chart-" + uuid.NewString()
}

// ThemeURL returns the script URL of the theme, or "" when the ECharts
// bundle already provides it.
func (o Options) ThemeURL() string {
	if o.Theme.builtin() {
		return ""
	}
	return o.ThemeBaseURL + string(o.Theme) + ".js"
}

// LoadConfig reads options from a YAML file. Keys missing from the file keep
// their DefaultOptions value; unknown keys are an error.
func LoadConfig(path string) (Options, error) {
	opts := DefaultOptions()
	bs, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("could not read config %q: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(bs))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, fmt.Errorf("invalid configuration YAML in %q: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid configuration in %q: %w", path, err)
	}
	return opts, nil
}
