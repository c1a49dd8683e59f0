package series

// Series is implemented by every series type. SeriesType returns the value
// of its "type" key.
type Series interface {
	SeriesType() string
}

var (
	_ Series = (*Bar)(nil)
	_ Series = (*Bar3D)(nil)
	_ Series = (*Boxplot)(nil)
	_ Series = (*Candlestick)(nil)
	_ Series = (*Custom)(nil)
	_ Series = (*EffectScatter)(nil)
	_ Series = (*Funnel)(nil)
	_ Series = (*Gauge)(nil)
	_ Series = (*Graph)(nil)
	_ Series = (*Heatmap)(nil)
	_ Series = (*Line)(nil)
	_ Series = (*Lines)(nil)
	_ Series = (*Map)(nil)
	_ Series = (*Parallel)(nil)
	_ Series = (*PictorialBar)(nil)
	_ Series = (*Pie)(nil)
	_ Series = (*Radar)(nil)
	_ Series = (*Sankey)(nil)
	_ Series = (*Scatter)(nil)
	_ Series = (*Sunburst)(nil)
	_ Series = (*ThemeRiver)(nil)
	_ Series = (*Tree)(nil)
	_ Series = (*Treemap)(nil)
)
