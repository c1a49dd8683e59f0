package workbook

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/charming-go/pkg/charming"
	"github.com/ukaji3/charming-go/pkg/charming/component"
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
	"github.com/ukaji3/charming-go/pkg/charming/series"
)

const bubbleSize = element.RawString("function (d) { return Math.sqrt(d[2]) * 4; }")

// builder turns one chart part into a chart. f resolves range formulas; when
// it is nil only the cached values of the part are used.
type builder struct {
	f   *excelize.File
	def *chartDef

	chart      *charming.Chart
	names      []string
	categories []string
	cartesian  bool
	horizontal bool
	valueX     bool
	itemOnly   bool
}

func buildChart(f *excelize.File, def *chartDef) (*charming.Chart, error) {
	if len(def.Groups) == 0 {
		return nil, fmt.Errorf("%w: no plot in chart part", ErrUnsupportedChart)
	}
	b := &builder{f: f, def: def, chart: charming.NewChart()}
	b.categories = b.resolveCategories()

	if def.Title != "" {
		b.chart.WithTitle(component.NewTitle().WithText(def.Title).WithLeft(element.String("center")))
	}
	for _, g := range def.Groups {
		if err := b.addGroup(g); err != nil {
			return nil, err
		}
	}
	b.addAxes()

	trigger := element.TriggerItem
	if b.cartesian && !b.valueX {
		trigger = element.TriggerAxis
	}
	b.chart.WithTooltip(element.NewTooltip().WithTrigger(trigger))
	if len(b.names) > 1 {
		b.chart.WithLegend(component.NewLegend().WithNames(b.names...).WithTop(element.String("bottom")))
	}
	return b.chart, nil
}

func (b *builder) addGroup(g plotGroup) error {
	switch g.Kind {
	case KindLine, KindLine3D, KindArea, KindArea3D:
		b.cartesian = true
		area := g.Kind == KindArea || g.Kind == KindArea3D
		for i, s := range g.Series {
			name := b.legendName(s, i)
			line := series.NewLine().WithName(name).WithData(numberFrame(b.values(s)))
			if area {
				line.WithAreaStyle(element.NewAreaStyle())
			}
			if g.stacked() {
				line.WithStack("total")
			}
			b.chart.WithSeries(line)
		}
	case KindBar, KindBar3D:
		b.cartesian = true
		b.horizontal = g.BarDir == "bar"
		for i, s := range g.Series {
			name := b.legendName(s, i)
			bar := series.NewBar().WithName(name).WithData(numberFrame(b.values(s)))
			if g.stacked() {
				bar.WithStack("total")
			}
			b.chart.WithSeries(bar)
		}
	case KindPie, KindPie3D, KindDoughnut, KindOfPie:
		// Excel draws only the first series of a pie.
		if len(g.Series) == 0 {
			return nil
		}
		s := g.Series[0]
		pie := series.NewPie().WithName(b.seriesName(s, 0))
		values := b.values(s)
		df := make(datatype.DataFrame, 0, len(values))
		for i, v := range values {
			if v == nil {
				continue
			}
			df = append(df, datatype.Named(b.category(i), *v))
			b.names = append(b.names, b.category(i))
		}
		pie.WithData(df)
		if g.Kind == KindDoughnut {
			pie.WithRadius(element.Strings("40%", "70%"))
		}
		b.chart.WithSeries(pie)
		return nil
	case KindScatter, KindBubble:
		b.cartesian = true
		b.valueX = true
		for i, s := range g.Series {
			name := b.legendName(s, i)
			sc := series.NewScatter().WithName(name).WithData(b.points(s, g.Kind == KindBubble))
			if g.Kind == KindBubble {
				sc.WithSymbolSize(bubbleSize)
			}
			b.chart.WithSeries(sc)
		}
	case KindRadar:
		b.addRadar(g)
	case KindStock:
		b.cartesian = true
		b.addStock(g)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedChart, g.Kind)
	}
	return nil
}

func (b *builder) addRadar(g plotGroup) {
	var maxValue float64
	items := make(datatype.DataFrame, 0, len(g.Series))
	for i, s := range g.Series {
		name := b.legendName(s, i)
		values := b.values(s)
		arr := make(element.Array, len(values))
		for j, v := range values {
			n := 0.0
			if v != nil {
				n = *v
			}
			maxValue = max(maxValue, n)
			arr[j] = element.Number(n)
		}
		items = append(items, datatype.Item(datatype.NewDataPointItem(arr).WithName(name)))
	}

	indicators := make([]*component.RadarIndicator, len(b.categories))
	for i, c := range b.categories {
		indicators[i] = component.NewRadarIndicator().WithName(c)
		if maxValue > 0 {
			indicators[i].WithMax(maxValue)
		}
	}
	b.chart.
		WithRadar(component.NewRadarCoordinate().WithIndicator(indicators...)).
		WithSeries(series.NewRadar().WithData(items))
}

// addStock maps open-high-low-close series to a candlestick. Excel stores
// them in that order; ECharts wants open, close, low, high.
func (b *builder) addStock(g plotGroup) {
	if len(g.Series) < 4 {
		for i, s := range g.Series {
			b.chart.WithSeries(series.NewLine().WithName(b.legendName(s, i)).WithData(numberFrame(b.values(s))))
		}
		return
	}
	open, high, low, closing := b.values(g.Series[0]), b.values(g.Series[1]), b.values(g.Series[2]), b.values(g.Series[3])
	n := min(len(open), len(high), len(low), len(closing))
	df := make(datatype.DataFrame, n)
	for i := 0; i < n; i++ {
		if open[i] == nil || high[i] == nil || low[i] == nil || closing[i] == nil {
			continue
		}
		df[i] = datatype.Value(element.Numbers(*open[i], *closing[i], *low[i], *high[i]))
	}
	b.chart.WithSeries(series.NewCandlestick().WithName("Stock").WithData(df))
}

func (b *builder) addAxes() {
	if !b.cartesian {
		return
	}
	var catAxis *component.Axis
	if b.valueX {
		catAxis = component.NewAxis().WithType(element.AxisTypeValue)
	} else {
		catAxis = component.NewAxis().WithType(element.AxisTypeCategory).WithData(b.categories...)
	}
	if b.def.CatAxisTitle != "" {
		catAxis.WithName(b.def.CatAxisTitle)
	}

	valAxis := component.NewAxis().WithType(element.AxisTypeValue)
	if b.def.ValAxisTitle != "" {
		valAxis.WithName(b.def.ValAxisTitle)
	}
	if r := b.def.ValAxisRange; len(r) == 2 {
		valAxis.WithMin(element.Number(r[0])).WithMax(element.Number(r[1]))
	}

	if b.horizontal {
		b.chart.WithXAxis(valAxis).WithYAxis(catAxis)
		return
	}
	b.chart.WithXAxis(catAxis).WithYAxis(valAxis)
}

// resolveCategories returns the categories of the first series that has
// them, or 1..n like Excel does for series without categories.
func (b *builder) resolveCategories() []string {
	var first *seriesRef
	for gi := range b.def.Groups {
		for si := range b.def.Groups[gi].Series {
			s := &b.def.Groups[gi].Series[si]
			if first == nil {
				first = s
			}
			if s.CatRange != "" || len(s.CatCache) > 0 {
				return resolve(b.f, s.CatRange, s.CatCache, false)
			}
		}
	}
	if first == nil {
		return nil
	}
	n := len(b.values(*first))
	cats := make([]string, n)
	for i := range cats {
		cats[i] = strconv.Itoa(i + 1)
	}
	return cats
}

func (b *builder) category(i int) string {
	if i < len(b.categories) {
		return b.categories[i]
	}
	return strconv.Itoa(i + 1)
}

// seriesName resolves the name of a series, defaulting to "Series<n>" like
// Excel.
func (b *builder) seriesName(s seriesRef, i int) string {
	name := s.Name
	if s.NameRange != "" {
		if values := resolve(b.f, s.NameRange, nil, false); len(values) > 0 && values[0] != "" {
			name = values[0]
		}
	}
	if name == "" {
		name = "Series" + strconv.Itoa(i+1)
	}
	return name
}

// legendName is seriesName for series that get a legend entry.
func (b *builder) legendName(s seriesRef, i int) string {
	name := b.seriesName(s, i)
	b.names = append(b.names, name)
	return name
}

func (b *builder) values(s seriesRef) []*float64 {
	return parseNumbers(resolve(b.f, s.ValRange, s.ValCache, true))
}

// points builds [x, y] (or [x, y, size]) items. Non-numeric x values are
// replaced by their 1-based position.
func (b *builder) points(s seriesRef, bubble bool) datatype.DataFrame {
	xs := parseNumbers(resolve(b.f, s.CatRange, s.CatCache, true))
	ys := b.values(s)
	var sizes []*float64
	if bubble {
		sizes = parseNumbers(resolve(b.f, s.SizeRange, s.SizeCache, true))
	}

	df := make(datatype.DataFrame, len(ys))
	for i, y := range ys {
		if y == nil {
			continue
		}
		x := float64(i + 1)
		if i < len(xs) && xs[i] != nil {
			x = *xs[i]
		}
		point := element.Numbers(x, *y)
		if bubble {
			size := 1.0
			if i < len(sizes) && sizes[i] != nil {
				size = *sizes[i]
			}
			point = append(point, element.Number(size))
		}
		df[i] = datatype.Value(point)
	}
	return df
}

func numberFrame(values []*float64) datatype.DataFrame {
	df := make(datatype.DataFrame, len(values))
	for i, v := range values {
		if v != nil {
			df[i] = datatype.Value(element.Number(*v))
		}
	}
	return df
}
