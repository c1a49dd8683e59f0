package workbook

import (
	"fmt"
	"strings"

	"github.com/stoewer/go-strcase"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/charming-go/pkg/charming"
	"github.com/ukaji3/charming-go/pkg/charming/component"
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
	"github.com/ukaji3/charming-go/pkg/charming/series"
)

// datasetSeriesTypes are the series ChartFromDataset can encode.
var datasetSeriesTypes = []string{"bar", "line", "scatter", "pie"}

// ParseSeriesType normalizes a series type name given in any case style,
// so "Bar", "bar" and "BAR" are the same.
func ParseSeriesType(s string) (string, error) {
	name := strcase.LowerCamelCase(strings.TrimSpace(s))
	for _, t := range datasetSeriesTypes {
		if strings.EqualFold(t, name) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeriesType, s)
}

// DatasetFromSheet returns the table-like region of a sheet as a dataset
// source. The first row of the region names the dimensions; a column whose
// cells are all numeric is a number dimension, any other is ordinal.
func DatasetFromSheet(f *excelize.File, sheet string, params TableParams) (*datatype.Source, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, NewImportError(sheet, "dataset", err)
	}
	b, ok := detectBounds(rows, params)
	if !ok {
		return nil, NewImportError(sheet, "dataset", ErrNoTable)
	}

	width := b.maxCol - b.minCol + 1
	numeric := make([]bool, width)
	seen := make([]bool, width)
	for i := range numeric {
		numeric[i] = true
	}

	var frames []datatype.DataFrame
	for r := b.minRow + 1; r <= b.maxRow; r++ {
		values := make([]any, width)
		empty := true
		for c := 0; c < width; c++ {
			v := parseValue(cellAt(rows, r, b.minCol+c))
			values[c] = v
			switch v.(type) {
			case nil:
				continue
			case int64, float64:
			default:
				numeric[c] = false
			}
			seen[c] = true
			empty = false
		}
		if empty {
			continue
		}
		df, err := datatype.NewDataFrame(values...)
		if err != nil {
			return nil, NewImportError(sheet, "dataset", err)
		}
		frames = append(frames, df)
	}

	dims := make([]*datatype.Dimension, width)
	for c := 0; c < width; c++ {
		name := cellAt(rows, b.minRow, b.minCol+c)
		if name == "" {
			name, _ = excelize.ColumnNumberToName(b.minCol + c + 1)
		}
		typ := datatype.DimensionTypeOrdinal
		if numeric[c] && seen[c] {
			typ = datatype.DimensionTypeNumber
		}
		dims[c] = datatype.NewDimension(name).WithType(typ)
	}

	return datatype.NewSource(frames...).WithID(sheet).WithDimensions(dims...), nil
}

func cellAt(rows [][]string, r, c int) string {
	if r < len(rows) && c < len(rows[r]) {
		return rows[r][c]
	}
	return ""
}

// ChartFromDataset builds a chart over a dataset source: the first dimension
// is the category and every other dimension becomes one series of the given
// type. A pie uses only the second dimension.
func ChartFromDataset(src *datatype.Source, seriesType string) (*charming.Chart, error) {
	typ, err := ParseSeriesType(seriesType)
	if err != nil {
		return nil, err
	}
	if len(src.Dimensions) < 2 {
		return nil, fmt.Errorf("dataset needs at least two dimensions, got %d", len(src.Dimensions))
	}
	names := make([]string, len(src.Dimensions))
	for i, d := range src.Dimensions {
		if d != nil && d.Name != nil {
			names[i] = *d.Name
		}
	}
	category := names[0]

	c := charming.NewChart().WithDataset(datatype.NewDataset().WithSource(src))
	if typ == "pie" {
		encode := element.NewDimensionEncode().WithItemName(category).WithValue(element.String(names[1]))
		return c.
			WithTooltip(element.NewTooltip().WithTrigger(element.TriggerItem)).
			WithLegend(component.NewLegend()).
			WithSeries(series.NewPie().WithName(names[1]).WithEncode(encode)), nil
	}

	trigger := element.TriggerAxis
	if typ == "scatter" {
		trigger = element.TriggerItem
	}
	c.WithTooltip(element.NewTooltip().WithTrigger(trigger)).
		WithLegend(component.NewLegend()).
		WithXAxis(component.NewAxis().WithType(element.AxisTypeCategory)).
		WithYAxis(component.NewAxis().WithType(element.AxisTypeValue))

	for _, name := range names[1:] {
		encode := element.NewDimensionEncode().WithX(element.String(category)).WithY(element.String(name))
		switch typ {
		case "bar":
			c.WithSeries(series.NewBar().WithName(name).WithEncode(encode))
		case "line":
			c.WithSeries(series.NewLine().WithName(name).WithEncode(encode))
		case "scatter":
			c.WithSeries(series.NewScatter().WithName(name).WithEncode(encode))
		}
	}
	return c, nil
}
