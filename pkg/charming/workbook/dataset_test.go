package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/charming-go/internal/json"
)

func coffeeFile(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	rows := [][]any{
		{"product", "2015", "2016"},
		{"Matcha Latte", 43.3, 85.8},
		{"Milk Tea", 83.1, 73.4},
		{"Cheese Cocoa", 86.4, nil},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(2, i+3)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	return f
}

func TestDetectTables(t *testing.T) {
	f := coffeeFile(t)
	ranges, err := DetectTables(f, "Sheet1", DefaultTableParams())
	require.NoError(t, err)
	assert.Equal(t, []string{"B3:D6"}, ranges)

	_, err = f.NewSheet("Empty")
	require.NoError(t, err)
	ranges, err = DetectTables(f, "Empty", DefaultTableParams())
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestDetectBoundsDensity(t *testing.T) {
	rows := [][]string{
		{"x"},
		{},
		{"", "", "", "", "", "", "", "", "", "y"},
	}
	_, ok := detectBounds(rows, TableParams{DensityMin: 0.5, MinNonemptyCells: 1})
	assert.False(t, ok)

	b, ok := detectBounds(rows, TableParams{DensityMin: 0.01, MinNonemptyCells: 2})
	require.True(t, ok)
	assert.Equal(t, tableBounds{minRow: 0, maxRow: 2, minCol: 0, maxCol: 9}, b)
}

func TestDatasetFromSheet(t *testing.T) {
	src, err := DatasetFromSheet(coffeeFile(t), "Sheet1", DefaultTableParams())
	require.NoError(t, err)

	doc, err := json.Marshal(src)
	require.NoError(t, err)
	out := string(doc)

	assert.Equal(t, "Sheet1", gjson.Get(out, "id").String())
	assert.Equal(t, `["product","2015","2016"]`, gjson.Get(out, "dimensions.#.name").Raw)
	assert.Equal(t, `["ordinal","number","number"]`, gjson.Get(out, "dimensions.#.type").Raw)
	assert.Equal(t, `["Matcha Latte",43.3,85.8]`, gjson.Get(out, "source.0").Raw)
	assert.Equal(t, `["Cheese Cocoa",86.4,null]`, gjson.Get(out, "source.2").Raw)
}

func TestDatasetFromSheetNonFiniteText(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"member", "score"},
		{"Ann", 3},
		{"Nan", 5},
		{"INF", 4},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	src, err := DatasetFromSheet(f, "Sheet1", DefaultTableParams())
	require.NoError(t, err)
	chart, err := ChartFromDataset(src, "bar")
	require.NoError(t, err)

	doc, err := chart.JSON()
	require.NoError(t, err)
	out := string(doc)
	assert.Equal(t, `["ordinal","number"]`, gjson.Get(out, "dataset.0.dimensions.#.type").Raw)
	assert.Equal(t, `["Nan",5]`, gjson.Get(out, "dataset.0.source.1").Raw)
	assert.Equal(t, `["INF",4]`, gjson.Get(out, "dataset.0.source.2").Raw)
}

func TestDatasetFromSheetNoTable(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := DatasetFromSheet(f, "Sheet1", DefaultTableParams())
	assert.ErrorIs(t, err, ErrNoTable)

	_, err = DatasetFromSheet(f, "Missing", DefaultTableParams())
	assert.Error(t, err)
}

func TestChartFromDataset(t *testing.T) {
	src, err := DatasetFromSheet(coffeeFile(t), "Sheet1", DefaultTableParams())
	require.NoError(t, err)

	tests := []struct {
		seriesType string
		check      func(t *testing.T, out string)
	}{
		{"Bar", func(t *testing.T, out string) {
			assert.Equal(t, int64(2), gjson.Get(out, "series.#").Int())
			assert.Equal(t, "bar", gjson.Get(out, "series.1.type").String())
			assert.Equal(t, `{"x":"product","y":"2016"}`, gjson.Get(out, "series.1.encode").Raw)
			assert.Equal(t, "category", gjson.Get(out, "xAxis.0.type").String())
			assert.Equal(t, "axis", gjson.Get(out, "tooltip.trigger").String())
		}},
		{"line", func(t *testing.T, out string) {
			assert.Equal(t, "2015", gjson.Get(out, "series.0.name").String())
		}},
		{"scatter", func(t *testing.T, out string) {
			assert.Equal(t, "item", gjson.Get(out, "tooltip.trigger").String())
		}},
		{"PIE", func(t *testing.T, out string) {
			assert.Equal(t, int64(1), gjson.Get(out, "series.#").Int())
			assert.Equal(t, `{"value":"2015","itemName":"product"}`, gjson.Get(out, "series.0.encode").Raw)
			assert.False(t, gjson.Get(out, "xAxis").Exists())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.seriesType, func(t *testing.T) {
			chart, err := ChartFromDataset(src, tt.seriesType)
			require.NoError(t, err)
			doc, err := chart.JSON()
			require.NoError(t, err)
			out := string(doc)
			assert.Equal(t, "Matcha Latte", gjson.Get(out, "dataset.0.source.0.0").String())
			tt.check(t, out)
		})
	}

	_, err = ChartFromDataset(src, "heatmap")
	assert.ErrorIs(t, err, ErrUnknownSeriesType)
}
