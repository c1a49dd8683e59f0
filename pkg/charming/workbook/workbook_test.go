package workbook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/charming-go/internal/json"
)

// fruitWorkbook saves a workbook with a line and a pie chart on Sheet1 and a
// column chart on Other.
func fruitWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{nil, "Apple", "Orange", "Pear"},
		{"Small", 2, 3, 3},
		{"Normal", 5, 2, 4},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.AddChart("Sheet1", "F1", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$A$2", Categories: "Sheet1!$B$1:$D$1", Values: "Sheet1!$B$2:$D$2"},
			{Name: "Sheet1!$A$3", Categories: "Sheet1!$B$1:$D$1", Values: "Sheet1!$B$3:$D$3"},
		},
		Title: []excelize.RichTextRun{{Text: "Fruit Line Chart"}},
	}))
	require.NoError(t, f.AddChart("Sheet1", "F20", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$A$2", Categories: "Sheet1!$B$1:$D$1", Values: "Sheet1!$B$2:$D$2"},
		},
	}))

	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Other", "A1", &[]any{"Month", "Visits"}))
	require.NoError(t, f.SetSheetRow("Other", "A2", &[]any{"Jan", 120}))
	require.NoError(t, f.SetSheetRow("Other", "A3", &[]any{"Feb", 200}))
	require.NoError(t, f.AddChart("Other", "D1", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: "Other!$B$1", Categories: "Other!$A$2:$A$3", Values: "Other!$B$2:$B$3"},
		},
	}))

	path := filepath.Join(t.TempDir(), "fruit.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func chartJSON(t *testing.T, c *ImportedChart) string {
	t.Helper()
	doc, err := c.Chart.JSON()
	require.NoError(t, err)
	return string(doc)
}

func TestImportCharts(t *testing.T) {
	charts, err := ImportCharts(fruitWorkbook(t), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, charts, 3)

	line := charts[0]
	assert.Equal(t, "Sheet1", line.Sheet)
	assert.Equal(t, KindLine, line.Kind)
	assert.NotEmpty(t, line.Name)
	assert.Positive(t, line.Width)
	assert.Positive(t, line.Height)

	out := chartJSON(t, line)
	assert.Equal(t, "Fruit Line Chart", gjson.Get(out, "title.0.text").String())
	assert.Equal(t, `["Apple","Orange","Pear"]`, gjson.Get(out, "xAxis.0.data").Raw)
	assert.Equal(t, "Small", gjson.Get(out, "series.0.name").String())
	assert.Equal(t, `[2,3,3]`, gjson.Get(out, "series.0.data").Raw)
	assert.Equal(t, "Normal", gjson.Get(out, "series.1.name").String())
	assert.Equal(t, `[5,2,4]`, gjson.Get(out, "series.1.data").Raw)
	assert.Equal(t, int64(2), gjson.Get(out, "legend.data.#").Int())

	pie := charts[1]
	assert.Equal(t, KindPie, pie.Kind)
	out = chartJSON(t, pie)
	assert.Equal(t, "pie", gjson.Get(out, "series.0.type").String())
	assert.Equal(t, "Apple", gjson.Get(out, "series.0.data.0.name").String())
	assert.Equal(t, int64(2), gjson.Get(out, "series.0.data.0.value").Int())

	col := charts[2]
	assert.Equal(t, "Other", col.Sheet)
	assert.Equal(t, KindBar, col.Kind)
	out = chartJSON(t, col)
	assert.Equal(t, "category", gjson.Get(out, "xAxis.0.type").String())
	assert.Equal(t, `["Jan","Feb"]`, gjson.Get(out, "xAxis.0.data").Raw)
	assert.Equal(t, "Visits", gjson.Get(out, "series.0.name").String())
	assert.Equal(t, `[120,200]`, gjson.Get(out, "series.0.data").Raw)
	assert.False(t, gjson.Get(out, "legend").Exists())
	assert.True(t, json.Valid([]byte(out)))
}

func TestImportChartsSheetFilter(t *testing.T) {
	opts := DefaultOptions()
	opts.Sheets = []string{"Other"}

	charts, err := ImportCharts(fruitWorkbook(t), opts)
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "Other", charts[0].Sheet)
}

func TestImportChartsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ImportCharts(filepath.Join(dir, "missing.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)

	bad := filepath.Join(dir, "bad.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a workbook"), 0o644))
	_, err = ImportCharts(bad, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestImportChartsWithoutCharts(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	require.NoError(t, f.SaveAs(path))

	charts, err := ImportCharts(path, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, charts)
}

func TestImportChartsDebugDump(t *testing.T) {
	path := fruitWorkbook(t)
	logger, hook := logtest.NewNullLogger()
	prev := fLogger
	SetLogger(logger)
	t.Cleanup(func() { SetLogger(prev) })

	countDumps := func() int {
		n := 0
		for _, e := range hook.AllEntries() {
			if strings.HasPrefix(e.Message, "chart def:") {
				n++
			}
		}
		return n
	}

	logger.SetLevel(logrus.InfoLevel)
	assert.False(t, debugEnabled())
	_, err := ImportCharts(path, DefaultOptions())
	require.NoError(t, err)
	assert.Zero(t, countDumps())

	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logrus.NewEntry(logger))
	assert.True(t, debugEnabled())
	_, err = ImportCharts(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, countDumps())
}

func TestImportedChartSlug(t *testing.T) {
	c := &ImportedChart{Sheet: "Sales", Name: "Revenue Chart"}
	assert.Equal(t, "sales-revenue-chart", c.Slug())
}

func TestImportError(t *testing.T) {
	err := NewImportError("Sheet1", "chart Chart 1", ErrUnsupportedChart)
	assert.Equal(t, `import error in sheet "Sheet1" (chart Chart 1): unsupported chart kind`, err.Error())

	var ie *ImportError
	require.True(t, errors.As(error(err), &ie))
	assert.ErrorIs(t, err, ErrUnsupportedChart)
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.ShouldImportSheet("anything"))

	opts.Sheets = []string{"A"}
	assert.True(t, opts.ShouldImportSheet("A"))
	assert.False(t, opts.ShouldImportSheet("B"))

	w, h := opts.ChartSize(0, 300)
	assert.Equal(t, 480, w)
	assert.Equal(t, 300, h)
}
