// Package workbook imports charts and tables from xlsx workbooks. Native
// Excel charts become charming charts with their ranges resolved through
// excelize, and table-like regions become datasets.
package workbook

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/stoewer/go-strcase"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/charming-go/pkg/charming"
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// debugEnabled reports whether fLogger would emit debug entries. Loggers of
// other types are assumed to filter on their own.
func debugEnabled() bool {
	switch l := fLogger.(type) {
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}

// ImportedChart is a native chart converted to a charming chart.
type ImportedChart struct {
	// Sheet is the sheet the chart is drawn on.
	Sheet string
	// Name is the drawing object name, e.g. "Chart 1".
	Name string
	// Kind is the kind of the first plot of the chart.
	Kind ChartKind
	// Width is the frame width in pixels.
	Width int
	// Height is the frame height in pixels.
	Height int
	// Chart is the converted chart.
	Chart *charming.Chart
}

// Slug returns a file name friendly identifier such as "sales-chart-1".
func (c *ImportedChart) Slug() string {
	return strcase.KebabCase(c.Sheet + " " + c.Name)
}

// ImportCharts converts the native charts of a workbook, sheet by sheet in
// workbook order. A chart that cannot be converted is skipped; its
// ImportError is joined into the returned error next to the charts that
// did convert.
func ImportCharts(path string, opts Options) ([]*ImportedChart, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer r.Close()

	sheetCharts := getSheetChartMap(&r.Reader)

	var (
		result []*ImportedChart
		errs   []error
	)
	for _, sheet := range f.GetSheetList() {
		if !opts.ShouldImportSheet(sheet) {
			continue
		}
		for _, ci := range sheetCharts[sheet] {
			imported, err := importChart(f, &r.Reader, sheet, ci, opts)
			if err != nil {
				fLogger.WithError(err).WithField("sheet", sheet).Warn("skipping chart")
				errs = append(errs, NewImportError(sheet, "chart "+ci.name, err))
				continue
			}
			result = append(result, imported)
		}
	}

	fLogger.WithField("charts", len(result)).Debugf("imported %s", path)
	return result, errors.Join(errs...)
}

func importChart(f *excelize.File, r *zip.Reader, sheet string, ci chartInfo, opts Options) (*ImportedChart, error) {
	data, err := readZipFile(r, ci.chartPath)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("chart part %s not found", ci.chartPath)
	}

	def := parseChartXML(data)
	if def == nil {
		return nil, fmt.Errorf("%w: %s has no chart element", ErrUnsupportedChart, ci.chartPath)
	}
	def.Name = ci.name
	def.Left, def.Top = ci.left, ci.top
	def.Width, def.Height = opts.ChartSize(ci.width, ci.height)
	if debugEnabled() {
		fLogger.Debugf("chart def: %s", spew.Sdump(def))
	}

	chart, err := buildChart(f, def)
	if err != nil {
		return nil, err
	}

	imported := &ImportedChart{
		Sheet:  sheet,
		Name:   ci.name,
		Width:  def.Width,
		Height: def.Height,
		Chart:  chart,
	}
	if len(def.Groups) > 0 {
		imported.Kind = def.Groups[0].Kind
	}
	return imported, nil
}
