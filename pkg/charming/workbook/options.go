package workbook

import "slices"

// Options configures chart import.
type Options struct {
	// Sheets limits the import to the named sheets.
	// If empty, every sheet is imported.
	Sheets []string
	// DefaultWidth is used when the drawing does not record the chart width.
	DefaultWidth int
	// DefaultHeight is used when the drawing does not record the chart height.
	DefaultHeight int
	// Table configures table detection for DatasetFromSheet.
	Table TableParams
}

// DefaultOptions returns default import options. The default size is the
// 5in x 3in Excel uses for new charts.
func DefaultOptions() Options {
	return Options{
		DefaultWidth:  480,
		DefaultHeight: 288,
		Table:         DefaultTableParams(),
	}
}

// ShouldImportSheet returns whether charts of the sheet are imported.
func (o Options) ShouldImportSheet(name string) bool {
	return len(o.Sheets) == 0 || slices.Contains(o.Sheets, name)
}

// ChartSize returns the given size, falling back to the defaults for
// unknown dimensions.
func (o Options) ChartSize(width, height int) (int, int) {
	if width <= 0 {
		width = o.DefaultWidth
	}
	if height <= 0 {
		height = o.DefaultHeight
	}
	return width, height
}
