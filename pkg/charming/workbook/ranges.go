package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellRange is a rectangular range on one sheet, 1-based and inclusive.
type cellRange struct {
	Sheet  string
	C1, R1 int
	C2, R2 int
}

// parseRangeRef parses a chart formula such as 'My Sheet'!$A$2:$A$5 or
// Sheet1!$B$1. Formulas with several areas are not supported.
func parseRangeRef(ref string) (cellRange, error) {
	var cr cellRange
	ref = strings.TrimSpace(ref)
	ref = strings.TrimSuffix(strings.TrimPrefix(ref, "("), ")")
	if ref == "" || strings.Contains(ref, ",") {
		return cr, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}

	idx := strings.LastIndex(ref, "!")
	if idx <= 0 {
		return cr, fmt.Errorf("%w: %q has no sheet", ErrInvalidReference, ref)
	}
	sheet := ref[:idx]
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	cr.Sheet = sheet

	parts := strings.Split(strings.ReplaceAll(ref[idx+1:], "$", ""), ":")
	if len(parts) > 2 {
		return cr, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}

	var err error
	cr.C1, cr.R1, err = excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return cr, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	cr.C2, cr.R2 = cr.C1, cr.R1
	if len(parts) == 2 {
		cr.C2, cr.R2, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return cr, fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
	}
	if cr.C2 < cr.C1 {
		cr.C1, cr.C2 = cr.C2, cr.C1
	}
	if cr.R2 < cr.R1 {
		cr.R1, cr.R2 = cr.R2, cr.R1
	}
	return cr, nil
}

// cells returns the cell names of the range, row by row.
func (cr cellRange) cells() []string {
	names := make([]string, 0, (cr.C2-cr.C1+1)*(cr.R2-cr.R1+1))
	for r := cr.R1; r <= cr.R2; r++ {
		for c := cr.C1; c <= cr.C2; c++ {
			name, err := excelize.CoordinatesToCellName(c, r)
			if err == nil {
				names = append(names, name)
			}
		}
	}
	return names
}

// rangeValues reads the values of a range. raw selects the unformatted
// values, which is what numeric data needs.
func rangeValues(f *excelize.File, ref string, raw bool) ([]string, error) {
	cr, err := parseRangeRef(ref)
	if err != nil {
		return nil, err
	}
	cells := cr.cells()
	values := make([]string, 0, len(cells))
	for _, cell := range cells {
		v, err := f.GetCellValue(cr.Sheet, cell, excelize.Options{RawCellValue: raw})
		if err != nil {
			return nil, fmt.Errorf("read %s!%s: %w", cr.Sheet, cell, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// resolve returns the values of ref, or the cache when ref is empty or
// cannot be read.
func resolve(f *excelize.File, ref string, cache []string, raw bool) []string {
	if ref != "" && f != nil {
		values, err := rangeValues(f, ref, raw)
		if err == nil {
			return values
		}
		fLogger.WithError(err).WithField("ref", ref).Debug("falling back to cached chart values")
	}
	return cache
}
