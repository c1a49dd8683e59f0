package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TableParams holds parameters for table detection.
type TableParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableParams {
	return TableParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// tableBounds is a table region, 0-based and inclusive.
type tableBounds struct {
	minRow, maxRow int
	minCol, maxCol int
}

// DetectTables returns the table-like region of a sheet as a range such as
// "A1:D10", or nothing when the sheet is too sparse.
func DetectTables(f *excelize.File, sheetName string, params TableParams) ([]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	b, ok := detectBounds(rows, params)
	if !ok {
		return nil, nil
	}
	startCell, _ := excelize.CoordinatesToCellName(b.minCol+1, b.minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(b.maxCol+1, b.maxRow+1)
	return []string{fmt.Sprintf("%s:%s", startCell, endCell)}, nil
}

// detectBounds finds the bounding box of non-empty cells and checks it is
// dense enough to be a table.
func detectBounds(rows [][]string, params TableParams) (tableBounds, bool) {
	b := tableBounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.minRow < 0 || rowIdx < b.minRow {
				b.minRow = rowIdx
			}
			if rowIdx > b.maxRow {
				b.maxRow = rowIdx
			}
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}
	if b.minRow < 0 {
		return b, false
	}

	nonEmpty := countNonEmptyCells(rows, b)
	if nonEmpty < params.MinNonemptyCells {
		return b, false
	}
	total := (b.maxRow - b.minRow + 1) * (b.maxCol - b.minCol + 1)
	if float64(nonEmpty)/float64(total) < params.DensityMin {
		return b, false
	}
	return b, true
}

func countNonEmptyCells(rows [][]string, b tableBounds) int {
	count := 0
	for rowIdx := b.minRow; rowIdx <= b.maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := b.minCol; colIdx <= b.maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
