package workbook

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrUnsupportedChart indicates a native chart kind with no ECharts series.
var ErrUnsupportedChart = errors.New("unsupported chart kind")

// ErrInvalidReference indicates a malformed range reference.
var ErrInvalidReference = errors.New("invalid range reference")

// ErrNoTable indicates a sheet without a table-like region.
var ErrNoTable = errors.New("no table found")

// ErrUnknownSeriesType indicates a series type the dataset chart cannot build.
var ErrUnknownSeriesType = errors.New("unknown series type")

// ImportError represents an error while importing one part of a workbook.
type ImportError struct {
	Sheet     string
	Component string // "drawing", "chart <name>", "dataset"
	Err       error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import error in sheet %q (%s): %v", e.Sheet, e.Component, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError.
func NewImportError(sheet, component string, err error) *ImportError {
	return &ImportError{
		Sheet:     sheet,
		Component: component,
		Err:       err,
	}
}
