package element

import (
	"fmt"
	"strings"
)

// MarkLineDataType draws a mark line at a statistic of the series.
type MarkLineDataType string

const (
	MarkLineDataTypeMin     MarkLineDataType = "min"
	MarkLineDataTypeMax     MarkLineDataType = "max"
	MarkLineDataTypeAverage MarkLineDataType = "average"
	MarkLineDataTypeMedian  MarkLineDataType = "median"
)

// ParseMarkLineDataType accepts min, max, avg, average, med and median.
func ParseMarkLineDataType(s string) (MarkLineDataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return MarkLineDataTypeMin, nil
	case "max":
		return MarkLineDataTypeMax, nil
	case "avg", "average":
		return MarkLineDataTypeAverage, nil
	case "med", "median":
		return MarkLineDataTypeMedian, nil
	}
	return "", fmt.Errorf("%w: mark line data type %q", ErrUnknownVariant, s)
}

// MarkPointDataType pins a mark point at a statistic of the series.
type MarkPointDataType string

const (
	MarkPointDataTypeMin     MarkPointDataType = "min"
	MarkPointDataTypeMax     MarkPointDataType = "max"
	MarkPointDataTypeAverage MarkPointDataType = "average"
)

// ParseMarkPointDataType accepts min, max, avg and average.
func ParseMarkPointDataType(s string) (MarkPointDataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return MarkPointDataTypeMin, nil
	case "max":
		return MarkPointDataTypeMax, nil
	case "avg", "average":
		return MarkPointDataTypeAverage, nil
	}
	return "", fmt.Errorf("%w: mark point data type %q", ErrUnknownVariant, s)
}

// MarkLineVariant is an entry of MarkLine.Data: a single *MarkLineData line
// (encoded as an object) or a MarkLineSpan between two points (encoded as a
// two element array).
type MarkLineVariant interface {
	markLineVariant()
}

func (*MarkLineData) markLineVariant() {}

// MarkLineSpan is a line from a start point to an end point.
type MarkLineSpan [2]*MarkLineData

func (MarkLineSpan) markLineVariant() {}

// NewMarkLineSpan returns the line from start to end.
func NewMarkLineSpan(start, end *MarkLineData) MarkLineSpan {
	return MarkLineSpan{start, end}
}

// WithData replaces the marked lines.
func (m *MarkLine) WithData(v ...MarkLineVariant) *MarkLine {
	m.Data = v
	return m
}

// AddData appends one marked line.
func (m *MarkLine) AddData(v MarkLineVariant) *MarkLine {
	m.Data = append(m.Data, v)
	return m
}
