package workbook

import (
	"math"
	"strconv"
)

// parseValue converts a cell string to int64, float64 or, failing both,
// leaves it a string. Empty cells become nil.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, ok := parseFinite(s); ok {
		return f
	}
	return s
}

// parseNumbers converts chart values to numbers; cells that are not numeric
// become nil, which ECharts draws as gaps.
func parseNumbers(values []string) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if f, ok := parseFinite(v); ok {
			out[i] = &f
		}
	}
	return out
}

// parseFinite parses a float, rejecting "NaN" and "Inf" spellings that JSON
// cannot carry.
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
