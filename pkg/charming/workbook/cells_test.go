package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"1e3", 1000.0},
		{"hello", "hello"},
		{"Nan", "Nan"},
		{"INF", "INF"},
		{"-Infinity", "-Infinity"},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseValue(tt.input), tt.input)
	}
}

func TestParseNumbers(t *testing.T) {
	got := parseNumbers([]string{"1", "x", "", "2.5", "NaN", "inf"})
	assert.Len(t, got, 6)
	assert.Equal(t, 1.0, *got[0])
	assert.Nil(t, got[1])
	assert.Nil(t, got[2])
	assert.Equal(t, 2.5, *got[3])
	assert.Nil(t, got[4])
	assert.Nil(t, got[5])
}
