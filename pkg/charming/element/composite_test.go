package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/charming-go/internal/json"
)

func TestCompositeValueEncoding(t *testing.T) {
	tests := []struct {
		name  string
		value CompositeValue
		want  string
	}{
		{name: "integer number", value: Number(10), want: `10`},
		{name: "fractional number", value: Number(0.25), want: `0.25`},
		{name: "string", value: String("center"), want: `"center"`},
		{name: "percent", value: Percent(50), want: `"50%"`},
		{name: "mixed array", value: Array{String("50%"), Number(60)}, want: `["50%",60]`},
		{name: "nested array", value: Array{Numbers(1, 2), Strings("a")}, want: `[[1,2],["a"]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    CompositeValue
		wantErr bool
	}{
		{name: "nil", input: nil, want: nil},
		{name: "int", input: 3, want: Number(3)},
		{name: "uint8", input: uint8(7), want: Number(7)},
		{name: "float32", input: float32(1.5), want: Number(1.5)},
		{name: "string", input: "auto", want: String("auto")},
		{name: "composite passthrough", input: Percent(20), want: String("20%")},
		{name: "string slice", input: []string{"a", "b"}, want: Array{String("a"), String("b")}},
		{name: "int slice", input: []int{1, 2}, want: Array{Number(1), Number(2)}},
		{name: "any slice", input: []any{"x", 2, []any{1.5}}, want: Array{String("x"), Number(2), Array{Number(1.5)}}},
		{name: "unsupported", input: struct{}{}, wantErr: true},
		{name: "unsupported nested", input: []any{map[string]int{}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustValueOfPanics(t *testing.T) {
	assert.Panics(t, func() { MustValueOf(make(chan int)) })
	assert.Equal(t, Number(4), MustValueOf(4))
}
