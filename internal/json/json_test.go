package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalKeepsMarkup(t *testing.T) {
	b, err := Marshal(map[string]string{"formatter": "{b}<br/>{c} & more"})
	require.NoError(t, err)
	assert.Equal(t, `{"formatter":"{b}<br/>{c} & more"}`, string(b))
}

func TestMarshalSortsMapKeys(t *testing.T) {
	b, err := Marshal(map[string]int{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, string(b))
}

func TestMarshalIndent(t *testing.T) {
	b, err := MarshalIndent(map[string][]int{"data": {1, 2}}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"data\": [\n    1,\n    2\n  ]\n}", string(b))
}

func TestOmitEmptyMarshaler(t *testing.T) {
	type padding []float64
	type doc struct {
		Name    *string `json:"name,omitempty"`
		Padding padding `json:"padding,omitempty"`
		Show    *bool   `json:"show,omitempty"`
	}
	f := false
	b, err := Marshal(doc{Show: &f})
	require.NoError(t, err)
	assert.Equal(t, `{"show":false}`, string(b))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(`{"series":[]}`)))
	assert.False(t, Valid([]byte(`{"series":`)))
}
