package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeRef(t *testing.T) {
	tests := []struct {
		ref  string
		want cellRange
	}{
		{"Sheet1!$A$2:$A$5", cellRange{Sheet: "Sheet1", C1: 1, R1: 2, C2: 1, R2: 5}},
		{"Sheet1!$B$1", cellRange{Sheet: "Sheet1", C1: 2, R1: 1, C2: 2, R2: 1}},
		{"'My ''Q'' Sheet'!B2:D2", cellRange{Sheet: "My 'Q' Sheet", C1: 2, R1: 2, C2: 4, R2: 2}},
		{"(Data!$C$3:$A$1)", cellRange{Sheet: "Data", C1: 1, R1: 1, C2: 3, R2: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := parseRangeRef(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRangeRefErrors(t *testing.T) {
	for _, ref := range []string{"", "A1:B2", "Sheet1!$A$1,Sheet1!$B$1", "Sheet1!ZZZZZ", "Sheet1!A1:B2:C3"} {
		_, err := parseRangeRef(ref)
		assert.ErrorIs(t, err, ErrInvalidReference, ref)
	}
}

func TestCellRangeCells(t *testing.T) {
	cr := cellRange{Sheet: "S", C1: 1, R1: 1, C2: 2, R2: 2}
	assert.Equal(t, []string{"A1", "B1", "A2", "B2"}, cr.cells())
}

func TestResolveFallsBackToCache(t *testing.T) {
	cache := []string{"1", "2"}
	assert.Equal(t, cache, resolve(nil, "Sheet1!$A$1:$A$2", cache, true))
	assert.Nil(t, resolve(nil, "", nil, true))
}
