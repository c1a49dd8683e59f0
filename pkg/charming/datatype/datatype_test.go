package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestDataFrameEncoding(t *testing.T) {
	tests := []struct {
		name string
		df   DataFrame
		want string
	}{
		{name: "ints", df: Values(120, 200, 150), want: `[120,200,150]`},
		{name: "floats", df: Values(1.5, 2.25), want: `[1.5,2.25]`},
		{name: "uint8", df: Values[uint8](1, 2), want: `[1,2]`},
		{name: "points", df: Points([2]int{1, 2}, [2]int{3, 4}), want: `[[1,2],[3,4]]`},
		{name: "mixed literals", df: DF("Mon", 3, []any{1, "x"}, nil), want: `["Mon",3,[1,"x"],null]`},
		{name: "named items", df: DF(Named("rose 1", 40), Named("rose 2", 38)), want: `[{"value":40,"name":"rose 1"},{"value":38,"name":"rose 2"}]`},
		{
			name: "styled item",
			df: DF(Item(NewDataPointItem(element.Number(5)).
				WithItemStyle(element.NewItemStyle().WithColor(element.SolidColor("#a90000"))))),
			want: `[{"value":5,"itemStyle":{"color":"#a90000"}}]`,
		},
		{name: "empty", df: DataFrame{}, want: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, marshal(t, tt.df))
		})
	}
}

func TestNewDataFrameRejectsUnsupported(t *testing.T) {
	_, err := NewDataFrame(1, struct{}{})
	assert.ErrorIs(t, err, element.ErrUnsupportedValue)
	assert.Panics(t, func() { DF(map[string]int{}) })
}

func TestParseDimensionType(t *testing.T) {
	for _, s := range []string{"number", "float", "int", "ordinal", "time", " Time "} {
		_, err := ParseDimensionType(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseDimensionType("decimal")
	assert.ErrorIs(t, err, element.ErrUnknownVariant)
}

func TestDimension(t *testing.T) {
	d := NewDimension("year").WithType(DimensionTypeOrdinal).WithDisplayName("Year")
	assert.JSONEq(t, `{"type":"ordinal","name":"year","displayName":"Year"}`, marshal(t, d))
}

func TestDatasetFlattensSourcesThenTransforms(t *testing.T) {
	ds := NewDataset().
		WithTransform(NewTransform("{type: 'sort', config: {dimension: 'score', order: 'desc'}}").WithID("sorted")).
		WithSource(NewSource(DF("name", "score"), DF("a", 1)).WithID("raw")).
		WithSource(NewJSONSource(json.RawMessage(`[{"name":"b","score":2}]`)).
			WithDimensions(Dimensions("name", "score")...))

	out := marshal(t, ds)
	arr := gjson.Parse(out).Array()
	require.Len(t, arr, 3)
	assert.Equal(t, "raw", arr[0].Get("id").String())
	assert.Equal(t, `[["name","score"],["a",1]]`, arr[0].Get("source").Raw)
	assert.Equal(t, `[{"name":"b","score":2}]`, arr[1].Get("source").Raw)
	assert.Equal(t, "score", arr[1].Get("dimensions.1.name").String())
	assert.Equal(t, "sorted", arr[2].Get("id").String())
	assert.True(t, arr[2].Get("transform").Exists())
}

func TestEmptyDataset(t *testing.T) {
	assert.Equal(t, `[]`, marshal(t, NewDataset()))
}

func TestNewSourceFromRows(t *testing.T) {
	src, err := NewSourceFromRows([][]any{{"product", "2015"}, {"Matcha Latte", 43.3}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":[["product","2015"],["Matcha Latte",43.3]]}`, marshal(t, src))

	_, err = NewSourceFromRows([][]any{{make(chan int)}})
	assert.Error(t, err)
}

func TestTransformChain(t *testing.T) {
	tr := NewTransform("{type: 'filter'}").WithFromDatasetID("raw").WithFromDatasetIndex(0).WithFromTransformResult(1)
	out := marshal(t, tr)
	assert.Equal(t, "raw", gjson.Get(out, "fromDatasetId").String())
	assert.Equal(t, int64(0), gjson.Get(out, "fromDatasetIndex").Int())
	assert.True(t, gjson.Get(out, "fromDatasetIndex").Exists())
	assert.Equal(t, int64(1), gjson.Get(out, "fromTransformResult").Int())
	assert.Equal(t, `{type: 'filter'}`, string(element.ExpandRaw([]byte(gjson.Get(out, "transform").Raw))))
}
