package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ukaji3/charming-go/internal/json"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestEmptyElementsEncodeAsEmptyObjects(t *testing.T) {
	for _, v := range []any{
		NewLabel(), NewTooltip(), NewItemStyle(), NewLineStyle(), NewAxisPointer(),
		NewMarkLine(), NewMarkArea(), NewMarkPoint(), NewEmphasis(), NewTextStyle(),
	} {
		assert.Equal(t, `{}`, marshal(t, v))
	}
}

func TestExplicitZeroValuesAreKept(t *testing.T) {
	label := NewLabel().WithShow(false).WithDistance(0).WithFontWeight("")
	assert.JSONEq(t, `{"show":false,"distance":0,"fontWeight":""}`, marshal(t, label))
}

func TestRenamedKeys(t *testing.T) {
	out := marshal(t, NewLineStyle().WithType(LineStyleTypeDashed).WithWidth(2))
	assert.Equal(t, "dashed", gjson.Get(out, "type").String())

	out = marshal(t, NewMarkLine().WithZLevel(3))
	assert.Equal(t, int64(3), gjson.Get(out, "zlevel").Int())

	out = marshal(t, NewTooltip().WithExtraCSSText("box-shadow: none"))
	assert.Equal(t, "box-shadow: none", gjson.Get(out, "extraCssText").String())
}

func TestEnumValues(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{name: "label position camel case", v: NewLabel().WithPosition(LabelPositionInsideTop), want: `{"position":"insideTop"}`},
		{name: "focus self", v: NewEmphasis().WithFocus(EmphasisFocusSelf), want: `{"focus":"self"}`},
		{name: "trigger on both", v: NewTooltip().WithTriggerOn(TriggerOnMousemoveAndClick), want: `{"triggerOn":"mousemove|click"}`},
		{name: "axis pointer cross", v: NewAxisPointer().WithType(AxisPointerTypeCross), want: `{"type":"cross"}`},
		{name: "area origin", v: NewAreaStyle().WithOrigin(OriginPositionStart), want: `{"origin":"start"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, marshal(t, tt.v))
		})
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "solid", color: SolidColor("#5470c6"), want: `"#5470c6"`},
		{name: "rgb", color: RGB(1, 2, 3), want: `"rgb(1,2,3)"`},
		{name: "rgba", color: RGBA(0, 0, 0, 0.3), want: `"rgba(0,0,0,0.3)"`},
		{
			name:  "linear",
			color: NewLinearGradient(0, 0, 0, 1, NewColorStop(0, "#fff"), NewColorStop(1, "#000")),
			want:  `{"type":"linear","x":0,"y":0,"x2":0,"y2":1,"colorStops":[{"offset":0,"color":"#fff"},{"offset":1,"color":"#000"}]}`,
		},
		{
			name:  "radial global",
			color: NewRadialGradient(0.5, 0.5, 0.5, NewColorStop(0, "red")).WithGlobal(true),
			want:  `{"type":"radial","x":0.5,"y":0.5,"r":0.5,"colorStops":[{"offset":0,"color":"red"}],"global":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, marshal(t, tt.color))
			assert.JSONEq(t, `{"color":`+tt.want+`}`, marshal(t, NewItemStyle().WithColor(tt.color)))
		})
	}
}

func TestSort(t *testing.T) {
	type holder struct {
		Sort Sort `json:"sort,omitempty"`
	}
	assert.Equal(t, `{"sort":"ascending"}`, marshal(t, holder{SortAscending}))
	assert.Equal(t, `{"sort":"descending"}`, marshal(t, holder{SortDescending}))
	assert.Equal(t, `{"sort":null}`, marshal(t, holder{SortNone}))
	assert.Equal(t, `{}`, marshal(t, holder{}))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, `{"symbol":"roundRect"}`, marshal(t, NewMarkPoint().WithSymbol(SymbolRoundRect)))
	assert.Equal(t, `{"symbol":"none"}`, marshal(t, NewMarkPoint().WithSymbol(SymbolNone)))
	assert.Equal(t, `{"symbol":"image://a.png"}`, marshal(t, NewMarkPoint().WithSymbol(SymbolImage("a.png"))))
	assert.Equal(t, `{"symbol":"path://M0,0L1,1"}`, marshal(t, NewMarkPoint().WithSymbol(SymbolPath("M0,0L1,1"))))
	assert.Equal(t, `{"symbolSize":12}`, marshal(t, NewMarkPoint().WithSymbolSize(Number(12))))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, `{"padding":5}`, marshal(t, NewTooltip().WithPadding(5)))
	assert.Equal(t, `{"padding":[5,10]}`, marshal(t, NewTooltip().WithPadding(5, 10)))
	assert.Equal(t, `{"padding":[1,2,3,4]}`, marshal(t, NewTooltip().WithPadding(1, 2, 3, 4)))
	assert.Equal(t, `{}`, marshal(t, NewTooltip().WithPadding()))
}

func TestBoundaryGap(t *testing.T) {
	type holder struct {
		BoundaryGap *BoundaryGap `json:"boundaryGap,omitempty"`
	}
	assert.Equal(t, `{"boundaryGap":false}`, marshal(t, holder{BoundaryGapOf(false)}))
	assert.Equal(t, `{"boundaryGap":["0","20%"]}`, marshal(t, holder{BoundaryGapRange("0", "20%")}))
	assert.Equal(t, `{}`, marshal(t, holder{}))
}

func TestColorSegments(t *testing.T) {
	ls := NewLineStyle().WithWidth(30).WithColor(ColorSegments{
		{Offset: 0.3, Color: "#67e0e3"},
		{Offset: 1, Color: "#fd666d"},
	})
	assert.JSONEq(t, `{"color":[[0.3,"#67e0e3"],[1,"#fd666d"]],"width":30}`, marshal(t, ls))
}
