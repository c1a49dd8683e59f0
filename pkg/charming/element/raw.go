package element

import (
	"regexp"

	"github.com/ukaji3/charming-go/internal/json"
)

const rawMarker = "@@raw@@"

var rawPattern = regexp.MustCompile(`"@@raw@@((?:[^"\\]|\\.)*?)@@raw@@"`)

// RawString is a JavaScript expression, typically a function, that must reach
// the chart runtime as code rather than as a string literal.
//
// In strict JSON output it is carried as a marked string; ExpandRaw turns the
// marked strings back into bare code for the JS renderings of a document.
type RawString string

func (RawString) formatter()  {}
func (RawString) symbolSize() {}

// MarshalJSON encodes the expression as a marked JSON string.
func (r RawString) MarshalJSON() ([]byte, error) {
	return json.Marshal(rawMarker + string(r) + rawMarker)
}

// ExpandRaw replaces every marked RawString in an encoded document with the
// bare expression it carries. The result is a JavaScript object literal, not
// JSON.
func ExpandRaw(doc []byte) []byte {
	return rawPattern.ReplaceAllFunc(doc, func(m []byte) []byte {
		inner := rawPattern.FindSubmatch(m)[1]
		var code string
		if err := json.Unmarshal(append(append([]byte{'"'}, inner...), '"'), &code); err != nil {
			return m
		}
		return []byte(code)
	})
}

// HasRaw reports whether the encoded document carries any RawString.
func HasRaw(doc []byte) bool {
	return rawPattern.Match(doc)
}
