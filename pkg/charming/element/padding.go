package element

import "github.com/ukaji3/charming-go/internal/json"

// Padding is a CSS style padding: one value for all sides, two for
// vertical/horizontal or four for top, right, bottom and left.
type Padding []float64

// MarshalJSON encodes a single value as a bare number.
func (p Padding) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return json.Marshal(p[0])
	}
	return json.Marshal([]float64(p))
}
