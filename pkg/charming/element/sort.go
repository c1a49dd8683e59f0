package element

import "github.com/ukaji3/charming-go/internal/json"

// Sort is the ordering applied to funnel and sunburst items.
type Sort string

const (
	SortAscending  Sort = "ascending"
	SortDescending Sort = "descending"
	// SortNone keeps the data order. It is encoded as null, which ECharts
	// reads as "no sorting" (leaving the key out means the default order).
	SortNone Sort = "none"
)

// MarshalJSON encodes SortNone as null and the other orders as strings.
func (s Sort) MarshalJSON() ([]byte, error) {
	if s == SortNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}
