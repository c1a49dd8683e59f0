package element

import "github.com/ukaji3/charming-go/internal/json"

// BoundaryGap controls the blank space at both ends of an axis. Category axes
// take a bool; value axes take a [min, max] pair such as ["20%", "20%"].
type BoundaryGap struct {
	Enabled *bool
	Range   *[2]string
}

// BoundaryGapOf returns a boolean boundary gap.
func BoundaryGapOf(enabled bool) *BoundaryGap {
	return &BoundaryGap{Enabled: &enabled}
}

// BoundaryGapRange returns a [min, max] boundary gap.
func BoundaryGapRange(min, max string) *BoundaryGap {
	return &BoundaryGap{Range: &[2]string{min, max}}
}

func (b BoundaryGap) MarshalJSON() ([]byte, error) {
	if b.Range != nil {
		return json.Marshal(b.Range)
	}
	if b.Enabled != nil {
		return json.Marshal(*b.Enabled)
	}
	return []byte("null"), nil
}
