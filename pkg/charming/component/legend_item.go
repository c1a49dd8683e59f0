package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

// LegendItem is one entry of Legend.Data.
type LegendItem struct {
	Name string       `json:"name"`
	Icon element.Icon `json:"icon,omitempty"`
}

// NewLegendItem returns the entry for the series or data item named name.
func NewLegendItem(name string) *LegendItem {
	return &LegendItem{Name: name}
}

func (l *LegendItem) WithIcon(v element.Icon) *LegendItem {
	l.Icon = v
	return l
}

// WithNames replaces the legend entries with one plain entry per name.
func (l *Legend) WithNames(names ...string) *Legend {
	items := make([]*LegendItem, len(names))
	for i, n := range names {
		items[i] = NewLegendItem(n)
	}
	l.Data = items
	return l
}
