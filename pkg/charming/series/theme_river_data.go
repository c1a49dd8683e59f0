package series

import (
	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// ThemeRiverData is one sample of a theme river: the value of the theme Name
// at Date. It is encoded as the tuple [date, value, name].
type ThemeRiverData struct {
	Date  element.CompositeValue
	Value element.CompositeValue
	Name  element.CompositeValue
}

// NewThemeRiverData returns the sample [date, value, name].
func NewThemeRiverData(date string, value float64, name string) ThemeRiverData {
	return ThemeRiverData{
		Date:  element.String(date),
		Value: element.Number(value),
		Name:  element.String(name),
	}
}

func (d ThemeRiverData) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]element.CompositeValue{d.Date, d.Value, d.Name})
}
