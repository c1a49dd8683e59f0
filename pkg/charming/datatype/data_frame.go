// Package datatype holds series data and datasets.
package datatype

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// DataPoint is one entry of a series' data: either a bare value or an item
// object carrying a name and per item styles.
type DataPoint struct {
	Value element.CompositeValue
	Item  *DataPointItem
}

// DataPointItem is the object form of a data point.
type DataPointItem struct {
	Value     element.CompositeValue `json:"value,omitempty"`
	Name      *string                `json:"name,omitempty"`
	ItemStyle *element.ItemStyle     `json:"itemStyle,omitempty"`
	Label     *element.Label         `json:"label,omitempty"`
	Emphasis  *element.Emphasis      `json:"emphasis,omitempty"`
	Selected  *bool                  `json:"selected,omitempty"`
}

// NewDataPointItem returns an item with the given value.
func NewDataPointItem(value element.CompositeValue) *DataPointItem {
	return &DataPointItem{Value: value}
}

func (d *DataPointItem) WithName(v string) *DataPointItem {
	d.Name = &v
	return d
}

func (d *DataPointItem) WithItemStyle(v *element.ItemStyle) *DataPointItem {
	d.ItemStyle = v
	return d
}

func (d *DataPointItem) WithLabel(v *element.Label) *DataPointItem {
	d.Label = v
	return d
}

func (d *DataPointItem) WithEmphasis(v *element.Emphasis) *DataPointItem {
	d.Emphasis = v
	return d
}

func (d *DataPointItem) WithSelected(v bool) *DataPointItem {
	d.Selected = &v
	return d
}

// Value returns a bare value data point.
func Value(v element.CompositeValue) DataPoint {
	return DataPoint{Value: v}
}

// Item returns an object data point.
func Item(item *DataPointItem) DataPoint {
	return DataPoint{Item: item}
}

// Named returns the common {value, name} item, as used by pie and funnel.
func Named(name string, value float64) DataPoint {
	return Item(NewDataPointItem(element.Number(value)).WithName(name))
}

// MarshalJSON encodes the item object when set and the bare value otherwise.
// A point with neither encodes as null, which ECharts draws as a gap.
func (d DataPoint) MarshalJSON() ([]byte, error) {
	if d.Item != nil {
		return json.Marshal(d.Item)
	}
	if d.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value)
}

// DataFrame is the data of a series, or one row of a two dimensional series.
type DataFrame []DataPoint

// Values builds a data frame from numbers of any integer or float type.
func Values[T constraints.Integer | constraints.Float](vs ...T) DataFrame {
	df := make(DataFrame, len(vs))
	for i, v := range vs {
		df[i] = Value(element.Number(v))
	}
	return df
}

// Points builds a data frame of [x, y] pairs, as used by scatter series.
func Points[T constraints.Integer | constraints.Float](pts ...[2]T) DataFrame {
	df := make(DataFrame, len(pts))
	for i, p := range pts {
		df[i] = Value(element.Numbers(float64(p[0]), float64(p[1])))
	}
	return df
}

// NewDataFrame builds a data frame from mixed Go values. DataPoint values are
// kept, nil becomes a gap and everything else goes through element.ValueOf.
func NewDataFrame(values ...any) (DataFrame, error) {
	df := make(DataFrame, 0, len(values))
	for i, v := range values {
		switch t := v.(type) {
		case DataPoint:
			df = append(df, t)
		case *DataPointItem:
			df = append(df, Item(t))
		default:
			cv, err := element.ValueOf(v)
			if err != nil {
				return nil, fmt.Errorf("data point %d: %w", i, err)
			}
			df = append(df, Value(cv))
		}
	}
	return df, nil
}

// DF is NewDataFrame for literal data; it panics on unsupported values.
func DF(values ...any) DataFrame {
	df, err := NewDataFrame(values...)
	if err != nil {
		panic(err)
	}
	return df
}
