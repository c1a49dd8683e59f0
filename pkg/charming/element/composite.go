// Package element holds the fragments shared by chart components and series:
// styles, labels, marks, tooltips and the small sum types used by their fields.
//
// Every optional field is a pointer, slice or interface tagged omitempty, so a
// field that was never set never reaches the encoded document while an
// explicitly set zero value does.
package element

import (
	"fmt"
	"strconv"
)

// CompositeValue is a field value that ECharts accepts as a number, a string
// or an array of either, such as positions ("10%", 20) or axis indices.
type CompositeValue interface {
	compositeValue()
}

// Number is a numeric composite value.
type Number float64

// String is a textual composite value such as "center" or "50%".
type String string

// Array is a list of composite values, encoded as a JSON array.
type Array []CompositeValue

func (Number) compositeValue() {}
func (String) compositeValue() {}
func (Array) compositeValue()  {}

// Percent returns the string composite value "v%".
func Percent(v float64) String {
	return String(strconv.FormatFloat(v, 'f', -1, 64) + "%")
}

// Numbers builds an Array of numbers.
func Numbers(vs ...float64) Array {
	arr := make(Array, len(vs))
	for i, v := range vs {
		arr[i] = Number(v)
	}
	return arr
}

// Strings builds an Array of strings.
func Strings(vs ...string) Array {
	arr := make(Array, len(vs))
	for i, v := range vs {
		arr[i] = String(v)
	}
	return arr
}

// ValueOf converts a Go value into a CompositeValue. It accepts the composite
// types themselves, every integer and float kind, strings and slices of those.
func ValueOf(v any) (CompositeValue, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case CompositeValue:
		return t, nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(t), nil
	case int:
		return Number(t), nil
	case int8:
		return Number(t), nil
	case int16:
		return Number(t), nil
	case int32:
		return Number(t), nil
	case int64:
		return Number(t), nil
	case uint:
		return Number(t), nil
	case uint8:
		return Number(t), nil
	case uint16:
		return Number(t), nil
	case uint32:
		return Number(t), nil
	case uint64:
		return Number(t), nil
	case string:
		return String(t), nil
	case []string:
		return Strings(t...), nil
	case []float64:
		return Numbers(t...), nil
	case []int:
		arr := make(Array, len(t))
		for i, n := range t {
			arr[i] = Number(n)
		}
		return arr, nil
	case []any:
		arr := make(Array, 0, len(t))
		for i, item := range t {
			cv, err := ValueOf(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr = append(arr, cv)
		}
		return arr, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

// MustValueOf is like ValueOf but panics on unsupported input. It is meant
// for literals in chart definitions.
func MustValueOf(v any) CompositeValue {
	cv, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return cv
}
