package datatype

import (
	"fmt"
	"strings"

	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// DimensionType is the value type of a dataset dimension.
type DimensionType string

const (
	DimensionTypeNumber  DimensionType = "number"
	DimensionTypeFloat   DimensionType = "float"
	DimensionTypeInt     DimensionType = "int"
	DimensionTypeOrdinal DimensionType = "ordinal"
	DimensionTypeTime    DimensionType = "time"
)

// ParseDimensionType parses one of number, float, int, ordinal and time.
func ParseDimensionType(s string) (DimensionType, error) {
	switch t := DimensionType(strings.ToLower(strings.TrimSpace(s))); t {
	case DimensionTypeNumber, DimensionTypeFloat, DimensionTypeInt, DimensionTypeOrdinal, DimensionTypeTime:
		return t, nil
	}
	return "", fmt.Errorf("%w: dimension type %q", element.ErrUnknownVariant, s)
}

// Dimension describes one column of a dataset.
type Dimension struct {
	Type        DimensionType `json:"type,omitempty"`
	Name        *string       `json:"name,omitempty"`
	DisplayName *string       `json:"displayName,omitempty"`
}

// NewDimension returns a dimension with the given name.
func NewDimension(name string) *Dimension {
	return &Dimension{Name: &name}
}

func (d *Dimension) WithType(v DimensionType) *Dimension {
	d.Type = v
	return d
}

func (d *Dimension) WithName(v string) *Dimension {
	d.Name = &v
	return d
}

func (d *Dimension) WithDisplayName(v string) *Dimension {
	d.DisplayName = &v
	return d
}

// Dimensions returns one named dimension per name.
func Dimensions(names ...string) []*Dimension {
	dims := make([]*Dimension, len(names))
	for i, n := range names {
		dims[i] = NewDimension(n)
	}
	return dims
}
