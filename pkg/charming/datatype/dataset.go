package datatype

import (
	"fmt"

	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Source is a dataset entry holding table data. The rows are either typed
// data frames or a raw JSON value (array of arrays or array of objects); both
// are emitted under the "source" key.
type Source struct {
	Source       any          `json:"source,omitempty"`
	ID           *string      `json:"id,omitempty"`
	Dimensions   []*Dimension `json:"dimensions,omitempty"`
	SourceHeader *bool        `json:"sourceHeader,omitempty"`
}

// NewSource returns a source with typed rows.
func NewSource(rows ...DataFrame) *Source {
	return &Source{Source: rows}
}

// NewSourceFromRows converts Go rows such as [][]any{{"product", "2015"},
// {"Matcha Latte", 43.3}} into a typed source.
func NewSourceFromRows(rows [][]any) (*Source, error) {
	frames := make([]DataFrame, len(rows))
	for i, row := range rows {
		df, err := NewDataFrame(row...)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		frames[i] = df
	}
	return NewSource(frames...), nil
}

// NewJSONSource returns a source carrying already encoded rows.
func NewJSONSource(raw json.RawMessage) *Source {
	return &Source{Source: raw}
}

func (s *Source) WithID(v string) *Source {
	s.ID = &v
	return s
}

func (s *Source) WithDimensions(v ...*Dimension) *Source {
	s.Dimensions = v
	return s
}

func (s *Source) WithSourceHeader(v bool) *Source {
	s.SourceHeader = &v
	return s
}

// Transform derives a dataset from another one. Transform holds the ECharts
// transform config, e.g. {type: 'filter', config: {dimension: 'Year', value: 2011}},
// written as a JS expression.
type Transform struct {
	ID                  *string           `json:"id,omitempty"`
	Transform           element.RawString `json:"transform,omitempty"`
	FromDatasetID       *string           `json:"fromDatasetId,omitempty"`
	FromDatasetIndex    *int              `json:"fromDatasetIndex,omitempty"`
	FromTransformResult *int              `json:"fromTransformResult,omitempty"`
}

// NewTransform returns a transform with the given config expression.
func NewTransform(transform string) *Transform {
	return &Transform{Transform: element.RawString(transform)}
}

func (t *Transform) WithID(v string) *Transform {
	t.ID = &v
	return t
}

func (t *Transform) WithFromDatasetID(v string) *Transform {
	t.FromDatasetID = &v
	return t
}

func (t *Transform) WithFromDatasetIndex(v int) *Transform {
	t.FromDatasetIndex = &v
	return t
}

func (t *Transform) WithFromTransformResult(v int) *Transform {
	t.FromTransformResult = &v
	return t
}

// Dataset is the "dataset" option: a list of sources followed by the
// transforms that derive further datasets from them. Dataset indices count
// sources first, so the first transform has index len(Sources).
type Dataset struct {
	Sources    []*Source
	Transforms []*Transform
}

func NewDataset() *Dataset {
	return &Dataset{}
}

// WithSource appends a source.
func (d *Dataset) WithSource(s *Source) *Dataset {
	d.Sources = append(d.Sources, s)
	return d
}

// WithTransform appends a transform.
func (d *Dataset) WithTransform(t *Transform) *Dataset {
	d.Transforms = append(d.Transforms, t)
	return d
}

// MarshalJSON flattens sources and then transforms into one array.
func (d Dataset) MarshalJSON() ([]byte, error) {
	entries := make([]any, 0, len(d.Sources)+len(d.Transforms))
	for _, s := range d.Sources {
		entries = append(entries, s)
	}
	for _, t := range d.Transforms {
		entries = append(entries, t)
	}
	return json.Marshal(entries)
}
