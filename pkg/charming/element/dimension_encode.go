package element

// DimensionEncode maps dataset dimensions onto the axes and tooltip of a series.
// Each entry is a dimension index or name, or an array of them.
type DimensionEncode struct {
	X          CompositeValue   `json:"x,omitempty"`
	Y          CompositeValue   `json:"y,omitempty"`
	Z          CompositeValue   `json:"z,omitempty"`
	Value      CompositeValue   `json:"value,omitempty"`
	ItemName   *string          `json:"itemName,omitempty"`
	SeriesName CompositeValue   `json:"seriesName,omitempty"`
	Tooltip    []CompositeValue `json:"tooltip,omitempty"`
}

func NewDimensionEncode() *DimensionEncode {
	return &DimensionEncode{}
}

func (d *DimensionEncode) WithX(v CompositeValue) *DimensionEncode {
	d.X = v
	return d
}

func (d *DimensionEncode) WithY(v CompositeValue) *DimensionEncode {
	d.Y = v
	return d
}

func (d *DimensionEncode) WithZ(v CompositeValue) *DimensionEncode {
	d.Z = v
	return d
}

func (d *DimensionEncode) WithValue(v CompositeValue) *DimensionEncode {
	d.Value = v
	return d
}

func (d *DimensionEncode) WithItemName(v string) *DimensionEncode {
	d.ItemName = &v
	return d
}

func (d *DimensionEncode) WithSeriesName(v CompositeValue) *DimensionEncode {
	d.SeriesName = v
	return d
}

func (d *DimensionEncode) WithTooltip(v ...CompositeValue) *DimensionEncode {
	d.Tooltip = v
	return d
}
