package element

// Formatter is a label or tooltip formatter: either an ECharts template
// string such as "{b}: {c}" or a RawString holding a JS callback.
type Formatter interface {
	formatter()
}

// FormatString is a template formatter.
type FormatString string

func (FormatString) formatter() {}

// SymbolSize is a symbol size given as a number or as a RawString callback
// computing it from the data item.
type SymbolSize interface {
	symbolSize()
}

func (Number) symbolSize() {}
