package element

// Symbol is a marker shape. Besides the builtin names any "image://" or
// "path://" URL is accepted and emitted verbatim.
type Symbol string

const (
	SymbolCircle    Symbol = "circle"
	SymbolRect      Symbol = "rect"
	SymbolRoundRect Symbol = "roundRect"
	SymbolTriangle  Symbol = "triangle"
	SymbolDiamond   Symbol = "diamond"
	SymbolPin       Symbol = "pin"
	SymbolArrow     Symbol = "arrow"
	SymbolNone      Symbol = "none"
)

// SymbolImage returns a symbol drawn from an image URL or data URI.
func SymbolImage(url string) Symbol {
	return Symbol("image://" + url)
}

// SymbolPath returns a symbol drawn from an SVG path.
func SymbolPath(path string) Symbol {
	return Symbol("path://" + path)
}

// Icon is the shape used by legend items, gauge pointers and anchors. It
// accepts the same names and custom URLs as Symbol.
type Icon string

const (
	IconCircle    Icon = "circle"
	IconRect      Icon = "rect"
	IconRoundRect Icon = "roundRect"
	IconTriangle  Icon = "triangle"
	IconDiamond   Icon = "diamond"
	IconPin       Icon = "pin"
	IconArrow     Icon = "arrow"
	IconNone      Icon = "none"
)
