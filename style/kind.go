package style

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies one of the known layer types.
type Kind uint8

const (
	KindBackground    Kind = iota // background
	KindCircle                    // circle
	KindCustom                    // custom
	KindFillExtrusion             // fill-extrusion
	KindFill                      // fill
	KindLine                      // line
	KindRaster                    // raster
	KindSymbol                    // symbol

	// NumKinds is the number of known kinds.
	NumKinds = int(iota)
)

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind maps a style document layer type to its Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// KindOf resolves the concrete kind of l. It reports false for types outside
// the known set, including nil and nil pointers.
func KindOf(l Layer) (Kind, bool) {
	if IsNil(l) {
		return 0, false
	}
	switch l.(type) {
	case *BackgroundLayer:
		return KindBackground, true
	case *CircleLayer:
		return KindCircle, true
	case *CustomLayer:
		return KindCustom, true
	case *FillExtrusionLayer:
		return KindFillExtrusion, true
	case *FillLayer:
		return KindFill, true
	case *LineLayer:
		return KindLine, true
	case *RasterLayer:
		return KindRaster, true
	case *SymbolLayer:
		return KindSymbol, true
	default:
		return 0, false
	}
}
