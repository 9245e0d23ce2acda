package style

// LineCap is the line-cap layout property.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the line-join layout property.
type LineJoin uint8

const (
	LineJoinBevel LineJoin = iota
	LineJoinRound
	LineJoinMiter
)

// SymbolPlacement is the symbol-placement layout property.
type SymbolPlacement uint8

const (
	SymbolPlacementPoint SymbolPlacement = iota
	SymbolPlacementLine
	SymbolPlacementLineCenter
)

var (
	lineCapNames         = []string{"butt", "round", "square"}
	lineJoinNames        = []string{"bevel", "round", "miter"}
	symbolPlacementNames = []string{"point", "line", "line-center"}
)

func (c LineCap) String() string { return enumName(lineCapNames, uint8(c)) }
func (j LineJoin) String() string { return enumName(lineJoinNames, uint8(j)) }
func (p SymbolPlacement) String() string { return enumName(symbolPlacementNames, uint8(p)) }

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "invalid"
}

type BackgroundLayer struct {
	Base
	Color   Color
	Opacity float32
}

func NewBackgroundLayer(id string) *BackgroundLayer {
	return &BackgroundLayer{
		Base:    MakeBase(id, ""),
		Color:   Black,
		Opacity: 1,
	}
}

type CircleLayer struct {
	Base
	Radius      float32
	Color       Color
	Blur        float32
	Opacity     float32
	StrokeWidth float32
	StrokeColor Color
}

func NewCircleLayer(id, source string) *CircleLayer {
	return &CircleLayer{
		Base:        MakeBase(id, source),
		Radius:      5,
		Color:       Black,
		Opacity:     1,
		StrokeColor: Black,
	}
}

// CustomLayer is rendered by the embedding application rather than the style.
// Invalidations counts repaint requests made through its peer.
type CustomLayer struct {
	Base
	Invalidations uint32
}

func NewCustomLayer(id string) *CustomLayer {
	return &CustomLayer{Base: MakeBase(id, "")}
}

type FillExtrusionLayer struct {
	Base
	Color            Color
	Opacity          float32
	Height           float32
	BaseHeight       float32
	VerticalGradient bool
}

func NewFillExtrusionLayer(id, source string) *FillExtrusionLayer {
	return &FillExtrusionLayer{
		Base:             MakeBase(id, source),
		Color:            Black,
		Opacity:          1,
		VerticalGradient: true,
	}
}

type FillLayer struct {
	Base
	Color        Color
	Opacity      float32
	Antialias    bool
	OutlineColor Color
}

func NewFillLayer(id, source string) *FillLayer {
	return &FillLayer{
		Base:         MakeBase(id, source),
		Color:        Black,
		Opacity:      1,
		Antialias:    true,
		OutlineColor: Black,
	}
}

type LineLayer struct {
	Base
	Color   Color
	Width   float32
	Opacity float32
	Blur    float32
	Cap     LineCap
	Join    LineJoin
}

func NewLineLayer(id, source string) *LineLayer {
	return &LineLayer{
		Base:    MakeBase(id, source),
		Color:   Black,
		Width:   1,
		Opacity: 1,
		Cap:     LineCapButt,
		Join:    LineJoinMiter,
	}
}

type RasterLayer struct {
	Base
	Opacity       float32
	HueRotate     float32
	BrightnessMin float32
	BrightnessMax float32
	Saturation    float32
	Contrast      float32
	FadeDuration  uint32
}

func NewRasterLayer(id, source string) *RasterLayer {
	return &RasterLayer{
		Base:          MakeBase(id, source),
		Opacity:       1,
		BrightnessMax: 1,
		FadeDuration:  300,
	}
}

type SymbolLayer struct {
	Base
	Placement   SymbolPlacement
	TextField   string
	TextSize    float32
	TextColor   Color
	TextOpacity float32
	IconSize    float32
	IconOpacity float32
}

func NewSymbolLayer(id, source string) *SymbolLayer {
	return &SymbolLayer{
		Base:        MakeBase(id, source),
		Placement:   SymbolPlacementPoint,
		TextSize:    16,
		TextColor:   Black,
		TextOpacity: 1,
		IconSize:    1,
		IconOpacity: 1,
	}
}

// NewLayer creates a layer of kind k with default properties.
func NewLayer(k Kind, id, source string) Layer {
	switch k {
	case KindBackground:
		return NewBackgroundLayer(id)
	case KindCircle:
		return NewCircleLayer(id, source)
	case KindCustom:
		return NewCustomLayer(id)
	case KindFillExtrusion:
		return NewFillExtrusionLayer(id, source)
	case KindFill:
		return NewFillLayer(id, source)
	case KindLine:
		return NewLineLayer(id, source)
	case KindRaster:
		return NewRasterLayer(id, source)
	case KindSymbol:
		return NewSymbolLayer(id, source)
	}
	return nil
}
