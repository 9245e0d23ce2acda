package style

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/style-peers/errors"
)

// SpecVersion is the style document version Load accepts.
const SpecVersion = 8

type document struct {
	Version int        `yaml:"version"`
	Name    string     `yaml:"name"`
	Layers  []layerDoc `yaml:"layers"`
}

type layerDoc struct {
	ID          string         `yaml:"id"`
	Type        string         `yaml:"type"`
	Source      string         `yaml:"source"`
	SourceLayer string         `yaml:"source-layer"`
	MinZoom     *float32       `yaml:"minzoom"`
	MaxZoom     *float32       `yaml:"maxzoom"`
	Layout      map[string]any `yaml:"layout"`
	Paint       map[string]any `yaml:"paint"`
}

// LoadFile reads and parses a style document.
func LoadFile(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style %s: %w", path, err)
	}
	return Load(data)
}

// Load parses a style document. JSON and YAML are both accepted. Layers
// without an id get a generated one.
func Load(data []byte) (*Style, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "malformed style document")
	}
	if doc.Version != 0 && doc.Version != SpecVersion {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Value(doc.Version).
			Detail("style version %d, want %d", doc.Version, SpecVersion).
			Build()
	}

	st := New(doc.Name)
	for i := range doc.Layers {
		l, err := doc.Layers[i].build()
		if err != nil {
			return nil, err
		}
		if err := st.AddLayer(Own(l), ""); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (d *layerDoc) build() (Layer, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	kind, ok := ParseKind(d.Type)
	if !ok {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Layer(d.ID).
			Value(d.Type).
			Detail("layer type %q is not supported", d.Type).
			Build()
	}

	l := NewLayer(kind, d.ID, d.Source)
	l.SetSourceLayer(d.SourceLayer)
	if d.MinZoom != nil {
		l.SetMinZoom(*d.MinZoom)
	}
	if d.MaxZoom != nil {
		l.SetMaxZoom(*d.MaxZoom)
	}

	p := &properties{layer: d.ID, values: make(map[string]any, len(d.Layout)+len(d.Paint))}
	for k, v := range d.Layout {
		p.values[k] = v
	}
	for k, v := range d.Paint {
		p.values[k] = v
	}
	p.apply(l)
	return l, p.err
}

// properties reads layout and paint values into a layer. The first failure
// sticks and later reads are skipped.
type properties struct {
	values map[string]any
	err    error
	layer  string
}

func (p *properties) apply(l Layer) {
	var vis string
	p.str("visibility", &vis)
	switch vis {
	case "", "visible":
	case "none":
		l.SetVisibility(Hidden)
	default:
		p.fail("visibility", vis)
	}

	switch l := l.(type) {
	case *BackgroundLayer:
		p.color("background-color", &l.Color)
		p.float("background-opacity", &l.Opacity)
	case *CircleLayer:
		p.float("circle-radius", &l.Radius)
		p.color("circle-color", &l.Color)
		p.float("circle-blur", &l.Blur)
		p.float("circle-opacity", &l.Opacity)
		p.float("circle-stroke-width", &l.StrokeWidth)
		p.color("circle-stroke-color", &l.StrokeColor)
	case *CustomLayer:
	case *FillExtrusionLayer:
		p.color("fill-extrusion-color", &l.Color)
		p.float("fill-extrusion-opacity", &l.Opacity)
		p.float("fill-extrusion-height", &l.Height)
		p.float("fill-extrusion-base", &l.BaseHeight)
		p.bool("fill-extrusion-vertical-gradient", &l.VerticalGradient)
	case *FillLayer:
		p.color("fill-color", &l.Color)
		p.float("fill-opacity", &l.Opacity)
		p.bool("fill-antialias", &l.Antialias)
		p.color("fill-outline-color", &l.OutlineColor)
	case *LineLayer:
		p.color("line-color", &l.Color)
		p.float("line-width", &l.Width)
		p.float("line-opacity", &l.Opacity)
		p.float("line-blur", &l.Blur)
		enumProperty(p, "line-cap", lineCapNames, &l.Cap)
		enumProperty(p, "line-join", lineJoinNames, &l.Join)
	case *RasterLayer:
		p.float("raster-opacity", &l.Opacity)
		p.float("raster-hue-rotate", &l.HueRotate)
		p.float("raster-brightness-min", &l.BrightnessMin)
		p.float("raster-brightness-max", &l.BrightnessMax)
		p.float("raster-saturation", &l.Saturation)
		p.float("raster-contrast", &l.Contrast)
		p.uint("raster-fade-duration", &l.FadeDuration)
	case *SymbolLayer:
		enumProperty(p, "symbol-placement", symbolPlacementNames, &l.Placement)
		p.str("text-field", &l.TextField)
		p.float("text-size", &l.TextSize)
		p.color("text-color", &l.TextColor)
		p.float("text-opacity", &l.TextOpacity)
		p.float("icon-size", &l.IconSize)
		p.float("icon-opacity", &l.IconOpacity)
	}
}

func (p *properties) lookup(key string) (any, bool) {
	if p.err != nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

func (p *properties) fail(key string, v any) {
	p.err = errors.New(errors.PhaseLoad, errors.KindInvalidData).
		Layer(p.layer).
		GoType(fmt.Sprintf("%T", v)).
		Value(v).
		Detail("unsupported value for %s", key).
		Build()
}

func (p *properties) float(key string, dst *float32) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	switch n := v.(type) {
	case int:
		*dst = float32(n)
	case float64:
		*dst = float32(n)
	default:
		p.fail(key, v)
	}
}

func (p *properties) uint(key string, dst *uint32) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	n, isInt := v.(int)
	if !isInt || n < 0 {
		p.fail(key, v)
		return
	}
	*dst = uint32(n)
}

func (p *properties) bool(key string, dst *bool) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	b, isBool := v.(bool)
	if !isBool {
		p.fail(key, v)
		return
	}
	*dst = b
}

func (p *properties) str(key string, dst *string) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	s, isString := v.(string)
	if !isString {
		p.fail(key, v)
		return
	}
	*dst = s
}

func (p *properties) color(key string, dst *Color) {
	var s string
	p.str(key, &s)
	if p.err != nil || s == "" {
		return
	}
	c, err := parseColor(s)
	if err != nil {
		err.Layer = p.layer
		p.err = err
		return
	}
	*dst = c
}

func enumProperty[E ~uint8](p *properties, key string, names []string, dst *E) {
	var s string
	p.str(key, &s)
	if p.err != nil || s == "" {
		return
	}
	for i, name := range names {
		if name == s {
			*dst = E(i)
			return
		}
	}
	p.fail(key, s)
}
