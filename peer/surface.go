package peer

import (
	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/style-peers/errors"
	"github.com/wippyai/style-peers/style"
)

// DropFunc is the function every surface module exports to release a handle.
// The host implements it; it is not listed in Surface.Funcs.
const DropFunc = "drop"

// BaseSurfaceName is the surface that accepts handles of every peer type.
const BaseSurfaceName = "layer"

// Surface is a named set of host functions operating on peers. Every function
// takes the peer handle as an implicit first parameter.
type Surface struct {
	Name string
	// TypeID restricts the surface to handles of one peer type. Zero accepts
	// any peer.
	TypeID uint32
	Funcs  []SurfaceFunc
}

// SurfaceFunc is one host function. Params and Results exclude the handle.
// Invoke receives the resolved peer and the remaining arguments as raw wasm
// values; it may panic with an *errors.Error on invalid input.
type SurfaceFunc struct {
	Name    string
	Params  []wit.Type
	Results []wit.Type
	Invoke  func(p Peer, args []uint64) []uint64
}

// Func returns the named function, if present.
func (s Surface) Func(name string) (SurfaceFunc, bool) {
	for _, f := range s.Funcs {
		if f.Name == name {
			return f, true
		}
	}
	return SurfaceFunc{}, false
}

// BaseSurface returns the functions shared by all layers.
func BaseSurface() Surface {
	return Surface{Name: BaseSurfaceName, Funcs: baseFuncs()}
}

// Surfaces returns the base surface, every registry surface in Kind order and
// the fallback surface.
func Surfaces() []Surface {
	out := make([]Surface, 0, len(peerTypes)+2)
	out = append(out, BaseSurface())
	for i := range peerTypes {
		out = append(out, peerTypes[i].Surface())
	}
	return append(out, unknownType.Surface())
}

func baseFuncs() []SurfaceFunc {
	return funcs(
		[]SurfaceFunc{{
			Name:    "get-type-id",
			Results: []wit.Type{wit.U32{}},
			Invoke: func(p Peer, _ []uint64) []uint64 {
				return []uint64{api.EncodeU32(p.Type().ID)}
			},
		}, {
			Name:    "is-owned",
			Results: []wit.Type{wit.Bool{}},
			Invoke: func(p Peer, _ []uint64) []uint64 {
				return []uint64{encodeBool(p.Owned())}
			},
		}, {
			Name:    "get-visibility",
			Results: []wit.Type{wit.Bool{}},
			Invoke: func(p Peer, _ []uint64) []uint64 {
				return []uint64{encodeBool(layerOf(p).Visibility() == style.Visible)}
			},
		}, {
			Name:   "set-visibility",
			Params: []wit.Type{wit.Bool{}},
			Invoke: func(p Peer, args []uint64) []uint64 {
				v := style.Hidden
				if args[0] != 0 {
					v = style.Visible
				}
				layerOf(p).SetVisibility(v)
				return nil
			},
		}},
		zoomProp("min-zoom", style.Layer.MinZoom, style.Layer.SetMinZoom),
		zoomProp("max-zoom", style.Layer.MaxZoom, style.Layer.SetMaxZoom),
	)
}

func zoomProp(name string, get func(style.Layer) float32, set func(style.Layer, float32)) []SurfaceFunc {
	return []SurfaceFunc{{
		Name:    "get-" + name,
		Results: []wit.Type{wit.F32{}},
		Invoke: func(p Peer, _ []uint64) []uint64 {
			return []uint64{api.EncodeF32(get(layerOf(p)))}
		},
	}, {
		Name:   "set-" + name,
		Params: []wit.Type{wit.F32{}},
		Invoke: func(p Peer, args []uint64) []uint64 {
			set(layerOf(p), api.DecodeF32(args[0]))
			return nil
		},
	}}
}

func unknownFuncs() []SurfaceFunc {
	return []SurfaceFunc{{
		Name:    "is-unknown",
		Results: []wit.Type{wit.Bool{}},
		Invoke: func(p Peer, _ []uint64) []uint64 {
			_, ok := p.(*UnknownPeer)
			return []uint64{encodeBool(ok)}
		},
	}}
}

func backgroundFuncs() []SurfaceFunc {
	return funcs(
		colorProp("color", func(p *BackgroundPeer) *style.Color { return &p.Background().Color }),
		f32Prop("opacity", func(p *BackgroundPeer) *float32 { return &p.Background().Opacity }),
	)
}

func circleFuncs() []SurfaceFunc {
	return funcs(
		f32Prop("radius", func(p *CirclePeer) *float32 { return &p.Circle().Radius }),
		colorProp("color", func(p *CirclePeer) *style.Color { return &p.Circle().Color }),
		f32Prop("blur", func(p *CirclePeer) *float32 { return &p.Circle().Blur }),
		f32Prop("opacity", func(p *CirclePeer) *float32 { return &p.Circle().Opacity }),
		f32Prop("stroke-width", func(p *CirclePeer) *float32 { return &p.Circle().StrokeWidth }),
		colorProp("stroke-color", func(p *CirclePeer) *style.Color { return &p.Circle().StrokeColor }),
	)
}

func customFuncs() []SurfaceFunc {
	return []SurfaceFunc{{
		Name: "invalidate",
		Invoke: func(p Peer, _ []uint64) []uint64 {
			p.(*CustomPeer).Custom().Invalidations++
			return nil
		},
	}, {
		Name:    "get-invalidations",
		Results: []wit.Type{wit.U32{}},
		Invoke: func(p Peer, _ []uint64) []uint64 {
			return []uint64{api.EncodeU32(p.(*CustomPeer).Custom().Invalidations)}
		},
	}}
}

func fillExtrusionFuncs() []SurfaceFunc {
	return funcs(
		colorProp("color", func(p *FillExtrusionPeer) *style.Color { return &p.FillExtrusion().Color }),
		f32Prop("opacity", func(p *FillExtrusionPeer) *float32 { return &p.FillExtrusion().Opacity }),
		f32Prop("height", func(p *FillExtrusionPeer) *float32 { return &p.FillExtrusion().Height }),
		f32Prop("base", func(p *FillExtrusionPeer) *float32 { return &p.FillExtrusion().BaseHeight }),
		boolProp("vertical-gradient", func(p *FillExtrusionPeer) *bool { return &p.FillExtrusion().VerticalGradient }),
	)
}

func fillFuncs() []SurfaceFunc {
	return funcs(
		colorProp("color", func(p *FillPeer) *style.Color { return &p.Fill().Color }),
		f32Prop("opacity", func(p *FillPeer) *float32 { return &p.Fill().Opacity }),
		boolProp("antialias", func(p *FillPeer) *bool { return &p.Fill().Antialias }),
		colorProp("outline-color", func(p *FillPeer) *style.Color { return &p.Fill().OutlineColor }),
	)
}

func lineFuncs() []SurfaceFunc {
	return funcs(
		colorProp("color", func(p *LinePeer) *style.Color { return &p.Line().Color }),
		f32Prop("width", func(p *LinePeer) *float32 { return &p.Line().Width }),
		f32Prop("opacity", func(p *LinePeer) *float32 { return &p.Line().Opacity }),
		f32Prop("blur", func(p *LinePeer) *float32 { return &p.Line().Blur }),
		enumProp("cap", style.LineCapSquare, func(p *LinePeer) *style.LineCap { return &p.Line().Cap }),
		enumProp("join", style.LineJoinMiter, func(p *LinePeer) *style.LineJoin { return &p.Line().Join }),
	)
}

func rasterFuncs() []SurfaceFunc {
	return funcs(
		f32Prop("opacity", func(p *RasterPeer) *float32 { return &p.Raster().Opacity }),
		f32Prop("hue-rotate", func(p *RasterPeer) *float32 { return &p.Raster().HueRotate }),
		f32Prop("brightness-min", func(p *RasterPeer) *float32 { return &p.Raster().BrightnessMin }),
		f32Prop("brightness-max", func(p *RasterPeer) *float32 { return &p.Raster().BrightnessMax }),
		f32Prop("saturation", func(p *RasterPeer) *float32 { return &p.Raster().Saturation }),
		f32Prop("contrast", func(p *RasterPeer) *float32 { return &p.Raster().Contrast }),
		u32Prop("fade-duration", func(p *RasterPeer) *uint32 { return &p.Raster().FadeDuration }),
	)
}

func symbolFuncs() []SurfaceFunc {
	return funcs(
		enumProp("placement", style.SymbolPlacementLineCenter, func(p *SymbolPeer) *style.SymbolPlacement { return &p.Symbol().Placement }),
		f32Prop("text-size", func(p *SymbolPeer) *float32 { return &p.Symbol().TextSize }),
		colorProp("text-color", func(p *SymbolPeer) *style.Color { return &p.Symbol().TextColor }),
		f32Prop("text-opacity", func(p *SymbolPeer) *float32 { return &p.Symbol().TextOpacity }),
		f32Prop("icon-size", func(p *SymbolPeer) *float32 { return &p.Symbol().IconSize }),
		f32Prop("icon-opacity", func(p *SymbolPeer) *float32 { return &p.Symbol().IconOpacity }),
	)
}

func funcs(groups ...[]SurfaceFunc) []SurfaceFunc {
	var out []SurfaceFunc
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// layerOf returns the live layer of p. Calls on a dropped peer panic.
func layerOf(p Peer) style.Layer {
	l := p.Layer()
	if l == nil {
		panic(errors.New(errors.PhaseHost, errors.KindClosed).
			GoType(goType(p)).
			Detail("peer was dropped").
			Build())
	}
	return l
}

func encodeBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func f32Prop[P Peer](name string, field func(P) *float32) []SurfaceFunc {
	return []SurfaceFunc{{
		Name:    "get-" + name,
		Results: []wit.Type{wit.F32{}},
		Invoke: func(p Peer, _ []uint64) []uint64 {
			return []uint64{api.EncodeF32(*field(p.(P)))}
		},
	}, {
		Name:   "set-" + name,
		Params: []wit.Type{wit.F32{}},
		Invoke: func(p Peer, args []uint64) []uint64 {
			*field(p.(P)) = api.DecodeF32(args[0])
			return nil
		},
	}}
}

func u32Prop[P Peer](name string, field func(P) *uint32) []SurfaceFunc {
	return []SurfaceFunc{{
		Name:    "get-" + name,
		Results: []wit.Type{wit.U32{}},
		Invoke: func(p Peer, _ []uint64) []uint64 {
			return []uint64{api.EncodeU32(*field(p.(P)))}
		},
	}, {
		Name:   "set-" + name,
		Params: []wit.Type{wit.U32{}},
		Invoke: func(p Peer, args []uint64) []uint64 {
			*field(p.(P)) = api.DecodeU32(args[0])
			return nil
		},
	}}
}

func boolProp[P Peer](name string, field func(P) *bool) []SurfaceFunc {
	return []SurfaceFunc{{
		Name:    "get-" + name,
		Results: []wit.Type{wit.Bool{}},
		Invoke: func(p Peer, _ []uint64) []uint64 {
			return []uint64{encodeBool(*field(p.(P)))}
		},
	}, {
		Name:   "set-" + name,
		Params: []wit.Type{wit.Bool{}},
		Invoke: func(p Peer, args []uint64) []uint64 {
			*field(p.(P)) = args[0] != 0
			return nil
		},
	}}
}

// colorProp exposes a color as packed 0xRRGGBBAA.
func colorProp[P Peer](name string, field func(P) *style.Color) []SurfaceFunc {
	return []SurfaceFunc{{
		Name:    "get-" + name,
		Results: []wit.Type{wit.U32{}},
		Invoke: func(p Peer, _ []uint64) []uint64 {
			return []uint64{api.EncodeU32(field(p.(P)).Packed())}
		},
	}, {
		Name:   "set-" + name,
		Params: []wit.Type{wit.U32{}},
		Invoke: func(p Peer, args []uint64) []uint64 {
			*field(p.(P)) = style.UnpackColor(api.DecodeU32(args[0]))
			return nil
		},
	}}
}

// enumProp exposes an enum as its ordinal. Setting a value above last panics.
func enumProp[P Peer, E ~uint8](name string, last E, field func(P) *E) []SurfaceFunc {
	return []SurfaceFunc{{
		Name:    "get-" + name,
		Results: []wit.Type{wit.U8{}},
		Invoke: func(p Peer, _ []uint64) []uint64 {
			return []uint64{uint64(*field(p.(P)))}
		},
	}, {
		Name:   "set-" + name,
		Params: []wit.Type{wit.U8{}},
		Invoke: func(p Peer, args []uint64) []uint64 {
			v := api.DecodeU32(args[0])
			if v > uint32(last) {
				panic(errors.New(errors.PhaseHost, errors.KindInvalidInput).
					Layer(p.Layer().ID()).
					Value(v).
					Detail("%s out of range", name).
					Build())
			}
			*field(p.(P)) = E(v)
			return nil
		},
	}}
}
