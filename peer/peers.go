package peer

import (
	"github.com/wippyai/style-peers/resource"
	"github.com/wippyai/style-peers/style"
)

type BackgroundPeer struct{ layerPeer }

func newBackgroundPeer(b layerPeer) *BackgroundPeer { return &BackgroundPeer{b} }

// Background returns the wrapped layer, or nil once dropped.
func (p *BackgroundPeer) Background() *style.BackgroundLayer {
	l, _ := p.layer.(*style.BackgroundLayer)
	return l
}

func (p *BackgroundPeer) Bridge(env Env) resource.Handle { return env.Adopt(p.typ.ID, p) }

type CirclePeer struct{ layerPeer }

func newCirclePeer(b layerPeer) *CirclePeer { return &CirclePeer{b} }

// Circle returns the wrapped layer, or nil once dropped.
func (p *CirclePeer) Circle() *style.CircleLayer {
	l, _ := p.layer.(*style.CircleLayer)
	return l
}

func (p *CirclePeer) Bridge(env Env) resource.Handle { return env.Adopt(p.typ.ID, p) }

type CustomPeer struct{ layerPeer }

func newCustomPeer(b layerPeer) *CustomPeer { return &CustomPeer{b} }

// Custom returns the wrapped layer, or nil once dropped.
func (p *CustomPeer) Custom() *style.CustomLayer {
	l, _ := p.layer.(*style.CustomLayer)
	return l
}

func (p *CustomPeer) Bridge(env Env) resource.Handle { return env.Adopt(p.typ.ID, p) }

type FillExtrusionPeer struct{ layerPeer }

func newFillExtrusionPeer(b layerPeer) *FillExtrusionPeer { return &FillExtrusionPeer{b} }

// FillExtrusion returns the wrapped layer, or nil once dropped.
func (p *FillExtrusionPeer) FillExtrusion() *style.FillExtrusionLayer {
	l, _ := p.layer.(*style.FillExtrusionLayer)
	return l
}

func (p *FillExtrusionPeer) Bridge(env Env) resource.Handle { return env.Adopt(p.typ.ID, p) }

type FillPeer struct{ layerPeer }

func newFillPeer(b layerPeer) *FillPeer { return &FillPeer{b} }

// Fill returns the wrapped layer, or nil once dropped.
func (p *FillPeer) Fill() *style.FillLayer {
	l, _ := p.layer.(*style.FillLayer)
	return l
}

func (p *FillPeer) Bridge(env Env) resource.Handle { return env.Adopt(p.typ.ID, p) }

type LinePeer struct{ layerPeer }

func newLinePeer(b layerPeer) *LinePeer { return &LinePeer{b} }

// Line returns the wrapped layer, or nil once dropped.
func (p *LinePeer) Line() *style.LineLayer {
	l, _ := p.layer.(*style.LineLayer)
	return l
}

func (p *LinePeer) Bridge(env Env) resource.Handle { return env.Adopt(p.typ.ID, p) }

type RasterPeer struct{ layerPeer }

func newRasterPeer(b layerPeer) *RasterPeer { return &RasterPeer{b} }

// Raster returns the wrapped layer, or nil once dropped.
func (p *RasterPeer) Raster() *style.RasterLayer {
	l, _ := p.layer.(*style.RasterLayer)
	return l
}

func (p *RasterPeer) Bridge(env Env) resource.Handle { return env.Adopt(p.typ.ID, p) }

type SymbolPeer struct{ layerPeer }

func newSymbolPeer(b layerPeer) *SymbolPeer { return &SymbolPeer{b} }

// Symbol returns the wrapped layer, or nil once dropped.
func (p *SymbolPeer) Symbol() *style.SymbolLayer {
	l, _ := p.layer.(*style.SymbolLayer)
	return l
}

func (p *SymbolPeer) Bridge(env Env) resource.Handle { return env.Adopt(p.typ.ID, p) }
