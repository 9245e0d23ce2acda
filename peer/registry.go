package peer

import (
	"fmt"

	"github.com/wippyai/style-peers/style"
)

// PeerType is a registry entry: how to build a peer for one layer kind and
// which surface the host exposes for it.
type PeerType struct {
	// Kind is the layer kind served. Not meaningful for the fallback type.
	Kind style.Kind
	// ID is the host type id handles of this type are tagged with.
	ID uint32
	// Name is the surface name, e.g. "circle-layer".
	Name string

	construct func(layerPeer) Peer
	funcs     []SurfaceFunc
}

// Known reports whether t serves a concrete layer kind.
func (t *PeerType) Known() bool { return t != &unknownType }

// Surface describes the host functions registered for this type.
func (t *PeerType) Surface() Surface {
	return Surface{Name: t.Name, TypeID: t.ID, Funcs: t.funcs}
}

func (t *PeerType) String() string { return t.Name }

// peerTypes holds one entry per style.Kind, in Kind order.
var peerTypes = [...]PeerType{
	entry[*style.BackgroundLayer](style.KindBackground, newBackgroundPeer, backgroundFuncs()),
	entry[*style.CircleLayer](style.KindCircle, newCirclePeer, circleFuncs()),
	entry[*style.CustomLayer](style.KindCustom, newCustomPeer, customFuncs()),
	entry[*style.FillExtrusionLayer](style.KindFillExtrusion, newFillExtrusionPeer, fillExtrusionFuncs()),
	entry[*style.FillLayer](style.KindFill, newFillPeer, fillFuncs()),
	entry[*style.LineLayer](style.KindLine, newLinePeer, lineFuncs()),
	entry[*style.RasterLayer](style.KindRaster, newRasterPeer, rasterFuncs()),
	entry[*style.SymbolLayer](style.KindSymbol, newSymbolPeer, symbolFuncs()),
}

// Adding a style.Kind without a registry entry (or the reverse) fails here.
var _ = [1]struct{}{}[len(peerTypes)-style.NumKinds]

var unknownType = PeerType{
	ID:        uint32(style.NumKinds) + 1,
	Name:      "unknown-layer",
	construct: func(b layerPeer) Peer { return newUnknownPeer(b) },
	funcs:     unknownFuncs(),
}

func init() {
	for i := range peerTypes {
		if peerTypes[i].Kind != style.Kind(i) {
			panic(fmt.Sprintf("peer: registry entry %d serves %s", i, peerTypes[i].Kind))
		}
	}
}

// entry builds the registry entry for layers of concrete type L. The
// constructor only runs once the layer is confirmed to be an L.
func entry[L style.Layer, P Peer](kind style.Kind, ctor func(layerPeer) P, funcs []SurfaceFunc) PeerType {
	return PeerType{
		Kind: kind,
		ID:   uint32(kind) + 1,
		Name: kind.String() + "-layer",
		construct: func(b layerPeer) Peer {
			if _, ok := b.layer.(L); !ok {
				return nil
			}
			return ctor(b)
		},
		funcs: funcs,
	}
}

// Lookup returns the entry for kind, or nil if kind is out of range.
func Lookup(kind style.Kind) *PeerType {
	if int(kind) >= len(peerTypes) {
		return nil
	}
	return &peerTypes[kind]
}

// Types returns every registry entry in Kind order. The fallback type is not
// included.
func Types() []*PeerType {
	out := make([]*PeerType, len(peerTypes))
	for i := range peerTypes {
		out[i] = &peerTypes[i]
	}
	return out
}

// Unknown returns the fallback entry used for layers no registry entry serves.
func Unknown() *PeerType { return &unknownType }

// TypeByID resolves a host type id.
func TypeByID(id uint32) (*PeerType, bool) {
	if id == unknownType.ID {
		return &unknownType, true
	}
	if id == 0 || int(id) > len(peerTypes) {
		return nil, false
	}
	return &peerTypes[id-1], true
}
