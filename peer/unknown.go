package peer

import (
	"github.com/wippyai/style-peers/resource"
)

// UnknownPeer wraps a layer whose kind the registry does not know. It only
// exposes the properties every layer shares.
//
// Every layer type in package style has a registry entry, so this peer is only
// built for layer types declared elsewhere. Keep it until that stops being
// possible.
type UnknownPeer struct{ layerPeer }

func newUnknownPeer(b layerPeer) *UnknownPeer { return &UnknownPeer{b} }

func (p *UnknownPeer) Bridge(env Env) resource.Handle { return env.Adopt(p.typ.ID, p) }
