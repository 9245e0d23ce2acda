package peer

import (
	"github.com/wippyai/style-peers/errors"
	"github.com/wippyai/style-peers/resource"
	"github.com/wippyai/style-peers/style"
)

// Env is the host runtime side of peer creation. Adopt stores p and returns
// the handle the host uses to refer to it; from then on the host owns p. A
// zero handle means the host could not take the peer.
type Env interface {
	Adopt(typeID uint32, p Peer) resource.Handle
}

// Peer exposes one style layer to the host runtime.
type Peer interface {
	// Layer returns the wrapped layer, or nil once the peer is dropped.
	Layer() style.Layer
	// Style returns the style the peer was created against.
	Style() *style.Style
	// Owned reports whether the peer holds sole ownership of its layer.
	Owned() bool
	// AddTo moves an owned layer into st. The peer keeps referring to the
	// layer but no longer owns it.
	AddTo(st *style.Style, before string) error
	// Type returns the registry entry the peer was built from.
	Type() *PeerType
	// Bridge hands the peer to env and returns its host handle.
	Bridge(env Env) resource.Handle
	// Drop is called by the host when it releases the handle. An owned
	// layer is released with the peer.
	Drop()
}

// layerPeer is the state shared by every peer type.
type layerPeer struct {
	style *style.Style
	layer style.Layer
	owned style.Layer
	typ   *PeerType
}

func borrowing(st *style.Style, l style.Layer) layerPeer {
	return layerPeer{style: st, layer: l}
}

func owning(st *style.Style, l style.Layer) layerPeer {
	return layerPeer{style: st, layer: l, owned: l}
}

func (p *layerPeer) Layer() style.Layer { return p.layer }

func (p *layerPeer) Style() *style.Style { return p.style }

func (p *layerPeer) Owned() bool { return p.owned != nil }

func (p *layerPeer) Type() *PeerType { return p.typ }

func (p *layerPeer) AddTo(st *style.Style, before string) error {
	if p.owned == nil {
		id := ""
		if p.layer != nil {
			id = p.layer.ID()
		}
		return errors.NotOwned(errors.PhaseStyle, id)
	}
	u := style.Reown(p.owned)
	if err := st.AddLayer(u, before); err != nil {
		p.owned = u.Take()
		return err
	}
	p.owned = nil
	p.style = st
	return nil
}

func (p *layerPeer) Drop() {
	if p.owned != nil {
		style.Discard(p.owned)
	}
	p.owned = nil
	p.layer = nil
	p.style = nil
}

// layerID is the id of the wrapped layer, or "" once dropped.
func (p *layerPeer) layerID() string {
	if p.layer == nil {
		return ""
	}
	return p.layer.ID()
}
