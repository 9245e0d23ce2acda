package peer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/style-peers/errors"
	"github.com/wippyai/style-peers/resource"
	"github.com/wippyai/style-peers/style"
)

// CreatePeer builds a borrowing peer for l, which st keeps owning, and hands it
// to env. Layers of kinds without a registry entry get an UnknownPeer.
//
// The returned handle is never zero: if env refuses the peer, or l is nil
// (including a nil layer pointer), CreatePeer panics with an *errors.Error.
func CreatePeer(env Env, st *style.Style, l style.Layer) resource.Handle {
	if style.IsNil(l) {
		panic(errors.New(errors.PhaseDispatch, errors.KindInvalidInput).
			GoType(goType(l)).
			Detail("cannot create a peer for a nil layer").
			Build())
	}
	return bridge(env, initializeBorrowed(st, l))
}

// CreateOwnedPeer takes the layer out of owned and builds a peer that owns it.
// owned is empty afterwards; passing an already taken Unique panics.
//
// The layer is released with the peer unless it is first added to a style.
func CreateOwnedPeer(env Env, st *style.Style, owned *style.Unique) resource.Handle {
	return bridge(env, initializeOwned(st, owned))
}

func bridge(env Env, p Peer) resource.Handle {
	var id string
	if l := p.Layer(); l != nil {
		id = l.ID()
	}

	h := p.Bridge(env)
	if h == 0 {
		panic(errors.New(errors.PhaseBridge, errors.KindClosed).
			Layer(id).
			GoType(goType(p.Layer())).
			Detail("host did not adopt %s peer", p.Type().Name).
			Build())
	}

	Logger().Debug("peer created",
		zap.String("layer", id),
		zap.String("type", p.Type().Name),
		zap.Bool("owned", p.Owned()),
		zap.Uint32("handle", uint32(h)))
	return h
}

func goType(v any) string {
	return fmt.Sprintf("%T", v)
}
