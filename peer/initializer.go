package peer

import (
	"go.uber.org/zap"

	"github.com/wippyai/style-peers/style"
)

// initializeBorrowed builds a peer that refers to l without owning it.
func initializeBorrowed(st *style.Style, l style.Layer) Peer {
	return initialize(borrowing(st, l))
}

// initializeOwned takes the layer out of u and builds a peer that owns it.
// Exactly one peer ends up holding the layer, whichever type serves it.
func initializeOwned(st *style.Style, u *style.Unique) Peer {
	return initialize(owning(st, u.Take()))
}

func initialize(b layerPeer) Peer {
	if kind, ok := style.KindOf(b.layer); ok {
		t := &peerTypes[kind]
		b.typ = t
		if p := t.construct(b); p != nil {
			return p
		}
	}

	Logger().Warn("no peer type for layer, using fallback",
		zap.String("layer", b.layerID()),
		zap.String("go_type", goType(b.layer)),
		zap.Bool("owned", b.owned != nil))
	b.typ = &unknownType
	return unknownType.construct(b)
}
