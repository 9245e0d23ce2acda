package style

import (
	"fmt"

	"github.com/wippyai/style-peers/errors"
)

// Style is a style document. It owns the layers added to it and is the
// context every peer is created against.
//
// Style is not safe for concurrent use.
type Style struct {
	name   string
	layers []Layer
}

// New creates an empty style.
func New(name string) *Style {
	return &Style{name: name}
}

func (s *Style) Name() string { return s.name }

// Len returns the number of layers.
func (s *Style) Len() int { return len(s.layers) }

// Layers returns the layers in render order. The slice is a copy; the layers
// are not.
func (s *Style) Layers() []Layer {
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Layer returns the layer with the given id, or nil.
func (s *Style) Layer(id string) Layer {
	if i := s.index(id); i >= 0 {
		return s.layers[i]
	}
	return nil
}

// AddLayer moves the layer held by u into the style, before the layer named
// before or on top when before is empty. On error u keeps its layer.
func (s *Style) AddLayer(u *Unique, before string) error {
	l := u.Layer()
	if l == nil {
		return errors.Consumed(errors.PhaseStyle, u.name())
	}
	if s.index(l.ID()) >= 0 {
		return errors.AlreadyExists(errors.PhaseStyle, l.ID())
	}

	pos := len(s.layers)
	if before != "" {
		pos = s.index(before)
		if pos < 0 {
			return errors.New(errors.PhaseStyle, errors.KindNotFound).
				Layer(l.ID()).
				Detail("cannot add before %q: no such layer", before).
				Build()
		}
	}

	l = u.Take()
	b := l.base()
	b.owner = s
	b.holder = HeldByStyle
	s.layers = append(s.layers, nil)
	copy(s.layers[pos+1:], s.layers[pos:])
	s.layers[pos] = l
	return nil
}

// RemoveLayer detaches a layer and hands ownership to the caller.
func (s *Style) RemoveLayer(id string) (*Unique, error) {
	i := s.index(id)
	if i < 0 {
		return nil, errors.NotFound(errors.PhaseStyle, id)
	}
	l := s.layers[i]
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	b := l.base()
	b.owner = nil
	b.holder = HeldByNone
	return Own(l), nil
}

func (s *Style) index(id string) int {
	for i, l := range s.layers {
		if l.ID() == id {
			return i
		}
	}
	return -1
}

// Unique is sole ownership of a layer that no style holds. The layer can be
// taken out exactly once.
type Unique struct {
	layer Layer
	id    string
}

// Own claims ownership of a free layer. It panics if l is nil or already has
// a holder: a layer has one owner.
func Own(l Layer) *Unique {
	if IsNil(l) {
		panic(errors.InvalidInput(errors.PhaseStyle, "cannot own a nil layer"))
	}
	b := l.base()
	switch b.holder {
	case HeldByNone:
	case HeldByStyle:
		panic(errors.New(errors.PhaseStyle, errors.KindAlreadyExists).
			Layer(l.ID()).
			Detail("layer is owned by style %q", b.owner.name).
			Build())
	default:
		panic(errors.New(errors.PhaseStyle, errors.KindAlreadyExists).
			Layer(l.ID()).
			Detail("layer is owned by a %s", b.holder).
			Build())
	}
	b.holder = HeldByUnique
	return &Unique{layer: l, id: l.ID()}
}

// Reown wraps a layer the caller took out of a Unique back into a Unique, so
// it can be handed on. It panics unless l is held by a caller.
func Reown(l Layer) *Unique {
	mustBeTaken(l, "reown")
	l.base().holder = HeldByUnique
	return &Unique{layer: l, id: l.ID()}
}

// Discard ends the caller's ownership of a layer it took out of a Unique. The
// layer becomes free. It panics unless l is held by a caller.
func Discard(l Layer) {
	mustBeTaken(l, "discard")
	l.base().holder = HeldByNone
}

func mustBeTaken(l Layer, op string) {
	if IsNil(l) {
		panic(errors.InvalidInput(errors.PhaseStyle, "cannot "+op+" a nil layer"))
	}
	if h := l.base().holder; h != HeldByCaller {
		panic(errors.New(errors.PhaseStyle, errors.KindNotOwned).
			Layer(l.ID()).
			Detail("cannot %s a layer owned by a %s", op, h).
			Build())
	}
}

// Layer returns the owned layer without taking it, or nil once taken.
func (u *Unique) Layer() Layer {
	if u == nil {
		return nil
	}
	return u.layer
}

// Taken reports whether ownership has been transferred out.
func (u *Unique) Taken() bool {
	return u == nil || u.layer == nil
}

// Take transfers ownership to the caller and leaves u empty. Taking twice is a
// programming error and panics.
func (u *Unique) Take() Layer {
	if u.Taken() {
		panic(errors.Consumed(errors.PhaseDispatch, u.name()))
	}
	l := u.layer
	u.layer = nil
	l.base().holder = HeldByCaller
	return l
}

func (u *Unique) name() string {
	if u == nil {
		return ""
	}
	return u.id
}

func (u *Unique) String() string {
	if u.Taken() {
		return "unique(<taken>)"
	}
	return fmt.Sprintf("unique(%s)", u.id)
}
