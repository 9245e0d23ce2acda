package style

import "reflect"

// Visibility controls whether a layer is rendered.
type Visibility uint8

const (
	Visible Visibility = iota
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "none"
	}
	return "visible"
}

const (
	DefaultMinZoom float32 = 0
	DefaultMaxZoom float32 = 24
)

// Layer is a style layer of any kind. Implementations must embed Base.
type Layer interface {
	ID() string
	Source() string
	SourceLayer() string
	SetSourceLayer(string)
	Visibility() Visibility
	SetVisibility(Visibility)
	MinZoom() float32
	SetMinZoom(float32)
	MaxZoom() float32
	SetMaxZoom(float32)

	base() *Base
}

// Holder is who currently owns a layer. A layer has exactly one holder.
type Holder uint8

const (
	// HeldByNone is a free layer that nothing has claimed yet.
	HeldByNone Holder = iota
	// HeldByUnique is a layer claimed with Own and not yet taken.
	HeldByUnique
	// HeldByStyle is a layer attached to a style.
	HeldByStyle
	// HeldByCaller is a layer taken out of a Unique by its new owner.
	HeldByCaller
)

func (h Holder) String() string {
	switch h {
	case HeldByUnique:
		return "unique"
	case HeldByStyle:
		return "style"
	case HeldByCaller:
		return "caller"
	default:
		return "none"
	}
}

// Base holds the properties every layer kind shares.
type Base struct {
	owner       *Style
	holder      Holder
	id          string
	source      string
	sourceLayer string
	visibility  Visibility
	minZoom     float32
	maxZoom     float32
}

// MakeBase returns a visible Base spanning the full zoom range.
func MakeBase(id, source string) Base {
	return Base{
		id:      id,
		source:  source,
		minZoom: DefaultMinZoom,
		maxZoom: DefaultMaxZoom,
	}
}

func (b *Base) ID() string { return b.id }
func (b *Base) Source() string { return b.source }
func (b *Base) SourceLayer() string { return b.sourceLayer }
func (b *Base) SetSourceLayer(s string) { b.sourceLayer = s }
func (b *Base) Visibility() Visibility { return b.visibility }
func (b *Base) SetVisibility(v Visibility) { b.visibility = v }
func (b *Base) MinZoom() float32 { return b.minZoom }
func (b *Base) SetMinZoom(z float32) { b.minZoom = z }
func (b *Base) MaxZoom() float32 { return b.maxZoom }
func (b *Base) SetMaxZoom(z float32) { b.maxZoom = z }
func (b *Base) base() *Base { return b }

// IsNil reports whether l is nil, including a nil pointer of a layer type.
func IsNil(l Layer) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Attached reports whether a style currently owns l.
func Attached(l Layer) bool {
	return !IsNil(l) && l.base().holder == HeldByStyle
}

// HolderOf reports who owns l. A nil layer is held by none.
func HolderOf(l Layer) Holder {
	if IsNil(l) {
		return HeldByNone
	}
	return l.base().holder
}
