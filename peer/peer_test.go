package peer

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/style-peers/errors"
	"github.com/wippyai/style-peers/resource"
	"github.com/wippyai/style-peers/style"
)

type tableEnv struct {
	table *resource.Table
}

func newTableEnv() *tableEnv {
	return &tableEnv{table: resource.NewTable()}
}

func (e *tableEnv) Adopt(typeID uint32, p Peer) resource.Handle {
	return e.table.Insert(typeID, p)
}

func (e *tableEnv) peer(t *testing.T, h resource.Handle) Peer {
	t.Helper()
	v, ok := e.table.Get(h)
	require.True(t, ok, "handle %d not live", h)
	return v.(Peer)
}

type refusingEnv struct{}

func (refusingEnv) Adopt(uint32, Peer) resource.Handle { return 0 }

// heatmapLayer is a layer kind the registry has no entry for.
type heatmapLayer struct {
	style.Base
}

func newHeatmapLayer(id string) *heatmapLayer {
	return &heatmapLayer{Base: style.MakeBase(id, "points")}
}

func recoverError(t *testing.T, f func()) (err *errors.Error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(*errors.Error)
		require.True(t, ok, "panic value %T is not *errors.Error", r)
		err = e
	}()
	f()
	return nil
}

func attach(t *testing.T, st *style.Style, l style.Layer) style.Layer {
	t.Helper()
	require.NoError(t, st.AddLayer(style.Own(l), ""))
	return l
}

var wantGoTypes = map[style.Kind]string{
	style.KindBackground:    "*peer.BackgroundPeer",
	style.KindCircle:        "*peer.CirclePeer",
	style.KindCustom:        "*peer.CustomPeer",
	style.KindFillExtrusion: "*peer.FillExtrusionPeer",
	style.KindFill:          "*peer.FillPeer",
	style.KindLine:          "*peer.LinePeer",
	style.KindRaster:        "*peer.RasterPeer",
	style.KindSymbol:        "*peer.SymbolPeer",
}

func TestCreatePeer_EveryKind(t *testing.T) {
	env := newTableEnv()
	st := style.New("test")

	for _, k := range style.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			l := attach(t, st, style.NewLayer(k, "l-"+k.String(), "src"))

			h := CreatePeer(env, st, l)
			require.NotZero(t, h)

			p := env.peer(t, h)
			assert.Equal(t, wantGoTypes[k], fmt.Sprintf("%T", p))
			assert.Same(t, Lookup(k), p.Type())
			assert.Same(t, st, p.Style())
			assert.False(t, p.Owned())
			assert.True(t, p.Layer() == l)

			typeID, ok := env.table.TypeID(h)
			require.True(t, ok)
			assert.Equal(t, p.Type().ID, typeID)
		})
	}
	assert.Equal(t, style.NumKinds, st.Len())
}

func TestCreatePeer_Unknown(t *testing.T) {
	env := newTableEnv()
	st := style.New("test")
	l := attach(t, st, newHeatmapLayer("heat"))

	h := CreatePeer(env, st, l)
	p := env.peer(t, h)

	require.IsType(t, &UnknownPeer{}, p)
	assert.Same(t, Unknown(), p.Type())
	assert.False(t, p.Type().Known())
	assert.False(t, p.Owned())
	assert.True(t, p.Layer() == l)
}

func TestCreatePeer_NilLayer(t *testing.T) {
	err := recoverError(t, func() {
		CreatePeer(newTableEnv(), style.New("test"), nil)
	})
	assert.Equal(t, errors.KindInvalidInput, err.Kind)
}

func TestCreatePeer_NilLayerPointer(t *testing.T) {
	env := newTableEnv()
	for _, l := range []style.Layer{(*style.CircleLayer)(nil), (*heatmapLayer)(nil)} {
		err := recoverError(t, func() {
			CreatePeer(env, style.New("test"), l)
		})
		assert.Equal(t, errors.KindInvalidInput, err.Kind)
		assert.Equal(t, goType(l), err.GoType)
	}
	assert.Equal(t, 0, env.table.Len())
}

func TestCreatePeer_Refused(t *testing.T) {
	st := style.New("test")
	l := attach(t, st, style.NewFillLayer("water", "src"))

	err := recoverError(t, func() {
		CreatePeer(refusingEnv{}, st, l)
	})
	assert.Equal(t, errors.PhaseBridge, err.Phase)
	assert.Equal(t, errors.KindClosed, err.Kind)
	assert.Equal(t, "water", err.Layer)

	// The style still owns the layer.
	assert.True(t, st.Layer("water") == l)
}

func TestCreatePeer_BorrowedTwice(t *testing.T) {
	env := newTableEnv()
	st := style.New("test")
	l := attach(t, st, style.NewLineLayer("roads", "src"))

	h1 := CreatePeer(env, st, l)
	h2 := CreatePeer(env, st, l)
	assert.NotEqual(t, h1, h2)
	assert.True(t, env.peer(t, h1).Layer() == env.peer(t, h2).Layer())
}

func TestCreateOwnedPeer(t *testing.T) {
	env := newTableEnv()
	st := style.New("test")
	l := style.NewCircleLayer("pois", "src")
	u := style.Own(l)

	h := CreateOwnedPeer(env, st, u)
	assert.True(t, u.Taken())

	p := env.peer(t, h)
	require.IsType(t, &CirclePeer{}, p)
	assert.True(t, p.Owned())
	assert.Same(t, l, p.(*CirclePeer).Circle())
	assert.Equal(t, 0, st.Len())
}

func TestCreateOwnedPeer_Unknown(t *testing.T) {
	env := newTableEnv()
	l := newHeatmapLayer("heat")
	u := style.Own(l)

	h := CreateOwnedPeer(env, style.New("test"), u)
	assert.True(t, u.Taken())

	p := env.peer(t, h)
	require.IsType(t, &UnknownPeer{}, p)
	assert.True(t, p.Owned())
	assert.True(t, p.Layer() == l)
}

func TestCreateOwnedPeer_Consumed(t *testing.T) {
	env := newTableEnv()
	u := style.Own(style.NewRasterLayer("sat", "src"))
	CreateOwnedPeer(env, style.New("test"), u)

	err := recoverError(t, func() {
		CreateOwnedPeer(env, style.New("test"), u)
	})
	assert.Equal(t, errors.KindConsumed, err.Kind)
	assert.Equal(t, "sat", err.Layer)
	assert.Equal(t, 1, env.table.Len())
}

func TestPeer_AddTo(t *testing.T) {
	env := newTableEnv()
	st := style.New("test")
	attach(t, st, style.NewBackgroundLayer("bg"))
	l := style.NewSymbolLayer("labels", "src")

	h := CreateOwnedPeer(env, style.New("scratch"), style.Own(l))
	p := env.peer(t, h)
	require.True(t, p.Owned())

	require.NoError(t, p.AddTo(st, "bg"))
	assert.False(t, p.Owned())
	assert.Same(t, st, p.Style())
	assert.True(t, st.Layer("labels") == l)
	assert.True(t, st.Layers()[0] == l)

	err := p.AddTo(st, "")
	require.Error(t, err)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindNotOwned, e.Kind)

	// Dropping the peer leaves the style's layer alone.
	_, ok := env.table.Remove(h)
	require.True(t, ok)
	assert.True(t, st.Layer("labels") == l)
}

// An owned peer's layer has exactly one owner until it moves into a style.
func TestPeer_OwnershipNotDuplicated(t *testing.T) {
	env := newTableEnv()
	st := style.New("test")
	l := style.NewCircleLayer("c", "src")

	h := CreateOwnedPeer(env, st, style.Own(l))
	p := env.peer(t, h)
	assert.Equal(t, style.HeldByCaller, style.HolderOf(l))

	err := recoverError(t, func() { style.Own(p.Layer()) })
	assert.Equal(t, errors.KindAlreadyExists, err.Kind)
	assert.Equal(t, "c", err.Layer)
	assert.Equal(t, 1, env.table.Len())

	other := style.New("other")
	require.NoError(t, p.AddTo(other, ""))
	assert.False(t, p.Owned())
	assert.Equal(t, style.HeldByStyle, style.HolderOf(l))
	assert.True(t, other.Layer("c") == l)

	err = recoverError(t, func() { style.Own(l) })
	assert.Equal(t, errors.KindAlreadyExists, err.Kind)

	var e *errors.Error
	require.ErrorAs(t, p.AddTo(st, ""), &e)
	assert.Equal(t, errors.KindNotOwned, e.Kind)
	assert.Equal(t, 0, st.Len())
}

func TestPeer_AddToFails(t *testing.T) {
	env := newTableEnv()
	st := style.New("test")
	h := CreateOwnedPeer(env, st, style.Own(style.NewFillLayer("water", "src")))
	p := env.peer(t, h)

	err := p.AddTo(st, "missing")
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindNotFound, e.Kind)
	assert.True(t, p.Owned())
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, style.HeldByCaller, style.HolderOf(p.Layer()))

	require.NoError(t, p.AddTo(st, ""))
	assert.Equal(t, 1, st.Len())
}

func TestPeer_Drop(t *testing.T) {
	env := newTableEnv()
	st := style.New("test")
	borrowed := attach(t, st, style.NewFillLayer("water", "src"))

	draft := style.NewLineLayer("draft", "src")
	hb := CreatePeer(env, st, borrowed)
	ho := CreateOwnedPeer(env, st, style.Own(draft))
	pb, po := env.peer(t, hb), env.peer(t, ho)

	_, ok := env.table.Remove(hb)
	require.True(t, ok)
	_, ok = env.table.Remove(ho)
	require.True(t, ok)

	assert.Nil(t, pb.Layer())
	assert.Nil(t, po.Layer())
	assert.False(t, po.Owned())
	assert.Nil(t, po.(*LinePeer).Line())
	assert.True(t, st.Layer("water") == borrowed)
	assert.Equal(t, 0, env.table.Len())
	assert.Equal(t, style.HeldByStyle, style.HolderOf(borrowed))
	assert.Equal(t, style.HeldByNone, style.HolderOf(draft))
}

// A loaded style gets one peer per layer, each of its kind's type.
func TestCreatePeer_LoadedStyle(t *testing.T) {
	st, err := style.LoadFile("../style/testdata/streets.json")
	require.NoError(t, err)

	env := newTableEnv()
	for _, l := range st.Layers() {
		h := CreatePeer(env, st, l)
		p := env.peer(t, h)
		k, ok := style.KindOf(l)
		require.True(t, ok)
		assert.Equal(t, k, p.Type().Kind, l.ID())
	}
	assert.Equal(t, st.Len(), env.table.Len())
}

func TestCreateOwnedPeer_OneTransferEach(t *testing.T) {
	env := newTableEnv()
	var created []resource.Handle
	env.table.Subscribe(resource.ObserverFunc(func(e resource.Event) {
		if e.Type == resource.EventCreated {
			created = append(created, e.Handle)
		}
	}))

	st := style.New("test")
	var owned []*style.Unique
	for _, k := range style.Kinds() {
		owned = append(owned, style.Own(style.NewLayer(k, "o-"+k.String(), "src")))
	}
	owned = append(owned, style.Own(newHeatmapLayer("heat")))

	layers := make(map[style.Layer]bool)
	for _, u := range owned {
		l := u.Layer()
		h := CreateOwnedPeer(env, st, u)
		assert.True(t, u.Taken())
		p := env.peer(t, h)
		assert.True(t, p.Owned())
		assert.True(t, p.Layer() == l)
		layers[p.Layer()] = true
	}
	assert.Len(t, created, len(owned))
	assert.Len(t, layers, len(owned))
}

func TestCreatePeer_DoesNotMutate(t *testing.T) {
	st := style.New("test")
	l := style.NewSymbolLayer("labels", "src")
	l.TextField = "{name}"
	l.SetMinZoom(3)
	attach(t, st, l)
	before := *l

	CreatePeer(newTableEnv(), st, l)
	assert.Equal(t, before, *l, "layer changed:\n%s", spew.Sdump(l))
	assert.Equal(t, 1, st.Len())
}

// An owned circle and a borrowed layer of an unregistered kind, side by side.
func TestCreatePeer_Scenario(t *testing.T) {
	env := newTableEnv()
	st := style.New("test")

	circle := style.NewCircleLayer("pois", "src")
	hc := CreateOwnedPeer(env, st, style.Own(circle))
	pc := env.peer(t, hc)
	require.IsType(t, &CirclePeer{}, pc)
	assert.Equal(t, style.KindCircle, pc.Type().Kind)
	assert.Panics(t, func() { style.Own(circle) })

	heat := attach(t, st, newHeatmapLayer("heat"))
	hh := CreatePeer(env, st, heat)
	ph := env.peer(t, hh)
	require.IsType(t, &UnknownPeer{}, ph)
	assert.True(t, ph.Layer() == heat)

	heat.SetVisibility(style.Hidden)
	assert.Equal(t, []uint64{0}, invoke(t, BaseSurface(), "get-visibility", ph))
	assert.NotEqual(t, hc, hh)
}
