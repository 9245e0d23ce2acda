package host

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/style-peers/errors"
	"github.com/wippyai/style-peers/host/internal/wasm"
	"github.com/wippyai/style-peers/peer"
	"github.com/wippyai/style-peers/resource"
)

// Runtime hosts peers for a wazero runtime. Peers live in a handle table and
// each peer surface is a host module whose functions take a handle first.
// Each host module is paired with a caller module that re-exports its
// functions, since wazero only lets Go call exports of guest modules.
// Thread-safe.
type Runtime struct {
	wazero   wazero.Runtime
	table    *resource.Table
	log      *zap.Logger
	modules  map[string]api.Module
	callers  map[string]api.Module
	surfaces map[string]peer.Surface
	opts     Options
	startErr error
	mu       sync.RWMutex
	start    sync.Once
	closed   atomic.Bool
}

var (
	_ peer.Env       = (*Runtime)(nil)
	_ peer.Registrar = (*Runtime)(nil)
)

// New creates a runtime. Surfaces are not registered until Start.
func New(ctx context.Context, opts ...Option) (*Runtime, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Namespace == "" {
		return nil, errors.InvalidInput(errors.PhaseHost, "namespace is required")
	}
	if o.Logger == nil {
		o.Logger = Logger()
	}

	cfg := wazero.NewRuntimeConfig()
	if o.MemoryLimitPages > 0 {
		cfg = cfg.WithMemoryLimitPages(o.MemoryLimitPages)
	}

	return &Runtime{
		wazero:   wazero.NewRuntimeWithConfig(ctx, cfg),
		table:    resource.NewTable(),
		log:      o.Logger,
		modules:  make(map[string]api.Module),
		callers:  make(map[string]api.Module),
		surfaces: make(map[string]peer.Surface),
		opts:     o,
	}, nil
}

// Options returns the configuration.
func (r *Runtime) Options() Options {
	return r.opts
}

// Wazero returns the underlying wazero runtime.
func (r *Runtime) Wazero() wazero.Runtime {
	return r.wazero
}

// ModuleName returns the host module name of a surface, e.g.
// "maplibre:style/circle-layer@0.1.0".
func (r *Runtime) ModuleName(surface string) string {
	name := r.opts.Namespace + "/" + surface
	if r.opts.Version != "" {
		name += "@" + r.opts.Version
	}
	return name
}

// Start registers every peer surface. Later calls return the first result.
func (r *Runtime) Start(ctx context.Context) error {
	r.start.Do(func() {
		r.startErr = peer.RegisterSurfaces(ctx, r)
		if r.startErr == nil {
			r.log.Debug("surfaces registered", zap.Int("modules", len(r.modules)))
		}
	})
	return r.startErr
}

// Adopt stores p and returns its handle. A closed runtime returns 0.
func (r *Runtime) Adopt(typeID uint32, p peer.Peer) resource.Handle {
	if r.closed.Load() {
		return 0
	}
	h := r.table.Insert(typeID, p)
	if h == 0 {
		return 0
	}
	r.log.Debug("peer adopted",
		zap.Uint32("handle", uint32(h)),
		zap.String("type", p.Type().Name))
	return h
}

// RegisterSurface instantiates the host module for s.
func (r *Runtime) RegisterSurface(ctx context.Context, s peer.Surface) error {
	if r.closed.Load() {
		return errors.New(errors.PhaseHost, errors.KindClosed).Detail("runtime closed").Build()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.modules[s.Name]; ok {
		return errors.Registration(errors.PhaseHost, r.opts.Namespace, s.Name,
			errors.New(errors.PhaseHost, errors.KindAlreadyExists).Detail("surface already registered").Build())
	}

	name := r.ModuleName(s.Name)
	builder := r.wazero.NewHostModuleBuilder(name)
	caller := wasm.NewCallerBuilder(name)
	for _, f := range s.Funcs {
		params := append([]api.ValueType{api.ValueTypeI32}, valueTypes(f.Params)...)
		results := valueTypes(f.Results)
		builder.NewFunctionBuilder().
			WithGoModuleFunction(r.handler(s, f), params, results).
			WithName(f.Name).
			Export(f.Name)
		caller.AddFunc(f.Name, params, results)
	}
	dropParams := []api.ValueType{api.ValueTypeI32}
	builder.NewFunctionBuilder().
		WithGoModuleFunction(r.dropHandler(s), dropParams, nil).
		WithName(peer.DropFunc).
		Export(peer.DropFunc)
	caller.AddFunc(peer.DropFunc, dropParams, nil)

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return errors.Registration(errors.PhaseHost, r.opts.Namespace, s.Name, err)
	}

	callerMod, err := r.instantiateCaller(ctx, name, caller)
	if err != nil {
		_ = mod.Close(ctx)
		return errors.Registration(errors.PhaseHost, r.opts.Namespace, s.Name, err)
	}

	r.modules[s.Name] = mod
	r.callers[s.Name] = callerMod
	r.surfaces[s.Name] = s
	r.log.Debug("surface registered",
		zap.String("module", name),
		zap.Uint32("type_id", s.TypeID),
		zap.Int("funcs", len(s.Funcs)))
	return nil
}

// CallerModuleName returns the name of the module that re-exports the
// functions of a surface's host module.
func CallerModuleName(hostModule string) string {
	return hostModule + "#caller"
}

func (r *Runtime) instantiateCaller(ctx context.Context, hostModule string, b *wasm.CallerBuilder) (api.Module, error) {
	compiled, err := r.wazero.CompileModule(ctx, b.Build())
	if err != nil {
		return nil, fmt.Errorf("compile caller for %s: %w", hostModule, err)
	}
	mod, err := r.wazero.InstantiateModule(ctx, compiled,
		wazero.NewModuleConfig().WithName(CallerModuleName(hostModule)).WithStartFunctions())
	if err != nil {
		_ = compiled.Close(ctx)
		return nil, fmt.Errorf("instantiate caller for %s: %w", hostModule, err)
	}
	return mod, nil
}

func (r *Runtime) handler(s peer.Surface, f peer.SurfaceFunc) api.GoModuleFunc {
	nparams := len(f.Params)
	return func(ctx context.Context, _ api.Module, stack []uint64) {
		p := r.resolve(s, resource.Handle(api.DecodeU32(stack[0])))
		results := f.Invoke(p, stack[1:1+nparams])
		copy(stack, results)
	}
}

func (r *Runtime) dropHandler(s peer.Surface) api.GoModuleFunc {
	return func(ctx context.Context, _ api.Module, stack []uint64) {
		h := resource.Handle(api.DecodeU32(stack[0]))
		r.resolve(s, h)
		r.Release(h)
	}
}

// resolve looks up the peer behind h for a call on s. Invalid handles panic,
// which traps the calling function.
func (r *Runtime) resolve(s peer.Surface, h resource.Handle) peer.Peer {
	var (
		v  any
		ok bool
	)
	if s.TypeID == 0 {
		v, ok = r.table.Get(h)
	} else {
		v, ok = r.table.GetTyped(h, s.TypeID)
	}
	if !ok {
		kind := errors.KindNotFound
		if _, live := r.table.Get(h); live {
			kind = errors.KindTypeMismatch
		}
		panic(errors.New(errors.PhaseHost, kind).
			Value(uint32(h)).
			Detail("handle %d is not a %s", h, s.Name).
			Build())
	}
	return v.(peer.Peer)
}

// Call invokes a surface function through wazero. args[0] is the peer handle.
func (r *Runtime) Call(ctx context.Context, surface, fn string, args ...uint64) ([]uint64, error) {
	r.mu.RLock()
	mod, ok := r.callers[surface]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.PhaseHost, errors.KindNotFound).
			Detail("surface %q not registered", surface).
			Build()
	}

	f := mod.ExportedFunction(fn)
	if f == nil {
		return nil, errors.New(errors.PhaseHost, errors.KindNotFound).
			Detail("%s has no function %q", r.ModuleName(surface), fn).
			Build()
	}

	results, err := f.Call(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("call %s#%s: %w", r.ModuleName(surface), fn, err)
	}
	return results, nil
}

// Surface returns a registered surface by name.
func (r *Runtime) Surface(name string) (peer.Surface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.surfaces[name]
	return s, ok
}

// Peer returns the live peer behind h.
func (r *Runtime) Peer(h resource.Handle) (peer.Peer, bool) {
	v, ok := r.table.Get(h)
	if !ok {
		return nil, false
	}
	return v.(peer.Peer), true
}

// Release drops the peer behind h. An owned layer is released with it.
func (r *Runtime) Release(h resource.Handle) bool {
	v, ok := r.table.Remove(h)
	if ok {
		r.log.Debug("peer released",
			zap.Uint32("handle", uint32(h)),
			zap.String("type", v.(peer.Peer).Type().Name))
	}
	return ok
}

// Len returns the number of live peers.
func (r *Runtime) Len() int {
	return r.table.Len()
}

// Each calls fn for every live peer in handle order until fn returns false.
// fn must not adopt or release peers.
func (r *Runtime) Each(fn func(resource.Handle, peer.Peer) bool) {
	r.table.Each(func(h resource.Handle, _ uint32, v any) bool {
		return fn(h, v.(peer.Peer))
	})
}

// Subscribe registers an observer for peer creation and release.
func (r *Runtime) Subscribe(o resource.Observer) {
	r.table.Subscribe(o)
}

// Close releases all live peers, notifying observers, and closes the wazero
// runtime.
func (r *Runtime) Close(ctx context.Context) error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	n := r.table.Len()
	r.table.Clear()
	r.log.Debug("runtime closed", zap.Int("released", n))
	if err := r.table.Close(); err != nil {
		return err
	}
	return r.wazero.Close(ctx)
}
