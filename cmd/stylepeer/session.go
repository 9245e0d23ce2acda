package main

import (
	"context"
	"fmt"

	"github.com/wippyai/style-peers/host"
	"github.com/wippyai/style-peers/peer"
	"github.com/wippyai/style-peers/resource"
	"github.com/wippyai/style-peers/style"
)

// session is a loaded style with a started host runtime.
type session struct {
	style *style.Style
	rt    *host.Runtime
	path  string
}

// layerPeer is one layer of the session and the handle of its peer.
type layerPeer struct {
	layer  style.Layer
	typ    *peer.PeerType
	handle resource.Handle
}

func openSession(ctx context.Context, opts *rootOptions, path string) (*session, error) {
	if path == "" {
		return nil, fmt.Errorf("no style given and none configured")
	}

	st, err := style.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load style: %w", err)
	}

	rt, err := host.New(ctx, append(opts.cfg.HostOptions(), host.WithLogger(opts.log.Named("host")))...)
	if err != nil {
		return nil, fmt.Errorf("create runtime: %w", err)
	}
	if err := rt.Start(ctx); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("start runtime: %w", err)
	}

	return &session{style: st, rt: rt, path: path}, nil
}

func (s *session) Close(ctx context.Context) error {
	return s.rt.Close(ctx)
}

// bridge creates a borrowed peer for the layer with the given id.
func (s *session) bridge(id string) (layerPeer, error) {
	l := s.style.Layer(id)
	if l == nil {
		return layerPeer{}, fmt.Errorf("style %s has no layer %q", s.style.Name(), id)
	}
	h := peer.CreatePeer(s.rt, s.style, l)
	p, _ := s.rt.Peer(h)
	return layerPeer{layer: l, typ: p.Type(), handle: h}, nil
}

// bridgeAll creates a borrowed peer for every layer, bottom to top.
func (s *session) bridgeAll() []layerPeer {
	out := make([]layerPeer, 0, s.style.Len())
	for _, l := range s.style.Layers() {
		lp, _ := s.bridge(l.ID())
		out = append(out, lp)
	}
	return out
}

// surfaces returns the surfaces that accept a peer of type t.
func (s *session) surfaces(t *peer.PeerType) []peer.Surface {
	var out []peer.Surface
	if base, ok := s.rt.Surface(peer.BaseSurfaceName); ok {
		out = append(out, base)
	}
	if typed, ok := s.rt.Surface(t.Name); ok {
		out = append(out, typed)
	}
	return out
}

// call invokes fn on surface for h with args parsed by the function's
// parameter types and formats the results.
func (s *session) call(ctx context.Context, h resource.Handle, surface, fn string, args []string) ([]string, error) {
	sf, ok := s.rt.Surface(surface)
	if !ok {
		return nil, fmt.Errorf("unknown surface %q", surface)
	}
	f, ok := sf.Func(fn)
	if !ok {
		return nil, fmt.Errorf("surface %s has no function %q", surface, fn)
	}
	if len(args) != len(f.Params) {
		return nil, fmt.Errorf("%s#%s takes %d argument(s), got %d", surface, fn, len(f.Params), len(args))
	}

	raw := []uint64{uint64(h)}
	for i, a := range args {
		v, err := parseArg(a, f.Params[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		raw = append(raw, v)
	}

	results, err := s.rt.Call(ctx, surface, fn, raw...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = formatResult(r, f.Results[i])
	}
	return out, nil
}
