// Package host exposes peers to a wazero runtime.
//
// Runtime implements peer.Env and peer.Registrar. Each peer surface becomes a
// host module named "<namespace>/<surface>@<version>":
//
//	rt, _ := host.New(ctx)
//	_ = rt.Start(ctx)
//	h := peer.CreatePeer(rt, st, st.Layer("roads"))
//	res, _ := rt.Call(ctx, "line-layer", "get-width", uint64(h))
//
// Every function takes the peer handle as its first i32 parameter. Calls with
// a stale handle, or a handle of another peer type on a typed surface, trap.
// Each module also exports drop, which releases the handle.
//
// Go code reaches these functions through Call, which goes via a generated
// guest module "<module>#caller" that imports and re-exports each function.
package host
