// Package stylepeers exposes MapLibre style layers to a WebAssembly host as
// typed peers.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	stylepeers/          Root package (documentation only)
//	├── style/           Layer model, styles, ownership and document loading
//	├── peer/            Peer types, registry, factory and host surfaces
//	├── host/            wazero host runtime implementing the peer boundary
//	├── resource/        Generation-checked handle table
//	├── config/          TOML and environment configuration
//	├── errors/          Structured error types for debugging
//	└── cmd/stylepeer/   Command line tool
//
// # Quick Start
//
// Create peers for the layers of a style:
//
//	rt, _ := host.New(ctx)
//	defer rt.Close(ctx)
//	_ = rt.Start(ctx)
//
//	st, _ := style.LoadFile("streets.json")
//	h := peer.CreatePeer(rt, st, st.Layer("roads"))
//	res, _ := rt.Call(ctx, "line-layer", "get-width", uint64(h))
//
// # Ownership
//
// A peer either borrows a layer held by a style or owns a layer no style
// holds yet. Owned layers are passed as *style.Unique, which can be consumed
// once; CreateOwnedPeer takes the layer out of it. AddTo moves an owned layer
// into a style and leaves the peer borrowing.
//
// # Dispatch
//
// style.KindOf resolves the concrete kind of a layer and the peer registry
// maps every kind to its peer type. Layer types declared outside package
// style have no kind and get the fallback UnknownPeer.
package stylepeers
