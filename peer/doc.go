// Package peer builds host-side peers for style layers.
//
// A peer wraps one layer and is handed to a host runtime, which refers to it
// by handle from then on. There is one peer type per layer kind; the registry
// maps each style.Kind to its type and every kind has an entry. Layers whose
// concrete type the registry does not serve get an UnknownPeer.
//
// Peers either borrow their layer, when a style already holds it, or own it:
//
//	h := peer.CreatePeer(env, st, st.Layer("water"))        // borrowed
//	h = peer.CreateOwnedPeer(env, st, style.Own(layer))     // owned
//
// An owned layer stays with its peer until AddTo moves it into a style, or is
// released when the host drops the peer.
//
// Each peer type exposes a Surface of host functions. RegisterSurfaces
// installs all of them into a Registrar such as host.Runtime, and WIT renders
// them as a WIT package.
package peer
