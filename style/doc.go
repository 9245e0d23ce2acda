// Package style is the core object model: a style document and the closed set of
// layer kinds it contains.
//
// # Layers
//
// Layer is a sealed interface. Every layer type embeds Base, which carries the
// properties shared by all kinds (id, source, visibility, zoom range) and the
// unexported method that seals the interface. The known kinds are:
//
//	background, circle, custom, fill-extrusion, fill, line, raster, symbol
//
// KindOf resolves the concrete kind of a Layer with a type switch over those
// types. A type declared elsewhere that embeds Base is a Layer too, but KindOf
// does not recognize it.
//
// # Ownership
//
// A Style owns the layers added to it. A layer outside any style is held through
// a Unique, which can be consumed exactly once:
//
//	u := style.Own(style.NewCircleLayer("pois", "composite"))
//	if err := st.AddLayer(u, ""); err != nil {
//	    return err
//	}
//	// u is now empty; the style owns the layer.
//
//	u, err := st.RemoveLayer("pois")
//	// u owns the layer again.
//
// # Documents
//
// Load parses a style document (JSON or YAML) into a Style:
//
//	st, err := style.LoadFile("streets.json")
package style
