package peer

import (
	"context"

	"go.uber.org/zap"
)

// Registrar installs surfaces into a host runtime.
type Registrar interface {
	RegisterSurface(ctx context.Context, s Surface) error
}

// RegisterSurfaces installs the base surface, the surface of every registry
// entry and the fallback surface, in that order. It stops at the first error.
func RegisterSurfaces(ctx context.Context, r Registrar) error {
	for _, s := range Surfaces() {
		if err := r.RegisterSurface(ctx, s); err != nil {
			return err
		}
		Logger().Debug("surface registered",
			zap.String("surface", s.Name),
			zap.Uint32("type_id", s.TypeID),
			zap.Int("funcs", len(s.Funcs)))
	}
	return nil
}
