package style

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/wippyai/style-peers/errors"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// ParseColor parses "#rgb", "#rrggbb" and "transparent".
func ParseColor(s string) (Color, error) {
	c, err := parseColor(s)
	if err != nil {
		return Color{}, err
	}
	return c, nil
}

func parseColor(s string) (Color, *errors.Error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return Transparent, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Value(s).
			Cause(err).
			Detail("invalid color %q", s).
			Build()
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}, nil
}

// Packed encodes c as 0xRRGGBBAA.
func (c Color) Packed() uint32 {
	return uint32(channel(c.R))<<24 | uint32(channel(c.G))<<16 | uint32(channel(c.B))<<8 | uint32(channel(c.A))
}

// UnpackColor decodes a 0xRRGGBBAA value.
func UnpackColor(v uint32) Color {
	return Color{
		R: float32(v>>24&0xff) / 255,
		G: float32(v>>16&0xff) / 255,
		B: float32(v>>8&0xff) / 255,
		A: float32(v&0xff) / 255,
	}
}

// Hex renders c as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}

func channel(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
