package peer

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.bytecodealliance.org/wit"
)

func TestWIT_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "surfaces", []byte(WIT("maplibre:style", "0.1.0")))
}

func TestSignature(t *testing.T) {
	tests := []struct {
		name string
		fn   SurfaceFunc
		want string
	}{
		{"no params", SurfaceFunc{}, "func(self: u32)"},
		{"setter", SurfaceFunc{Params: []wit.Type{wit.F32{}}}, "func(self: u32, value: f32)"},
		{"getter", SurfaceFunc{Results: []wit.Type{wit.Bool{}}}, "func(self: u32) -> bool"},
		{
			"multi",
			SurfaceFunc{Params: []wit.Type{wit.U8{}, wit.S64{}}, Results: []wit.Type{wit.U32{}, wit.F64{}}},
			"func(self: u32, arg0: u8, arg1: s64) -> tuple<u32, f64>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Signature(tt.fn))
		})
	}
}

func TestWIT_NoVersion(t *testing.T) {
	out := WIT("maplibre:style", "")
	assert.Contains(t, out, "package maplibre:style;\n")
	assert.Contains(t, out, "interface unknown-layer {\n  is-unknown: func(self: u32) -> bool;\n  drop: func(self: u32);\n}\n")
}
