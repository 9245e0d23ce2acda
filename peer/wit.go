package peer

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"
)

// WIT renders every surface as a WIT package. Handles are u32 resource
// indices passed as the first parameter.
func WIT(pkg, version string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s", pkg)
	if version != "" {
		fmt.Fprintf(&b, "@%s", version)
	}
	b.WriteString(";\n")

	for _, s := range Surfaces() {
		b.WriteString("\n")
		writeInterface(&b, s)
	}
	return b.String()
}

func writeInterface(b *strings.Builder, s Surface) {
	fmt.Fprintf(b, "interface %s {\n", s.Name)
	for _, f := range s.Funcs {
		fmt.Fprintf(b, "  %s: %s;\n", f.Name, Signature(f))
	}
	fmt.Fprintf(b, "  %s: func(self: u32);\n", DropFunc)
	b.WriteString("}\n")
}

// Signature renders f as a WIT function type, handle included.
func Signature(f SurfaceFunc) string {
	params := []string{"self: u32"}
	for i, p := range f.Params {
		name := "value"
		if len(f.Params) > 1 {
			name = fmt.Sprintf("arg%d", i)
		}
		params = append(params, name+": "+TypeName(p))
	}

	sig := "func(" + strings.Join(params, ", ") + ")"
	switch len(f.Results) {
	case 0:
	case 1:
		sig += " -> " + TypeName(f.Results[0])
	default:
		results := make([]string, len(f.Results))
		for i, r := range f.Results {
			results[i] = TypeName(r)
		}
		sig += " -> tuple<" + strings.Join(results, ", ") + ">"
	}
	return sig
}

// TypeName returns the WIT spelling of a primitive type.
func TypeName(t wit.Type) string {
	switch t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	default:
		return fmt.Sprintf("%T", t)
	}
}
