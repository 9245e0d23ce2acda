package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/style-peers/style"
)

// parseArg converts a command line value to a flat wasm value of type t.
// Unsigned 32-bit values also accept "#rrggbb" colors.
func parseArg(value string, t wit.Type) (uint64, error) {
	value = strings.TrimSpace(value)
	switch t.(type) {
	case wit.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return 0, err
		}
		if b {
			return 1, nil
		}
		return 0, nil
	case wit.U8, wit.U16, wit.U32:
		if strings.HasPrefix(value, "#") {
			c, err := style.ParseColor(value)
			if err != nil {
				return 0, err
			}
			return api.EncodeU32(c.Packed()), nil
		}
		v, err := strconv.ParseUint(value, 0, bitSize(t))
		if err != nil {
			return 0, err
		}
		return v, nil
	case wit.S8, wit.S16, wit.S32:
		v, err := strconv.ParseInt(value, 0, bitSize(t))
		if err != nil {
			return 0, err
		}
		return api.EncodeI32(int32(v)), nil
	case wit.U64:
		return strconv.ParseUint(value, 0, 64)
	case wit.S64:
		v, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return 0, err
		}
		return api.EncodeI64(v), nil
	case wit.F32:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return 0, err
		}
		return api.EncodeF32(float32(v)), nil
	case wit.F64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, err
		}
		return api.EncodeF64(v), nil
	default:
		return 0, fmt.Errorf("unsupported parameter type %T", t)
	}
}

func bitSize(t wit.Type) int {
	switch t.(type) {
	case wit.U8, wit.S8:
		return 8
	case wit.U16, wit.S16:
		return 16
	default:
		return 32
	}
}

func formatResult(v uint64, t wit.Type) string {
	switch t.(type) {
	case wit.Bool:
		return strconv.FormatBool(v != 0)
	case wit.F32:
		return strconv.FormatFloat(float64(api.DecodeF32(v)), 'g', -1, 32)
	case wit.F64:
		return strconv.FormatFloat(api.DecodeF64(v), 'g', -1, 64)
	case wit.S8, wit.S16, wit.S32:
		return strconv.FormatInt(int64(api.DecodeI32(v)), 10)
	case wit.S64:
		return strconv.FormatInt(int64(v), 10)
	case wit.U32:
		return strconv.FormatUint(uint64(api.DecodeU32(v)), 10)
	default:
		return strconv.FormatUint(v, 10)
	}
}
