// Package wasm builds the small guest modules the host uses to call its own
// host functions. wazero refuses ExportedFunction on host modules, so every
// surface gets a caller module that imports its functions and re-exports a
// wrapper for each.
package wasm

import (
	"github.com/tetratelabs/wazero/api"
)

const (
	sectionType     = 0x01
	sectionImport   = 0x02
	sectionFunction = 0x03
	sectionExport   = 0x07
	sectionCode     = 0x0a

	kindFunc = 0x00

	opLocalGet = 0x20
	opCall     = 0x10
	opEnd      = 0x0b
)

// CallerBuilder builds a module that imports functions from one host module
// and exports a same-named wrapper for each.
type CallerBuilder struct {
	hostModuleName string
	funcs          []callerFunc
}

type callerFunc struct {
	name        string
	paramTypes  []api.ValueType
	resultTypes []api.ValueType
}

// NewCallerBuilder creates a builder importing from hostModuleName.
func NewCallerBuilder(hostModuleName string) *CallerBuilder {
	return &CallerBuilder{hostModuleName: hostModuleName}
}

// AddFunc adds a function to import and re-export.
func (b *CallerBuilder) AddFunc(name string, params, results []api.ValueType) {
	b.funcs = append(b.funcs, callerFunc{
		name:        name,
		paramTypes:  params,
		resultTypes: results,
	})
}

// Len returns the number of functions added.
func (b *CallerBuilder) Len() int {
	return len(b.funcs)
}

// Build generates the WASM module bytes. It returns nil when no function was
// added.
func (b *CallerBuilder) Build() []byte {
	if len(b.funcs) == 0 {
		return nil
	}

	wasm := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	wasm = appendSection(wasm, sectionType, b.buildTypeSection())
	wasm = appendSection(wasm, sectionImport, b.buildImportSection())
	wasm = appendSection(wasm, sectionFunction, b.buildFuncSection())
	wasm = appendSection(wasm, sectionExport, b.buildExportSection())
	wasm = appendSection(wasm, sectionCode, b.buildCodeSection())
	return wasm
}

// One type per function; import i and wrapper i share type i.
func (b *CallerBuilder) buildTypeSection() []byte {
	section := EncodeULEB128(uint32(len(b.funcs)))
	for _, f := range b.funcs {
		section = append(section, 0x60)
		section = append(section, EncodeULEB128(uint32(len(f.paramTypes)))...)
		for _, t := range f.paramTypes {
			section = append(section, ValTypeToWasm(t))
		}
		section = append(section, EncodeULEB128(uint32(len(f.resultTypes)))...)
		for _, t := range f.resultTypes {
			section = append(section, ValTypeToWasm(t))
		}
	}
	return section
}

func (b *CallerBuilder) buildImportSection() []byte {
	section := EncodeULEB128(uint32(len(b.funcs)))
	for i, f := range b.funcs {
		section = appendName(section, b.hostModuleName)
		section = appendName(section, f.name)
		section = append(section, kindFunc)
		section = append(section, EncodeULEB128(uint32(i))...)
	}
	return section
}

func (b *CallerBuilder) buildFuncSection() []byte {
	section := EncodeULEB128(uint32(len(b.funcs)))
	for i := range b.funcs {
		section = append(section, EncodeULEB128(uint32(i))...)
	}
	return section
}

// Wrappers follow the imports in the function index space.
func (b *CallerBuilder) buildExportSection() []byte {
	n := len(b.funcs)
	section := EncodeULEB128(uint32(n))
	for i, f := range b.funcs {
		section = appendName(section, f.name)
		section = append(section, kindFunc)
		section = append(section, EncodeULEB128(uint32(n+i))...)
	}
	return section
}

func (b *CallerBuilder) buildCodeSection() []byte {
	section := EncodeULEB128(uint32(len(b.funcs)))
	for i, f := range b.funcs {
		body := buildFuncBody(i, f)
		section = append(section, EncodeULEB128(uint32(len(body)))...)
		section = append(section, body...)
	}
	return section
}

func buildFuncBody(importIdx int, f callerFunc) []byte {
	body := []byte{0x00} // no locals
	for i := range f.paramTypes {
		body = append(body, opLocalGet)
		body = append(body, EncodeULEB128(uint32(i))...)
	}
	body = append(body, opCall)
	body = append(body, EncodeULEB128(uint32(importIdx))...)
	return append(body, opEnd)
}
