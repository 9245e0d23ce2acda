// Package errors provides structured error types for style peers.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the layer id and Go type involved, a detail message and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindUnsupported).
//		Layer("heat").
//		Detail("layer type %q is not supported", "heatmap").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseStyle, "water")
//	err := errors.AlreadyExists(errors.PhaseStyle, "water")
//
// All errors implement the standard error interface and support errors.Is/As.
// Two errors match under errors.Is when Phase and Kind are equal.
package errors
