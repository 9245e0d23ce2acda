package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // style document parsing
	PhaseStyle    Phase = "style"    // style mutation
	PhaseDispatch Phase = "dispatch" // peer construction
	PhaseBridge   Phase = "bridge"   // peer to host handle
	PhaseHost     Phase = "host"     // host surface registration and calls
	PhaseConfig   Phase = "config"   // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidData    Kind = "invalid_data"
	KindInvalidInput   Kind = "invalid_input"
	KindUnsupported    Kind = "unsupported"
	KindNotFound       Kind = "not_found"
	KindAlreadyExists  Kind = "already_exists"
	KindTypeMismatch   Kind = "type_mismatch"
	KindConsumed       Kind = "consumed"
	KindNotOwned       Kind = "not_owned"
	KindClosed         Kind = "closed"
	KindRegistration   Kind = "registration"
	KindNotInitialized Kind = "not_initialized"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Layer  string
	GoType string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Layer != "" {
		b.WriteString(" at layer ")
		b.WriteString(strings.TrimSpace(e.Layer))
	}

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Layer sets the id of the layer involved
func (b *Builder) Layer(id string) *Builder {
	b.err.Layer = id
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotFound creates an error for a layer id that does not exist
func NotFound(phase Phase, layer string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Layer:  layer,
		Detail: "no such layer",
	}
}

// AlreadyExists creates an error for a duplicate layer id
func AlreadyExists(phase Phase, layer string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAlreadyExists,
		Layer:  layer,
		Detail: "layer id already in use",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, layer string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Layer:  layer,
		Detail: detail,
	}
}

// Consumed reports reuse of an ownership token that was already taken
func Consumed(phase Phase, layer string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindConsumed,
		Layer:  layer,
		Detail: "ownership already transferred",
	}
}

// NotOwned reports an operation that requires ownership of the layer
func NotOwned(phase Phase, layer string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotOwned,
		Layer:  layer,
		Detail: "peer does not own its layer",
	}
}

// Registration creates a host registration error
func Registration(phase Phase, namespace, name string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("failed to register %s#%s", namespace, name),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
