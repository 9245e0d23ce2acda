package host

import (
	"go.uber.org/zap"
)

const (
	DefaultNamespace = "maplibre:style"
	DefaultVersion   = "0.1.0"
)

// Options configures a Runtime.
type Options struct {
	Logger    *zap.Logger
	Namespace string
	Version   string
	// MemoryLimitPages caps guest memory in 64KB pages. 0 keeps the wazero
	// default.
	MemoryLimitPages uint32
}

// DefaultOptions returns default runtime configuration.
func DefaultOptions() Options {
	return Options{
		Namespace: DefaultNamespace,
		Version:   DefaultVersion,
	}
}

// Option adjusts Options.
type Option func(*Options)

func WithNamespace(ns string) Option {
	return func(o *Options) { o.Namespace = ns }
}

func WithVersion(v string) Option {
	return func(o *Options) { o.Version = v }
}

// WithLogger sets the logger for this runtime. Defaults to Logger().
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func WithMemoryLimitPages(pages uint32) Option {
	return func(o *Options) { o.MemoryLimitPages = pages }
}
