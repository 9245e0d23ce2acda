// Package config loads stylepeer settings from a TOML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"golang.org/x/mod/semver"

	"github.com/wippyai/style-peers/errors"
	"github.com/wippyai/style-peers/host"
)

// EnvPrefix prefixes every environment override, e.g. STYLEPEER_LOG_LEVEL.
const EnvPrefix = "STYLEPEER_"

type Config struct {
	// Style is the default style document for commands that take one.
	Style string `toml:"style" env:"STYLE"`
	Log   Log    `toml:"log" envPrefix:"LOG_"`
	Host  Host   `toml:"host" envPrefix:"HOST_"`
}

type Log struct {
	Level       string `toml:"level" env:"LEVEL"`
	Development bool   `toml:"development" env:"DEVELOPMENT"`
}

type Host struct {
	Namespace        string `toml:"namespace" env:"NAMESPACE"`
	Version          string `toml:"version" env:"VERSION"`
	MemoryLimitPages uint32 `toml:"memory_limit_pages" env:"MEMORY_LIMIT_PAGES"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Host: Host{
			Namespace: host.DefaultNamespace,
			Version:   host.DefaultVersion,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, env.ToMap(os.Environ()))
}

// LoadWithEnv is Load with an explicit environment. A nil environ is empty.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err,
				fmt.Sprintf("load config %s", path))
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidData).
				Value(undecoded[0].String()).
				Detail("load config %s: unknown key %q", path, undecoded[0].String()).
				Build()
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse env")
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Style = strings.TrimSpace(c.Style)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Host.Namespace = strings.TrimSpace(c.Host.Namespace)
	c.Host.Version = strings.TrimPrefix(strings.TrimSpace(c.Host.Version), "v")
}

var namespacePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*:[a-z][a-z0-9-]*$`)

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, err)
	}
	if !namespacePattern.MatchString(c.Host.Namespace) {
		return invalid("host.namespace", c.Host.Namespace, fmt.Errorf("want <namespace>:<package>"))
	}
	if c.Host.Version != "" && !semver.IsValid("v"+c.Host.Version) {
		return invalid("host.version", c.Host.Version, fmt.Errorf("not a semantic version"))
	}
	return nil
}

func invalid(key string, v any, cause error) error {
	return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Value(v).
		Cause(cause).
		Detail("invalid %s %q", key, v).
		Build()
}

// Logger builds the zap logger described by c.Log.
func (c Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, invalid("log.level", c.Log.Level, err)
	}
	zc.Level = level
	return zc.Build()
}

// HostOptions returns the host runtime options described by c.Host.
func (c Config) HostOptions() []host.Option {
	return []host.Option{
		host.WithNamespace(c.Host.Namespace),
		host.WithVersion(c.Host.Version),
		host.WithMemoryLimitPages(c.Host.MemoryLimitPages),
	}
}
