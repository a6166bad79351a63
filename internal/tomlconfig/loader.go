package tomlconfig

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/factorygo/internal/config"
	"github.com/specialistvlad/factorygo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the TOML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// factory.toml key mapping to the settings model.
type fileConfig struct {
	LogLevel  string         `toml:"log_level"`
	LogFormat string         `toml:"log_format"`
	Color     bool           `toml:"color"`
	Trace     bool           `toml:"trace"`
	Benchmark bool           `toml:"benchmark"`
	Workers   int            `toml:"workers"`
	MaxSteps  int            `toml:"max_steps"`
	FanOut    bool           `toml:"fan_out"`
	Constants map[string]any `toml:"constants"`
}

// Load decodes the TOML file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	ctxlog.FromContext(ctx).Debug("TOML loader started.", "path", path)

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return l.translate(ctx, raw, meta, path)
}

// LoadString decodes src as if it had been read from filename.
func (l *Loader) LoadString(ctx context.Context, src, filename string) (*config.Model, error) {
	var raw fileConfig
	meta, err := toml.Decode(src, &raw)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return l.translate(ctx, raw, meta, filename)
}

func (l *Loader) translate(ctx context.Context, raw fileConfig, meta toml.MetaData, path string) (*config.Model, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("load settings: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	model := &config.Model{Constants: make(map[string]cty.Value)}
	if meta.IsDefined("log_level") {
		model.LogLevel = ptr(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("log_format") {
		model.LogFormat = ptr(strings.TrimSpace(raw.LogFormat))
	}
	if meta.IsDefined("color") {
		model.Color = ptr(raw.Color)
	}
	if meta.IsDefined("trace") {
		model.Trace = ptr(raw.Trace)
	}
	if meta.IsDefined("benchmark") {
		model.Benchmark = ptr(raw.Benchmark)
	}
	if meta.IsDefined("workers") {
		model.Workers = ptr(raw.Workers)
	}
	if meta.IsDefined("max_steps") {
		model.MaxSteps = ptr(raw.MaxSteps)
	}
	if meta.IsDefined("fan_out") {
		model.FanOut = ptr(raw.FanOut)
	}

	names := make([]string, 0, len(raw.Constants))
	for name := range raw.Constants {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		val, err := toCty(raw.Constants[name])
		if err != nil {
			return nil, fmt.Errorf("load settings: constant %q: %w", name, err)
		}
		model.Constants[name] = val
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("TOML loading complete.", "constants", len(model.Constants))
	return model, nil
}

// toCty converts a decoded TOML scalar into a cty value.
func toCty(v any) (cty.Value, error) {
	switch v := v.(type) {
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case float64:
		return cty.NumberFloatVal(v), nil
	}
	return cty.NilVal, fmt.Errorf("unsupported value of type %T, expected a string, number or bool", v)
}

func ptr[T any](v T) *T {
	return &v
}
