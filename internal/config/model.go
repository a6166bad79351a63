package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Model is the unified representation of a settings file. Every setting is
// a pointer so that an absent key can be told apart from a zero value.
type Model struct {
	LogLevel  *string
	LogFormat *string
	Color     *bool
	Trace     *bool
	Benchmark *bool
	Workers   *int
	MaxSteps  *int
	FanOut    *bool

	// Constants are named literals usable inside {...} tokens.
	Constants map[string]cty.Value
}

// reserved literal names that a constant may not shadow.
var reserved = map[string]bool{"": true, "true": true, "false": true}

// Validate checks the model for values no loader can reject on its own.
// All problems are reported together.
func (m *Model) Validate() error {
	var errs []error
	if m.LogLevel != nil {
		switch *m.LogLevel {
		case "debug", "info", "warn", "error":
		default:
			errs = append(errs, fmt.Errorf("log_level: unknown level %q", *m.LogLevel))
		}
	}
	if m.LogFormat != nil && *m.LogFormat != "text" && *m.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format: unknown format %q", *m.LogFormat))
	}
	if m.Workers != nil && *m.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers: must be at least 1, got %d", *m.Workers))
	}
	if m.MaxSteps != nil && *m.MaxSteps < 0 {
		errs = append(errs, fmt.Errorf("max_steps: must not be negative, got %d", *m.MaxSteps))
	}

	names := make([]string, 0, len(m.Constants))
	for name := range m.Constants {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if reserved[name] {
			errs = append(errs, fmt.Errorf("constants: %q is reserved", name))
		}
	}
	return errors.Join(errs...)
}
