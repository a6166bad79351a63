package hclconfig

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/factorygo/internal/config"
	"github.com/specialistvlad/factorygo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the schema of a settings file.
type fileRoot struct {
	LogLevel  *string    `hcl:"log_level,optional"`
	LogFormat *string    `hcl:"log_format,optional"`
	Color     *bool      `hcl:"color,optional"`
	Trace     *bool      `hcl:"trace,optional"`
	Benchmark *bool      `hcl:"benchmark,optional"`
	Workers   *int       `hcl:"workers,optional"`
	MaxSteps  *int       `hcl:"max_steps,optional"`
	FanOut    *bool      `hcl:"fan_out,optional"`
	Constants *constants `hcl:"constants,block"`
}

// constants holds arbitrary attributes, one per named literal.
type constants struct {
	Body hcl.Body `hcl:",remain"`
}

// Load parses the HCL file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return l.decode(ctx, file.Body, path)
}

// LoadBytes parses src as if it had been read from filename.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, file.Body, filename)
}

func (l *Loader) decode(ctx context.Context, body hcl.Body, path string) (*config.Model, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := &config.Model{
		LogLevel:  root.LogLevel,
		LogFormat: root.LogFormat,
		Color:     root.Color,
		Trace:     root.Trace,
		Benchmark: root.Benchmark,
		Workers:   root.Workers,
		MaxSteps:  root.MaxSteps,
		FanOut:    root.FanOut,
		Constants: make(map[string]cty.Value),
	}

	if root.Constants != nil {
		attrs, diags := root.Constants.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to read constants in %s: %w", path, diags)
		}
		for name, attr := range attrs {
			// Constants are plain literals; no variables or functions are in scope.
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to evaluate constant %q in %s: %w", name, path, diags)
			}
			model.Constants[name] = val
		}
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("HCL loading complete.", "constants", len(model.Constants))
	return model, nil
}
