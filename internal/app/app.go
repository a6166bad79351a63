package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/factorygo/internal/config"
	"github.com/specialistvlad/factorygo/internal/ctxlog"
	"github.com/specialistvlad/factorygo/internal/hclconfig"
	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
	"github.com/specialistvlad/factorygo/internal/tomlconfig"
)

// App encapsulates the driver's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	errW      io.Writer
	logger    *slog.Logger
	registry  *registry.Registry
	config    *Config
	constants map[string]pallet.Pallet

	// source is the text of the last program Run read, kept for rendering
	// diagnostics.
	source string
}

// NewApp is the constructor for the driver. It loads the optional settings
// file, merges it under the command-line settings, and builds an isolated
// logger and station registry. in and outW become the program's standard
// streams; logs, diagnostics and benchmark output go to errW.
//
// When modules is empty the core station modules are registered.
func NewApp(ctx context.Context, in io.Reader, outW, errW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	var constants map[string]pallet.Pallet
	if cfg.ConfigPath != "" {
		model, err := loadSettings(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.Merge(model)
		constants, err = convertConstants(model)
		if err != nil {
			return nil, err
		}
	}

	level := cfg.LogLevel
	if cfg.Trace {
		level = "debug"
	}
	logger := newLogger(level, cfg.LogFormat, errW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.", "level", level, "format", cfg.LogFormat)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(in, outW)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All station modules registered.", "modules", len(modules), "kinds", reg.Len())

	if err := reg.Validate(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:      outW,
		errW:      errW,
		logger:    logger,
		registry:  reg,
		config:    cfg,
		constants: constants,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Config returns the effective configuration after merging the settings file.
func (a *App) Config() *Config {
	return a.config
}

// loaderFor picks the settings loader matching the file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hclconfig.NewLoader(), nil
	case ".toml":
		return tomlconfig.NewLoader(), nil
	}
	return nil, fmt.Errorf("unsupported settings file %q: expected a .hcl or .toml extension", path)
}

func loadSettings(ctx context.Context, path string) (*config.Model, error) {
	loader, err := loaderFor(path)
	if err != nil {
		return nil, err
	}
	model, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return model, nil
}

func convertConstants(model *config.Model) (map[string]pallet.Pallet, error) {
	names := make([]string, 0, len(model.Constants))
	for name := range model.Constants {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]pallet.Pallet, len(names))
	for _, name := range names {
		p, err := pallet.FromCty(model.Constants[name])
		if err != nil {
			return nil, fmt.Errorf("constant %q: %w", name, err)
		}
		out[name] = p
	}
	return out, nil
}
