package app

import (
	"errors"

	"github.com/specialistvlad/factorygo/internal/config"
)

// Setting keys shared by command-line flags and settings files.
const (
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyColor     = "color"
	KeyTrace     = "trace"
	KeyBenchmark = "benchmark"
	KeyWorkers   = "workers"
	KeyMaxSteps  = "max_steps"
	KeyFanOut    = "fan_out"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SourcePath string // program to run
	ConfigPath string // optional .hcl or .toml settings file

	LogFormat   string
	LogLevel    string
	Color       bool
	Trace       bool
	Benchmark   bool
	WorkerCount int
	MaxSteps    int
	FanOut      bool

	// Explicit records the settings given on the command line. A settings
	// file never overrides them.
	Explicit map[string]bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SourcePath == "" {
		return nil, errors.New("SourcePath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}
	return &cfg, nil
}

// Merge copies every setting present in m that was not given explicitly.
func (c *Config) Merge(m *config.Model) {
	if m == nil {
		return
	}
	mergeValue(c, KeyLogLevel, m.LogLevel, &c.LogLevel)
	mergeValue(c, KeyLogFormat, m.LogFormat, &c.LogFormat)
	mergeValue(c, KeyColor, m.Color, &c.Color)
	mergeValue(c, KeyTrace, m.Trace, &c.Trace)
	mergeValue(c, KeyBenchmark, m.Benchmark, &c.Benchmark)
	mergeValue(c, KeyWorkers, m.Workers, &c.WorkerCount)
	mergeValue(c, KeyMaxSteps, m.MaxSteps, &c.MaxSteps)
	mergeValue(c, KeyFanOut, m.FanOut, &c.FanOut)
}

func mergeValue[T any](c *Config, key string, from *T, to *T) {
	if from == nil || c.Explicit[key] {
		return
	}
	*to = *from
}
