package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/factorygo/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "defaults",
			args: []string{"-no-color", "main.factory"},
			want: &app.Config{
				SourcePath:  "main.factory",
				LogFormat:   "text",
				LogLevel:    "warn",
				WorkerCount: 1,
				Explicit:    map[string]bool{app.KeyColor: true},
			},
		},
		{
			name: "everything set",
			args: []string{
				"-config", "factory.toml", "-log-level", "DEBUG", "-log-format", "json",
				"-no-color", "-b", "-trace", "-workers", "4", "-max-steps", "500", "-fan-out",
				"loop.factory",
			},
			want: &app.Config{
				SourcePath:  "loop.factory",
				ConfigPath:  "factory.toml",
				LogFormat:   "json",
				LogLevel:    "debug",
				Trace:       true,
				Benchmark:   true,
				WorkerCount: 4,
				MaxSteps:    500,
				FanOut:      true,
				Explicit: map[string]bool{
					app.KeyLogLevel: true, app.KeyLogFormat: true, app.KeyColor: true,
					app.KeyBenchmark: true, app.KeyTrace: true, app.KeyWorkers: true,
					app.KeyMaxSteps: true, app.KeyFanOut: true,
				},
			},
		},
		{
			name: "long benchmark flag",
			args: []string{"-no-color", "-benchmark", "main.factory"},
			want: &app.Config{
				SourcePath:  "main.factory",
				LogFormat:   "text",
				LogLevel:    "warn",
				Benchmark:   true,
				WorkerCount: 1,
				Explicit:    map[string]bool{app.KeyColor: true, app.KeyBenchmark: true},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, exit)
			if diff := cmp.Diff(tc.want, cfg); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseExits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "help", args: []string{"-h"}},
		{name: "no program", args: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}
			cfg, exit, err := Parse(tc.args, out)
			require.NoError(t, err)
			assert.True(t, exit)
			assert.Nil(t, cfg)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-verbose", "x.factory"}, wantMsg: "flag provided but not defined: -verbose"},
		{name: "bad format", args: []string{"-log-format", "xml", "x.factory"}, wantMsg: "invalid log-format"},
		{name: "bad level", args: []string{"-log-level", "loud", "x.factory"}, wantMsg: "invalid log-level"},
		{name: "zero workers", args: []string{"-workers", "0", "x.factory"}, wantMsg: "invalid workers"},
		{name: "negative steps", args: []string{"-max-steps", "-1", "x.factory"}, wantMsg: "invalid max-steps"},
		{name: "two programs", args: []string{"a.factory", "b.factory"}, wantMsg: "expected exactly one program, got 2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
