package interpreter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/factorygo/internal/diag"
	"github.com/specialistvlad/factorygo/internal/fsutil"
	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
	"github.com/specialistvlad/factorygo/internal/trace"
	"github.com/specialistvlad/factorygo/modules/arith"
	"github.com/specialistvlad/factorygo/modules/console"
	"github.com/specialistvlad/factorygo/modules/control"
	"github.com/specialistvlad/factorygo/modules/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(in string, out *strings.Builder) *registry.Registry {
	reg := registry.New()
	mods := []registry.Module{
		&control.Module{},
		&console.Module{In: strings.NewReader(in), Out: out},
		&arith.Module{},
		&logic.Module{},
	}
	for _, m := range mods {
		m.Register(reg)
	}
	return reg
}

// TestPrograms runs every program under testdata/programs and compares its
// standard output with the matching .out file. A .in file, when present, is
// fed to standard input.
func TestPrograms(t *testing.T) {
	t.Parallel()

	files, err := fsutil.FindFilesByExtension("testdata/programs", ".factory")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		base := strings.TrimSuffix(path, ".factory")
		t.Run(filepath.Base(base), func(t *testing.T) {
			t.Parallel()

			src, err := os.ReadFile(path)
			require.NoError(t, err)
			want, err := os.ReadFile(base + ".out")
			require.NoError(t, err)
			in, err := os.ReadFile(base + ".in")
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				require.NoError(t, err)
			}

			var out strings.Builder
			res, err := Run(context.Background(), string(src), newRegistry(string(in), &out), Options{FanOut: true, MaxSteps: 10000})
			require.NoError(t, err)
			assert.Equal(t, string(want), out.String())
			assert.Zero(t, res.Pending)
		})
	}
}

func TestHelloWorld(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	rec := &trace.Recorder{}
	res, err := Run(context.Background(), `[start]═─{"hi"}═─[println]`, newRegistry("", &out), Options{Sink: rec})
	require.NoError(t, err)

	assert.Equal(t, "hi\n", out.String())
	assert.Equal(t, 2, res.Steps)
	assert.False(t, res.Exited)
	assert.Equal(t, []string{
		"station 0 start @ 1:1 +7",
		"station 1 assign @ 1:10 +6",
		"station 2 println @ 1:18 +9",
		"belt 0 -> 1.0 (2 cells)",
		"belt 1 -> 2.0 (2 cells)",
		"step 1 moves=1",
		"fire 1 1 assign",
		`move 1 Pallet<s:"hi"> -> 2.0`,
		"step 2 moves=1",
		"fire 2 2 println",
		"halt 2 quiescent",
	}, rec.Events())
}

func TestExitStopsTheProgram(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		`[start]═─[]═─[exit]`,
		`         ║`,
		`         └─{"never"}═─[println]`,
	}, "\n")

	var out strings.Builder
	res, err := Run(context.Background(), src, newRegistry("", &out), Options{})
	require.NoError(t, err)
	assert.True(t, res.Exited)
	assert.Empty(t, out.String())
}

func TestConstants(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	opts := Options{Constants: map[string]pallet.Pallet{"greeting": pallet.String("hey")}}
	_, err := Run(context.Background(), `[start]═─{greeting}═─[println]`, newRegistry("", &out), opts)
	require.NoError(t, err)
	assert.Equal(t, "hey\n", out.String())
}

func TestFanOutIsOptIn(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("testdata/programs/for_loop.factory")
	require.NoError(t, err)

	var out strings.Builder
	_, err = Run(context.Background(), string(src), newRegistry("", &out), Options{})
	var derr *diag.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, diag.SyntaxKind, derr.Kind)
	assert.Equal(t, `Station "inc" has the wrong number of outputs: expected 1, found 2`, derr.Msg)
	assert.Empty(t, out.String(), "nothing runs when wiring fails")
}

func TestErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		src  string
		kind diag.Kind
		msg  string
	}{
		{
			name: "empty source",
			src:  "",
			kind: diag.SyntaxKind,
			msg:  "Empty source",
		},
		{
			name: "no start",
			src:  `[println]`,
			kind: diag.SyntaxKind,
			msg:  "Failed to find a start station",
		},
		{
			name: "unknown station",
			src:  `[start]═─[frobnicate]`,
			kind: diag.IdentifierKind,
			msg:  `Failed to find station type with identifier "frobnicate"`,
		},
		{
			name: "divide by zero",
			src:  `[start]═─{0}═─[]═─[/]═─[println]` + "\n" + `               ╚───┘`,
			kind: diag.RuntimeKind,
			msg:  "Attempted divide by zero",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			_, err := Run(context.Background(), tc.src, newRegistry("", &out), Options{})
			var derr *diag.Error
			require.True(t, errors.As(err, &derr), "got %v", err)
			assert.Equal(t, tc.kind, derr.Kind)
			assert.Equal(t, tc.msg, derr.Msg)
		})
	}
}

func TestCompileDoesNotRun(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	prog, err := Compile(context.Background(), `[start]═─{"hi"}═─[println]`, newRegistry("", &out), Options{})
	require.NoError(t, err)
	assert.Len(t, prog.Stations, 3)
	assert.Empty(t, out.String())
}

func TestRunsAreDeterministic(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("testdata/programs/arithmetic.factory")
	require.NoError(t, err)

	run := func() (string, []string, int) {
		var out strings.Builder
		rec := &trace.Recorder{}
		res, err := Run(context.Background(), string(src), newRegistry("", &out), Options{Sink: rec})
		require.NoError(t, err)
		return out.String(), rec.Events(), res.Steps
	}

	out1, events1, steps1 := run()
	out2, events2, steps2 := run()
	assert.Equal(t, out1, out2)
	assert.Equal(t, steps1, steps2)
	if diff := cmp.Diff(events1, events2); diff != "" {
		t.Errorf("trace mismatch (-first +second):\n%s", diff)
	}
}
