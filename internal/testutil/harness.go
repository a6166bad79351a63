package testutil

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/factorygo/internal/ctxlog"
	"github.com/specialistvlad/factorygo/internal/engine"
	"github.com/specialistvlad/factorygo/internal/interpreter"
	"github.com/specialistvlad/factorygo/internal/registry"
	"github.com/specialistvlad/factorygo/modules/arith"
	"github.com/specialistvlad/factorygo/modules/console"
	"github.com/specialistvlad/factorygo/modules/control"
	"github.com/specialistvlad/factorygo/modules/logic"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// NewRegistry returns a registry holding the core station modules, with the
// console bound to stdin and stdout. Extra modules are registered after the
// core ones.
func NewRegistry(stdin io.Reader, stdout io.Writer, extra ...registry.Module) *registry.Registry {
	reg := registry.New()
	mods := []registry.Module{
		&control.Module{},
		&console.Module{In: stdin, Out: stdout},
		&arith.Module{},
		&logic.Module{},
	}
	for _, m := range append(mods, extra...) {
		m.Register(reg)
	}
	return reg
}

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Result    *engine.Result
	Err       error
}

// RunSource runs src through the interpreter with the core modules, the
// given stdin and a debug-level logger captured in the result.
func RunSource(t *testing.T, src, stdin string, opts interpreter.Options, extra ...registry.Module) *HarnessResult {
	t.Helper()
	return RunSourceWithContext(context.Background(), t, src, stdin, opts, extra...)
}

// RunSourceWithContext is RunSource with a caller-provided context.
func RunSourceWithContext(ctx context.Context, t *testing.T, src, stdin string, opts interpreter.Options, extra ...registry.Module) *HarnessResult {
	t.Helper()

	stdout := &SafeBuffer{}
	logs := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx = ctxlog.WithLogger(ctx, logger)

	t.Cleanup(func() {
		if os.Getenv("FACTORY_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	reg := NewRegistry(strings.NewReader(stdin), stdout, extra...)
	res, err := interpreter.Run(ctx, src, reg, opts)
	return &HarnessResult{
		Stdout:    stdout.String(),
		LogOutput: logs.String(),
		Result:    res,
		Err:       err,
	}
}
