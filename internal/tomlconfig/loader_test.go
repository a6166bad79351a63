package tomlconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestLoadString(t *testing.T) {
	t.Parallel()

	src := `
log_format = "json"
trace = true
workers = 2

[constants]
greeting = "hello"
answer = 42
half = 0.5
`
	model, err := NewLoader().LoadString(context.Background(), src, "factory.toml")
	require.NoError(t, err)

	require.NotNil(t, model.LogFormat)
	assert.Equal(t, "json", *model.LogFormat)
	require.NotNil(t, model.Trace)
	assert.True(t, *model.Trace)
	require.NotNil(t, model.Workers)
	assert.Equal(t, 2, *model.Workers)
	assert.Nil(t, model.LogLevel)
	assert.Nil(t, model.FanOut)

	require.Len(t, model.Constants, 3)
	assert.True(t, model.Constants["greeting"].RawEquals(cty.StringVal("hello")))
	assert.True(t, model.Constants["answer"].RawEquals(cty.NumberIntVal(42)))
	assert.True(t, model.Constants["half"].RawEquals(cty.NumberFloatVal(0.5)))
}

func TestExplicitFalseIsDefined(t *testing.T) {
	t.Parallel()

	model, err := NewLoader().LoadString(context.Background(), "color = false\n", "factory.toml")
	require.NoError(t, err)
	require.NotNil(t, model.Color)
	assert.False(t, *model.Color)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "factory.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_steps = 50\nbenchmark = true\n"), 0o644))

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, model.MaxSteps)
	assert.Equal(t, 50, *model.MaxSteps)
	require.NotNil(t, model.Benchmark)
	assert.True(t, *model.Benchmark)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "syntax", src: "workers = ", wantErr: "load settings"},
		{name: "unknown key", src: "colour = true", wantErr: "unknown keys in factory.toml: colour"},
		{name: "bad format", src: `log_format = "xml"`, wantErr: `log_format: unknown format "xml"`},
		{name: "reserved constant", src: "[constants]\n\"false\" = 1", wantErr: `constants: "false" is reserved`},
		{name: "array constant", src: "[constants]\nlist = [1, 2]", wantErr: `constant "list": unsupported value of type []interface {}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewLoader().LoadString(context.Background(), tc.src, "factory.toml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
