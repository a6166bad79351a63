package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func ptr[T any](v T) *T { return &v }

func TestModelValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		model Model
		want  []string
	}{
		{name: "empty", model: Model{}},
		{
			name: "valid",
			model: Model{
				LogLevel:  ptr("debug"),
				LogFormat: ptr("json"),
				Workers:   ptr(8),
				MaxSteps:  ptr(0),
				Constants: map[string]cty.Value{"pi": cty.NumberFloatVal(3)},
			},
		},
		{
			name: "everything wrong",
			model: Model{
				LogLevel:  ptr("loud"),
				LogFormat: ptr("xml"),
				Workers:   ptr(0),
				MaxSteps:  ptr(-1),
				Constants: map[string]cty.Value{"true": cty.True, "": cty.False},
			},
			want: []string{
				`log_level: unknown level "loud"`,
				`log_format: unknown format "xml"`,
				"workers: must be at least 1, got 0",
				"max_steps: must not be negative, got -1",
				`constants: "" is reserved`,
				`constants: "true" is reserved`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.model.Validate()
			if len(tc.want) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tc.want {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}
