package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passThrough(in []*pallet.Pallet) (*pallet.Pallet, error) {
	return in[0], nil
}

func controlRegistry() *Registry {
	r := New()
	r.Register(&Kind{ID: "start", Output: true, Behavior: Start})
	r.Register(&Kind{ID: "exit", Inputs: 1, Behavior: Exit})
	r.Register(&Kind{ID: "joint", Inputs: 1, Output: true, Behavior: Joint})
	r.Register(&Kind{ID: "assign", Inputs: 1, Output: true, Behavior: Assign})
	return r
}

func TestLookup(t *testing.T) {
	t.Parallel()

	r := controlRegistry()
	r.Register(&Kind{ID: "add", Alias: "+", Inputs: 2, Output: true, Procedure: passThrough})

	byID, ok := r.Lookup("add")
	require.True(t, ok)
	byAlias, ok := r.Lookup("+")
	require.True(t, ok)
	assert.Equal(t, byID, byAlias)
	assert.Equal(t, 4, byID)
	assert.Equal(t, "add", r.Kind(byID).ID)

	_, ok = r.Lookup("nope")
	assert.False(t, ok)
	_, ok = r.Lookup("")
	assert.False(t, ok, "empty alias must not be indexed")
	assert.Equal(t, 5, r.Len())
	assert.Len(t, r.Kinds(), 5)
}

func TestRegisterPanicsOnDuplicates(t *testing.T) {
	t.Parallel()

	r := controlRegistry()
	assert.Panics(t, func() { r.Register(&Kind{ID: "start"}) })
	r.Register(&Kind{ID: "sub", Alias: "-", Procedure: passThrough})
	assert.Panics(t, func() { r.Register(&Kind{ID: "minus", Alias: "-"}) })
	assert.Panics(t, func() { r.Register(&Kind{}) })

	idx, ok := r.Lookup("-")
	require.True(t, ok)
	assert.Equal(t, "sub", r.Kind(idx).ID, "the first kind keeps the name")
	_, ok = r.Lookup("minus")
	assert.False(t, ok, "a rejected kind is not half-registered")
	assert.Equal(t, 6, r.Len())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		setup   func() *Registry
		wantErr []string
	}{
		{
			name:  "control kinds only",
			setup: controlRegistry,
		},
		{
			name: "missing exit and bad generic",
			setup: func() *Registry {
				r := New()
				r.Register(&Kind{ID: "start", Output: true, Behavior: Start})
				r.Register(&Kind{ID: "joint", Inputs: 1, Output: true, Behavior: Joint})
				r.Register(&Kind{ID: "assign", Inputs: 1, Output: true, Behavior: Assign})
				r.Register(&Kind{ID: "broken", Inputs: 1})
				return r
			},
			wantErr: []string{
				"control station 'exit' is not registered",
				"station 'broken': generic station has no procedure",
			},
		},
		{
			name: "wrong start shape",
			setup: func() *Registry {
				r := New()
				r.Register(&Kind{ID: "start", Inputs: 1, Behavior: Start})
				r.Register(&Kind{ID: "exit", Inputs: 1, Behavior: Exit})
				r.Register(&Kind{ID: "joint", Inputs: 1, Output: true, Behavior: Joint})
				r.Register(&Kind{ID: "assign", Inputs: 1, Output: true, Behavior: Assign})
				return r
			},
			wantErr: []string{"station 'start': has 1 inputs and output=false"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.setup().Validate(context.Background())
			if len(tc.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
