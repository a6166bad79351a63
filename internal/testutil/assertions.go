package testutil

import (
	"errors"
	"testing"

	"github.com/specialistvlad/factorygo/internal/diag"
	"github.com/stretchr/testify/require"
)

// RequireDiag checks that err carries a diag.Error of the given kind and
// message, and returns it for further assertions on its span.
func RequireDiag(t *testing.T, err error, kind diag.Kind, msg string) *diag.Error {
	t.Helper()

	var derr *diag.Error
	require.True(t, errors.As(err, &derr), "expected a diag.Error, got %v", err)
	require.Equal(t, kind, derr.Kind, "unexpected error kind for %q", derr.Msg)
	require.Equal(t, msg, derr.Msg)
	return derr
}
