package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/factorygo/internal/ctxlog"
)

type controlShape struct {
	id       string
	behavior Behavior
	inputs   int
	output   bool
}

var controlKinds = []controlShape{
	{"start", Start, 0, true},
	{"exit", Exit, 1, false},
	{"joint", Joint, 1, true},
	{"assign", Assign, 1, true},
}

// Validate checks that the control kinds exist with the shapes the builder
// and engine depend on, and that every generic kind can actually be called.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, want := range controlKinds {
		idx, ok := r.Lookup(want.id)
		if !ok {
			errs = append(errs, fmt.Sprintf("control station '%s' is not registered", want.id))
			continue
		}
		k := r.Kind(idx)
		if k.Behavior != want.behavior {
			errs = append(errs, fmt.Sprintf("station '%s': behavior is %s, expected %s", want.id, k.Behavior, want.behavior))
		}
		if k.Inputs != want.inputs || k.Output != want.output {
			errs = append(errs, fmt.Sprintf("station '%s': has %d inputs and output=%t, expected %d inputs and output=%t",
				want.id, k.Inputs, k.Output, want.inputs, want.output))
		}
	}

	seen := make(map[Behavior]string)
	for _, k := range r.kinds {
		if k.Inputs < 0 {
			errs = append(errs, fmt.Sprintf("station '%s': negative input count %d", k.ID, k.Inputs))
		}
		if k.Behavior == Generic {
			if k.Procedure == nil {
				errs = append(errs, fmt.Sprintf("station '%s': generic station has no procedure", k.ID))
			}
			if k.Inputs == 0 {
				logger.Warn("Generic station kind takes no inputs and can never fire.", "id", k.ID)
			}
			continue
		}
		if other, dup := seen[k.Behavior]; dup {
			errs = append(errs, fmt.Sprintf("station '%s': behavior %s already provided by '%s'", k.ID, k.Behavior, other))
		}
		seen[k.Behavior] = k.ID
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "kinds", len(r.kinds))
	return nil
}
