package app

import (
	"io"

	"github.com/specialistvlad/factorygo/internal/registry"
	"github.com/specialistvlad/factorygo/modules/arith"
	"github.com/specialistvlad/factorygo/modules/console"
	"github.com/specialistvlad/factorygo/modules/control"
	"github.com/specialistvlad/factorygo/modules/logic"
)

// coreModules is the definitive list of station modules compiled into the
// factory binary, in registration order. The console module is bound to the
// program's streams.
func coreModules(in io.Reader, out io.Writer) []registry.Module {
	return []registry.Module{
		&control.Module{},
		&console.Module{In: in, Out: out},
		&arith.Module{},
		&logic.Module{},
	}
}
