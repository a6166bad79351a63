// Package console provides the stations that talk to the program's standard
// streams.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
)

// Module implements the registry.Module interface for this package. In and
// Out are the streams the program reads from and writes to.
type Module struct {
	In  io.Reader
	Out io.Writer
}

// Register registers the console stations with the registry.
func (m *Module) Register(r *registry.Registry) {
	var in *bufio.Reader
	if m.In != nil {
		in = bufio.NewReader(m.In)
	}

	r.Register(&registry.Kind{
		ID:          "print",
		Inputs:      1,
		Effects:     true,
		Procedure:   m.printer(""),
		Description: "Writes the pallet to standard output.",
	})
	r.Register(&registry.Kind{
		ID:          "println",
		Inputs:      1,
		Effects:     true,
		Procedure:   m.printer("\n"),
		Description: "Writes the pallet and a newline to standard output.",
	})
	r.Register(&registry.Kind{
		ID:          "readln",
		Inputs:      1,
		Output:      true,
		Effects:     true,
		Procedure:   readLine(in),
		Description: "Waits for a pallet, then reads one line of standard input as a string.",
	})
}

func (m *Module) printer(suffix string) registry.Procedure {
	return func(in []*pallet.Pallet) (*pallet.Pallet, error) {
		if in[0] == nil {
			return nil, fmt.Errorf("Expected a pallet, received: %s", pallet.Describe(in))
		}
		if m.Out == nil {
			return nil, nil
		}
		if _, err := io.WriteString(m.Out, in[0].Text()+suffix); err != nil {
			return nil, fmt.Errorf("Failed to write to standard output: %v", err)
		}
		return nil, nil
	}
}

func readLine(in *bufio.Reader) registry.Procedure {
	return func([]*pallet.Pallet) (*pallet.Pallet, error) {
		if in == nil {
			return nil, errors.New("Failed to read line: no input stream")
		}
		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return nil, fmt.Errorf("Failed to read line: %v", err)
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		out := pallet.String(line)
		return &out, nil
	}
}
