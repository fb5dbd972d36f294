// Package print provides the built-in "print" seeder kind: it writes a
// message and the outputs of its declared dependencies to the run's output
// writer. Useful as a terminal node while developing a plan.
package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/vk/seedweave/internal/registry"
	"github.com/vk/seedweave/internal/seeder"
)

// Input is the argument schema of the "print" kind.
type Input struct {
	Message string `hcl:"message,optional"`
}

// Module registers the "print" kind.
type Module struct {
	// Out receives the rendered lines. Nil means os.Stdout.
	Out io.Writer
}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind("print", &registry.Kind{
		Description: "print dependency outputs",
		NewInput:    func() any { return new(Input) },
		Run:         m.run,
	})
}

func (m *Module) run(_ context.Context, input any, rc *seeder.RunContext) (any, error) {
	in := input.(*Input)
	out := m.Out
	if out == nil {
		out = os.Stdout
	}

	if in.Message != "" {
		fmt.Fprintln(out, in.Message)
	}

	names := rc.Deps.Names()
	sort.Strings(names)
	for _, name := range names {
		v, err := rc.Deps.Get(name)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "%s: %v\n", name, v)
	}
	return nil, nil
}
