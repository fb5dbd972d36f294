// Package fakedata provides the built-in "fake" seeder kind: it generates a
// batch of fake records from a declarative field template. Generation runs
// inside a cached step, so re-runs with a file cache reuse the same batch.
package fakedata

import (
	"context"
	"fmt"

	"github.com/vk/seedweave/internal/check"
	"github.com/vk/seedweave/internal/fake"
	"github.com/vk/seedweave/internal/registry"
	"github.com/vk/seedweave/internal/seeder"
)

// defaultCount is used when a plan omits count.
const defaultCount = 10

// Input is the argument schema of the "fake" kind.
type Input struct {
	// Count is how many records to generate.
	Count int `hcl:"count,optional"`
	// Fields maps output field names to fake.Source templates,
	// e.g. { name = "name", age = "int:18,99" }.
	Fields map[string]string `hcl:"fields"`
}

// Module registers the "fake" kind.
type Module struct{}

// Register implements registry.Module.
func (Module) Register(r *registry.Registry) {
	r.RegisterKind("fake", &registry.Kind{
		Description: "generate fake records",
		NewInput:    func() any { return new(Input) },
		Run:         run,
	})
}

func run(ctx context.Context, input any, rc *seeder.RunContext) (any, error) {
	in := input.(*Input)
	n := in.Count
	if n <= 0 {
		n = defaultCount
	}
	if len(in.Fields) == 0 {
		return nil, fmt.Errorf("fake seeder %q declares no fields", rc.Name())
	}

	source, ok := rc.App.(*fake.Source)
	if !ok {
		return nil, fmt.Errorf("fake seeder %q: run context carries %T, want *fake.Source", rc.Name(), rc.App)
	}

	records, err := rc.Step(ctx, fmt.Sprintf("generate %d records", n),
		func(ctx context.Context) (any, error) {
			batch, err := source.Records(n, in.Fields)
			if err != nil {
				return nil, err
			}
			if err := check.Count("generated records", n, len(batch)); err != nil {
				return nil, err
			}
			return batch, nil
		})
	if err != nil {
		return nil, err
	}

	rc.Log.Info("🧪 Fake records ready.", "count", n, "fields", len(in.Fields))
	return records, nil
}
