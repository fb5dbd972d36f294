package seeder

import "fmt"

// Outputs is the view of dependency outputs visible to one running seeder.
// It is built fresh per seeder from the run's accumulated outputs and holds
// entries only for the dependencies that seeder declared; reading any other
// name is rejected at runtime rather than silently returning nil.
type Outputs struct {
	values map[string]any
}

// NewOutputs builds an Outputs view over the given declared-dependency
// values. The map is owned by the returned view.
func NewOutputs(values map[string]any) Outputs {
	return Outputs{values: values}
}

// Get returns the output produced by the named dependency. It fails when
// the name was not declared as a dependency of the current seeder.
func (o Outputs) Get(name string) (any, error) {
	v, ok := o.values[name]
	if !ok {
		return nil, fmt.Errorf("seeder output %q is not visible here: declare it in depends_on", name)
	}
	return v, nil
}

// Len returns the number of visible dependency outputs.
func (o Outputs) Len() int {
	return len(o.values)
}

// Names returns the declared dependency names visible in this view, in no
// particular order.
func (o Outputs) Names() []string {
	names := make([]string, 0, len(o.values))
	for name := range o.values {
		names = append(names, name)
	}
	return names
}

// Output retrieves a dependency output and asserts its type, failing with a
// descriptive error when the dependency was not declared or the stored
// value has a different type.
func Output[T any](o Outputs, name string) (T, error) {
	var zero T
	raw, err := o.Get(name)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("seeder output %q: expected %T, got %T", name, zero, raw)
	}
	return v, nil
}
