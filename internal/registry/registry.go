package registry

import (
	"fmt"

	"github.com/vk/seedweave/internal/seeder"
)

// Module registers a group of related kinds with a registry. All built-in
// kind packages under modules/ implement it.
type Module interface {
	Register(r *Registry)
}

// Registry is the ordered collection of seeder definitions for one run,
// together with the kind catalog used by the plan loader. It is not safe
// for concurrent mutation; populate it fully before handing it to the
// resolver or the engine.
type Registry struct {
	defs   []*seeder.Definition
	byName map[string]*seeder.Definition
	kinds  map[string]*Kind
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]*seeder.Definition),
		kinds:  make(map[string]*Kind),
	}
}

// Add registers a seeder definition. The definition's dependency list is
// deduplicated in place, preserving first occurrence order; duplicate names
// in depends_on are a plan author convenience, not two edges.
//
// Adding a second definition with an existing name is an error: names are
// the identity the resolver and the output store key on.
func (r *Registry) Add(def seeder.Definition) error {
	if def.Name == "" {
		return fmt.Errorf("seeder name must not be empty")
	}
	if def.Run == nil {
		return fmt.Errorf("seeder %q has no work function", def.Name)
	}
	if _, exists := r.byName[def.Name]; exists {
		return fmt.Errorf("seeder %q is already registered", def.Name)
	}
	def.DependsOn = dedup(def.DependsOn)
	stored := def
	r.defs = append(r.defs, &stored)
	r.byName[def.Name] = &stored
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*seeder.Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// Definitions returns the registered definitions in registration order.
// The slice is a copy; the definitions are not.
func (r *Registry) Definitions() []*seeder.Definition {
	out := make([]*seeder.Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Len returns the number of registered seeders.
func (r *Registry) Len() int {
	return len(r.defs)
}

// dedup removes duplicate dependency names, keeping the first occurrence.
func dedup(names []string) []string {
	if len(names) < 2 {
		return names
	}
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
