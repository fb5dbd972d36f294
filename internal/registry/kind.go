package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/seedweave/internal/seeder"
)

// Kind is a reusable seeder behavior that plan files instantiate by name.
// The loader allocates a fresh input struct via NewInput, decodes the
// instance's arguments block into it, and the engine later calls Run with
// that input.
type Kind struct {
	// Description is a short summary used as the default description for
	// instances that do not provide their own.
	Description string
	// NewInput allocates the kind's argument struct. The returned value is
	// decoded from the instance's HCL arguments block. Nil means the kind
	// takes no arguments.
	NewInput func() any
	// Run executes one instance of the kind.
	Run func(ctx context.Context, input any, rc *seeder.RunContext) (any, error)
}

// RegisterKind adds a kind to the catalog under the given name. Registering
// the same name twice is a programmer error and panics, mirroring how
// built-in modules are wired once at startup.
func (r *Registry) RegisterKind(name string, k *Kind) {
	if _, exists := r.kinds[name]; exists {
		panic(fmt.Sprintf("registry: kind %q registered twice", name))
	}
	if k == nil || k.Run == nil {
		panic(fmt.Sprintf("registry: kind %q has no run function", name))
	}
	r.kinds[name] = k
}

// Kind returns the kind registered under name.
func (r *Registry) Kind(name string) (*Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// KindNames returns the sorted names of all registered kinds.
func (r *Registry) KindNames() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
