package dag

import (
	"fmt"
	"strings"
)

// MissingDependencyError reports a seeder that declares a dependency on a
// name absent from the registry. It is raised during the validation pass,
// before any ordering is attempted, and is fatal to the whole run.
type MissingDependencyError struct {
	// Seeder is the dependent seeder's name.
	Seeder string
	// Missing is the declared dependency name that does not exist.
	Missing string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("seeder %q depends on unknown seeder %q", e.Seeder, e.Missing)
}

// CircularDependencyError reports a dependency cycle. Cycle holds the
// ordered members of one detected cycle; a self-dependency is a cycle of
// length one. When the depth-first search cannot isolate a cycle, Cycle is
// empty and Residual holds every unresolved seeder name instead.
type CircularDependencyError struct {
	Cycle    []string
	Residual []string
}

func (e *CircularDependencyError) Error() string {
	if len(e.Cycle) > 0 {
		// Rendered with the first member repeated to close the loop:
		// "a -> b -> a".
		return fmt.Sprintf("circular dependency: %s -> %s",
			strings.Join(e.Cycle, " -> "), e.Cycle[0])
	}
	return fmt.Sprintf("dependency cycle suspected among seeders: %s",
		strings.Join(e.Residual, ", "))
}
