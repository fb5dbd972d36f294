package dag

import (
	"context"

	"github.com/vk/seedweave/internal/ctxlog"
	"github.com/vk/seedweave/internal/registry"
)

// Resolve computes an execution order over the registry using Kahn's
// algorithm. Every declared dependency of a seeder appears strictly earlier
// in the returned order. Ties between simultaneously-ready seeders are
// broken by registration order, and the ready queue is FIFO, so the result
// is deterministic for a given registry.
//
// Resolve fails with *MissingDependencyError when a seeder names a
// dependency that is not registered, and with *CircularDependencyError when
// the dependency graph contains a cycle.
func Resolve(ctx context.Context, reg *registry.Registry) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	defs := reg.Definitions()

	// Validation pass: every declared dependency must exist. This runs in
	// full before any ordering attempt so the reported error does not depend
	// on queue state.
	for _, def := range defs {
		for _, dep := range def.DependsOn {
			if _, ok := reg.Lookup(dep); !ok {
				return nil, &MissingDependencyError{Seeder: def.Name, Missing: dep}
			}
		}
	}
	logger.Debug("Dependency validation passed.", "seeder_count", len(defs))

	// In-degree of a seeder is the size of its own (deduplicated) dependency
	// list, not a count of incoming edges. The registry guarantees the list
	// holds no duplicates, so the two coincide.
	inDegree := make(map[string]int, len(defs))
	dependents := make(map[string][]string, len(defs))
	for _, def := range defs {
		inDegree[def.Name] = len(def.DependsOn)
		for _, dep := range def.DependsOn {
			dependents[dep] = append(dependents[dep], def.Name)
		}
	}

	// Seed the ready queue with zero-dependency seeders in registration
	// order; dequeue from the head, enqueue by appending.
	queue := make([]string, 0, len(defs))
	for _, def := range defs {
		if inDegree[def.Name] == 0 {
			queue = append(queue, def.Name)
		}
	}

	order := make([]string, 0, len(defs))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)
		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(order) < len(defs) {
		unresolved := make(map[string]struct{}, len(defs)-len(order))
		for _, def := range defs {
			unresolved[def.Name] = struct{}{}
		}
		for _, name := range order {
			delete(unresolved, name)
		}
		err := findCycle(reg, unresolved)
		logger.Debug("Ordering shortfall, cycle search finished.",
			"resolved", len(order), "total", len(defs), "error", err)
		return nil, err
	}

	logger.Debug("Execution order resolved.", "order", order)
	return order, nil
}

// findCycle locates a dependency cycle among the unresolved seeders by
// depth-first traversal with an explicit current-path stack. When a name
// already on the path is revisited, the cycle is the contiguous path
// segment from that name's first occurrence to the current point, not the
// whole path. A seeder depending on itself is found the same way as a
// cycle of length one.
//
// The unresolved set always contains a cycle after a Kahn shortfall; the
// residual fallback exists so a logic error here still produces a usable
// report instead of a nil error.
func findCycle(reg *registry.Registry, unresolved map[string]struct{}) *CircularDependencyError {
	visited := make(map[string]struct{}, len(unresolved))
	onPath := make(map[string]int, len(unresolved))
	var path []string

	var walk func(name string) []string
	walk = func(name string) []string {
		if at, ok := onPath[name]; ok {
			return append([]string(nil), path[at:]...)
		}
		if _, done := visited[name]; done {
			return nil
		}
		onPath[name] = len(path)
		path = append(path, name)
		def, _ := reg.Lookup(name)
		for _, dep := range def.DependsOn {
			if _, stuck := unresolved[dep]; !stuck {
				// Resolved dependencies cannot be part of the cycle.
				continue
			}
			if cycle := walk(dep); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		delete(onPath, name)
		visited[name] = struct{}{}
		return nil
	}

	// Traverse in registration order for a deterministic report.
	for _, def := range reg.Definitions() {
		if _, stuck := unresolved[def.Name]; !stuck {
			continue
		}
		if cycle := walk(def.Name); cycle != nil {
			return &CircularDependencyError{Cycle: cycle}
		}
	}

	residual := make([]string, 0, len(unresolved))
	for _, def := range reg.Definitions() {
		if _, stuck := unresolved[def.Name]; stuck {
			residual = append(residual, def.Name)
		}
	}
	return &CircularDependencyError{Residual: residual}
}
