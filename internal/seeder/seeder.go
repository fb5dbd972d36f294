package seeder

import "context"

// RunFunc is a seeder's work function. It receives the caller's context and
// the per-seeder run context (shared app value, dependency outputs, cache,
// logger) and returns the seeder's output, which becomes visible to its
// dependents.
//
// Errors and panics are captured into the seeder's result by the engine;
// they never propagate past it.
type RunFunc func(ctx context.Context, rc *RunContext) (any, error)

// Definition describes one seeder: a unique name, the names of the seeders
// it depends on, and the work function that produces its output. Definitions
// are immutable once registered and are owned by the registry for the
// duration of a run.
type Definition struct {
	// Name uniquely identifies the seeder within a registry.
	Name string
	// Description is a short human-readable summary shown by the reporter.
	Description string
	// DependsOn lists the seeders whose outputs this seeder reads. Order is
	// preserved; duplicates are removed at registration time.
	DependsOn []string
	// Run is the seeder's work function.
	Run RunFunc
}
