// Package dag computes a linear execution order for a registry of seeders
// such that every seeder appears strictly after all of its declared
// dependencies, or reports deterministically why no such order exists
// (an unknown dependency name or a dependency cycle).
//
// Resolution is a pure function of the registry: it has no side effects and
// resolving the same registry twice yields the same order or the same error.
package dag
