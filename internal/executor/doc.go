// Package executor runs seeders strictly sequentially in resolved
// dependency order, tracks per-seeder status and timing in a run ledger,
// routes each seeder's output to its dependents, and applies the
// partial-failure policy (stop on first failure, or continue and skip the
// failed seeder's descendants).
//
// Sequential execution is a deliberate simplicity trade-off: the dependency
// graph would permit running independent branches concurrently, and that is
// a possible extension, but one seeder at a time keeps output handoff and
// failure semantics trivial to reason about. There is no per-seeder timeout;
// a hung work function blocks the run until the caller's context does
// something about it.
package executor
