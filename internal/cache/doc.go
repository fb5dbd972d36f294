// Package cache provides the key-value store used by the seeder step
// sub-workflow to memoize expensive intermediate values.
//
// The store is deliberately narrow: Get returns a value or reports a miss,
// Set records a value. Keys are caller-constructed from a seeder name and a
// slug of a human description (see Key). The execution engine never consults
// the cache; only step bodies do.
//
// Two implementations are provided:
//   - Memory: ephemeral, per-process, backed by sync.Map.
//   - File: persistent across runs, one JSON document per key.
package cache
