// Package seeder defines the domain types shared by the resolver, the
// execution engine, and the terminal reporter: the seeder definition, the
// per-unit status model, the run ledger, and the restricted view of
// dependency outputs a running seeder may read.
package seeder
