package executor

import "time"

// Hooks are optional observer callbacks fired around the run lifecycle and
// around each seeder. They exist for progress reporting only: all hooks are
// fire-and-forget, their return values (there are none) are never consumed,
// and they never influence control flow. Any nil hook is simply not called.
type Hooks struct {
	// OnBeforeAll fires once per run, before dependency resolution.
	OnBeforeAll func()
	// OnAfterAll fires once per run, after the ledger is finalized,
	// regardless of success.
	OnAfterAll func()
	// OnUnitStart fires immediately before a seeder's work function is
	// invoked. index is the seeder's 1-based position in the execution
	// order; total is the order's length.
	OnUnitStart func(name string, index, total int, description string)
	// OnUnitEnd fires after a seeder's work function finishes or fails.
	OnUnitEnd func(duration time.Duration, success bool)
	// OnUnitSkipped fires instead of OnUnitStart/OnUnitEnd when a seeder is
	// withheld because declared dependencies failed. failedDeps holds the
	// failed dependency names that caused the skip.
	OnUnitSkipped func(name string, failedDeps []string)
}

func (h Hooks) beforeAll() {
	if h.OnBeforeAll != nil {
		h.OnBeforeAll()
	}
}

func (h Hooks) afterAll() {
	if h.OnAfterAll != nil {
		h.OnAfterAll()
	}
}

func (h Hooks) unitStart(name string, index, total int, description string) {
	if h.OnUnitStart != nil {
		h.OnUnitStart(name, index, total, description)
	}
}

func (h Hooks) unitEnd(duration time.Duration, success bool) {
	if h.OnUnitEnd != nil {
		h.OnUnitEnd(duration, success)
	}
}

func (h Hooks) unitSkipped(name string, failedDeps []string) {
	if h.OnUnitSkipped != nil {
		h.OnUnitSkipped(name, failedDeps)
	}
}
