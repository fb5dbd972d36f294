package seeder

import (
	"time"

	"github.com/google/uuid"
)

// Result records the outcome of a single seeder within one run.
type Result struct {
	// Name is the seeder's unique name.
	Name string
	// Status is the seeder's current (or final) execution status.
	Status Status
	// Duration is how long the work function ran. It is set once execution
	// finishes or fails and stays zero for seeders that never ran.
	Duration time.Duration
	// Output is the value the work function returned. Present only when
	// Status is StatusCompleted.
	Output any
	// Error is the failure captured from the work function. Present only
	// when Status is StatusFailed.
	Error error
}

// Ledger is the full per-seeder outcome record for one run, ordered by
// execution order. It is owned by a single engine invocation and handed to
// the caller when the run finishes.
type Ledger struct {
	// RunID uniquely identifies the engine invocation that produced this ledger.
	RunID uuid.UUID
	// Results holds one entry per seeder in execution order. Empty when
	// resolution failed before any seeder could run.
	Results []Result
	// Aborted is true when dependency resolution failed, so no seeder was
	// ever executed.
	Aborted bool
}

// Success reports whether the run succeeded: resolution must have succeeded
// and no seeder may have failed. Pending and skipped seeders do not fail a
// run on their own.
func (l *Ledger) Success() bool {
	if l.Aborted {
		return false
	}
	for i := range l.Results {
		if l.Results[i].Status == StatusFailed {
			return false
		}
	}
	return true
}

// Failed returns the names of all seeders whose status is StatusFailed.
func (l *Ledger) Failed() []string {
	var names []string
	for i := range l.Results {
		if l.Results[i].Status == StatusFailed {
			names = append(names, l.Results[i].Name)
		}
	}
	return names
}

// Counts tallies the ledger by status.
func (l *Ledger) Counts() map[Status]int {
	counts := make(map[Status]int, 5)
	for i := range l.Results {
		counts[l.Results[i].Status]++
	}
	return counts
}
