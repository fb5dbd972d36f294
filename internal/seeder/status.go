package seeder

// Status is the execution status of a single seeder within one run.
//
// A result is created as StatusPending when the execution order is computed
// and transitions exactly once through StatusRunning to a terminal status.
// A seeder never reached because an earlier failure stopped the run stays
// StatusPending for that run; this is distinct from StatusSkipped, which
// marks a seeder whose declared dependency (or transitive ancestor) failed
// under continue-on-failure.
type Status int

const (
	// StatusPending indicates the seeder has not started.
	StatusPending Status = iota
	// StatusRunning indicates the seeder's work function is executing.
	StatusRunning
	// StatusCompleted indicates the work function returned successfully.
	StatusCompleted
	// StatusFailed indicates the work function returned an error or panicked.
	StatusFailed
	// StatusSkipped indicates execution was withheld because a dependency failed.
	StatusSkipped
)

// String returns the lowercase human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is one a result never leaves.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusSkipped
}
