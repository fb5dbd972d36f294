package app

import "errors"

// Config holds everything an App instance needs to run. Values originate
// from CLI flags; the plan's run block supplies defaults for the run
// options (flags win).
type Config struct {
	// PlanPath points at a .hcl plan file or a directory of them. Required.
	PlanPath string

	// DryRun resolves and prints the execution order without executing.
	DryRun bool
	// ContinueOnFailure keeps independent branches running after a failure.
	ContinueOnFailure bool
	// CacheDir enables the persistent file cache for the step sub-workflow.
	// Empty means a per-run in-memory cache.
	CacheDir string
	// Seed fixes the fake-data stream. 0 means non-deterministic.
	Seed uint64

	LogFormat string
	LogLevel  string
	// NoColor disables terminal styling in the reporter.
	NoColor bool
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PlanPath == "" {
		return nil, errors.New("a plan path is required")
	}
	return &cfg, nil
}
