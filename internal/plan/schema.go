package plan

import "github.com/hashicorp/hcl/v2"

// ArgumentsBlock defers decoding of a seeder's arguments until the kind's
// input struct is known.
type ArgumentsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// SeederBlock is one `seeder "kind" "name" { ... }` block from a plan file.
type SeederBlock struct {
	Kind        string          `hcl:"kind,label"`
	Name        string          `hcl:"instance_name,label"`
	Description string          `hcl:"description,optional"`
	DependsOn   []string        `hcl:"depends_on,optional"`
	Arguments   *ArgumentsBlock `hcl:"arguments,block"`
}

// RunBlock is the optional `run { ... }` block carrying run-wide options.
// CLI flags take precedence over these values.
type RunBlock struct {
	ContinueOnFailure bool   `hcl:"continue_on_failure,optional"`
	CacheDir          string `hcl:"cache_dir,optional"`
	Seed              uint64 `hcl:"seed,optional"`
}

// file is the decoded shape of a single plan file.
type file struct {
	Run     *RunBlock      `hcl:"run,block"`
	Seeders []*SeederBlock `hcl:"seeder,block"`
}

// Plan is the merged content of every loaded plan file.
type Plan struct {
	// Run holds run-wide options; the zero value applies when no file
	// declared a run block.
	Run RunBlock
	// Seeders holds every seeder block, in file order (files sorted by
	// path, blocks in declaration order within a file).
	Seeders []*SeederBlock
	// Context is the evaluation context arguments blocks are decoded with.
	// It carries the `env` variable map.
	Context *hcl.EvalContext
}
