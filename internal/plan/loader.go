package plan

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/seedweave/internal/ctxlog"
	"github.com/vk/seedweave/internal/fsutil"
)

// Load parses the plan at path (a .hcl file or a directory of them) into a
// merged Plan. At most one file may declare a run block. Expressions are
// evaluated against the process environment, exposed as the `env` map.
func Load(ctx context.Context, path string) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.Discover(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("discovering plan files: %w", err)
	}
	logger.Debug("Plan files discovered.", "count", len(files), "path", path)

	parser := hclparse.NewParser()
	merged := &Plan{Context: envContext()}
	runBlockFile := ""

	for _, name := range files {
		hclFile, diags := parser.ParseHCLFile(name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing %s: %w", name, diags)
		}

		var f file
		if diags := gohcl.DecodeBody(hclFile.Body, merged.Context, &f); diags.HasErrors() {
			return nil, fmt.Errorf("decoding %s: %w", name, diags)
		}

		if f.Run != nil {
			if runBlockFile != "" {
				return nil, fmt.Errorf("run block declared twice: %s and %s", runBlockFile, name)
			}
			runBlockFile = name
			merged.Run = *f.Run
		}
		merged.Seeders = append(merged.Seeders, f.Seeders...)
		logger.Debug("Plan file loaded.", "file", name, "seeders", len(f.Seeders))
	}

	if len(merged.Seeders) == 0 {
		return nil, fmt.Errorf("plan at %s declares no seeders", path)
	}
	return merged, nil
}
