package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/vk/seedweave/internal/ctxlog"
	"github.com/vk/seedweave/internal/registry"
	"github.com/vk/seedweave/internal/seeder"
)

// Bind turns every seeder block of the plan into a registered seeder
// definition. Each block's kind must exist in the registry's kind catalog,
// and its arguments block is decoded into a fresh input struct allocated by
// the kind. Duplicate instance names surface here as registration errors.
func Bind(ctx context.Context, p *Plan, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)

	for _, block := range p.Seeders {
		kind, ok := reg.Kind(block.Kind)
		if !ok {
			return fmt.Errorf("seeder %q uses unknown kind %q (known kinds: %s)",
				block.Name, block.Kind, strings.Join(reg.KindNames(), ", "))
		}

		var input any
		if kind.NewInput != nil {
			input = kind.NewInput()
			if block.Arguments != nil {
				if diags := gohcl.DecodeBody(block.Arguments.Body, p.Context, input); diags.HasErrors() {
					return fmt.Errorf("seeder %q: decoding arguments: %w", block.Name, diags)
				}
			}
		} else if block.Arguments != nil {
			return fmt.Errorf("seeder %q: kind %q takes no arguments", block.Name, block.Kind)
		}

		description := block.Description
		if description == "" {
			description = kind.Description
		}

		run := kind.Run
		boundInput := input
		def := seeder.Definition{
			Name:        block.Name,
			Description: description,
			DependsOn:   block.DependsOn,
			Run: func(ctx context.Context, rc *seeder.RunContext) (any, error) {
				return run(ctx, boundInput, rc)
			},
		}
		if err := reg.Add(def); err != nil {
			return fmt.Errorf("registering plan seeders: %w", err)
		}
		logger.Debug("Seeder bound.", "seeder", block.Name, "kind", block.Kind,
			"depends_on", block.DependsOn)
	}
	return nil
}
