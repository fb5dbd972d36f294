package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/seedweave/internal/ctxlog"
	"github.com/vk/seedweave/internal/plan"
	"github.com/vk/seedweave/internal/registry"
	"github.com/vk/seedweave/modules/fakedata"
	"github.com/vk/seedweave/modules/httppost"
	"github.com/vk/seedweave/modules/print"
)

// App encapsulates one seedweave invocation: configuration, logger, the
// loaded plan, and the populated registry.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	reg    *registry.Registry
	plan   *plan.Plan
	config *Config
}

// New builds a fully initialized App: logger, kind catalog, loaded plan,
// and bound registry. When no modules are passed, the built-in kinds are
// registered. Reporter output goes to outW; logs go to errW so JSON logs
// and human output do not interleave.
func New(outW, errW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(outW)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("Kind modules registered.", "kinds", reg.KindNames())

	p, err := plan.Load(ctx, cfg.PlanPath)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	if err := plan.Bind(ctx, p, reg); err != nil {
		return nil, fmt.Errorf("binding plan: %w", err)
	}
	logger.Debug("Plan loaded and bound.", "seeders", reg.Len())

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		reg:    reg,
		plan:   p,
		config: cfg,
	}, nil
}

// Registry returns the populated seeder registry. Primarily for tests.
func (a *App) Registry() *registry.Registry {
	return a.reg
}

// coreModules lists the built-in kinds shipped with the CLI.
func coreModules(outW io.Writer) []registry.Module {
	return []registry.Module{
		fakedata.Module{},
		&httppost.Module{},
		&print.Module{Out: outW},
	}
}

// continueOnFailure merges the flag with the plan's run block; either may
// enable it.
func (a *App) continueOnFailure() bool {
	return a.config.ContinueOnFailure || a.plan.Run.ContinueOnFailure
}

// cacheDir prefers the flag over the plan's run block.
func (a *App) cacheDir() string {
	if a.config.CacheDir != "" {
		return a.config.CacheDir
	}
	return a.plan.Run.CacheDir
}

// seed prefers the flag over the plan's run block.
func (a *App) seed() uint64 {
	if a.config.Seed != 0 {
		return a.config.Seed
	}
	return a.plan.Run.Seed
}
