package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/seedweave/internal/cache"
	"github.com/vk/seedweave/internal/ctxlog"
	"github.com/vk/seedweave/internal/dag"
	"github.com/vk/seedweave/internal/executor"
	"github.com/vk/seedweave/internal/fake"
	"github.com/vk/seedweave/internal/report"
)

// Run executes the loaded plan (or just prints its order under --dry-run).
// The returned error is nil exactly when the CLI should exit 0.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	reporter := report.New(a.outW, a.config.NoColor)

	if a.config.DryRun {
		order, err := dag.Resolve(ctx, a.reg)
		if err != nil {
			reporter.Resolution(err)
			return err
		}
		reporter.Order(order, a.reg)
		return nil
	}

	store, err := a.buildCache()
	if err != nil {
		return fmt.Errorf("preparing cache: %w", err)
	}

	seed := a.seed()
	factory := func(context.Context) (any, error) {
		a.logger.Debug("Building fake-data source.", "seed", seed)
		return fake.NewSource(seed), nil
	}

	exec := executor.New(a.reg, factory, executor.Options{
		ContinueOnFailure: a.continueOnFailure(),
	})
	exec.Cache = store
	exec.Hooks = a.hooks(reporter)

	ledger, err := exec.Run(ctx)
	if err != nil {
		reporter.Resolution(err)
		return err
	}

	reporter.Ledger(ledger)
	if !ledger.Success() {
		failed := ledger.Failed()
		return fmt.Errorf("%d seeder(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

// hooks combines the reporter's progress hooks with run lifecycle logging.
func (a *App) hooks(reporter *report.Reporter) executor.Hooks {
	hooks := reporter.Hooks()
	hooks.OnBeforeAll = func() {
		a.logger.Debug("Run lifecycle: before all.")
	}
	hooks.OnAfterAll = func() {
		a.logger.Debug("Run lifecycle: after all.")
	}
	return hooks
}

func (a *App) buildCache() (cache.Store, error) {
	if dir := a.cacheDir(); dir != "" {
		a.logger.Debug("Using file cache.", "dir", dir)
		return cache.NewFile(dir, a.logger)
	}
	return cache.NewMemory(), nil
}
