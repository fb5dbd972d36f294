package executor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/vk/seedweave/internal/cache"
	"github.com/vk/seedweave/internal/ctxlog"
	"github.com/vk/seedweave/internal/dag"
	"github.com/vk/seedweave/internal/registry"
	"github.com/vk/seedweave/internal/seeder"
)

// ContextFactory produces the shared application value for one run. It is
// invoked exactly once per run, before the first seeder; every seeder of
// the run sees the same value. The factory may block (open connections,
// read fixtures), which is why it receives the run's context.
type ContextFactory func(ctx context.Context) (any, error)

// Options control a single run.
type Options struct {
	// ContinueOnFailure keeps executing independent branches after a seeder
	// fails; dependents of a failed seeder are skipped, not executed. When
	// false (the default) the run stops at the first failure and every
	// unreached seeder stays pending.
	ContinueOnFailure bool
}

// Executor walks a resolved execution order and produces a run ledger.
// Configure Hooks and Cache before calling Run; they must not be mutated
// while a run is in progress.
type Executor struct {
	// Hooks receive progress notifications. Zero value means no reporting.
	Hooks Hooks
	// Cache backs the step sub-workflow inside work functions. Nil disables
	// step memoization. The executor itself never reads or writes it.
	Cache cache.Store

	reg     *registry.Registry
	factory ContextFactory
	opts    Options
	active  atomic.Bool
}

// New creates an executor over the given registry. factory may be nil, in
// which case seeders receive a nil shared value.
func New(reg *registry.Registry, factory ContextFactory, opts Options) *Executor {
	return &Executor{reg: reg, factory: factory, opts: opts}
}

// Active reports whether a run is currently in progress. The flag has a
// single writer (the run lifecycle inside Run) and any number of readers;
// host applications poll it to suppress unrelated side effects while
// seeding is underway.
func (e *Executor) Active() bool {
	return e.active.Load()
}

// Run resolves the execution order and executes every seeder in it,
// returning the run ledger. The ledger is returned even when the run stops
// early: unreached seeders stay pending.
//
// A structural failure (missing or circular dependency, or a context
// factory error) aborts before any seeder runs; Run then returns an empty
// ledger with Success() == false alongside the error. Errors returned by
// work functions are never propagated here: they are captured into the
// ledger, and the only caller-visible signal is Success() == false plus the
// per-seeder Error fields.
func (e *Executor) Run(ctx context.Context) (*seeder.Ledger, error) {
	ledger := &seeder.Ledger{RunID: uuid.New()}
	ctx = ctxlog.With(ctx, "run_id", ledger.RunID.String())
	logger := ctxlog.FromContext(ctx)

	e.Hooks.beforeAll()
	defer e.Hooks.afterAll()

	order, err := dag.Resolve(ctx, e.reg)
	if err != nil {
		logger.Error("Dependency resolution failed.", "error", err)
		ledger.Aborted = true
		return ledger, err
	}
	logger.Debug("Execution order resolved.", "seeder_count", len(order))

	var app any
	if e.factory != nil {
		app, err = e.factory(ctx)
		if err != nil {
			logger.Error("Run context factory failed.", "error", err)
			ledger.Aborted = true
			return ledger, fmt.Errorf("building run context: %w", err)
		}
	}

	ledger.Results = make([]seeder.Result, len(order))
	for i, name := range order {
		ledger.Results[i] = seeder.Result{Name: name, Status: seeder.StatusPending}
	}

	if len(order) == 0 {
		logger.Warn("Registry is empty, nothing to seed.")
		return ledger, nil
	}

	// outputs and failed are write-once per name within a run: a name is
	// written to outputs on completion, or to failed on failure or on being
	// skipped because of a failed ancestor. Never both, never twice.
	outputs := make(map[string]any, len(order))
	failed := make(map[string]struct{})

	e.active.Store(true)
	defer e.active.Store(false)
	logger.Info("🌱 Seeding started.", "seeders", len(order))

	for i, name := range order {
		def, _ := e.reg.Lookup(name)
		result := &ledger.Results[i]

		if e.opts.ContinueOnFailure {
			if failedDeps := intersect(def.DependsOn, failed); len(failedDeps) > 0 {
				logger.Warn("⤵️ Skipping seeder, dependencies failed.",
					"seeder", name, "failed_dependencies", failedDeps)
				result.Status = seeder.StatusSkipped
				failed[name] = struct{}{}
				e.Hooks.unitSkipped(name, failedDeps)
				continue
			}
		}

		e.Hooks.unitStart(name, i+1, len(order), def.Description)
		result.Status = seeder.StatusRunning
		logger.Info("▶️ Running seeder.", "seeder", name, "position", i+1, "total", len(order))

		deps := make(map[string]any, len(def.DependsOn))
		for _, dep := range def.DependsOn {
			// Present by construction: every dependency completed earlier in
			// the order, otherwise this seeder would have been skipped or
			// never reached.
			deps[dep] = outputs[dep]
		}
		rc := seeder.NewRunContext(name, app, seeder.NewOutputs(deps), e.Cache,
			logger.With("seeder", name))

		start := time.Now()
		output, err := invoke(ctx, def.Run, rc)
		result.Duration = time.Since(start)

		if err != nil {
			result.Status = seeder.StatusFailed
			result.Error = err
			failed[name] = struct{}{}
			logger.Error("❌ Seeder failed.", "seeder", name, "duration", result.Duration, "error", err)
			e.Hooks.unitEnd(result.Duration, false)
			if !e.opts.ContinueOnFailure {
				logger.Warn("Stopping run on first failure.", "remaining", len(order)-i-1)
				break
			}
			continue
		}

		outputs[name] = output
		result.Status = seeder.StatusCompleted
		result.Output = output
		logger.Info("✅ Seeder completed.", "seeder", name, "duration", result.Duration)
		e.Hooks.unitEnd(result.Duration, true)
	}

	logger.Info("🏁 Seeding finished.", "success", ledger.Success())
	return ledger, nil
}

// invoke calls the work function, converting a panic into an ordinary
// execution error so one misbehaving seeder cannot take down the run.
func invoke(ctx context.Context, run seeder.RunFunc, rc *seeder.RunContext) (output any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("seeder panicked: %v", r)
		}
	}()
	return run(ctx, rc)
}

// intersect returns the names (in declaration order) that are present in
// the failed set.
func intersect(names []string, failed map[string]struct{}) []string {
	var hit []string
	for _, n := range names {
		if _, ok := failed[n]; ok {
			hit = append(hit, n)
		}
	}
	return hit
}
