package seeder

import (
	"context"
	"log/slog"

	"github.com/vk/seedweave/internal/cache"
)

// RunContext carries everything a work function may touch while running:
// the shared per-run application value, the outputs of its declared
// dependencies, an optional cache for the step sub-workflow, and a logger
// scoped to the seeder.
type RunContext struct {
	// App is the value produced once per run by the context factory. It is
	// shared by every seeder of the run and is opaque to the engine.
	App any
	// Deps holds the outputs of this seeder's declared dependencies.
	Deps Outputs
	// Cache backs Step. Nil disables caching; Step then always invokes fn.
	Cache cache.Store
	// Log is scoped to the current seeder.
	Log *slog.Logger

	name string
}

// NewRunContext builds the run context handed to the named seeder's work
// function. The engine calls this once per executed seeder.
func NewRunContext(name string, app any, deps Outputs, store cache.Store, log *slog.Logger) *RunContext {
	if log == nil {
		log = slog.Default()
	}
	return &RunContext{App: app, Deps: deps, Cache: store, Log: log, name: name}
}

// Name returns the name of the seeder this context belongs to.
func (rc *RunContext) Name() string {
	return rc.name
}

// Step runs a named sub-step of the seeder, memoized through the cache.
//
// The cache key is built from the seeder name and a slug of description.
// On a hit the cached value is returned and fn is not invoked. On a miss fn
// runs; its value is stored only on success. With no cache configured, Step
// degrades to calling fn directly.
func (rc *RunContext) Step(ctx context.Context, description string, fn func(context.Context) (any, error)) (any, error) {
	if rc.Cache == nil {
		return fn(ctx)
	}
	key := cache.Key(rc.name, description)
	if v, ok := rc.Cache.Get(key); ok {
		rc.Log.Debug("Step satisfied from cache.", "step", description, "key", key)
		return v, nil
	}
	v, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	rc.Cache.Set(key, v)
	rc.Log.Debug("Step result stored in cache.", "step", description, "key", key)
	return v, nil
}
