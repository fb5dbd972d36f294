package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/seedweave/internal/testutil"
)

func newTestApp(t *testing.T, planPath string, mutate func(*Config)) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &Config{
		PlanPath:  planPath,
		Seed:      42,
		LogFormat: "text",
		LogLevel:  "error",
		NoColor:   true,
	}
	if mutate != nil {
		mutate(cfg)
	}
	var out, errOut bytes.Buffer
	a, err := New(&out, &errOut, cfg)
	require.NoError(t, err)
	return a, &out
}

func TestApp_RunHappyPath(t *testing.T) {
	path := testutil.WritePlanFile(t, `
seeder "fake" "users" {
  arguments {
    count  = 2
    fields = { name = "name" }
  }
}

seeder "print" "summary" {
  depends_on = ["users"]
  arguments {
    message = "all seeded"
  }
}
`)
	a, out := newTestApp(t, path, nil)

	require.NoError(t, a.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "all seeded")
	assert.Contains(t, s, "completed users")
	assert.Contains(t, s, "completed summary")
	assert.Contains(t, s, "OK")
}

func TestApp_DryRunPrintsOrderOnly(t *testing.T) {
	path := testutil.WritePlanFile(t, `
seeder "print" "second" {
  depends_on = ["first"]
  arguments {
    message = "must not appear"
  }
}

seeder "print" "first" {}
`)
	a, out := newTestApp(t, path, func(c *Config) { c.DryRun = true })

	require.NoError(t, a.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Execution order (2 seeders):")
	assert.Contains(t, s, "first")
	assert.Contains(t, s, "second  (after: first)")
	assert.NotContains(t, s, "must not appear")
}

func TestApp_DryRunReportsStructuralErrors(t *testing.T) {
	path := testutil.WritePlanFile(t, `
seeder "print" "a" {
  depends_on = ["b"]
}
seeder "print" "b" {
  depends_on = ["a"]
}
`)
	a, out := newTestApp(t, path, func(c *Config) { c.DryRun = true })

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "resolution failed:")
	assert.Contains(t, out.String(), "circular dependency")
}

func TestApp_RunFailureExitsNonZero(t *testing.T) {
	// "fake" without fields fails at execution time.
	path := testutil.WritePlanFile(t, `
seeder "fake" "broken" {
  arguments {
    count = 1
  }
}
`)
	a, out := newTestApp(t, path, nil)

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 seeder(s) failed: broken")
	assert.Contains(t, out.String(), "FAILED")
}

func TestApp_ContinueOnFailureFromPlanRunBlock(t *testing.T) {
	path := testutil.WritePlanFile(t, `
run {
  continue_on_failure = true
}

seeder "fake" "broken" {
  arguments {
    count = 1
  }
}

seeder "print" "dependent" {
  depends_on = ["broken"]
}

seeder "print" "independent" {
  arguments {
    message = "still ran"
  }
}
`)
	a, out := newTestApp(t, path, nil)

	err := a.Run(context.Background())
	require.Error(t, err, "the failed seeder still fails the run")

	s := out.String()
	assert.Contains(t, s, "still ran")
	assert.Contains(t, s, "skipped   dependent")
	assert.Contains(t, s, "completed independent")
}

func TestApp_SeedFlagWinsOverPlan(t *testing.T) {
	path := testutil.WritePlanFile(t, `
run {
  seed = 7
}
seeder "print" "x" {}
`)
	a, _ := newTestApp(t, path, nil) // config seed is 42
	assert.Equal(t, uint64(42), a.seed())

	b, _ := newTestApp(t, path, func(c *Config) { c.Seed = 0 })
	assert.Equal(t, uint64(7), b.seed())
}

func TestApp_FileCacheSurvivesRuns(t *testing.T) {
	cacheDir := t.TempDir()
	plan := `
seeder "fake" "users" {
  arguments {
    count  = 3
    fields = { name = "name" }
  }
}
`
	runOnce := func(seed uint64) {
		path := testutil.WritePlanFile(t, plan)
		a, _ := newTestApp(t, path, func(c *Config) {
			c.CacheDir = cacheDir
			c.Seed = seed
		})
		require.NoError(t, a.Run(context.Background()))
	}

	runOnce(1)
	// Second run with another seed reuses the cached generation step; it
	// must succeed without regenerating.
	runOnce(2)
}

func TestApp_NewRejectsBadPlans(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := &Config{PlanPath: testutil.WritePlanFile(t, `run {}`), LogLevel: "error"}

	_, err := New(&out, &errOut, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading plan")

	cfg.PlanPath = testutil.WritePlanFile(t, `seeder "mystery" "x" {}`)
	_, err = New(&out, &errOut, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "binding plan")
}

func TestNewConfig_RequiresPlanPath(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	cfg, err := NewConfig(Config{PlanPath: "p.hcl"})
	require.NoError(t, err)
	assert.Equal(t, "p.hcl", cfg.PlanPath)
}
