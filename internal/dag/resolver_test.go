package dag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/seedweave/internal/registry"
	"github.com/vk/seedweave/internal/seeder"
)

// buildRegistry registers one seeder per entry, in map-free slice order so
// registration order is explicit in each test.
func buildRegistry(t *testing.T, defs []seeder.Definition) *registry.Registry {
	t.Helper()
	r := registry.New()
	for i := range defs {
		defs[i].Run = func(ctx context.Context, rc *seeder.RunContext) (any, error) {
			return nil, nil
		}
		require.NoError(t, r.Add(defs[i]))
	}
	return r
}

func TestResolve_EmptyRegistry(t *testing.T) {
	order, err := Resolve(context.Background(), registry.New())
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestResolve_SingleSeeder(t *testing.T) {
	reg := buildRegistry(t, []seeder.Definition{{Name: "users"}})

	order, err := Resolve(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, order)
}

func TestResolve_DependenciesPrecedeDependents(t *testing.T) {
	reg := buildRegistry(t, []seeder.Definition{
		{Name: "orders", DependsOn: []string{"users", "products"}},
		{Name: "users"},
		{Name: "products", DependsOn: []string{"users"}},
		{Name: "invoices", DependsOn: []string{"orders"}},
	})

	order, err := Resolve(context.Background(), reg)
	require.NoError(t, err)
	require.Len(t, order, 4)

	index := make(map[string]int, len(order))
	for i, name := range order {
		index[name] = i
	}
	for _, def := range reg.Definitions() {
		for _, dep := range def.DependsOn {
			assert.Less(t, index[dep], index[def.Name],
				"%s must run before %s", dep, def.Name)
		}
	}
}

func TestResolve_TiesBreakByRegistrationOrder(t *testing.T) {
	// b, a and c are all ready at the start; the order must follow how they
	// were registered, not their names.
	reg := buildRegistry(t, []seeder.Definition{
		{Name: "b"},
		{Name: "a"},
		{Name: "c"},
		{Name: "d", DependsOn: []string{"a"}},
	})

	order, err := Resolve(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c", "d"}, order)
}

func TestResolve_IsDeterministic(t *testing.T) {
	reg := buildRegistry(t, []seeder.Definition{
		{Name: "users"},
		{Name: "products"},
		{Name: "orders", DependsOn: []string{"users", "products"}},
		{Name: "reviews", DependsOn: []string{"products", "users"}},
	})

	first, err := Resolve(context.Background(), reg)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Resolve(context.Background(), reg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolve_MissingDependency(t *testing.T) {
	reg := buildRegistry(t, []seeder.Definition{
		{Name: "orders", DependsOn: []string{"users"}},
	})

	_, err := Resolve(context.Background(), reg)
	require.Error(t, err)

	var missing *MissingDependencyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "orders", missing.Seeder)
	assert.Equal(t, "users", missing.Missing)
	assert.Contains(t, err.Error(), `"orders"`)
	assert.Contains(t, err.Error(), `"users"`)
}

func TestResolve_TwoNodeCycle(t *testing.T) {
	reg := buildRegistry(t, []seeder.Definition{
		{Name: "a", DependsOn: []string{"b"}},
		{Name: "b", DependsOn: []string{"a"}},
	})

	_, err := Resolve(context.Background(), reg)
	require.Error(t, err)

	var circular *CircularDependencyError
	require.ErrorAs(t, err, &circular)
	assert.Equal(t, []string{"a", "b"}, circular.Cycle)
	assert.Equal(t, "circular dependency: a -> b -> a", err.Error())
}

func TestResolve_SelfDependency(t *testing.T) {
	reg := buildRegistry(t, []seeder.Definition{
		{Name: "loner", DependsOn: []string{"loner"}},
	})

	_, err := Resolve(context.Background(), reg)
	require.Error(t, err)

	var circular *CircularDependencyError
	require.ErrorAs(t, err, &circular)
	assert.Equal(t, []string{"loner"}, circular.Cycle)
	assert.Equal(t, "circular dependency: loner -> loner", err.Error())
}

func TestResolve_IndirectCycleExcludesBystanders(t *testing.T) {
	// a -> c -> b -> a forms the cycle; "standalone" and "downstream" must
	// not appear in the report even though downstream can never run.
	reg := buildRegistry(t, []seeder.Definition{
		{Name: "a", DependsOn: []string{"c"}},
		{Name: "b", DependsOn: []string{"a"}},
		{Name: "c", DependsOn: []string{"b"}},
		{Name: "standalone"},
		{Name: "downstream", DependsOn: []string{"standalone", "a"}},
	})

	_, err := Resolve(context.Background(), reg)
	require.Error(t, err)

	var circular *CircularDependencyError
	require.ErrorAs(t, err, &circular)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, circular.Cycle)
	assert.NotContains(t, circular.Cycle, "standalone")
	assert.NotContains(t, circular.Cycle, "downstream")
	assert.Empty(t, circular.Residual)
}

func TestResolve_CycleReportIsAPathSegment(t *testing.T) {
	// "entry" leads into the cycle but is not part of it; the reported cycle
	// must start at its first revisited member.
	reg := buildRegistry(t, []seeder.Definition{
		{Name: "entry", DependsOn: []string{"x"}},
		{Name: "x", DependsOn: []string{"y"}},
		{Name: "y", DependsOn: []string{"x"}},
	})

	_, err := Resolve(context.Background(), reg)
	require.Error(t, err)

	var circular *CircularDependencyError
	require.ErrorAs(t, err, &circular)
	assert.Equal(t, []string{"x", "y"}, circular.Cycle)
}
