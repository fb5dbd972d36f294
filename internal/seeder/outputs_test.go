package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputs_GetDeclared(t *testing.T) {
	o := NewOutputs(map[string]any{"users": []string{"alice"}})

	v, err := o.Get("users")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, v)
}

func TestOutputs_UndeclaredNameIsRejected(t *testing.T) {
	o := NewOutputs(map[string]any{"users": 1})

	_, err := o.Get("orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders")
	assert.Contains(t, err.Error(), "depends_on")
}

func TestOutputs_NilValueIsStillVisible(t *testing.T) {
	// A completed dependency may legitimately produce nil; visibility is
	// about declaration, not about the value.
	o := NewOutputs(map[string]any{"noop": nil})

	v, err := o.Get("noop")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestOutputs_NamesAndLen(t *testing.T) {
	o := NewOutputs(map[string]any{"a": 1, "b": 2})
	assert.Equal(t, 2, o.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, o.Names())
}

func TestOutput_Typed(t *testing.T) {
	o := NewOutputs(map[string]any{"count": 42})

	n, err := Output[int](o, "count")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = Output[string](o, "count")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string")

	_, err = Output[int](o, "undeclared")
	require.Error(t, err)
}
