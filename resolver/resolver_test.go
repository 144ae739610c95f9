package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexl-lang/bexl/resolver"
	"github.com/bexl-lang/bexl/value"
)

func TestResolver_ResolveAndSet(t *testing.T) {
	r := resolver.New(map[string]value.Value{"x": value.NewInteger(1)})

	v, err := r.Resolve("x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int())

	r.Set("y", value.NewInteger(2))
	v, err = r.Resolve("y")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int())
}

func TestResolver_UnboundNameIsResolverError(t *testing.T) {
	r := resolver.Empty()
	_, err := r.Resolve("missing")
	assert.Error(t, err)
}

func TestResolver_FromNative(t *testing.T) {
	r, err := resolver.FromNative(map[string]any{"a": int64(5), "b": "hi"})
	require.NoError(t, err)

	v, err := r.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Int())

	v, err = r.Resolve("b")
	require.NoError(t, err)
	assert.Equal(t, "hi", v.Str())
}

func TestResolver_NilMapIsEmpty(t *testing.T) {
	r := resolver.New(nil)
	_, err := r.Resolve("anything")
	assert.Error(t, err)
}
