package bexl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexl-lang/bexl"
)

func TestEval_NativeRoundTrip(t *testing.T) {
	got, err := bexl.Eval("$a + $b", map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestEval_NilVars(t *testing.T) {
	got, err := bexl.Eval("1 + 2 * 3", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

func TestEval_ListNative(t *testing.T) {
	got, err := bexl.Eval("[1, 2, 3]", nil)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got)
}

func TestParseThenEvaluate(t *testing.T) {
	node, err := bexl.Parse("$name")
	require.NoError(t, err)

	v, err := bexl.Evaluate(node, map[string]any{"name": "ada"})
	require.NoError(t, err)
	assert.Equal(t, "ada", v.Str())
}

func TestEval_UnsupportedVarsType(t *testing.T) {
	_, err := bexl.Eval("1", 42)
	assert.Error(t, err)
}
