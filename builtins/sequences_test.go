package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexl-lang/bexl/builtins"
	"github.com/bexl-lang/bexl/value"
)

func listOf(vals ...int64) value.Value {
	items := make([]value.Value, len(vals))
	for i, v := range vals {
		items[i] = value.NewInteger(v)
	}
	return value.NewList(items)
}

func TestFunctions_InList(t *testing.T) {
	v, err := builtins.Functions.Call("in", []value.Value{value.NewInteger(2), listOf(1, 2, 3)})
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestFunctions_InNullHaystackIsFalse(t *testing.T) {
	v, err := builtins.Functions.Call("in", []value.Value{value.NewInteger(2), value.NullOf(value.List)})
	require.NoError(t, err)
	assert.False(t, v.Bool())
}

func TestFunctions_HeadTailDefaultLengthOne(t *testing.T) {
	v, err := builtins.Functions.Call("head", []value.Value{listOf(1, 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.NewInteger(1)}, v.ListVal())

	v, err = builtins.Functions.Call("tail", []value.Value{listOf(1, 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.NewInteger(3)}, v.ListVal())
}

func TestFunctions_ConcatAllNullReturnsNullOfSharedKind(t *testing.T) {
	v, err := builtins.Functions.Call("concat", []value.Value{value.NullOf(value.List), value.NullOf(value.List)})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
	assert.Equal(t, value.List, v.Kind())
}

func TestFunctions_AtOutOfRange(t *testing.T) {
	_, err := builtins.Functions.Call("at", []value.Value{listOf(1, 2), value.NewInteger(5)})
	assert.Error(t, err)
}

func TestFunctions_AtNegativeIndex(t *testing.T) {
	v, err := builtins.Functions.Call("at", []value.Value{listOf(1, 2, 3), value.NewInteger(-1)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int())
}

func TestFunctions_LengthString(t *testing.T) {
	v, err := builtins.Functions.Call("length", []value.Value{value.NewString("hello")})
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Int())
}
