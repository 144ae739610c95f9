package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexl-lang/bexl/builtins"
	"github.com/bexl-lang/bexl/value"
)

func mixedNullList(vals ...int64) value.Value {
	items := make([]value.Value, 0, len(vals)+1)
	items = append(items, value.NullOf(value.Integer))
	for _, v := range vals {
		items = append(items, value.NewInteger(v))
	}
	return value.NewList(items)
}

func TestFunctions_SumIgnoresNulls(t *testing.T) {
	v, err := builtins.Functions.Call("sum", []value.Value{mixedNullList(1, 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, int64(6), v.Int())
}

func TestFunctions_AverageEmptyIsNull(t *testing.T) {
	v, err := builtins.Functions.Call("average", []value.Value{value.NewList(nil)})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestFunctions_SumPromotesToFloat(t *testing.T) {
	items := []value.Value{value.NewInteger(1), value.NewFloat(2.0), value.NewInteger(3)}
	v, err := builtins.Functions.Call("sum", []value.Value{value.NewList(items)})
	require.NoError(t, err)
	assert.Equal(t, value.Float, v.Kind())
	assert.Equal(t, 6.0, v.Float64())
}

func TestFunctions_MinMax(t *testing.T) {
	items := []value.Value{value.NewInteger(3), value.NewInteger(1), value.NewInteger(2)}
	v, err := builtins.Functions.Call("min", []value.Value{value.NewList(items)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int())

	v, err = builtins.Functions.Call("max", []value.Value{value.NewList(items)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int())
}

func TestFunctions_MinMaxMixedIntFloat(t *testing.T) {
	items := []value.Value{value.NewInteger(3), value.NewFloat(1.5), value.NewInteger(2)}
	v, err := builtins.Functions.Call("min", []value.Value{value.NewList(items)})
	require.NoError(t, err)
	assert.Equal(t, 1.5, v.Float64())
}

func TestFunctions_AllAnyNoneCount(t *testing.T) {
	items := []value.Value{value.NewBoolean(true), value.NewBoolean(false), value.NewBoolean(true)}
	list := value.NewList(items)

	all, _ := builtins.Functions.Call("all", []value.Value{list})
	assert.False(t, all.Bool())

	any, _ := builtins.Functions.Call("any", []value.Value{list})
	assert.True(t, any.Bool())

	none, _ := builtins.Functions.Call("none", []value.Value{list})
	assert.False(t, none.Bool())

	count, _ := builtins.Functions.Call("count", []value.Value{list})
	assert.Equal(t, int64(2), count.Int())
}

func TestFunctions_AnyEmptyListIsFalse(t *testing.T) {
	v, err := builtins.Functions.Call("any", []value.Value{value.NewList(nil)})
	require.NoError(t, err)
	assert.False(t, v.Bool())
}

func TestFunctions_AllEmptyListIsTrue(t *testing.T) {
	v, err := builtins.Functions.Call("all", []value.Value{value.NewList(nil)})
	require.NoError(t, err)
	assert.True(t, v.Bool())
}
