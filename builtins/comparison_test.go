package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexl-lang/bexl/builtins"
	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/value"
)

func TestFunctions_Equal(t *testing.T) {
	v, err := builtins.Functions.Call("equal", []value.Value{value.NewInteger(1), value.NewInteger(1)})
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestFunctions_GreaterCastsRightToLeft(t *testing.T) {
	v, err := builtins.Functions.Call("greater", []value.Value{value.NewFloat(2.5), value.NewInteger(2)})
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestFunctions_EqualCastsRightToLeft(t *testing.T) {
	v, err := builtins.Functions.Call("equal", []value.Value{value.NewInteger(1), value.NewFloat(1.0)})
	require.NoError(t, err)
	assert.True(t, v.Bool())

	v, err = builtins.Functions.Call("equal", []value.Value{value.NewInteger(1), value.NewString("1")})
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestFunctions_CompareRecordsIsExecutionError(t *testing.T) {
	a := value.NewRecord(map[string]value.Value{"x": value.NewInteger(1)})
	b := value.NewRecord(map[string]value.Value{"x": value.NewInteger(2)})
	_, err := builtins.Functions.Call("greater", []value.Value{a, b})
	var execErr *errs.ExecutionError
	assert.ErrorAs(t, err, &execErr)
}

func TestFunctions_Between(t *testing.T) {
	v, err := builtins.Functions.Call("between", []value.Value{value.NewInteger(5), value.NewInteger(1), value.NewInteger(10)})
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestFunctions_BetweenMixedNumericOperands(t *testing.T) {
	v, err := builtins.Functions.Call("between", []value.Value{
		value.NewInteger(1), value.NewFloat(0.5), value.NewInteger(2),
	})
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestFunctions_BetweenNullOperandIsFalse(t *testing.T) {
	v, err := builtins.Functions.Call("between", []value.Value{
		value.NullOf(value.Integer), value.NewInteger(1), value.NewInteger(10),
	})
	require.NoError(t, err)
	assert.False(t, v.Bool())
}
