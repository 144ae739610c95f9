package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexl-lang/bexl/builtins"
	"github.com/bexl-lang/bexl/value"
)

func TestFunctions_Divide(t *testing.T) {
	v, err := builtins.Functions.Call("divide", []value.Value{value.NewInteger(7), value.NewInteger(2)})
	require.NoError(t, err)
	assert.Equal(t, 3.5, v.Float64())
}

func TestFunctions_DivideByZero(t *testing.T) {
	_, err := builtins.Functions.Call("divide", []value.Value{value.NewInteger(1), value.NewInteger(0)})
	assert.Error(t, err)
}

func TestFunctions_RoundBankersRounding(t *testing.T) {
	v, err := builtins.Functions.Call("round", []value.Value{value.NewFloat(2.5)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int())

	v, err = builtins.Functions.Call("round", []value.Value{value.NewFloat(3.5)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.Int())
}

func TestFunctions_RoundWithPrecision(t *testing.T) {
	v, err := builtins.Functions.Call("round", []value.Value{value.NewFloat(1.005), value.NewInteger(2)})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v.Float64(), 0.01)
}

func TestFunctions_PowInteger(t *testing.T) {
	v, err := builtins.Functions.Call("pow", []value.Value{value.NewInteger(2), value.NewInteger(10)})
	require.NoError(t, err)
	assert.Equal(t, int64(1024), v.Int())
}

func TestUnary_NegativeNullPropagates(t *testing.T) {
	v, err := builtins.Unary.Call("-", []value.Value{value.NullOf(value.Integer)})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}
