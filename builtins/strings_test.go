package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexl-lang/bexl/builtins"
	"github.com/bexl-lang/bexl/value"
)

func TestFunctions_UpperLowerTrim(t *testing.T) {
	v, err := builtins.Functions.Call("upper", []value.Value{value.NewString("hi")})
	require.NoError(t, err)
	assert.Equal(t, "HI", v.Str())

	v, err = builtins.Functions.Call("trim", []value.Value{value.NewString("  hi  ")})
	require.NoError(t, err)
	assert.Equal(t, "hi", v.Str())
}

func TestFunctions_Replace(t *testing.T) {
	v, err := builtins.Functions.Call("replace", []value.Value{
		value.NewString("hello world"), value.NewString("world"), value.NewString("there"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", v.Str())
}

func TestFunctions_RepeatRejectsNegative(t *testing.T) {
	_, err := builtins.Functions.Call("repeat", []value.Value{value.NewString("a"), value.NewInteger(-1)})
	assert.Error(t, err)
}

func TestFunctions_RepeatPositive(t *testing.T) {
	v, err := builtins.Functions.Call("repeat", []value.Value{value.NewString("ab"), value.NewInteger(3)})
	require.NoError(t, err)
	assert.Equal(t, "ababab", v.Str())
}
