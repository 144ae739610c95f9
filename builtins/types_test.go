package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexl-lang/bexl/builtins"
	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/value"
)

func TestFunctions_RecordAndProperty(t *testing.T) {
	rec, err := builtins.Functions.Call("record", []value.Value{
		value.NewString("a"), value.NewInteger(1),
		value.NewString("b"), value.NewInteger(2),
	})
	require.NoError(t, err)

	v, err := builtins.Functions.Call("property", []value.Value{rec, value.NewString("a")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int())

	_, err = builtins.Functions.Call("property", []value.Value{rec, value.NewString("z")})
	require.Error(t, err)
	var execErr *errs.ExecutionError
	assert.ErrorAs(t, err, &execErr)
}

func TestFunctions_PropertyOnNullRecordIsNull(t *testing.T) {
	v, err := builtins.Functions.Call("property", []value.Value{value.NullOf(value.Record), value.NewString("a")})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestFunctions_RecordRejectsNonStringKey(t *testing.T) {
	_, err := builtins.Functions.Call("record", []value.Value{value.NewInteger(1), value.NewInteger(2)})
	assert.Error(t, err)
}

func TestFunctions_Coalesce(t *testing.T) {
	v, err := builtins.Functions.Call("coalesce", []value.Value{
		value.NullOf(value.Integer), value.NullOf(value.Integer), value.NewInteger(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int())
}

func TestFunctions_IsPredicates(t *testing.T) {
	v, err := builtins.Functions.Call("isInteger", []value.Value{value.NewInteger(1)})
	require.NoError(t, err)
	assert.True(t, v.Bool())

	v, err = builtins.Functions.Call("isNull", []value.Value{value.NullOf(value.String)})
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestFunctions_IntegerCastInvoker(t *testing.T) {
	v, err := builtins.Functions.Call("integer", []value.Value{value.NewString("42")})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Int())
}
