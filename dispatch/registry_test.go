package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gta "gotest.tools/v3/assert"

	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/value"
)

func TestRegistry_SignatureTableExactMatch(t *testing.T) {
	r := NewRegistry()
	r.Register("add", []value.Kind{value.Integer, value.Integer}, func(args []value.Value) (value.Value, error) {
		return value.NewInteger(args[0].Int() + args[1].Int()), nil
	})
	r.Register("add", []value.Kind{value.Float, value.Integer}, func(args []value.Value) (value.Value, error) {
		return value.NewFloat(args[0].Float64() + float64(args[1].Int())), nil
	})

	got, err := r.Call("add", []value.Value{value.NewInteger(2), value.NewInteger(3)})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Int())

	got, err = r.Call("add", []value.Value{value.NewFloat(2.5), value.NewInteger(1)})
	require.NoError(t, err)
	assert.Equal(t, 3.5, got.Float64())
}

func TestRegistry_SignatureMissIsDispatchError(t *testing.T) {
	r := NewRegistry()
	r.Register("add", []value.Kind{value.Integer, value.Integer}, func(args []value.Value) (value.Value, error) {
		return args[0], nil
	})
	_, err := r.Call("add", []value.Value{value.NewString("a"), value.NewString("b")})
	require.Error(t, err)
	var dispatchErr *errs.DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	gta.DeepEqual(t, dispatchErr.Kinds, []string{"string", "string"})
}

func TestRegistry_VariadicArityBounds(t *testing.T) {
	r := NewRegistry()
	r.RegisterVariadic("concat", 1, -1, func(args []value.Value) (value.Value, error) {
		return value.NewInteger(int64(len(args))), nil
	})

	got, err := r.Call("concat", []value.Value{value.NewString("a")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Int())

	_, err = r.Call("concat", nil)
	assert.Error(t, err)
}

func TestRegistry_UnknownNameIsDispatchError(t *testing.T) {
	r := NewRegistry()
	_, err := r.Call("doesntexist", nil)
	assert.Error(t, err)
}
