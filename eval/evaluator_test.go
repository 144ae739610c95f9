package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexl-lang/bexl/eval"
	"github.com/bexl-lang/bexl/parser"
	"github.com/bexl-lang/bexl/resolver"
	"github.com/bexl-lang/bexl/value"
)

func evalSrc(t *testing.T, src string, vars map[string]value.Value) (value.Value, error) {
	t.Helper()
	node, err := parser.Parse(src)
	require.NoError(t, err)
	res := resolver.New(vars)
	return eval.New(res).Eval(node)
}

func TestEval_Arithmetic(t *testing.T) {
	v, err := evalSrc(t, "1 + 2 * 3", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Int())
}

func TestEval_StringConcatUsesConcatNotPlus(t *testing.T) {
	_, err := evalSrc(t, "'a' + 'b'", nil)
	assert.Error(t, err)

	v, err := evalSrc(t, "concat('a', 'b')", nil)
	require.NoError(t, err)
	assert.Equal(t, "ab", v.Str())
}

func TestEval_Variable(t *testing.T) {
	v, err := evalSrc(t, "$x + 1", map[string]value.Value{"x": value.NewInteger(41)})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Int())
}

func TestEval_UnknownVariableIsResolverError(t *testing.T) {
	_, err := evalSrc(t, "$missing", nil)
	assert.Error(t, err)
}

func TestEval_ListIndexAndSlice(t *testing.T) {
	v, err := evalSrc(t, "[1, 2, 3, 4][1]", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int())

	v, err = evalSrc(t, "[1, 2, 3, 4][1:3]", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, len(v.ListVal()))
}

func TestEval_Property(t *testing.T) {
	v, err := evalSrc(t, "record('a', 1, 'b', 2).a", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int())
}

func TestEval_IfAndSwitch(t *testing.T) {
	v, err := evalSrc(t, "if(1 > 2, 'no', 'yes')", nil)
	require.NoError(t, err)
	assert.Equal(t, "yes", v.Str())

	v, err = evalSrc(t, "switch(2, 1, 'one', 2, 'two', 'other')", nil)
	require.NoError(t, err)
	assert.Equal(t, "two", v.Str())
}

func TestEval_BooleanOperators(t *testing.T) {
	v, err := evalSrc(t, "True & False", nil)
	require.NoError(t, err)
	assert.False(t, v.Bool())

	v, err = evalSrc(t, "!False", nil)
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestEval_DateArithmetic(t *testing.T) {
	v, err := evalSrc(t, "date(2024, 1, 1) + 10", nil)
	require.NoError(t, err)
	assert.Equal(t, value.Date, v.Kind())
	assert.Equal(t, 2024, v.DateVal().Year())
	assert.Equal(t, 11, v.DateVal().Day())
}

func TestEval_NullPropagatesThroughArithmetic(t *testing.T) {
	v, err := evalSrc(t, "$x + 1", map[string]value.Value{"x": value.NullOf(value.Integer)})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
	assert.Equal(t, value.Integer, v.Kind())
}

func TestEval_BareNullIsUntypedDispatchError(t *testing.T) {
	_, err := evalSrc(t, "Null + 1", nil)
	assert.Error(t, err)
}
