package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexl-lang/bexl/ast"
	"github.com/bexl-lang/bexl/errs"
)

func TestParse_Precedence(t *testing.T) {
	node, err := Parse(`1 + 2 * 3`)
	require.NoError(t, err)
	bin, ok := node.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", string(bin.Operator.Type))
	right, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", string(right.Operator.Type))
}

func TestParse_UnaryBindsTighterThanPow(t *testing.T) {
	// -a ** b parses as (-a) ** b
	node, err := Parse(`-$a ** $b`)
	require.NoError(t, err)
	bin, ok := node.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "**", string(bin.Operator.Type))
	_, ok = bin.Left.(*ast.Unary)
	assert.True(t, ok)
}

func TestParse_LeftAssociativeSubtraction(t *testing.T) {
	node, err := Parse(`$a - $b - $c`)
	require.NoError(t, err)
	outer, ok := node.(*ast.Binary)
	require.True(t, ok)
	_, ok = outer.Left.(*ast.Binary)
	assert.True(t, ok, "a - b - c should parse as (a - b) - c")
}

func TestParse_Index(t *testing.T) {
	node, err := Parse(`[1, 2, 3][1]`)
	require.NoError(t, err)
	idx, ok := node.(*ast.Indexing)
	require.True(t, ok)
	assert.False(t, idx.IsSlice)
	assert.NotNil(t, idx.Index)
}

func TestParse_SliceVariants(t *testing.T) {
	cases := map[string]struct {
		hasStart bool
		hasEnd   bool
	}{
		`[1,2,3][1:]`:  {true, false},
		`[1,2,3][:2]`:  {false, true},
		`[1,2,3][1:2]`: {true, true},
		`[1,2,3][:]`:   {false, false},
	}
	for src, want := range cases {
		node, err := Parse(src)
		require.NoError(t, err, src)
		idx, ok := node.(*ast.Indexing)
		require.True(t, ok, src)
		assert.True(t, idx.IsSlice, src)
		assert.Equal(t, want.hasStart, idx.Start != nil, src)
		assert.Equal(t, want.hasEnd, idx.End != nil, src)
	}
}

func TestParse_Property(t *testing.T) {
	node, err := Parse(`record('x', 1).x`)
	require.NoError(t, err)
	prop, ok := node.(*ast.Property)
	require.True(t, ok)
	assert.Equal(t, "x", prop.Name)
}

func TestParse_FunctionCall(t *testing.T) {
	node, err := Parse(`if(True, 1, 2)`)
	require.NoError(t, err)
	fn, ok := node.(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "if", fn.Name)
	assert.Len(t, fn.Arguments, 3)
}

func TestParse_Errors(t *testing.T) {
	cases := []string{
		`1]`,    // unexpected token
		`foo(`,  // unexpected token
		`foo(1`, // missing token
	}
	for _, src := range cases {
		_, err := Parse(src)
		assert.Error(t, err, src)
		var parseErr *errs.ParserError
		assert.ErrorAs(t, err, &parseErr, src)
	}
}
