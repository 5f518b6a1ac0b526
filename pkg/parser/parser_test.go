package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/tcalc/internal/ast"
	"github.com/conneroisu/tcalc/internal/tcctx"
	"github.com/conneroisu/tcalc/internal/tcerr"
	"github.com/conneroisu/tcalc/pkg/lexer"
	"github.com/conneroisu/tcalc/pkg/parser"
)

func parse(t *testing.T, input string, ctx *tcctx.Context) ast.Expr {
	t.Helper()
	tokens, err := lexer.Tokenize(input, ctx)
	require.Nil(t, err)

	tree, perr := parser.Parse(tokens, ctx)
	require.Nil(t, perr)

	return tree
}

func TestParsesLeftAssociativeTerm(t *testing.T) {
	ctx := tcctx.NewDefault()
	tree := parse(t, "1 + 2 + 3", ctx)

	bin, ok := tree.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Symbol)

	left, ok := bin.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", left.Symbol)
}

func TestExponentiationIsRightAssociative(t *testing.T) {
	ctx := tcctx.NewDefault()
	tree := parse(t, "2 ** 2 ^ 2 ** 2", ctx)

	top, ok := tree.(*ast.BinaryExpr)
	require.True(t, ok)

	_, rightIsBinary := top.Right.(*ast.BinaryExpr)
	assert.True(t, rightIsBinary, "right child should itself be a binary exponentiation node")
}

func TestUnaryMinusBindsLooserThanExponentiation(t *testing.T) {
	ctx := tcctx.NewDefault()
	tree := parse(t, "-10 ^ 2", ctx)

	un, ok := tree.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "-", un.Symbol)

	bin, childIsBinary := un.Child.(*ast.BinaryExpr)
	require.True(t, childIsBinary)
	assert.Equal(t, "^", bin.Symbol)
}

func TestParenthesizedUnaryMinus(t *testing.T) {
	ctx := tcctx.NewDefault()
	tree := parse(t, "(-10) ^ 2", ctx)

	bin, ok := tree.(*ast.BinaryExpr)
	require.True(t, ok)
	_, leftIsUnary := bin.Left.(*ast.UnaryExpr)
	assert.True(t, leftIsUnary)
}

func TestImplicitMultiplicationParsesToSynthesizedStar(t *testing.T) {
	ctx := tcctx.NewDefault()
	tree := parse(t, "2pi", ctx)

	bin, ok := tree.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", bin.Symbol)

	_, leftIsNumber := bin.Left.(*ast.NumberExpr)
	assert.True(t, leftIsNumber)
	ident, rightIsIdent := bin.Right.(*ast.IdentExpr)
	require.True(t, rightIsIdent)
	assert.Equal(t, "pi", ident.Name)
}

func TestUnaryFunctionCallParsesToUnaryExpr(t *testing.T) {
	ctx := tcctx.NewDefault()
	tree := parse(t, "sin(0)", ctx)

	un, ok := tree.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "sin", un.Symbol)
}

func TestBinaryFunctionCallParsesToBinaryExpr(t *testing.T) {
	ctx := tcctx.NewDefault()
	tree := parse(t, "atan2(1, 1)", ctx)

	bin, ok := tree.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "atan2", bin.Symbol)
}

func TestWrongArityIsRejected(t *testing.T) {
	ctx := tcctx.NewDefault()
	tokens, err := lexer.Tokenize("sin(1, 2)", ctx)
	require.Nil(t, err)

	_, perr := parser.Parse(tokens, ctx)
	require.NotNil(t, perr)
	assert.Equal(t, tcerr.WrongArity, perr.Kind)
}

func TestUnclosedFunctionCall(t *testing.T) {
	ctx := tcctx.NewDefault()
	// The lexer's balance precheck rejects "sin(1" before parsing, so the
	// parser is fed the same call as a hand-built token stream.
	_, err := lexer.Tokenize("sin(1", ctx)
	require.NotNil(t, err)
	assert.Equal(t, tcerr.UnbalancedGroupSymbols, err.Kind)

	tokens := []lexer.Token{
		{Kind: lexer.Identifier, Text: "sin"},
		{Kind: lexer.GroupStart, Text: "("},
		{Kind: lexer.Number, Text: "1"},
		{Kind: lexer.Eof},
	}

	_, perr := parser.Parse(tokens, ctx)
	require.NotNil(t, perr)
	assert.Equal(t, tcerr.UnclosedFunc, perr.Kind)
}

func TestUnknownIdentifierIsRejectedAtParseTime(t *testing.T) {
	ctx := tcctx.NewDefault()
	tokens, err := lexer.Tokenize("unknownid", ctx)
	require.Nil(t, err)

	_, perr := parser.Parse(tokens, ctx)
	require.NotNil(t, perr)
	assert.Equal(t, tcerr.UnknownID, perr.Kind)
}

func TestTrailingTokensAreUnprocessedInput(t *testing.T) {
	ctx := tcctx.NewDefault()
	tokens := []lexer.Token{
		{Kind: lexer.Number, Text: "1"},
		{Kind: lexer.Number, Text: "2"},
		{Kind: lexer.Eof},
	}

	_, perr := parser.Parse(tokens, ctx)
	require.NotNil(t, perr)
	assert.Equal(t, tcerr.UnprocessedInput, perr.Kind)
}

func TestLogicalPrecedence(t *testing.T) {
	ctx := tcctx.NewDefault()
	tree := parse(t, "(5 <= 5) || (true || true) && false", ctx)

	top, ok := tree.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "||", top.Symbol)
}
