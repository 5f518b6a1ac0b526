package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/tcalc/internal/tcctx"
	"github.com/conneroisu/tcalc/internal/tcerr"
	"github.com/conneroisu/tcalc/pkg/lexer"
)

func kinds(tokens []lexer.Token) []lexer.Kind {
	out := make([]lexer.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}

	return out
}

func TestTokenizeSimpleArithmetic(t *testing.T) {
	ctx := tcctx.NewDefault()
	tokens, err := lexer.Tokenize("6 * 3 + 4", ctx)
	require.Nil(t, err)

	assert.Equal(t, []lexer.Kind{
		lexer.Number, lexer.BinaryOp, lexer.Number,
		lexer.BinaryOp, lexer.Number, lexer.Eof,
	}, kinds(tokens))
}

func TestUnaryVsBinaryMinusDisambiguation(t *testing.T) {
	ctx := tcctx.NewDefault()
	tokens, err := lexer.Tokenize("-10 ^ 2", ctx)
	require.Nil(t, err)
	assert.Equal(t, lexer.UnaryOp, tokens[0].Kind)

	tokens, err = lexer.Tokenize("3 - 2", ctx)
	require.Nil(t, err)
	assert.Equal(t, lexer.BinaryOp, tokens[1].Kind)
}

func TestImplicitMultiplicationNumberBeforeIdentifier(t *testing.T) {
	ctx := tcctx.NewDefault()
	tokens, err := lexer.Tokenize("2pi", ctx)
	require.Nil(t, err)

	require.Len(t, tokens, 4) // Number, synthetic *, Identifier, Eof
	assert.Equal(t, lexer.Number, tokens[0].Kind)
	assert.Equal(t, lexer.BinaryOp, tokens[1].Kind)
	assert.True(t, tokens[1].IsSynthetic())
	assert.Equal(t, lexer.Identifier, tokens[2].Kind)
}

func TestImplicitMultiplicationNumberBeforeGroup(t *testing.T) {
	ctx := tcctx.NewDefault()
	tokens, err := lexer.Tokenize("5(1+1)", ctx)
	require.Nil(t, err)

	assert.Equal(t, lexer.Number, tokens[0].Kind)
	assert.True(t, tokens[1].IsSynthetic())
	assert.Equal(t, lexer.GroupStart, tokens[2].Kind)
}

func TestNoImplicitMultiplicationAfterFunctionIdentifier(t *testing.T) {
	ctx := tcctx.NewDefault()
	tokens, err := lexer.Tokenize("sin(x)", ctx)
	require.Nil(t, err)

	for _, tok := range tokens {
		assert.False(t, tok.IsSynthetic())
	}
}

func TestUnbalancedGroupSymbols(t *testing.T) {
	ctx := tcctx.NewDefault()
	_, err := lexer.Tokenize("(3 + 2", ctx)
	require.NotNil(t, err)
	assert.Equal(t, tcerr.UnbalancedGroupSymbols, err.Kind)

	_, err = lexer.Tokenize("3 + 2)", ctx)
	require.NotNil(t, err)
	assert.Equal(t, tcerr.UnbalancedGroupSymbols, err.Kind)
}

func TestMalformedNumberLiterals(t *testing.T) {
	ctx := tcctx.NewDefault()

	_, err := lexer.Tokenize("53.3.4", ctx)
	require.NotNil(t, err)
	assert.Equal(t, tcerr.MalformedInput, err.Kind)

	_, err = lexer.Tokenize(".", ctx)
	require.NotNil(t, err)
	assert.Equal(t, tcerr.MalformedInput, err.Kind)
}

func TestEmptyAndWhitespaceInput(t *testing.T) {
	ctx := tcctx.NewDefault()

	tokens, err := lexer.Tokenize("", ctx)
	require.Nil(t, err)
	assert.Equal(t, []lexer.Kind{lexer.Eof}, kinds(tokens))

	tokens, err = lexer.Tokenize("   ", ctx)
	require.Nil(t, err)
	assert.Equal(t, []lexer.Kind{lexer.Eof}, kinds(tokens))
}

func TestMultiCharOperatorsTakePriorityOverSingleChar(t *testing.T) {
	ctx := tcctx.NewDefault()
	tokens, err := lexer.Tokenize("2 ** 2", ctx)
	require.Nil(t, err)
	assert.Equal(t, "**", tokens[1].Text)
}

func TestRelationalAndEqualityKinds(t *testing.T) {
	ctx := tcctx.NewDefault()
	tokens, err := lexer.Tokenize("5 <= 5", ctx)
	require.Nil(t, err)
	assert.Equal(t, lexer.RelOp, tokens[1].Kind)

	tokens, err = lexer.Tokenize("5 == 5", ctx)
	require.Nil(t, err)
	assert.Equal(t, lexer.EqOp, tokens[1].Kind)
}

func TestTokenStringer(t *testing.T) {
	tok := lexer.Token{Kind: lexer.Eof}
	assert.Equal(t, "Eof", tok.String())

	tok = lexer.Token{Kind: lexer.Number, Text: "3"}
	assert.Equal(t, `Number("3")`, tok.String())
}
