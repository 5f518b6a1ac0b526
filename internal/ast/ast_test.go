package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conneroisu/tcalc/internal/ast"
	"github.com/conneroisu/tcalc/pkg/lexer"
)

func TestLeafSpansReturnTokenSpan(t *testing.T) {
	numTok := lexer.Token{Kind: lexer.Number, Text: "3", Span: lexer.Span{Start: 2, End: 3}}
	num := &ast.NumberExpr{Token: numTok}
	assert.Equal(t, lexer.Span{Start: 2, End: 3}, num.Span())

	identTok := lexer.Token{Kind: lexer.Identifier, Text: "pi", Span: lexer.Span{Start: 5, End: 7}}
	ident := &ast.IdentExpr{Token: identTok, Name: "pi"}
	assert.Equal(t, lexer.Span{Start: 5, End: 7}, ident.Span())
}

func TestUnaryExprSpanJoinsOperatorAndChild(t *testing.T) {
	opTok := lexer.Token{Kind: lexer.UnaryOp, Text: "-", Span: lexer.Span{Start: 0, End: 1}}
	child := &ast.NumberExpr{Token: lexer.Token{Kind: lexer.Number, Text: "5", Span: lexer.Span{Start: 1, End: 2}}}
	un := &ast.UnaryExpr{Op: opTok, Symbol: "-", Child: child}

	assert.Equal(t, lexer.Span{Start: 0, End: 2}, un.Span())
}

func TestBinaryExprSpanJoinsLeftAndRight(t *testing.T) {
	left := &ast.NumberExpr{Token: lexer.Token{Kind: lexer.Number, Text: "1", Span: lexer.Span{Start: 0, End: 1}}}
	right := &ast.NumberExpr{Token: lexer.Token{Kind: lexer.Number, Text: "2", Span: lexer.Span{Start: 4, End: 5}}}
	bin := &ast.BinaryExpr{Op: lexer.Token{Text: "+"}, Symbol: "+", Left: left, Right: right}

	assert.Equal(t, lexer.Span{Start: 0, End: 5}, bin.Span())
}

func TestImplicitMultiplicationHasZeroLengthOpSpan(t *testing.T) {
	left := &ast.NumberExpr{Token: lexer.Token{Kind: lexer.Number, Text: "2", Span: lexer.Span{Start: 0, End: 1}}}
	right := &ast.IdentExpr{
		Token: lexer.Token{Kind: lexer.Identifier, Text: "pi", Span: lexer.Span{Start: 1, End: 3}},
		Name:  "pi",
	}
	bin := &ast.BinaryExpr{Op: lexer.Token{Span: lexer.Span{Start: 1, End: 1}}, Symbol: "*", Left: left, Right: right}

	assert.Equal(t, lexer.Span{Start: 0, End: 3}, bin.Span())
	assert.Equal(t, "*", bin.Symbol)
}
