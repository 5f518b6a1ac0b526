// Package ast defines the expression tree produced by pkg/parser and walked
// by pkg/eval.
//
// The tree has exactly three node shapes: a leaf (number or variable
// identifier), a unary node (one child), and a binary node (two children).
// Expr is sealed by an unexported exprNode() marker method, which restricts
// the set of implementers to the types declared in this file, so a type
// switch over Expr in pkg/eval is exhaustive by construction.
package ast

import "github.com/conneroisu/tcalc/pkg/lexer"

// Expr is any node in the expression tree.
type Expr interface {
	// Span returns the source byte range this node was parsed from. For
	// compound nodes this is the union of the operator token and its
	// children's spans.
	Span() lexer.Span
	exprNode()
}

// NumberExpr is a leaf holding a numeric literal token.
type NumberExpr struct {
	Token lexer.Token
}

func (e *NumberExpr) Span() lexer.Span { return e.Token.Span }
func (*NumberExpr) exprNode()          {}

// IdentExpr is a leaf holding a variable-reference identifier token.
type IdentExpr struct {
	Token lexer.Token
	Name  string
}

func (e *IdentExpr) Span() lexer.Span { return e.Token.Span }
func (*IdentExpr) exprNode()          {}

// UnaryExpr is an operator token (arithmetic unary op, `!`, or a unary
// function name) applied to one child. Symbol carries the operator
// token's source text (or the function identifier's name), since the
// evaluator dispatches on that string rather than on Kind alone.
type UnaryExpr struct {
	Op     lexer.Token
	Symbol string
	Child  Expr
}

func (e *UnaryExpr) Span() lexer.Span {
	return lexer.JoinSpans(e.Op.Span, e.Child.Span())
}
func (*UnaryExpr) exprNode() {}

// BinaryExpr is an operator token (arithmetic/relational/equality/logical
// binary op, or a binary function name) applied to two children. An
// implicit-multiplication node carries a zero-length Op.Span and
// Symbol == "*".
type BinaryExpr struct {
	Op          lexer.Token
	Symbol      string
	Left, Right Expr
}

func (e *BinaryExpr) Span() lexer.Span {
	return lexer.JoinSpans(e.Op.Span, lexer.JoinSpans(e.Left.Span(), e.Right.Span()))
}
func (*BinaryExpr) exprNode() {}
