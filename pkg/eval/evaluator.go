// Package eval implements the post-order tree-walking evaluator: given an
// internal/ast tree and a tcctx.Context, it produces a value.Value or a
// *tcerr.Error.
//
// An Evaluator dispatches on the AST node's concrete type via a type
// switch, with one method per node shape (number, identifier, unary,
// binary).
package eval

import (
	"strconv"

	"github.com/conneroisu/tcalc/internal/ast"
	"github.com/conneroisu/tcalc/internal/tcctx"
	"github.com/conneroisu/tcalc/internal/tcerr"
	"github.com/conneroisu/tcalc/internal/value"
)

// Evaluator walks an expression tree against a Context.
type Evaluator struct {
	ctx   *tcctx.Context
	stack *tcerr.Stack
}

// New creates an Evaluator bound to ctx.
func New(ctx *tcctx.Context) *Evaluator {
	return &Evaluator{ctx: ctx, stack: &tcerr.Stack{}}
}

// Stack exposes the evaluator's diagnostic stack for inspection after a
// failed Eval.
func (e *Evaluator) Stack() *tcerr.Stack { return e.stack }

func (e *Evaluator) fail(kind tcerr.Kind, role, msg string) *tcerr.Error {
	e.stack.Push(role, msg)

	return tcerr.New(kind, e.stack)
}

// Eval evaluates expr against e's context.
func (e *Evaluator) Eval(expr ast.Expr) (value.Value, *tcerr.Error) {
	switch node := expr.(type) {
	case *ast.NumberExpr:
		return e.evalNumber(node)
	case *ast.IdentExpr:
		return e.evalIdent(node)
	case *ast.UnaryExpr:
		return e.evalUnary(node)
	case *ast.BinaryExpr:
		return e.evalBinary(node)
	default:
		return nil, e.fail(tcerr.Unimplemented, "Eval", "unrecognized expression node")
	}
}

func (e *Evaluator) evalNumber(node *ast.NumberExpr) (value.Value, *tcerr.Error) {
	f, parseErr := strconv.ParseFloat(node.Token.Text, 64)
	if parseErr != nil {
		return nil, e.fail(tcerr.MalformedInput, "evalNumber", "cannot parse "+node.Token.Text+" as a number")
	}

	return value.Number(f), nil
}

func (e *Evaluator) evalIdent(node *ast.IdentExpr) (value.Value, *tcerr.Error) {
	v, err := e.ctx.GetVariable(node.Name)
	if err != nil {
		return nil, e.fail(tcerr.UnknownID, "evalIdent", "unknown identifier "+node.Name)
	}

	return v, nil
}

// evalUnary dispatches Symbol against the unary-operator, unary-logic-
// operator, and unary-function tables in that order. The node's arity
// (exactly one child) already selects the unary side of the context, so
// this order only breaks ties among unary categories.
func (e *Evaluator) evalUnary(node *ast.UnaryExpr) (value.Value, *tcerr.Error) {
	child, err := e.Eval(node.Child)
	if err != nil {
		return nil, err
	}

	var impl value.UnaryFunc
	switch {
	case e.ctx.HasUnaryOp(node.Symbol):
		impl, _, _, _ = e.ctx.GetUnaryOp(node.Symbol)
	case e.ctx.HasUnaryLogicOp(node.Symbol):
		impl, _, _, _ = e.ctx.GetUnaryLogicOp(node.Symbol)
	case e.ctx.HasUnaryFunc(node.Symbol):
		impl, _ = e.ctx.GetUnaryFunc(node.Symbol)
	default:
		return nil, e.fail(tcerr.UnknownID, "evalUnary", "unknown unary operator/function "+node.Symbol)
	}

	result, opErr := impl(child)
	if opErr != nil {
		e.stack.Pushf("evalUnary", "applying %s", node.Symbol)

		return nil, opErr
	}

	return result, nil
}

// evalBinary dispatches Symbol against the binary-operator, relational,
// equality, binary-logic, and binary-function tables in that order. Both
// children are always evaluated (no mandated short-circuiting, per spec.md
// §4.5); left is evaluated before right so a left-side error preempts the
// right.
func (e *Evaluator) evalBinary(node *ast.BinaryExpr) (value.Value, *tcerr.Error) {
	left, err := e.Eval(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(node.Right)
	if err != nil {
		return nil, err
	}

	var impl value.BinaryFunc
	switch {
	case e.ctx.HasBinaryOp(node.Symbol):
		impl, _, _, _ = e.ctx.GetBinaryOp(node.Symbol)
	case e.ctx.HasRelOp(node.Symbol):
		impl, _, _, _ = e.ctx.GetRelOp(node.Symbol)
	case e.ctx.HasEqOp(node.Symbol):
		impl, _, _, _ = e.ctx.GetEqOp(node.Symbol)
	case e.ctx.HasBinaryLogicOp(node.Symbol):
		impl, _, _, _ = e.ctx.GetBinaryLogicOp(node.Symbol)
	case e.ctx.HasBinaryFunc(node.Symbol):
		impl, _ = e.ctx.GetBinaryFunc(node.Symbol)
	default:
		return nil, e.fail(tcerr.UnknownID, "evalBinary", "unknown binary operator/function "+node.Symbol)
	}

	result, opErr := impl(left, right)
	if opErr != nil {
		e.stack.Pushf("evalBinary", "applying %s", node.Symbol)

		return nil, opErr
	}

	return result, nil
}
