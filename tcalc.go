// Package tcalc exposes the expression-engine pipeline: Evaluate, Parse,
// EvalTree and Tokenize, each operating against a caller-supplied
// internal/tcctx.Context. This is the thin top-level facade pkg/lexer,
// pkg/parser and pkg/eval compose into; cmd/tcalc and internal/fuzz do not
// call it and assemble the pipeline from those packages directly.
package tcalc

import (
	"github.com/conneroisu/tcalc/internal/ast"
	"github.com/conneroisu/tcalc/internal/tcctx"
	"github.com/conneroisu/tcalc/internal/tcerr"
	"github.com/conneroisu/tcalc/internal/value"
	"github.com/conneroisu/tcalc/pkg/eval"
	"github.com/conneroisu/tcalc/pkg/lexer"
	"github.com/conneroisu/tcalc/pkg/parser"
)

// Tokenize runs the lexer alone, for diagnostics/tools.
func Tokenize(text string, ctx *tcctx.Context) ([]lexer.Token, *tcerr.Error) {
	return lexer.Tokenize(text, ctx)
}

// Parse runs the lexer and parser, returning the expression tree without
// evaluating it.
func Parse(text string, ctx *tcctx.Context) (ast.Expr, *tcerr.Error) {
	tokens, err := lexer.Tokenize(text, ctx)
	if err != nil {
		return nil, err
	}

	return parser.Parse(tokens, ctx)
}

// EvalTree evaluates an already-parsed tree against ctx, for callers that
// split parsing from evaluation (e.g. to parse once and evaluate repeatedly
// with different contexts).
func EvalTree(tree ast.Expr, ctx *tcctx.Context) (value.Value, *tcerr.Error) {
	return eval.New(ctx).Eval(tree)
}

// Evaluate runs the full pipeline: text -> Lexer -> Parser -> Evaluator.
func Evaluate(text string, ctx *tcctx.Context) (value.Value, *tcerr.Error) {
	tree, err := Parse(text, ctx)
	if err != nil {
		return nil, err
	}

	return EvalTree(tree, ctx)
}
