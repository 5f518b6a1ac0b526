// Package fuzz provides the tcalc fuzzing entry point: run the full
// pipeline against the default context, never panic, and report
// success/failure as an int, for use with Go's native fuzzing
// (go test -fuzz).
package fuzz

import (
	"github.com/conneroisu/tcalc/internal/tcctx"
	"github.com/conneroisu/tcalc/pkg/eval"
	"github.com/conneroisu/tcalc/pkg/lexer"
	"github.com/conneroisu/tcalc/pkg/parser"
)

// Fuzz evaluates data as expression text against a fresh default context.
// It returns 0 when evaluation succeeds and -1 when any declared error
// is produced; it never panics, since malformed input is always reported
// as a declared *tcerr.Error, not a process fault.
func Fuzz(data []byte) int {
	ctx := tcctx.NewDefault()

	tokens, err := lexer.Tokenize(string(data), ctx)
	if err != nil {
		return -1
	}

	tree, err := parser.Parse(tokens, ctx)
	if err != nil {
		return -1
	}

	if _, err := eval.New(ctx).Eval(tree); err != nil {
		return -1
	}

	return 0
}
