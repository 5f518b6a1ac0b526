// Command tcalc is the CLI front-end for the expression engine: a cobra
// command tree with eval, tokenize, parse and repl subcommands, each
// configured through spf13/pflag-backed flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/tcalc/cmd/tcalc/internalrepl"
	"github.com/conneroisu/tcalc/internal/tcctx"
	"github.com/conneroisu/tcalc/pkg/eval"
	"github.com/conneroisu/tcalc/pkg/lexer"
	"github.com/conneroisu/tcalc/pkg/parser"
)

// registerDegFlag attaches the --deg flag directly against the
// spf13/pflag.FlagSet cobra embeds, rather than through cobra's thin
// wrapper, so callers holding a *pflag.FlagSet (e.g. shared setup code)
// can register it the same way on any command.
func registerDegFlag(fs *pflag.FlagSet) {
	fs.Bool("deg", false, "use degrees instead of radians for trig functions")
}

func newContext(degrees bool) *tcctx.Context {
	if degrees {
		return tcctx.NewDefault(tcctx.Degrees())
	}

	return tcctx.NewDefault()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tcalc",
		Short: "tcalc evaluates infix mathematical expressions",
		Long: "tcalc is an expression engine: lexer, recursive-descent parser and " +
			"tree-walking evaluator for infix expressions over numbers and booleans.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				deg, _ := cmd.Flags().GetBool("deg")

				return runRepl(cmd, deg)
			}

			return runEval(cmd, args[0])
		},
	}

	registerDegFlag(root.PersistentFlags())

	root.AddCommand(newEvalCmd(), newTokenizeCmd(), newParseCmd(), newReplCmd())

	return root
}

func newEvalCmd() *cobra.Command {
	var tree, tokens bool

	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "evaluate a single expression and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, _ := cmd.Flags().GetBool("deg")
			ctx := newContext(deg)

			toks, err := lexer.Tokenize(args[0], ctx)
			if err != nil {
				return fmt.Errorf("lex: %s", err.Error())
			}
			if tokens {
				for _, tok := range toks {
					fmt.Fprintln(cmd.OutOrStdout(), tok.String())
				}
			}

			expr, perr := parser.Parse(toks, ctx)
			if perr != nil {
				return fmt.Errorf("parse: %s", perr.Error())
			}
			if tree {
				fmt.Fprintln(cmd.OutOrStdout(), internalrepl.FormatTree(expr))
			}

			result, eerr := eval.New(ctx).Eval(expr)
			if eerr != nil {
				return fmt.Errorf("eval: %s", eerr.Error())
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.String())

			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "print the parsed expression tree")
	cmd.Flags().BoolVar(&tokens, "tokens", false, "print the token stream")

	return cmd
}

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize EXPR",
		Short: "print the token stream for an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, _ := cmd.Flags().GetBool("deg")
			ctx := newContext(deg)

			toks, err := lexer.Tokenize(args[0], ctx)
			if err != nil {
				return fmt.Errorf("lex: %s", err.Error())
			}
			for _, tok := range toks {
				fmt.Fprintln(cmd.OutOrStdout(), tok.String())
			}

			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse EXPR",
		Short: "print the parsed expression tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, _ := cmd.Flags().GetBool("deg")
			ctx := newContext(deg)

			toks, err := lexer.Tokenize(args[0], ctx)
			if err != nil {
				return fmt.Errorf("lex: %s", err.Error())
			}

			expr, perr := parser.Parse(toks, ctx)
			if perr != nil {
				return fmt.Errorf("parse: %s", perr.Error())
			}

			fmt.Fprintln(cmd.OutOrStdout(), internalrepl.FormatTree(expr))

			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, _ := cmd.Flags().GetBool("deg")

			return runRepl(cmd, deg)
		},
	}
}

func runEval(cmd *cobra.Command, expr string) error {
	deg, _ := cmd.Flags().GetBool("deg")
	ctx := newContext(deg)

	result, err := evaluate(expr, ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)

	return nil
}

func evaluate(expr string, ctx *tcctx.Context) (string, error) {
	toks, err := lexer.Tokenize(expr, ctx)
	if err != nil {
		return "", fmt.Errorf("lex: %s", err.Error())
	}

	tree, perr := parser.Parse(toks, ctx)
	if perr != nil {
		return "", fmt.Errorf("parse: %s", perr.Error())
	}

	result, eerr := eval.New(ctx).Eval(tree)
	if eerr != nil {
		return "", fmt.Errorf("eval: %s", eerr.Error())
	}

	return result.String(), nil
}

func runRepl(cmd *cobra.Command, degrees bool) error {
	ctx := newContext(degrees)
	r := internalrepl.New("tcalc> ", ctx)

	return r.Start(cmd.OutOrStdout())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
