// Package internalrepl implements the tcalc interactive REPL: a
// readline-backed loop that repeatedly lexes, parses and evaluates a line
// of input against a shared internal/tcctx.Context, printing colorized
// results or diagnostics.
//
// Grounded on akashmaji946-go-mix/repl/repl.go's Repl struct (banner +
// colorized result/error Fprintf calls over a chzyer/readline instance),
// adapted from a stateful-environment language REPL to a stateless
// expression-at-a-time calculator: there is no variable assignment here,
// only toggles for degrees mode and diagnostic printing.
package internalrepl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/conneroisu/tcalc/internal/tcctx"
	"github.com/conneroisu/tcalc/pkg/eval"
	"github.com/conneroisu/tcalc/pkg/lexer"
	"github.com/conneroisu/tcalc/pkg/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session.
type Repl struct {
	Prompt     string
	ShowTree   bool
	ShowTokens bool

	ctx *tcctx.Context
}

// New creates a Repl evaluating against ctx.
func New(prompt string, ctx *tcctx.Context) *Repl {
	return &Repl{Prompt: prompt, ctx: ctx}
}

func (r *Repl) printBanner(w io.Writer) {
	greenColor.Fprintln(w, "tcalc — interactive expression calculator")
	cyanColor.Fprintln(w, "Type an expression and press enter.")
	cyanColor.Fprintln(w, "Commands: :deg (toggle degrees), :tree, :tokens, :help, :quit")
}

// Start runs the REPL loop until EOF or a :quit command.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			blueColor.Fprintln(w, "bye")

			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if r.handleCommand(w, line) {
				return nil
			}

			continue
		}

		rl.SaveHistory(line)
		r.evalLine(w, line)
	}
}

// handleCommand processes a leading-colon command, returning true if the
// session should end.
func (r *Repl) handleCommand(w io.Writer, cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		blueColor.Fprintln(w, "bye")

		return true
	case ":help", ":h":
		cyanColor.Fprintln(w, "Commands: :deg :tree :tokens :help :quit")
	case ":deg":
		r.ctx.SetDegrees(!r.ctx.Degrees())
		yellowColor.Fprintf(w, "degrees mode: %v\n", r.ctx.Degrees())
	case ":tree":
		r.ShowTree = !r.ShowTree
		yellowColor.Fprintf(w, "show tree: %v\n", r.ShowTree)
	case ":tokens":
		r.ShowTokens = !r.ShowTokens
		yellowColor.Fprintf(w, "show tokens: %v\n", r.ShowTokens)
	default:
		redColor.Fprintf(w, "unknown command: %s\n", cmd)
	}

	return false
}

func (r *Repl) evalLine(w io.Writer, line string) {
	tokens, err := lexer.Tokenize(line, r.ctx)
	if err != nil {
		redColor.Fprintf(w, "lex error: %s\n", err.Error())

		return
	}

	if r.ShowTokens {
		for _, tok := range tokens {
			cyanColor.Fprintf(w, "  %s\n", tok.String())
		}
	}

	tree, perr := parser.Parse(tokens, r.ctx)
	if perr != nil {
		redColor.Fprintf(w, "parse error: %s\n", perr.Error())

		return
	}

	if r.ShowTree {
		cyanColor.Fprintf(w, "  %s\n", formatTree(tree, 0))
	}

	result, eerr := eval.New(r.ctx).Eval(tree)
	if eerr != nil {
		redColor.Fprintf(w, "eval error: %s\n", eerr.Error())

		return
	}

	yellowColor.Fprintln(w, result.String())
}
