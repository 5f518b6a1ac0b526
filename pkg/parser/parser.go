// Package parser implements the recursive-descent parser over a lexer
// token stream, producing an internal/ast expression tree: one function per
// grammar rule, a cur/peek token-window cursor, right-recursion for
// exponentiation, and a linked-list-of-unaries pattern for prefix operators.
package parser

import (
	"strconv"

	"github.com/conneroisu/tcalc/internal/ast"
	"github.com/conneroisu/tcalc/internal/tcctx"
	"github.com/conneroisu/tcalc/internal/tcerr"
	"github.com/conneroisu/tcalc/pkg/lexer"
)

// Parser threads the token stream, a cursor, and a Context reference
// through the recursive grammar-rule calls, per DESIGN NOTES' "parser
// context struct... keep this explicit rather than hidden in global state".
type Parser struct {
	tokens []lexer.Token
	pos    int
	ctx    *tcctx.Context
	stack  *tcerr.Stack
}

// New constructs a Parser over an already-tokenized stream.
func New(tokens []lexer.Token, ctx *tcctx.Context) *Parser {
	return &Parser{tokens: tokens, ctx: ctx, stack: &tcerr.Stack{}}
}

// Stack exposes the parser's diagnostic stack for callers that want to
// inspect frames after a failed Parse.
func (p *Parser) Stack() *tcerr.Stack { return p.stack }

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Kind: lexer.Eof}
	}

	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return lexer.Token{Kind: lexer.Eof}
	}

	return p.tokens[p.pos+1]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}

	return tok
}

func (p *Parser) fail(kind tcerr.Kind, role, msg string) *tcerr.Error {
	p.stack.Push(role, msg)

	return tcerr.New(kind, p.stack)
}

// Parse runs the full grammar over the token stream starting at
// "expression" (lowest precedence: logical_or) and requires every token to
// be consumed — trailing tokens are UnprocessedInput.
func Parse(tokens []lexer.Token, ctx *tcctx.Context) (ast.Expr, *tcerr.Error) {
	p := New(tokens, ctx)

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.cur().Kind != lexer.Eof {
		return nil, p.fail(tcerr.UnprocessedInput, "Parse", "trailing tokens after expression")
	}

	return expr, nil
}

// expression → logical_or
func (p *Parser) parseExpression() (ast.Expr, *tcerr.Error) {
	return p.parseLogicalOr()
}

// logical_or → logical_and ( "||" logical_and )*
func (p *Parser) parseLogicalOr() (ast.Expr, *tcerr.Error) {
	return p.parseLeftAssocBinLogic(p.parseLogicalAnd, "||")
}

// logical_and → equality ( "&&" equality )*
func (p *Parser) parseLogicalAnd() (ast.Expr, *tcerr.Error) {
	return p.parseLeftAssocBinLogic(p.parseEquality, "&&")
}

// equality → relational ( ("=" | "==" | "!=") relational )*
func (p *Parser) parseEquality() (ast.Expr, *tcerr.Error) {
	return p.parseLeftAssocEq(p.parseRelational, "=", "==", "!=")
}

// relational → term ( ("<"|"<="|">"|">=") term )*
func (p *Parser) parseRelational() (ast.Expr, *tcerr.Error) {
	return p.parseLeftAssocRel(p.parseTerm, "<", "<=", ">", ">=")
}

// term → factor ( ("+"|"-") factor )*
func (p *Parser) parseTerm() (ast.Expr, *tcerr.Error) {
	return p.parseLeftAssocArith(p.parseFactor, "+", "-")
}

// factor → unary ( ("*"|"/"|"%") unary )*
func (p *Parser) parseFactor() (ast.Expr, *tcerr.Error) {
	return p.parseLeftAssocArith(p.parseUnary, "*", "/", "%")
}

type subParser func() (ast.Expr, *tcerr.Error)

// parseLeftAssocArith and its siblings below implement iterative
// consumption for every left-associative infix level: parse one operand of
// the next-higher precedence, then repeatedly consume an operator from the
// given set followed by another operand, building a left-leaning chain of
// BinaryExpr nodes.
func (p *Parser) parseLeftAssocArith(next subParser, symbols ...string) (ast.Expr, *tcerr.Error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for matchesSymbol(p.cur(), lexer.BinaryOp, symbols) {
		op := p.advance()
		right, err := next()
		if err != nil {
			return nil, p.fail(tcerr.MalformedBinexp, "parseLeftAssocArith", "missing right operand for "+op.Text)
		}
		left = &ast.BinaryExpr{Op: op, Symbol: symbolOf(op), Left: left, Right: right}
	}

	return left, nil
}

// symbolOf returns the operator text a node should dispatch on — "*" for a
// synthetic implicit-multiplication token, since its span is empty and
// carries no text, and implicit multiplication dispatches as if its
// operator were *.
func symbolOf(tok lexer.Token) string {
	if tok.IsSynthetic() {
		return "*"
	}

	return tok.Text
}

func (p *Parser) parseLeftAssocRel(next subParser, symbols ...string) (ast.Expr, *tcerr.Error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for matchesSymbol(p.cur(), lexer.RelOp, symbols) {
		op := p.advance()
		right, err := next()
		if err != nil {
			return nil, p.fail(tcerr.MalformedBinexp, "parseLeftAssocRel", "missing right operand for "+op.Text)
		}
		left = &ast.BinaryExpr{Op: op, Symbol: op.Text, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseLeftAssocEq(next subParser, symbols ...string) (ast.Expr, *tcerr.Error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for matchesSymbol(p.cur(), lexer.EqOp, symbols) {
		op := p.advance()
		right, err := next()
		if err != nil {
			return nil, p.fail(tcerr.MalformedBinexp, "parseLeftAssocEq", "missing right operand for "+op.Text)
		}
		left = &ast.BinaryExpr{Op: op, Symbol: op.Text, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseLeftAssocBinLogic(next subParser, symbol string) (ast.Expr, *tcerr.Error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for matchesSymbol(p.cur(), lexer.BinaryLogicOp, []string{symbol}) {
		op := p.advance()
		right, err := next()
		if err != nil {
			return nil, p.fail(tcerr.MalformedBinexp, "parseLeftAssocBinLogic", "missing right operand for "+op.Text)
		}
		left = &ast.BinaryExpr{Op: op, Symbol: op.Text, Left: left, Right: right}
	}

	return left, nil
}

func matchesSymbol(tok lexer.Token, kind lexer.Kind, symbols []string) bool {
	if tok.Kind != kind {
		return false
	}
	text := symbolOf(tok)
	for _, s := range symbols {
		if text == s {
			return true
		}
	}

	return false
}

// unary → ("+"|"-"|"!")* exponentiation
//
// Right-associative by construction: each prefix operator wraps the result
// of parsing the remainder of the unary chain, a linked-list-of-unaries
// approach instead of an explicit loop-then-reverse.
func (p *Parser) parseUnary() (ast.Expr, *tcerr.Error) {
	tok := p.cur()
	if tok.Kind == lexer.UnaryOp && (tok.Text == "+" || tok.Text == "-") {
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, p.fail(tcerr.MalformedUnexp, "parseUnary", "missing operand for "+tok.Text)
		}

		return &ast.UnaryExpr{Op: tok, Symbol: tok.Text, Child: child}, nil
	}
	if tok.Kind == lexer.UnaryLogicOp && tok.Text == "!" {
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, p.fail(tcerr.MalformedUnexp, "parseUnary", "missing operand for !")
		}

		return &ast.UnaryExpr{Op: tok, Symbol: tok.Text, Child: child}, nil
	}

	return p.parseExponentiation()
}

// exponentiation → primary ( ("^"|"**") exponentiation )?   -- right-assoc
func (p *Parser) parseExponentiation() (ast.Expr, *tcerr.Error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if matchesSymbol(p.cur(), lexer.BinaryOp, []string{"^", "**"}) {
		op := p.advance()
		right, err := p.parseExponentiation()
		if err != nil {
			return nil, p.fail(tcerr.MalformedBinexp, "parseExponentiation", "missing right operand for "+op.Text)
		}

		return &ast.BinaryExpr{Op: op, Symbol: op.Text, Left: left, Right: right}, nil
	}

	return left, nil
}

// primary → NUMBER | "(" expression ")" | IDENTIFIER | IDENTIFIER "(" argument_list? ")"
func (p *Parser) parsePrimary() (ast.Expr, *tcerr.Error) {
	tok := p.cur()

	switch tok.Kind {
	case lexer.Number:
		p.advance()

		return &ast.NumberExpr{Token: tok}, nil

	case lexer.GroupStart:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != lexer.GroupEnd {
			return nil, p.fail(tcerr.UnbalancedGroupSymbols, "parsePrimary", "missing closing )")
		}
		p.advance()

		return inner, nil

	case lexer.Identifier:
		return p.parseIdentifier(tok)

	case lexer.Eof:
		return nil, p.fail(tcerr.MalformedInput, "parsePrimary", "unexpected end of input")

	default:
		return nil, p.fail(tcerr.UnknownToken, "parsePrimary", "unexpected token "+tok.Kind.String())
	}
}

// parseIdentifier disambiguates a variable reference from a function call:
// an identifier bound to a variable is a leaf reference, one bound to a
// unary or binary function expects a matching call.
func (p *Parser) parseIdentifier(tok lexer.Token) (ast.Expr, *tcerr.Error) {
	name := tok.Text

	switch {
	case p.ctx.HasVariable(name):
		p.advance()

		return &ast.IdentExpr{Token: tok, Name: name}, nil

	case p.ctx.HasUnaryFunc(name):
		p.advance()

		return p.parseCall(tok, name, 1)

	case p.ctx.HasBinaryFunc(name):
		p.advance()

		return p.parseCall(tok, name, 2)

	default:
		return nil, p.fail(tcerr.UnknownID, "parseIdentifier", "unknown identifier "+name)
	}
}

// parseCall consumes "(" argument_list? ")" after a function identifier and
// enforces exactly arity comma-separated arguments.
func (p *Parser) parseCall(ident lexer.Token, name string, arity int) (ast.Expr, *tcerr.Error) {
	if p.cur().Kind != lexer.GroupStart {
		return nil, p.fail(tcerr.UncalledFunc, "parseCall", "function "+name+" not followed by (")
	}
	p.advance()

	var args []ast.Expr
	if p.cur().Kind != lexer.GroupEnd {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.cur().Kind == lexer.ParamSep {
				p.advance()

				continue
			}

			break
		}
	}

	if p.cur().Kind != lexer.GroupEnd {
		return nil, p.fail(tcerr.UnclosedFunc, "parseCall", "function call to "+name+" missing closing )")
	}
	p.advance()

	if len(args) != arity {
		return nil, p.fail(tcerr.WrongArity, "parseCall", name+" expects "+strconv.Itoa(arity)+" argument(s)")
	}

	switch arity {
	case 1:
		return &ast.UnaryExpr{Op: ident, Symbol: name, Child: args[0]}, nil
	default:
		return &ast.BinaryExpr{Op: ident, Symbol: name, Left: args[0], Right: args[1]}, nil
	}
}
