package lexer

import (
	"strings"

	"github.com/conneroisu/tcalc/internal/tcctx"
	"github.com/conneroisu/tcalc/internal/tcerr"
)

// multiCharSymbols must be checked before singleCharSymbols so that e.g.
// "**" is not sliced as two "*" tokens.
var multiCharSymbols = []string{"**", "==", "<=", ">=", "!=", "&&", "||"}

const singleCharSymbols = ",()[]+-*/^%!=<>"

func isValidChar(ch byte) bool {
	if ch == ' ' || ch == '.' {
		return true
	}
	if isDigit(ch) || isLower(ch) {
		return true
	}

	return strings.IndexByte(singleCharSymbols, ch) >= 0 || ch == '&' || ch == '|'
}

// groupSymbolsBalanced precomputes the balance of ( and ) across the entire
// raw input, independent of slicing.
func groupSymbolsBalanced(input string) bool {
	depth := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}

	return depth == 0
}

// sliceNext implements stage 1 for a single token starting at or after pos:
// skip spaces, then emit the longest prefix matching a multi-char symbol,
// single-char symbol, number, or identifier, in that priority order. An
// identifier starts with a lowercase letter and continues over lowercase
// letters and digits, so a name such as atan2 is one slice.
func sliceNext(input string, pos int) (Span, *tcerr.Error) {
	for pos < len(input) && input[pos] == ' ' {
		pos++
	}
	if pos >= len(input) {
		return Span{}, tcerr.Sentinel(tcerr.StopIter)
	}

	ch := input[pos]
	if !isValidChar(ch) {
		return Span{}, tcerr.Sentinel(tcerr.InvalidArg)
	}

	for _, sym := range multiCharSymbols {
		if strings.HasPrefix(input[pos:], sym) {
			return Span{Start: pos, End: pos + len(sym)}, nil
		}
	}

	if strings.IndexByte(singleCharSymbols, ch) >= 0 {
		return Span{Start: pos, End: pos + 1}, nil
	}

	if isDigit(ch) || ch == '.' {
		if ch == '.' && (pos+1 >= len(input) || !isDigit(input[pos+1])) {
			return Span{}, tcerr.Sentinel(tcerr.MalformedInput)
		}

		end := pos
		decimals := 0
		for end < len(input) && (isDigit(input[end]) || input[end] == '.') {
			if input[end] == '.' {
				decimals++
				if decimals > 1 {
					return Span{}, tcerr.Sentinel(tcerr.MalformedInput)
				}
			}
			end++
		}

		return Span{Start: pos, End: end}, nil
	}

	if isLower(ch) {
		end := pos
		for end < len(input) && (isLower(input[end]) || isDigit(input[end])) {
			end++
		}

		return Span{Start: pos, End: end}, nil
	}

	return Span{}, tcerr.Sentinel(tcerr.InvalidArg)
}

// sliceAll runs stage 1 across the whole input, returning every non-space
// token span in order.
func sliceAll(input string) ([]Span, *tcerr.Error) {
	var spans []Span
	pos := 0
	for {
		span, err := sliceNext(input, pos)
		if err != nil {
			if err.Kind == tcerr.StopIter {
				return spans, nil
			}

			return nil, err
		}
		spans = append(spans, span)
		pos = span.End
	}
}

// classify assigns a Kind to a slice given the previously emitted token's
// kind, implementing stage 2's unary/binary +/- disambiguation. "[" and "]"
// are accepted by isValidChar (so a sensible error can be raised here
// instead of a sliceNext character-rejection) but have no token shape of
// their own, so they are rejected as InvalidArg rather than misclassified
// as an Identifier.
func classify(input string, span Span, prevKind Kind, havePrev bool) (Kind, *tcerr.Error) {
	text := input[span.Start:span.End]

	switch text {
	case "(":
		return GroupStart, nil
	case ")":
		return GroupEnd, nil
	case ",":
		return ParamSep, nil
	case "!":
		return UnaryLogicOp, nil
	case "&&", "||":
		return BinaryLogicOp, nil
	case "==", "=", "!=":
		return EqOp, nil
	case "<", "<=", ">", ">=":
		return RelOp, nil
	case "*", "/", "^", "**", "%":
		return BinaryOp, nil
	case "[", "]":
		return 0, tcerr.Sentinel(tcerr.InvalidArg)
	case "+", "-":
		if !havePrev {
			return UnaryOp, nil
		}
		switch prevKind {
		case GroupStart, BinaryOp, UnaryOp, RelOp, EqOp, BinaryLogicOp, UnaryLogicOp, ParamSep:
			return UnaryOp, nil
		default:
			return BinaryOp, nil
		}
	}

	if isDigit(text[0]) || text[0] == '.' {
		return Number, nil
	}

	return Identifier, nil
}

// needsImplicitMultiplication reports whether a zero-length BinaryOp token
// should be synthesized between a token of kind prevKind (with text
// prevText, only meaningful when prevKind == Identifier) and a token of
// kind kind.
func needsImplicitMultiplication(ctx *tcctx.Context, prevKind Kind, prevText string, kind Kind) bool {
	left := prevKind == Number || prevKind == GroupEnd ||
		(prevKind == Identifier && ctx.HasVariable(prevText))
	right := kind == GroupStart || kind == Identifier

	return left && right
}

// Tokenize runs the full three-stage lexer over input against ctx,
// returning a token stream terminated by Eof.
func Tokenize(input string, ctx *tcctx.Context) ([]Token, *tcerr.Error) {
	if !groupSymbolsBalanced(input) {
		return nil, tcerr.Sentinel(tcerr.UnbalancedGroupSymbols)
	}

	spans, err := sliceAll(input)
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, 0, len(spans)*2+1)

	havePrev := false
	var prevKind Kind
	var prevText string

	for _, span := range spans {
		kind, err := classify(input, span, prevKind, havePrev)
		if err != nil {
			return nil, err
		}
		text := input[span.Start:span.End]

		if havePrev && needsImplicitMultiplication(ctx, prevKind, prevText, kind) {
			tokens = append(tokens, Token{
				Kind: BinaryOp,
				Span: Span{Start: span.Start, End: span.Start},
				Text: "",
			})
		}

		tokens = append(tokens, Token{Kind: kind, Span: span, Text: text})
		prevKind = kind
		prevText = text
		havePrev = true
	}

	end := len(input)
	tokens = append(tokens, Token{Kind: Eof, Span: Span{Start: end, End: end}})

	return tokens, nil
}
