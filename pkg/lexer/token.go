// Package lexer turns expression source text into a stream of classified
// tokens, resolving unary-vs-binary +/- and synthesizing
// implicit-multiplication tokens along the way. Tokenization runs in three
// stages: slice the input into raw substrings, classify each one, then
// insert synthetic multiplication tokens between adjacent operand-shaped
// tokens.
package lexer

import "fmt"

// Kind classifies a Token.
type Kind int

const (
	Number Kind = iota
	UnaryOp
	BinaryOp
	RelOp
	UnaryLogicOp
	BinaryLogicOp
	EqOp
	ParamSep
	Identifier
	GroupStart
	GroupEnd
	Eof
)

var kindNames = map[Kind]string{
	Number:        "Number",
	UnaryOp:       "UnaryOp",
	BinaryOp:      "BinaryOp",
	RelOp:         "RelOp",
	UnaryLogicOp:  "UnaryLogicOp",
	BinaryLogicOp: "BinaryLogicOp",
	EqOp:          "EqOp",
	ParamSep:      "ParamSep",
	Identifier:    "Identifier",
	GroupStart:    "GroupStart",
	GroupEnd:      "GroupEnd",
	Eof:           "Eof",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Span is a half-open [Start, End) byte range into the original input,
// used instead of copying substrings into tokens.
type Span struct {
	Start, End int
}

// JoinSpans returns the smallest span covering both a and b.
func JoinSpans(a, b Span) Span {
	start, end := a.Start, a.End
	if b.Start < start {
		start = b.Start
	}
	if b.End > end {
		end = b.End
	}

	return Span{Start: start, End: end}
}

// Token is a (kind, source-span) pair. Text is a convenience slice of the
// original input cached at lex time; it is empty for a synthetic
// implicit-multiplication token (Span.Start == Span.End).
type Token struct {
	Kind Kind
	Span Span
	Text string
}

// IsSynthetic reports whether tok is a zero-length implicit-multiplication
// token, indistinguishable from a lexed "*" during parsing/evaluation
// except by this span check.
func (t Token) IsSynthetic() bool {
	return t.Kind == BinaryOp && t.Span.Start == t.Span.End
}

func (t Token) String() string {
	if t.Kind == Eof {
		return "Eof"
	}

	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
