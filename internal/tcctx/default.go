package tcctx

import (
	"math"

	"github.com/conneroisu/tcalc/internal/value"
)

// Option configures a Context at construction time.
type Option func(*Context)

// Degrees switches the default context's trigonometric bindings from
// radians to degrees at construction time. SetDegrees does the same for an
// already-constructed Context.
func Degrees() Option {
	return func(c *Context) { c.SetDegrees(true) }
}

// trigEntry pairs one or more unary trig/hyperbolic function names with
// their radian and degree implementations; trigFamily lists every entry, so
// SetDegrees can swap the whole family atomically. The list includes the
// arcsin/arccos/... aliases registered against the same function pointer.
type trigEntry struct {
	names  []string
	radian value.UnaryFunc
	degree value.UnaryFunc
}

func trigFamily() []trigEntry {
	return []trigEntry{
		{[]string{"sin"}, value.Sin, value.SinDeg},
		{[]string{"cos"}, value.Cos, value.CosDeg},
		{[]string{"tan"}, value.Tan, value.TanDeg},
		{[]string{"sec"}, value.Sec, value.SecDeg},
		{[]string{"csc"}, value.Csc, value.CscDeg},
		{[]string{"cot"}, value.Cot, value.CotDeg},
		{[]string{"asin", "arcsin"}, value.Asin, value.AsinDeg},
		{[]string{"acos", "arccos"}, value.Acos, value.AcosDeg},
		{[]string{"atan", "arctan"}, value.Atan, value.AtanDeg},
		{[]string{"asec"}, value.Asec, value.AsecDeg},
		{[]string{"acsc"}, value.Acsc, value.AcscDeg},
		{[]string{"acot"}, value.Acot, value.AcotDeg},
		{[]string{"sinh"}, value.Sinh, value.SinhDeg},
		{[]string{"cosh"}, value.Cosh, value.CoshDeg},
		{[]string{"tanh"}, value.Tanh, value.TanhDeg},
		{[]string{"asinh", "arcsinh"}, value.Asinh, value.AsinhDeg},
		{[]string{"acosh", "arccosh"}, value.Acosh, value.AcoshDeg},
		{[]string{"atanh", "arctanh"}, value.Atanh, value.AtanhDeg},
	}
}

// SetDegrees toggles degrees mode, replacing every trig/hyperbolic unary
// function binding in place. Idempotent: calling it twice with the same
// value leaves the context unchanged.
func (c *Context) SetDegrees(on bool) {
	if c.degrees == on {
		return
	}
	c.degrees = on

	for _, entry := range trigFamily() {
		impl := entry.radian
		if on {
			impl = entry.degree
		}
		for _, name := range entry.names {
			c.replaceUnaryFunc(name, impl)
		}
	}

	if on {
		c.replaceBinaryFunc("atan2", value.Atan2Deg)
	} else {
		c.replaceBinaryFunc("atan2", value.Atan2)
	}
}

func (c *Context) replaceUnaryFunc(name string, impl value.UnaryFunc) {
	for i := range c.unaryFuncs {
		if c.unaryFuncs[i].Name == name {
			c.unaryFuncs[i].Impl = impl

			return
		}
	}
}

func (c *Context) replaceBinaryFunc(name string, impl value.BinaryFunc) {
	for i := range c.binaryFuncs {
		if c.binaryFuncs[i].Name == name {
			c.binaryFuncs[i].Impl = impl

			return
		}
	}
}

// NewDefault builds the default context: variables pi/e/true/false, the
// arithmetic/relational/equality/logical operator tables, the unary/binary
// function tables (including trig aliases and the logical-connective
// functions nand/nor/xor/xnor/matcond). Options are applied after the base
// context is fully populated.
func NewDefault(opts ...Option) *Context {
	c := New()

	mustVar := func(name string, v value.Value) {
		if err := c.AddVariable(name, v); err != nil {
			panic("tcctx: invalid default variable " + name)
		}
	}
	mustVar("pi", value.Number(math.Pi))
	mustVar("e", value.Number(math.E))
	mustVar("true", value.Boolean(true))
	mustVar("false", value.Boolean(false))

	mustUnaryOp := func(symbol string, prec int, assoc Associativity, impl value.UnaryFunc) {
		if err := c.AddUnaryOp(symbol, prec, assoc, impl); err != nil {
			panic("tcctx: invalid default unary op " + symbol)
		}
	}
	mustUnaryOp("+", 3, RightAssoc, value.UnaryPlus)
	mustUnaryOp("-", 3, RightAssoc, value.UnaryMinus)

	mustBinaryOp := func(symbol string, prec int, assoc Associativity, impl value.BinaryFunc) {
		if err := c.AddBinaryOp(symbol, prec, assoc, impl); err != nil {
			panic("tcctx: invalid default binary op " + symbol)
		}
	}
	mustBinaryOp("+", 1, LeftAssoc, value.Add)
	mustBinaryOp("-", 1, LeftAssoc, value.Sub)
	mustBinaryOp("*", 2, LeftAssoc, value.Mul)
	mustBinaryOp("/", 2, LeftAssoc, value.Div)
	mustBinaryOp("%", 2, LeftAssoc, value.Mod)
	mustBinaryOp("^", 4, RightAssoc, value.Pow)
	mustBinaryOp("**", 4, RightAssoc, value.Pow)

	mustUnaryLogic := func(symbol string, prec int, assoc Associativity, impl value.UnaryFunc) {
		if err := c.AddUnaryLogicOp(symbol, prec, assoc, impl); err != nil {
			panic("tcctx: invalid default unary logic op " + symbol)
		}
	}
	mustUnaryLogic("!", 3, RightAssoc, value.Not)

	mustRelOp := func(symbol string, prec int, impl value.BinaryFunc) {
		if err := c.AddRelOp(symbol, prec, LeftAssoc, impl); err != nil {
			panic("tcctx: invalid default rel op " + symbol)
		}
	}
	mustRelOp("<", -1, value.Lt)
	mustRelOp("<=", -1, value.Lteq)
	mustRelOp(">", -1, value.Gt)
	mustRelOp(">=", -1, value.Gteq)

	mustEqOp := func(symbol string, prec int, impl value.BinaryFunc) {
		if err := c.AddEqOp(symbol, prec, LeftAssoc, impl); err != nil {
			panic("tcctx: invalid default eq op " + symbol)
		}
	}
	mustEqOp("=", -2, value.Equals)
	mustEqOp("==", -2, value.Equals)
	mustEqOp("!=", -2, value.NEquals)

	mustBinLogic := func(symbol string, prec int, impl value.BinaryFunc) {
		if err := c.AddBinaryLogicOp(symbol, prec, LeftAssoc, impl); err != nil {
			panic("tcctx: invalid default binary logic op " + symbol)
		}
	}
	mustBinLogic("&&", -3, value.And)
	mustBinLogic("||", -4, value.Or)

	mustUnaryFunc := func(name string, impl value.UnaryFunc) {
		if err := c.AddUnaryFunc(name, impl); err != nil {
			panic("tcctx: invalid default unary func " + name)
		}
	}
	for _, entry := range trigFamily() {
		for _, name := range entry.names {
			mustUnaryFunc(name, entry.radian)
		}
	}
	mustUnaryFunc("log", value.Log)
	mustUnaryFunc("ln", value.Ln)
	mustUnaryFunc("exp", value.Exp)
	mustUnaryFunc("sqrt", value.Sqrt)
	mustUnaryFunc("cbrt", value.Cbrt)
	mustUnaryFunc("ceil", value.Ceil)
	mustUnaryFunc("floor", value.Floor)
	mustUnaryFunc("round", value.Round)
	mustUnaryFunc("abs", value.Abs)

	mustBinaryFunc := func(name string, impl value.BinaryFunc) {
		if err := c.AddBinaryFunc(name, impl); err != nil {
			panic("tcctx: invalid default binary func " + name)
		}
	}
	mustBinaryFunc("pow", value.Pow)
	// atan2 contains a digit, which AddBinaryFunc's [a-z]+ name check
	// rejects, so it is appended to the table directly.
	c.binaryFuncs = append(c.binaryFuncs, binaryFunc{Name: "atan2", Impl: value.Atan2})
	// Additional logical connectives, registered as binary functions rather
	// than infix operators since the grammar only wires && and || as
	// BinaryLogicOp tokens.
	mustBinaryFunc("nand", value.Nand)
	mustBinaryFunc("nor", value.Nor)
	mustBinaryFunc("xor", value.Xor)
	mustBinaryFunc("xnor", value.Xnor)
	mustBinaryFunc("matcond", value.Matcond)

	for _, opt := range opts {
		opt(c)
	}

	return c
}
