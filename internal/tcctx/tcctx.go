// Package tcctx implements the Context registry that the lexer, parser and
// evaluator all consult: variables, unary/binary functions, and the six
// operator categories (unary, binary, relational, equality, unary-logic,
// binary-logic), each keyed by symbol or identifier. Entries are stored as
// (symbol, precedence, associativity, implementation) tuples, exposed
// through Add/Has/Get-shaped methods rather than a bare map, so collisions
// can be rejected explicitly instead of silently overwriting.
package tcctx

import (
	"github.com/conneroisu/tcalc/internal/tcerr"
	"github.com/conneroisu/tcalc/internal/value"
)

// Associativity of an operator.
type Associativity int

const (
	LeftAssoc Associativity = iota
	RightAssoc
)

// unaryOp, binaryOp and friends are the entries stored per operator
// category: (symbol, precedence, associativity, implementation).
type unaryOp struct {
	Symbol string
	Prec   int
	Assoc  Associativity
	Impl   value.UnaryFunc
}

type binaryOp struct {
	Symbol string
	Prec   int
	Assoc  Associativity
	Impl   value.BinaryFunc
}

type unaryFunc struct {
	Name string
	Impl value.UnaryFunc
}

type binaryFunc struct {
	Name string
	Impl value.BinaryFunc
}

// Context is the registry of everything the parser and evaluator can name.
// Zero value is not usable; construct with New or NewDefault.
//
// Per DESIGN NOTES ("operator tables keyed by short strings ... keep them as
// ordered sequences with linear search"), every operator and function
// category below is a plain slice searched linearly — cardinality never
// exceeds ~40 entries, so a hash map buys nothing but complexity. Variables
// are kept in a map keyed by name.
type Context struct {
	variables map[string]value.Value

	unaryOps   []unaryOp
	binaryOps  []binaryOp
	relOps     []binaryOp // RelOp and EqOp entries share the binaryOp shape
	eqOps      []binaryOp
	unaryLogic []unaryOp
	binLogic   []binaryOp

	unaryFuncs  []unaryFunc
	binaryFuncs []binaryFunc

	degrees bool
}

// New returns an empty Context with no variables, operators or functions
// registered.
func New() *Context {
	return &Context{variables: make(map[string]value.Value)}
}

// validIdentifier enforces the engine's identifier constraint: [a-z]+
// (lowercase ASCII only).
func validIdentifier(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 'a' || name[i] > 'z' {
			return false
		}
	}

	return true
}

// identifierTaken reports whether name is already bound as a variable,
// unary function, or binary function: identifiers across variable and
// function categories are unique.
func (c *Context) identifierTaken(name string) bool {
	if _, ok := c.variables[name]; ok {
		return true
	}
	for _, f := range c.unaryFuncs {
		if f.Name == name {
			return true
		}
	}
	for _, f := range c.binaryFuncs {
		if f.Name == name {
			return true
		}
	}

	return false
}

// AddVariable binds name to v. Returns InvalidArg if name is malformed or
// already bound to a function.
func (c *Context) AddVariable(name string, v value.Value) *tcerr.Error {
	if !validIdentifier(name) {
		return tcerr.Sentinel(tcerr.InvalidArg)
	}
	if _, exists := c.variables[name]; !exists && c.identifierTaken(name) {
		return tcerr.Sentinel(tcerr.InvalidArg)
	}
	c.variables[name] = v

	return nil
}

// HasVariable reports whether name is a bound variable.
func (c *Context) HasVariable(name string) bool {
	_, ok := c.variables[name]

	return ok
}

// GetVariable returns the value bound to name, or NotFound.
func (c *Context) GetVariable(name string) (value.Value, *tcerr.Error) {
	v, ok := c.variables[name]
	if !ok {
		return nil, tcerr.Sentinel(tcerr.NotFound)
	}

	return v, nil
}

// AddUnaryFunc registers name as a unary function. Only the unary/binary
// *operator* categories may share a symbol (for +/-); functions never do.
func (c *Context) AddUnaryFunc(name string, impl value.UnaryFunc) *tcerr.Error {
	if !validIdentifier(name) || c.identifierTaken(name) {
		return tcerr.Sentinel(tcerr.InvalidArg)
	}
	c.unaryFuncs = append(c.unaryFuncs, unaryFunc{Name: name, Impl: impl})

	return nil
}

// AddBinaryFunc registers name as a binary function.
func (c *Context) AddBinaryFunc(name string, impl value.BinaryFunc) *tcerr.Error {
	if !validIdentifier(name) || c.identifierTaken(name) {
		return tcerr.Sentinel(tcerr.InvalidArg)
	}
	c.binaryFuncs = append(c.binaryFuncs, binaryFunc{Name: name, Impl: impl})

	return nil
}

// HasUnaryFunc, HasBinaryFunc report whether name is registered in that
// category — used by the parser to pick the arity rule and by the evaluator
// to dispatch a function node.
func (c *Context) HasUnaryFunc(name string) bool {
	_, ok := c.findUnaryFunc(name)

	return ok
}

func (c *Context) HasBinaryFunc(name string) bool {
	_, ok := c.findBinaryFunc(name)

	return ok
}

func (c *Context) findUnaryFunc(name string) (value.UnaryFunc, bool) {
	for _, f := range c.unaryFuncs {
		if f.Name == name {
			return f.Impl, true
		}
	}

	return nil, false
}

func (c *Context) findBinaryFunc(name string) (value.BinaryFunc, bool) {
	for _, f := range c.binaryFuncs {
		if f.Name == name {
			return f.Impl, true
		}
	}

	return nil, false
}

// GetUnaryFunc, GetBinaryFunc resolve name to its implementation.
func (c *Context) GetUnaryFunc(name string) (value.UnaryFunc, *tcerr.Error) {
	if f, ok := c.findUnaryFunc(name); ok {
		return f, nil
	}

	return nil, tcerr.Sentinel(tcerr.UnknownID)
}

func (c *Context) GetBinaryFunc(name string) (value.BinaryFunc, *tcerr.Error) {
	if f, ok := c.findBinaryFunc(name); ok {
		return f, nil
	}

	return nil, tcerr.Sentinel(tcerr.UnknownID)
}

// IsKnownIdentifier reports whether name is bound to anything at all
// (variable, unary function, or binary function).
func (c *Context) IsKnownIdentifier(name string) bool {
	return c.HasVariable(name) || c.HasUnaryFunc(name) || c.HasBinaryFunc(name)
}

// symbolCollision reports whether symbol is already registered in any
// operator category. When allowUnaryBinaryOp is set, a symbol found only in
// the unary-op or only in the binary-op category does not count, so that
// +/- can live in both; AddUnaryOp and AddBinaryOp reject a repeat within
// their own category separately.
func (c *Context) symbolCollision(symbol string, allowUnaryBinaryOp bool) bool {
	hasUnaryOp := hasSymbol(toSymbols(c.unaryOps), symbol)
	hasBinaryOp := hasSymbolB(c.binaryOps, symbol)
	hasRel := hasSymbolB(c.relOps, symbol)
	hasEq := hasSymbolB(c.eqOps, symbol)
	hasUnaryLogic := hasSymbol(toSymbols(c.unaryLogic), symbol)
	hasBinLogic := hasSymbolB(c.binLogic, symbol)

	count := 0
	for _, present := range []bool{hasUnaryOp, hasBinaryOp, hasRel, hasEq, hasUnaryLogic, hasBinLogic} {
		if present {
			count++
		}
	}
	if count == 0 {
		return false
	}
	if allowUnaryBinaryOp && count == 1 && (hasUnaryOp || hasBinaryOp) {
		return false
	}

	return true
}

func toSymbols(ops []unaryOp) []string {
	out := make([]string, len(ops))
	for i, o := range ops {
		out[i] = o.Symbol
	}

	return out
}

func hasSymbol(symbols []string, symbol string) bool {
	for _, s := range symbols {
		if s == symbol {
			return true
		}
	}

	return false
}

func hasSymbolB(ops []binaryOp, symbol string) bool {
	for _, o := range ops {
		if o.Symbol == symbol {
			return true
		}
	}

	return false
}

// AddUnaryOp registers symbol as a unary operator of the given precedence
// and associativity. +/- may already be registered as a binary operator;
// any other pre-existing registration of symbol is InvalidArg.
func (c *Context) AddUnaryOp(symbol string, prec int, assoc Associativity, impl value.UnaryFunc) *tcerr.Error {
	if c.symbolCollision(symbol, true) || c.HasUnaryOp(symbol) {
		return tcerr.Sentinel(tcerr.InvalidArg)
	}
	c.unaryOps = append(c.unaryOps, unaryOp{Symbol: symbol, Prec: prec, Assoc: assoc, Impl: impl})

	return nil
}

// AddBinaryOp registers symbol as a binary operator.
func (c *Context) AddBinaryOp(symbol string, prec int, assoc Associativity, impl value.BinaryFunc) *tcerr.Error {
	if c.symbolCollision(symbol, true) || c.HasBinaryOp(symbol) {
		return tcerr.Sentinel(tcerr.InvalidArg)
	}
	c.binaryOps = append(c.binaryOps, binaryOp{Symbol: symbol, Prec: prec, Assoc: assoc, Impl: impl})

	return nil
}

// AddRelOp registers symbol as a relational operator (<, <=, >, >=).
func (c *Context) AddRelOp(symbol string, prec int, assoc Associativity, impl value.BinaryFunc) *tcerr.Error {
	if c.symbolCollision(symbol, false) {
		return tcerr.Sentinel(tcerr.InvalidArg)
	}
	c.relOps = append(c.relOps, binaryOp{Symbol: symbol, Prec: prec, Assoc: assoc, Impl: impl})

	return nil
}

// AddEqOp registers symbol as an equality operator (=, ==, !=).
func (c *Context) AddEqOp(symbol string, prec int, assoc Associativity, impl value.BinaryFunc) *tcerr.Error {
	if c.symbolCollision(symbol, false) {
		return tcerr.Sentinel(tcerr.InvalidArg)
	}
	c.eqOps = append(c.eqOps, binaryOp{Symbol: symbol, Prec: prec, Assoc: assoc, Impl: impl})

	return nil
}

// AddUnaryLogicOp registers symbol as a unary logical operator (!).
func (c *Context) AddUnaryLogicOp(symbol string, prec int, assoc Associativity, impl value.UnaryFunc) *tcerr.Error {
	if c.symbolCollision(symbol, false) {
		return tcerr.Sentinel(tcerr.InvalidArg)
	}
	c.unaryLogic = append(c.unaryLogic, unaryOp{Symbol: symbol, Prec: prec, Assoc: assoc, Impl: impl})

	return nil
}

// AddBinaryLogicOp registers symbol as a binary logical operator (&&, ||).
func (c *Context) AddBinaryLogicOp(symbol string, prec int, assoc Associativity, impl value.BinaryFunc) *tcerr.Error {
	if c.symbolCollision(symbol, false) {
		return tcerr.Sentinel(tcerr.InvalidArg)
	}
	c.binLogic = append(c.binLogic, binaryOp{Symbol: symbol, Prec: prec, Assoc: assoc, Impl: impl})

	return nil
}

// query helpers: Has*/Get* pairs for every operator category, mirroring the
// AddXxx methods above one for one.

func (c *Context) HasUnaryOp(symbol string) bool { _, ok := c.findUnaryOp(symbol); return ok }
func (c *Context) findUnaryOp(symbol string) (unaryOp, bool) {
	for _, o := range c.unaryOps {
		if o.Symbol == symbol {
			return o, true
		}
	}

	return unaryOp{}, false
}

func (c *Context) GetUnaryOp(symbol string) (value.UnaryFunc, int, Associativity, *tcerr.Error) {
	o, ok := c.findUnaryOp(symbol)
	if !ok {
		return nil, 0, LeftAssoc, tcerr.Sentinel(tcerr.UnknownToken)
	}

	return o.Impl, o.Prec, o.Assoc, nil
}

func (c *Context) HasBinaryOp(symbol string) bool { _, ok := c.findBinaryOp(c.binaryOps, symbol); return ok }
func (c *Context) findBinaryOp(ops []binaryOp, symbol string) (binaryOp, bool) {
	for _, o := range ops {
		if o.Symbol == symbol {
			return o, true
		}
	}

	return binaryOp{}, false
}

func (c *Context) GetBinaryOp(symbol string) (value.BinaryFunc, int, Associativity, *tcerr.Error) {
	o, ok := c.findBinaryOp(c.binaryOps, symbol)
	if !ok {
		return nil, 0, LeftAssoc, tcerr.Sentinel(tcerr.UnknownToken)
	}

	return o.Impl, o.Prec, o.Assoc, nil
}

func (c *Context) HasRelOp(symbol string) bool { _, ok := c.findBinaryOp(c.relOps, symbol); return ok }
func (c *Context) GetRelOp(symbol string) (value.BinaryFunc, int, Associativity, *tcerr.Error) {
	o, ok := c.findBinaryOp(c.relOps, symbol)
	if !ok {
		return nil, 0, LeftAssoc, tcerr.Sentinel(tcerr.UnknownToken)
	}

	return o.Impl, o.Prec, o.Assoc, nil
}

func (c *Context) HasEqOp(symbol string) bool { _, ok := c.findBinaryOp(c.eqOps, symbol); return ok }
func (c *Context) GetEqOp(symbol string) (value.BinaryFunc, int, Associativity, *tcerr.Error) {
	o, ok := c.findBinaryOp(c.eqOps, symbol)
	if !ok {
		return nil, 0, LeftAssoc, tcerr.Sentinel(tcerr.UnknownToken)
	}

	return o.Impl, o.Prec, o.Assoc, nil
}

func (c *Context) HasUnaryLogicOp(symbol string) bool { _, ok := c.findUnaryLogic(symbol); return ok }
func (c *Context) findUnaryLogic(symbol string) (unaryOp, bool) {
	for _, o := range c.unaryLogic {
		if o.Symbol == symbol {
			return o, true
		}
	}

	return unaryOp{}, false
}

func (c *Context) GetUnaryLogicOp(symbol string) (value.UnaryFunc, int, Associativity, *tcerr.Error) {
	o, ok := c.findUnaryLogic(symbol)
	if !ok {
		return nil, 0, LeftAssoc, tcerr.Sentinel(tcerr.UnknownToken)
	}

	return o.Impl, o.Prec, o.Assoc, nil
}

func (c *Context) HasBinaryLogicOp(symbol string) bool { _, ok := c.findBinaryOp(c.binLogic, symbol); return ok }
func (c *Context) GetBinaryLogicOp(symbol string) (value.BinaryFunc, int, Associativity, *tcerr.Error) {
	o, ok := c.findBinaryOp(c.binLogic, symbol)
	if !ok {
		return nil, 0, LeftAssoc, tcerr.Sentinel(tcerr.UnknownToken)
	}

	return o.Impl, o.Prec, o.Assoc, nil
}

// Degrees reports whether degrees mode is currently active.
func (c *Context) Degrees() bool { return c.degrees }
