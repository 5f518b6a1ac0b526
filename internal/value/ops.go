package value

import "github.com/conneroisu/tcalc/internal/tcerr"

// UnaryFunc and BinaryFunc are the typed operation signatures the context
// stores one implementation of per operator/function entry.
type (
	UnaryFunc  func(Value) (Value, *tcerr.Error)
	BinaryFunc func(Value, Value) (Value, *tcerr.Error)
)

// wrapUnaryNumeric lifts a pure numeric implementation into a typed
// UnaryFunc: it checks the operand's variant, reporting BadCast on mismatch,
// then delegates.
func wrapUnaryNumeric(f func(float64) (float64, *tcerr.Error)) UnaryFunc {
	return func(a Value) (Value, *tcerr.Error) {
		n, ok := AsNumber(a)
		if !ok {
			return nil, tcerr.Sentinel(tcerr.BadCast)
		}
		out, err := f(n)
		if err != nil {
			return nil, err
		}

		return Number(out), nil
	}
}

// wrapBinaryNumeric is wrapUnaryNumeric's binary counterpart.
func wrapBinaryNumeric(f func(float64, float64) (float64, *tcerr.Error)) BinaryFunc {
	return func(a, b Value) (Value, *tcerr.Error) {
		x, ok := AsNumber(a)
		if !ok {
			return nil, tcerr.Sentinel(tcerr.BadCast)
		}
		y, ok := AsNumber(b)
		if !ok {
			return nil, tcerr.Sentinel(tcerr.BadCast)
		}
		out, err := f(x, y)
		if err != nil {
			return nil, err
		}

		return Number(out), nil
	}
}

// wrapRelational lifts a pure numeric comparator into a BinaryFunc returning
// Boolean.
func wrapRelational(f func(float64, float64) bool) BinaryFunc {
	return func(a, b Value) (Value, *tcerr.Error) {
		x, ok := AsNumber(a)
		if !ok {
			return nil, tcerr.Sentinel(tcerr.BadCast)
		}
		y, ok := AsNumber(b)
		if !ok {
			return nil, tcerr.Sentinel(tcerr.BadCast)
		}

		return Boolean(f(x, y)), nil
	}
}

// wrapUnaryLogic lifts a pure boolean implementation into a typed UnaryFunc.
func wrapUnaryLogic(f func(bool) bool) UnaryFunc {
	return func(a Value) (Value, *tcerr.Error) {
		b, ok := AsBoolean(a)
		if !ok {
			return nil, tcerr.Sentinel(tcerr.BadCast)
		}

		return Boolean(f(b)), nil
	}
}

// wrapBinaryLogic is wrapUnaryLogic's binary counterpart.
func wrapBinaryLogic(f func(bool, bool) bool) BinaryFunc {
	return func(a, b Value) (Value, *tcerr.Error) {
		x, ok := AsBoolean(a)
		if !ok {
			return nil, tcerr.Sentinel(tcerr.BadCast)
		}
		y, ok := AsBoolean(b)
		if !ok {
			return nil, tcerr.Sentinel(tcerr.BadCast)
		}

		return Boolean(f(x, y)), nil
	}
}

// The typed operation library. Every entry here is what a Context operator
// or function table binds a symbol/identifier to.
var (
	// Arithmetic unary operators.
	UnaryPlus  = wrapUnaryNumeric(numUnaryPlus)
	UnaryMinus = wrapUnaryNumeric(numUnaryMinus)

	// Arithmetic binary operators.
	Add      = wrapBinaryNumeric(numAdd)
	Sub      = wrapBinaryNumeric(numSub)
	Mul      = wrapBinaryNumeric(numMul)
	Div      = wrapBinaryNumeric(numDiv)
	Mod      = wrapBinaryNumeric(numMod)
	Pow      = wrapBinaryNumeric(numPow)
	Atan2    = wrapBinaryNumeric(numAtan2)
	Atan2Deg = wrapBinaryNumeric(numAtan2Deg)

	// Relational / equality operators (lteq ≡ lt ∨ equals, etc).
	Equals  = wrapRelational(numEquals)
	NEquals = wrapRelational(func(a, b float64) bool { return !numEquals(a, b) })
	Lt      = wrapRelational(numLt)
	Lteq    = wrapRelational(numLte)
	Gt      = wrapRelational(numGt)
	Gteq    = wrapRelational(numGte)

	// Unary logical operator.
	Not = wrapUnaryLogic(boolNot)

	// Binary logical operators/functions.
	And     = wrapBinaryLogic(boolAnd)
	Or      = wrapBinaryLogic(boolOr)
	Nand    = wrapBinaryLogic(boolNand)
	Nor     = wrapBinaryLogic(boolNor)
	Xor     = wrapBinaryLogic(boolXor)
	Xnor    = wrapBinaryLogic(boolXnor)
	Matcond = wrapBinaryLogic(boolMatcond)

	// Unary functions: rounding/magnitude.
	Ceil  = wrapUnaryNumeric(numCeil)
	Floor = wrapUnaryNumeric(numFloor)
	Round = wrapUnaryNumeric(numRound)
	Abs   = wrapUnaryNumeric(numAbs)

	// Unary functions: roots, logs, exponentials.
	Log  = wrapUnaryNumeric(numLog)
	Ln   = wrapUnaryNumeric(numLn)
	Exp  = wrapUnaryNumeric(numExp)
	Sqrt = wrapUnaryNumeric(numSqrt)
	Cbrt = wrapUnaryNumeric(numCbrt)

	// Radian trigonometric functions and their inverses.
	Sin  = wrapUnaryNumeric(numSin)
	Cos  = wrapUnaryNumeric(numCos)
	Tan  = wrapUnaryNumeric(numTan)
	Sec  = wrapUnaryNumeric(numSec)
	Csc  = wrapUnaryNumeric(numCsc)
	Cot  = wrapUnaryNumeric(numCot)
	Asin = wrapUnaryNumeric(numAsin)
	Acos = wrapUnaryNumeric(numAcos)
	Atan = wrapUnaryNumeric(numAtan)
	Asec = wrapUnaryNumeric(numAsec)
	Acsc = wrapUnaryNumeric(numAcsc)
	Acot = wrapUnaryNumeric(numAcot)

	// Hyperbolic functions and their inverses.
	Sinh   = wrapUnaryNumeric(numSinh)
	Cosh   = wrapUnaryNumeric(numCosh)
	Tanh   = wrapUnaryNumeric(numTanh)
	Asinh  = wrapUnaryNumeric(numAsinh)
	Acosh  = wrapUnaryNumeric(numAcosh)
	Atanh  = wrapUnaryNumeric(numAtanh)

	// Degree-mode trigonometric/hyperbolic variants: forward functions
	// convert their input from degrees to radians; inverse functions
	// convert their radian result back to degrees.
	SinDeg  = wrapUnaryNumeric(degreeUnary(numSin))
	CosDeg  = wrapUnaryNumeric(degreeUnary(numCos))
	TanDeg  = wrapUnaryNumeric(degreeUnary(numTan))
	SecDeg  = wrapUnaryNumeric(degreeUnary(numSec))
	CscDeg  = wrapUnaryNumeric(degreeUnary(numCsc))
	CotDeg  = wrapUnaryNumeric(degreeUnary(numCot))
	AsinDeg = wrapUnaryNumeric(inverseDegreeUnary(numAsin))
	AcosDeg = wrapUnaryNumeric(inverseDegreeUnary(numAcos))
	AtanDeg = wrapUnaryNumeric(inverseDegreeUnary(numAtan))
	AsecDeg = wrapUnaryNumeric(inverseDegreeUnary(numAsec))
	AcscDeg = wrapUnaryNumeric(inverseDegreeUnary(numAcsc))
	AcotDeg = wrapUnaryNumeric(inverseDegreeUnary(numAcot))

	SinhDeg  = wrapUnaryNumeric(degreeUnary(numSinh))
	CoshDeg  = wrapUnaryNumeric(degreeUnary(numCosh))
	TanhDeg  = wrapUnaryNumeric(degreeUnary(numTanh))
	AsinhDeg = wrapUnaryNumeric(inverseDegreeUnary(numAsinh))
	AcoshDeg = wrapUnaryNumeric(inverseDegreeUnary(numAcosh))
	AtanhDeg = wrapUnaryNumeric(inverseDegreeUnary(numAtanh))
)
