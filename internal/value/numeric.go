package value

import (
	"math"

	"github.com/conneroisu/tcalc/internal/tcerr"
)

// tolerance is the absolute tolerance used for floating-point equality and
// every relational comparison derived from it.
const tolerance = 1e-9

const degToRad = math.Pi / 180
const radToDeg = 180 / math.Pi

func numEquals(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func numLt(a, b float64) bool  { return a < b && !numEquals(a, b) }
func numLte(a, b float64) bool { return a < b || numEquals(a, b) }
func numGt(a, b float64) bool  { return a > b && !numEquals(a, b) }
func numGte(a, b float64) bool { return a > b || numEquals(a, b) }

func numAdd(a, b float64) (float64, *tcerr.Error) { return a + b, nil }
func numSub(a, b float64) (float64, *tcerr.Error) { return a - b, nil }
func numMul(a, b float64) (float64, *tcerr.Error) { return a * b, nil }

func numDiv(a, b float64) (float64, *tcerr.Error) {
	if numEquals(b, 0) {
		return 0, tcerr.Sentinel(tcerr.DivByZero)
	}

	return a / b, nil
}

func numMod(a, b float64) (float64, *tcerr.Error) {
	if numEquals(b, 0) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}

	return math.Mod(a, b), nil
}

func numPow(a, b float64) (float64, *tcerr.Error) {
	if numEquals(a, 0) && numEquals(b, 0) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}
	if numEquals(a, 0) && numLt(b, 0) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}

	out := math.Pow(a, b)
	if math.IsInf(out, 0) || math.IsNaN(out) {
		return 0, tcerr.Sentinel(tcerr.Overflow)
	}

	return out, nil
}

func numAtan2(a, b float64) (float64, *tcerr.Error) { return math.Atan2(a, b), nil }
func numAtan2Deg(a, b float64) (float64, *tcerr.Error) {
	return math.Atan2(a, b) * radToDeg, nil
}

func numUnaryPlus(a float64) (float64, *tcerr.Error)  { return a, nil }
func numUnaryMinus(a float64) (float64, *tcerr.Error) { return -a, nil }

func numCeil(a float64) (float64, *tcerr.Error)  { return math.Ceil(a), nil }
func numFloor(a float64) (float64, *tcerr.Error) { return math.Floor(a), nil }
func numRound(a float64) (float64, *tcerr.Error) { return math.Round(a), nil }
func numAbs(a float64) (float64, *tcerr.Error)   { return math.Abs(a), nil }

func numSin(a float64) (float64, *tcerr.Error) { return math.Sin(a), nil }
func numCos(a float64) (float64, *tcerr.Error) { return math.Cos(a), nil }

func numTan(a float64) (float64, *tcerr.Error) {
	if numEquals(math.Mod(a-math.Pi/2, math.Pi), 0) {
		return 0, tcerr.Sentinel(tcerr.Overflow)
	}

	return math.Tan(a), nil
}

func numSec(a float64) (float64, *tcerr.Error) {
	c, err := numCos(a)
	if err != nil {
		return 0, err
	}

	return numDiv(1, c)
}

func numCsc(a float64) (float64, *tcerr.Error) {
	s, err := numSin(a)
	if err != nil {
		return 0, err
	}

	return numDiv(1, s)
}

func numCot(a float64) (float64, *tcerr.Error) {
	t, err := numTan(a)
	if err != nil {
		return 0, err
	}

	return numDiv(1, t)
}

func numAsin(a float64) (float64, *tcerr.Error) {
	if numLt(a, -1) || numGt(a, 1) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}

	return math.Asin(a), nil
}

func numAcos(a float64) (float64, *tcerr.Error) {
	if numLt(a, -1) || numGt(a, 1) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}

	return math.Acos(a), nil
}

func numAtan(a float64) (float64, *tcerr.Error) { return math.Atan(a), nil }

func numAsec(a float64) (float64, *tcerr.Error) {
	if numEquals(a, 0) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}

	return numAcos(1 / a)
}

func numAcsc(a float64) (float64, *tcerr.Error) {
	if numEquals(a, 0) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}

	return numAsin(1 / a)
}

func numAcot(a float64) (float64, *tcerr.Error) {
	if numEquals(a, 0) {
		return 0, nil
	}
	if a > 0 {
		return numAtan(1 / a)
	}
	r, err := numAtan(1 / a)
	if err != nil {
		return 0, err
	}

	return r + math.Pi, nil
}

func numSinh(a float64) (float64, *tcerr.Error) {
	out := math.Sinh(a)
	if math.IsInf(out, 0) {
		return 0, tcerr.Sentinel(tcerr.Overflow)
	}

	return out, nil
}

func numCosh(a float64) (float64, *tcerr.Error) {
	out := math.Cosh(a)
	if math.IsInf(out, 0) {
		return 0, tcerr.Sentinel(tcerr.Overflow)
	}

	return out, nil
}

func numTanh(a float64) (float64, *tcerr.Error)  { return math.Tanh(a), nil }
func numAsinh(a float64) (float64, *tcerr.Error) { return math.Asinh(a), nil }

func numAcosh(a float64) (float64, *tcerr.Error) {
	if numLt(a, 1) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}

	return math.Acosh(a), nil
}

func numAtanh(a float64) (float64, *tcerr.Error) {
	if numLt(a, -1) || numGt(a, 1) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}
	if numEquals(a, -1) || numEquals(a, 1) {
		return 0, tcerr.Sentinel(tcerr.Overflow)
	}

	return math.Atanh(a), nil
}

func numLog(a float64) (float64, *tcerr.Error) {
	if numLt(a, 0) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}
	if numEquals(a, 0) {
		return 0, tcerr.Sentinel(tcerr.Overflow)
	}

	return math.Log10(a), nil
}

func numLn(a float64) (float64, *tcerr.Error) {
	if numLt(a, 0) || numEquals(a, 0) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}

	return math.Log(a), nil
}

func numExp(a float64) (float64, *tcerr.Error) {
	out := math.Exp(a)
	if math.IsInf(out, 0) {
		return 0, tcerr.Sentinel(tcerr.Overflow)
	}

	return out, nil
}

func numSqrt(a float64) (float64, *tcerr.Error) {
	if numLt(a, 0) {
		return 0, tcerr.Sentinel(tcerr.NotInDomain)
	}

	return math.Sqrt(a), nil
}

func numCbrt(a float64) (float64, *tcerr.Error) { return math.Cbrt(a), nil }

// degreeUnary adapts a radian-based unary implementation into its degree
// variant by converting the input to radians before delegating.
func degreeUnary(f func(float64) (float64, *tcerr.Error)) func(float64) (float64, *tcerr.Error) {
	return func(a float64) (float64, *tcerr.Error) {
		return f(a * degToRad)
	}
}

// inverseDegreeUnary adapts a radian-based inverse-trig implementation by
// converting its result back to degrees, for asin/acos/... _deg variants.
func inverseDegreeUnary(f func(float64) (float64, *tcerr.Error)) func(float64) (float64, *tcerr.Error) {
	return func(a float64) (float64, *tcerr.Error) {
		out, err := f(a)
		if err != nil {
			return 0, err
		}

		return out * radToDeg, nil
	}
}

// Boolean pure implementations.
func boolNot(a bool) bool    { return !a }
func boolAnd(a, b bool) bool { return a && b }
func boolOr(a, b bool) bool  { return a || b }
func boolNand(a, b bool) bool { return !(a && b) }
func boolNor(a, b bool) bool  { return !(a || b) }
func boolXor(a, b bool) bool  { return a != b }
func boolXnor(a, b bool) bool { return a == b }

// boolMatcond is material implication: ¬a ∨ b.
func boolMatcond(a, b bool) bool { return !a || b }
