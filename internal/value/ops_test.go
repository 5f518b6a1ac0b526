package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/tcalc/internal/tcerr"
	"github.com/conneroisu/tcalc/internal/value"
)

func numberOf(t *testing.T, v value.Value, err *tcerr.Error) float64 {
	t.Helper()
	require.Nil(t, err)
	f, ok := value.AsNumber(v)
	require.True(t, ok)

	return f
}

func boolOf(t *testing.T, v value.Value, err *tcerr.Error) bool {
	t.Helper()
	require.Nil(t, err)
	b, ok := value.AsBoolean(v)
	require.True(t, ok)

	return b
}

func TestAddSubMulDiv(t *testing.T) {
	v, err := value.Add(value.Number(2), value.Number(3))
	assert.Equal(t, 5.0, numberOf(t, v, err))

	v, err = value.Sub(value.Number(2), value.Number(3))
	assert.Equal(t, -1.0, numberOf(t, v, err))

	v, err = value.Mul(value.Number(2), value.Number(3))
	assert.Equal(t, 6.0, numberOf(t, v, err))

	v, err = value.Div(value.Number(6), value.Number(3))
	assert.Equal(t, 2.0, numberOf(t, v, err))
}

func TestDivByZero(t *testing.T) {
	_, err := value.Div(value.Number(1), value.Number(0))
	require.NotNil(t, err)
	assert.Equal(t, tcerr.DivByZero, err.Kind)
}

func TestModByZero(t *testing.T) {
	_, err := value.Mod(value.Number(1), value.Number(0))
	require.NotNil(t, err)
	assert.Equal(t, tcerr.NotInDomain, err.Kind)
}

func TestPowZeroToZeroIsDomainError(t *testing.T) {
	_, err := value.Pow(value.Number(0), value.Number(0))
	require.NotNil(t, err)
	assert.Equal(t, tcerr.NotInDomain, err.Kind)
}

func TestPowZeroBaseNegativeExponentIsDomainError(t *testing.T) {
	_, err := value.Pow(value.Number(0), value.Number(-2))
	require.NotNil(t, err)
	assert.Equal(t, tcerr.NotInDomain, err.Kind)
}

func TestPowNegativeTen(t *testing.T) {
	v, err := value.Pow(value.Number(-10), value.Number(2))
	assert.Equal(t, 100.0, numberOf(t, v, err))
}

func TestBadCastOnMismatchedVariant(t *testing.T) {
	_, err := value.Add(value.Number(1), value.Boolean(true))
	require.NotNil(t, err)
	assert.Equal(t, tcerr.BadCast, err.Kind)

	_, err = value.And(value.Boolean(true), value.Number(1))
	require.NotNil(t, err)
	assert.Equal(t, tcerr.BadCast, err.Kind)
}

func TestRelationalOperators(t *testing.T) {
	lt, err := value.Lt(value.Number(1), value.Number(2))
	require.Nil(t, err)
	assert.True(t, boolOf(t, lt, nil))

	eq, err := value.Equals(value.Number(5), value.Number(5))
	require.Nil(t, err)
	assert.True(t, boolOf(t, eq, nil))
}

func TestLogicalOperators(t *testing.T) {
	v, err := value.And(value.Boolean(true), value.Boolean(false))
	assert.False(t, boolOf(t, v, err))

	v, err = value.Or(value.Boolean(true), value.Boolean(false))
	assert.True(t, boolOf(t, v, err))

	v, err = value.Xor(value.Boolean(true), value.Boolean(true))
	assert.False(t, boolOf(t, v, err))

	v, err = value.Matcond(value.Boolean(false), value.Boolean(false))
	assert.True(t, boolOf(t, v, err))
}

func TestTrigDomainErrors(t *testing.T) {
	_, err := value.Asin(value.Number(2))
	require.NotNil(t, err)
	assert.Equal(t, tcerr.NotInDomain, err.Kind)

	_, err = value.Sqrt(value.Number(-1))
	require.NotNil(t, err)
	assert.Equal(t, tcerr.NotInDomain, err.Kind)

	_, err = value.Ln(value.Number(0))
	require.NotNil(t, err)
	assert.Equal(t, tcerr.NotInDomain, err.Kind)

	_, err = value.Log(value.Number(0))
	require.NotNil(t, err)
	assert.Equal(t, tcerr.Overflow, err.Kind)
}

func TestLnOfE(t *testing.T) {
	v, err := value.Ln(value.Number(math.E))
	assert.InDelta(t, 1.0, numberOf(t, v, err), 1e-9)
}

func TestDegreeVariantsConvert(t *testing.T) {
	v, err := value.SinDeg(value.Number(90))
	assert.InDelta(t, 1.0, numberOf(t, v, err), 1e-9)

	v, err = value.AsinDeg(value.Number(1))
	assert.InDelta(t, 90.0, numberOf(t, v, err), 1e-9)
}
