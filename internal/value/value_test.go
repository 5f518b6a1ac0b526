package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conneroisu/tcalc/internal/value"
)

func TestNumberKindAndString(t *testing.T) {
	n := value.Number(3.5)
	assert.Equal(t, value.KindNumber, n.Kind())
	assert.Equal(t, "3.5", n.String())
}

func TestBooleanKindAndString(t *testing.T) {
	b := value.Boolean(true)
	assert.Equal(t, value.KindBoolean, b.Kind())
	assert.Equal(t, "true", b.String())
}

func TestAsNumber(t *testing.T) {
	f, ok := value.AsNumber(value.Number(2))
	assert.True(t, ok)
	assert.Equal(t, 2.0, f)

	_, ok = value.AsNumber(value.Boolean(true))
	assert.False(t, ok)
}

func TestAsBoolean(t *testing.T) {
	b, ok := value.AsBoolean(value.Boolean(false))
	assert.True(t, ok)
	assert.False(t, b)

	_, ok = value.AsBoolean(value.Number(1))
	assert.False(t, ok)
}
