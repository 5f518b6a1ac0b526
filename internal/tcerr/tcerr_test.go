package tcerr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/tcalc/internal/tcerr"
)

func TestStackPushCap(t *testing.T) {
	stack := &tcerr.Stack{}
	for i := 0; i < 20; i++ {
		stack.Push("role", "msg")
	}
	assert.Equal(t, 16, stack.Size())
}

func TestStackPushTruncatesLongMessages(t *testing.T) {
	stack := &tcerr.Stack{}
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	stack.Push("role", string(long))

	frame, ok := stack.Peek()
	require.True(t, ok)
	assert.LessOrEqual(t, len(frame), 256+len("[role] "))
}

func TestStackPeekPopClear(t *testing.T) {
	stack := &tcerr.Stack{}
	_, ok := stack.Peek()
	assert.False(t, ok)

	stack.Push("a", "first")
	stack.Push("b", "second")
	assert.Equal(t, 2, stack.Size())

	top, ok := stack.Peek()
	require.True(t, ok)
	assert.Contains(t, top, "second")

	popped, ok := stack.Pop()
	require.True(t, ok)
	assert.Contains(t, popped, "second")
	assert.Equal(t, 1, stack.Size())

	stack.Clear()
	assert.Equal(t, 0, stack.Size())
}

func TestErrorError(t *testing.T) {
	stack := &tcerr.Stack{}
	stack.Push("parsePrimary", "unexpected token")

	err := tcerr.New(tcerr.UnknownToken, stack)
	assert.Contains(t, err.Error(), "unknown token")
	assert.Contains(t, err.Error(), "parsePrimary")
}

func TestErrorIsSentinel(t *testing.T) {
	err := tcerr.Sentinel(tcerr.DivByZero)
	assert.True(t, err.Is(tcerr.Sentinel(tcerr.DivByZero)))
	assert.False(t, err.Is(tcerr.Sentinel(tcerr.NotInDomain)))
}

func TestKindStringUnknown(t *testing.T) {
	assert.Contains(t, tcerr.Kind(999).String(), "Kind(999)")
}
