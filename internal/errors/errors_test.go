package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrap_KeepsChainAndAddsStack(t *testing.T) {
	err := Wrapf(Wrap(errSentinel, "inner"), "outer %d", 1)

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "outer 1: inner: sentinel", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", WithStack(errSentinel)), "TestWrap_KeepsChainAndAddsStack")
}

func TestAs_FindsWrappedType(t *testing.T) {
	err := Wrap(&codedError{code: "CART_FULL"}, "add line")

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, "CART_FULL", target.code)
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}
