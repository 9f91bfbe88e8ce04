package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrap_PreservesIdentity(t *testing.T) {
	wrapped := Wrapf(Wrap(errSentinel, "inner"), "outer %d", 1)

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "outer 1: inner: sentinel", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrap_PreservesIdentity")
}

func TestAs_FindsTypedErrorThroughJoin(t *testing.T) {
	joined := Join(errSentinel, WithStack(&codedError{code: "E1"}))

	var coded *codedError
	assert.True(t, As(joined, &coded))
	assert.Equal(t, "E1", coded.code)
	assert.True(t, Is(joined, errSentinel))
}
