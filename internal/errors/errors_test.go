package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return "coded: " + e.code }

func TestWrapKeepsCause(t *testing.T) {
	cause := &codedError{code: "INSUFFICIENT_BALANCE"}
	err := Wrapf(Wrap(cause, "redeem"), "customer %d", 7)

	assert.Equal(t, "customer 7: redeem: coded: INSUFFICIENT_BALANCE", err.Error())
	assert.True(t, Is(err, cause))

	got, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Same(t, cause, got)

	assert.Contains(t, fmt.Sprintf("%+v", WithStack(cause)), "TestWrapKeepsCause")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing to wrap"))
	assert.NoError(t, WithStack(nil))

	_, ok := AsType[*codedError](New("plain"))
	assert.False(t, ok)
}
