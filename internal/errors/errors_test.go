package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errClosed = stderrors.New("pool closed")

func TestWrap(t *testing.T) {
	wrapped := Wrap(errClosed, "ping database")

	assert.EqualError(t, wrapped, "ping database: pool closed")
	assert.True(t, Is(wrapped, errClosed))
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrap")
	assert.NoError(t, Wrap(nil, "ping database"))
}

func TestWithStack(t *testing.T) {
	stacked := WithStack(errClosed)

	assert.Equal(t, errClosed.Error(), stacked.Error())
	assert.True(t, Is(stacked, errClosed))
	assert.NoError(t, WithStack(nil))
}
