package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("key not found")
	err := WrapErrorf(orig, ErrNotFound, "city %d not found", 7)

	var srvErr *Error
	assert.True(t, errors.As(err, &srvErr))
	assert.Equal(t, ErrNotFound, srvErr.Code())
	assert.Equal(t, "city 7 not found", srvErr.Message())
	assert.Equal(t, "city 7 not found: key not found", err.Error())
	assert.ErrorIs(t, err, orig)
}

func TestNewErrorf(t *testing.T) {
	err := NewErrorf(ErrBadParamInput, "bad mode")
	assert.Equal(t, "bad mode", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
