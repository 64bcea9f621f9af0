package qos

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := NewError(ErrorCodeShortKeyNotFound, "short key not found")

	assert.Equal(t, ErrorCodeShortKeyNotFound, err.Code())
	assert.Equal(t, "short key not found", err.Message())
	assert.Equal(t, "short key not found (code: -2)", err.Error())
}

func TestErrorIsByCode(t *testing.T) {
	err := NewError(ErrorCodeInvalidProfile, "bad profile")

	// errors.Is matches by error code (message is ignored)
	assert.True(t, errors.Is(err, NewError(ErrorCodeInvalidProfile, "different message")))
	assert.False(t, errors.Is(err, NewError(ErrorCodeInvalidArgument, "bad profile")))
}

func TestErrorSentinels(t *testing.T) {
	wrapped := fmt.Errorf("%w: history set to KEEP_LAST without a depth setting", ErrInvalidProfile)

	assert.True(t, errors.Is(wrapped, ErrInvalidProfile))
	assert.False(t, errors.Is(wrapped, ErrShortKeyNotFound))

	var qerr Error
	require.True(t, errors.As(wrapped, &qerr))
	assert.Equal(t, ErrorCodeInvalidProfile, qerr.Code())
}
