package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapMessage_KeepsAppError(t *testing.T) {
	err := ErrBroadcastFailed.WrapMessage("redis down")

	var appErr AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Equal(t, "BROADCAST_FAILED", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "redis down")
}

func TestDatabaseExecuteError(t *testing.T) {
	driverErr := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(driverErr, "failed to create device")

	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, "failed to create device: connection reset", err.Error())
	assert.Equal(t, "Database execution failed", err.Message())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
}
