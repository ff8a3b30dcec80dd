package errors

import (
	"net/http"
	"testing"

	"platter/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrMenuItemNotFound.WrapMessage("menu item 42")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "MENU_ITEM_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrMenuItemNotFound))
	assert.Contains(t, err.Error(), "menu item 42")
}

func TestBaseError_WithDetailsDoesNotMutateShared(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("quantity must be positive")

	assert.Equal(t, "quantity must be positive", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "failed to save order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to save order", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
