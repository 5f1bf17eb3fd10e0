package service

import (
	"testing"

	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/stretchr/testify/require"
)

// assertAppError fails unless err is an AppError carrying the wanted HTTP code
func assertAppError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.Equal(t, code, appErr.Code, "unexpected error code: %v", err)
}
