package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/feral-file/ff-journal/internal/api/shared/errors"
	"github.com/feral-file/ff-journal/internal/domain"
)

func TestNewSponsorshipError(t *testing.T) {
	tests := []struct {
		err  error
		code apierrors.ErrorCode
	}{
		{domain.ErrBudgetExhausted, apierrors.ErrCodeBudgetExhausted},
		{domain.ErrBudgetInsufficient, apierrors.ErrCodeBudgetInsufficient},
		{domain.ErrInvalidTransactionBytes, apierrors.ErrCodeInvalidTransactionBytes},
		{domain.ErrTransactionNotAllowed, apierrors.ErrCodeTransactionNotAllowed},
		{domain.ErrGasStationOffline, apierrors.ErrCodeGasStationOffline},
		{domain.ErrGasStationEmpty, apierrors.ErrCodeGasStationEmpty},
		{domain.ErrGasStationFragmented, apierrors.ErrCodeGasStationFragmented},
		{domain.ErrTransactionSimulationFailed, apierrors.ErrCodeTransactionSimulationFailed},
		{domain.ErrInvalidAddress, apierrors.ErrCodeInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			wrapped := fmt.Errorf("sponsor: %w", tt.err)

			apiErr := apierrors.NewSponsorshipError(wrapped)

			require.NotNil(t, apiErr)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, wrapped.Error(), apiErr.Message)
		})
	}
}

func TestNewSponsorshipError_OtherError(t *testing.T) {
	assert.Nil(t, apierrors.NewSponsorshipError(errors.New("connection refused")))
	assert.Nil(t, apierrors.NewSponsorshipError(nil))
}

func TestAPIError_Error(t *testing.T) {
	err := apierrors.NewNotFoundError("Construct not found", "0xc1")

	assert.JSONEq(t, `{"code":"not_found","message":"Construct not found","details":"0xc1"}`, err.Error())
}
