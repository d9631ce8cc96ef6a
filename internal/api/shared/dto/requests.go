package dto

import (
	"encoding/base64"
	"fmt"

	apierrors "github.com/feral-file/ff-journal/internal/api/shared/errors"
	"github.com/feral-file/ff-journal/internal/domain"
)

// SponsorTransactionRequest represents the request body for sponsoring a transaction
type SponsorTransactionRequest struct {
	TxBytes string `json:"txBytes"` // base64 transaction data or transaction kind
	Sender  string `json:"sender"`
}

// Validate validates the request body and returns the decoded transaction bytes
func (r *SponsorTransactionRequest) Validate() ([]byte, error) {
	if r.TxBytes == "" {
		return nil, apierrors.NewValidationError("txBytes is required")
	}
	if r.Sender == "" {
		return nil, apierrors.NewValidationError("sender is required")
	}
	if !domain.IsValidAddress(r.Sender) {
		return nil, &apierrors.APIError{
			Code:    apierrors.ErrCodeInvalidAddress,
			Message: fmt.Sprintf("invalid sender address: %s", r.Sender),
		}
	}

	txBytes, err := base64.StdEncoding.DecodeString(r.TxBytes)
	if err != nil {
		return nil, &apierrors.APIError{
			Code:    apierrors.ErrCodeInvalidTransactionBytes,
			Message: fmt.Sprintf("%s: txBytes is not base64", domain.ErrInvalidTransactionBytes),
		}
	}

	return txBytes, nil
}

// ExecuteTransactionRequest represents the request body for submitting a sponsored transaction
type ExecuteTransactionRequest struct {
	TxBytes          string `json:"txBytes"`
	UserSignature    string `json:"userSignature"`
	SponsorSignature string `json:"sponsorSignature"`
}

// Validate validates the request body and returns the decoded transaction bytes
func (r *ExecuteTransactionRequest) Validate() ([]byte, error) {
	if r.TxBytes == "" {
		return nil, apierrors.NewValidationError("txBytes is required")
	}
	if r.UserSignature == "" || r.SponsorSignature == "" {
		return nil, apierrors.NewValidationError("userSignature and sponsorSignature are required")
	}

	txBytes, err := base64.StdEncoding.DecodeString(r.TxBytes)
	if err != nil {
		return nil, &apierrors.APIError{
			Code:    apierrors.ErrCodeInvalidTransactionBytes,
			Message: fmt.Sprintf("%s: txBytes is not base64", domain.ErrInvalidTransactionBytes),
		}
	}

	return txBytes, nil
}
