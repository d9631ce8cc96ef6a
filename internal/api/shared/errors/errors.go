package errors

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/feral-file/ff-journal/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"

	// Sponsorship errors (4xx)
	ErrCodeBudgetExhausted             ErrorCode = "budget_exhausted"
	ErrCodeBudgetInsufficient          ErrorCode = "budget_insufficient"
	ErrCodeInvalidTransactionBytes     ErrorCode = "invalid_transaction_bytes"
	ErrCodeTransactionNotAllowed       ErrorCode = "transaction_not_allowed"
	ErrCodeGasStationOffline           ErrorCode = "gas_station_offline"
	ErrCodeGasStationEmpty             ErrorCode = "gas_station_empty"
	ErrCodeGasStationFragmented        ErrorCode = "gas_station_fragmented"
	ErrCodeTransactionSimulationFailed ErrorCode = "transaction_simulation_failed"
	ErrCodeInvalidAddress              ErrorCode = "invalid_address"
)

// sponsorshipCodes maps each sponsorship failure to its stable code
var sponsorshipCodes = []struct {
	err  error
	code ErrorCode
}{
	{domain.ErrBudgetExhausted, ErrCodeBudgetExhausted},
	{domain.ErrBudgetInsufficient, ErrCodeBudgetInsufficient},
	{domain.ErrInvalidTransactionBytes, ErrCodeInvalidTransactionBytes},
	{domain.ErrTransactionNotAllowed, ErrCodeTransactionNotAllowed},
	{domain.ErrGasStationOffline, ErrCodeGasStationOffline},
	{domain.ErrGasStationEmpty, ErrCodeGasStationEmpty},
	{domain.ErrGasStationFragmented, ErrCodeGasStationFragmented},
	{domain.ErrTransactionSimulationFailed, ErrCodeTransactionSimulationFailed},
	{domain.ErrInvalidAddress, ErrCodeInvalidAddress},
}

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// NewSponsorshipError converts a sponsorship failure into an APIError carrying the error's message.
// It returns nil for any other error.
func NewSponsorshipError(err error) *APIError {
	for _, c := range sponsorshipCodes {
		if errors.Is(err, c.err) {
			return &APIError{
				Code:    c.code,
				Message: err.Error(),
			}
		}
	}
	return nil
}
