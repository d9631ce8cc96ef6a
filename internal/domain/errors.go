package domain

import "errors"

// Sponsorship errors. Every one of them aborts the request before anything is written.
var (
	// ErrBudgetExhausted is returned when the user's lifetime usage already reached the cap
	ErrBudgetExhausted = errors.New("lifetime sponsorship budget exhausted")

	// ErrBudgetInsufficient is returned when the estimated budget would push usage to the cap
	ErrBudgetInsufficient = errors.New("insufficient sponsorship budget for this transaction")

	// ErrInvalidTransactionBytes is returned when the submitted bytes do not decode into a transaction
	ErrInvalidTransactionBytes = errors.New("invalid transaction bytes")

	// ErrTransactionNotAllowed is returned when a command is not an allow-listed move call
	ErrTransactionNotAllowed = errors.New("transaction not allowed")

	// ErrGasStationOffline is returned when no sponsor keypair is configured
	ErrGasStationOffline = errors.New("gas station offline")

	// ErrGasStationEmpty is returned when the sponsor owns no gas coins
	ErrGasStationEmpty = errors.New("gas station empty")

	// ErrGasStationFragmented is returned when no single sponsor coin covers the budget
	ErrGasStationFragmented = errors.New("gas station fragmented")

	// ErrTransactionSimulationFailed is returned when the dry run reports a failure status
	ErrTransactionSimulationFailed = errors.New("transaction simulation failed")
)

// Indexer errors. They are logged and never surfaced to callers.
var (
	// ErrUnknownEventType is returned when an event type has no payload variant
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrInvalidEventPayload is returned when an event payload misses required fields
	ErrInvalidEventPayload = errors.New("invalid event payload")
)

// ErrInvalidAddress is returned when a string is not a valid account or object address
var ErrInvalidAddress = errors.New("invalid address")

// IsSponsorshipError reports whether err belongs to the sponsorship taxonomy
func IsSponsorshipError(err error) bool {
	for _, target := range []error{
		ErrBudgetExhausted,
		ErrBudgetInsufficient,
		ErrInvalidTransactionBytes,
		ErrTransactionNotAllowed,
		ErrGasStationOffline,
		ErrGasStationEmpty,
		ErrGasStationFragmented,
		ErrTransactionSimulationFailed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
