package sui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/feral-file/ff-journal/internal/domain"
)

// Uint64String is an unsigned integer the node renders as a decimal string
type Uint64String uint64

func (u Uint64String) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatUint(uint64(u), 10))), nil
}

func (u *Uint64String) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*u = 0
		return nil
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid u64 %q: %w", data, err)
	}
	*u = Uint64String(v)
	return nil
}

// EventFilter selects events by their fully-qualified Move event type
type EventFilter struct {
	MoveEventType string `json:"MoveEventType"`
}

// Event is an event as returned by suix_queryEvents
type Event struct {
	ID                domain.EventID  `json:"id"`
	PackageID         string          `json:"packageId"`
	TransactionModule string          `json:"transactionModule"`
	Sender            string          `json:"sender"`
	Type              string          `json:"type"`
	ParsedJSON        json.RawMessage `json:"parsedJson"`
	TimestampMs       string          `json:"timestampMs,omitempty"`
}

// Raw converts the event to its domain form, ready for payload decoding
func (e Event) Raw() domain.RawEvent {
	return domain.RawEvent{
		ID:          e.ID,
		Type:        e.Type,
		Sender:      e.Sender,
		TimestampMs: e.TimestampMs,
		ParsedJSON:  e.ParsedJSON,
	}
}

// EventPage is one page of events
type EventPage struct {
	Data        []Event         `json:"data"`
	NextCursor  *domain.EventID `json:"nextCursor"`
	HasNextPage bool            `json:"hasNextPage"`
}

// Coin is a gas coin owned by an address
type Coin struct {
	CoinType     string       `json:"coinType"`
	CoinObjectID string       `json:"coinObjectId"`
	Version      Uint64String `json:"version"`
	Digest       string       `json:"digest"`
	Balance      Uint64String `json:"balance"`
}

// ObjectRef converts the coin to a gas payment reference
func (c Coin) ObjectRef() (ObjectRef, error) {
	return NewObjectRef(c.CoinObjectID, uint64(c.Version), c.Digest)
}

type coinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

// GasCostSummary is the gas usage reported by a dry run or execution
type GasCostSummary struct {
	ComputationCost         Uint64String `json:"computationCost"`
	StorageCost             Uint64String `json:"storageCost"`
	StorageRebate           Uint64String `json:"storageRebate"`
	NonRefundableStorageFee Uint64String `json:"nonRefundableStorageFee"`
}

// ExecutionStatus values
const (
	ExecutionStatusSuccess = "success"
	ExecutionStatusFailure = "failure"
)

// ExecutionStatus is the status block of transaction effects
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type transactionEffects struct {
	Status  ExecutionStatus `json:"status"`
	GasUsed GasCostSummary  `json:"gasUsed"`
}

type dryRunResponse struct {
	Effects transactionEffects `json:"effects"`
}

// DryRunResult is the outcome of a simulated execution
type DryRunResult struct {
	Status  string
	Error   string
	GasUsed GasCostSummary
}

// Succeeded reports whether the simulated execution succeeded
func (r *DryRunResult) Succeeded() bool {
	return r.Status == ExecutionStatusSuccess
}

type executeResponse struct {
	Digest  string              `json:"digest"`
	Effects *transactionEffects `json:"effects"`
}

// ExecuteResult is the outcome of a submitted transaction
type ExecuteResult struct {
	Digest  string
	Status  string
	Error   string
	GasUsed GasCostSummary
}
