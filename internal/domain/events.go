package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EventID is the (txDigest, eventSeq) position of an event. It doubles as the pagination cursor.
type EventID struct {
	TxDigest string `json:"txDigest"`
	EventSeq string `json:"eventSeq"`
}

// String returns the position as txDigest:eventSeq
func (id EventID) String() string {
	return id.TxDigest + ":" + id.EventSeq
}

// EventKind is the struct name of a journal event inside the journal module
type EventKind string

const (
	EventKindConstructJackedIn EventKind = "ConstructJackedIn"
	EventKindShardEngraved     EventKind = "ShardEngraved"
)

// JournalEventType returns the fully-qualified on-chain event type of a kind
func JournalEventType(packageID string, kind EventKind) string {
	return fmt.Sprintf("%s::%s::%s", packageID, JOURNAL_MODULE, kind)
}

// EventPayload is implemented by every journal event variant
type EventPayload interface {
	Kind() EventKind
	validate() error
}

// ConstructJackedIn is emitted when a user registers a construct
type ConstructJackedIn struct {
	ConstructID string `json:"construct_id"`
	Owner       string `json:"owner"`
}

func (ConstructJackedIn) Kind() EventKind { return EventKindConstructJackedIn }

func (e *ConstructJackedIn) validate() error {
	var err error
	if e.ConstructID, err = NormalizeAddress(e.ConstructID); err != nil {
		return fmt.Errorf("construct_id: %w", err)
	}
	if e.Owner, err = NormalizeAddress(e.Owner); err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	return nil
}

// ShardEngraved is emitted when a memory shard is written to a construct
type ShardEngraved struct {
	ConstructID string     `json:"construct_id"`
	Owner       string     `json:"owner"`
	Content     string     `json:"content"`
	Category    FlexString `json:"category"`
	IsEncrypted bool       `json:"is_encrypted"`
}

func (ShardEngraved) Kind() EventKind { return EventKindShardEngraved }

func (e *ShardEngraved) validate() error {
	var err error
	if e.ConstructID, err = NormalizeAddress(e.ConstructID); err != nil {
		return fmt.Errorf("construct_id: %w", err)
	}
	if e.Owner, err = NormalizeAddress(e.Owner); err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	return nil
}

// FlexString accepts both JSON strings and numbers. Move integers are rendered as either.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

// RawEvent is an event as returned by the chain, before payload decoding
type RawEvent struct {
	ID          EventID
	Type        string
	Sender      string
	TimestampMs string
	ParsedJSON  json.RawMessage
}

// JournalEvent is a decoded journal event. Payload holds exactly one variant.
type JournalEvent struct {
	ID        EventID
	Type      string
	Sender    string
	Timestamp time.Time
	Payload   EventPayload
	Raw       json.RawMessage
}

// ConstructJackedIn returns the payload when the event is a ConstructJackedIn
func (e *JournalEvent) ConstructJackedIn() (*ConstructJackedIn, bool) {
	p, ok := e.Payload.(*ConstructJackedIn)
	return p, ok
}

// ShardEngraved returns the payload when the event is a ShardEngraved
func (e *JournalEvent) ShardEngraved() (*ShardEngraved, bool) {
	p, ok := e.Payload.(*ShardEngraved)
	return p, ok
}

// EventKindOf extracts the journal kind from a fully-qualified event type
func EventKindOf(eventType string) (EventKind, error) {
	parts := strings.Split(eventType, "::")
	if len(parts) != 3 || parts[1] != JOURNAL_MODULE {
		return "", fmt.Errorf("%w: %s", ErrUnknownEventType, eventType)
	}

	switch kind := EventKind(parts[2]); kind {
	case EventKindConstructJackedIn, EventKindShardEngraved:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownEventType, eventType)
	}
}

// DecodeJournalEvent decodes the payload of a raw event into its variant.
// Unknown types and malformed payloads are rejected.
func DecodeJournalEvent(raw RawEvent) (*JournalEvent, error) {
	kind, err := EventKindOf(raw.Type)
	if err != nil {
		return nil, err
	}

	var payload EventPayload
	switch kind {
	case EventKindConstructJackedIn:
		payload = &ConstructJackedIn{}
	case EventKindShardEngraved:
		payload = &ShardEngraved{}
	}

	if len(raw.ParsedJSON) == 0 {
		return nil, fmt.Errorf("%w: empty payload for %s", ErrInvalidEventPayload, raw.ID)
	}
	if err := json.Unmarshal(raw.ParsedJSON, payload); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidEventPayload, raw.ID, err)
	}
	if err := payload.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidEventPayload, raw.ID, err)
	}

	var ts time.Time
	if raw.TimestampMs != "" {
		ms, err := strconv.ParseInt(raw.TimestampMs, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: timestampMs %q", ErrInvalidEventPayload, raw.TimestampMs)
		}
		ts = time.UnixMilli(ms).UTC()
	}

	return &JournalEvent{
		ID:        raw.ID,
		Type:      raw.Type,
		Sender:    raw.Sender,
		Timestamp: ts,
		Payload:   payload,
		Raw:       raw.ParsedJSON,
	}, nil
}
