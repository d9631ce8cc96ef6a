package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPackageID = "0x00000000000000000000000000000000000000000000000000000000000000aa"

func TestEventKindOf(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		expected  EventKind
		wantErr   bool
	}{
		{
			name:      "construct jacked in",
			eventType: JournalEventType(testPackageID, EventKindConstructJackedIn),
			expected:  EventKindConstructJackedIn,
		},
		{
			name:      "shard engraved",
			eventType: JournalEventType(testPackageID, EventKindShardEngraved),
			expected:  EventKindShardEngraved,
		},
		{
			name:      "unknown struct",
			eventType: testPackageID + "::journal::ShardBurned",
			wantErr:   true,
		},
		{
			name:      "other module",
			eventType: testPackageID + "::market::ShardEngraved",
			wantErr:   true,
		},
		{
			name:      "malformed",
			eventType: "ShardEngraved",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := EventKindOf(tt.eventType)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownEventType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestDecodeJournalEvent(t *testing.T) {
	id := EventID{TxDigest: "8xT3", EventSeq: "0"}

	t.Run("construct jacked in", func(t *testing.T) {
		event, err := DecodeJournalEvent(RawEvent{
			ID:          id,
			Type:        JournalEventType(testPackageID, EventKindConstructJackedIn),
			Sender:      "0x1",
			TimestampMs: "1700000000000",
			ParsedJSON:  json.RawMessage(`{"construct_id":"0xc1","owner":"0xB0B"}`),
		})
		require.NoError(t, err)

		payload, ok := event.ConstructJackedIn()
		require.True(t, ok)
		assert.Equal(t, "0x00000000000000000000000000000000000000000000000000000000000000c1", payload.ConstructID)
		assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000b0b", payload.Owner)
		assert.Equal(t, time.UnixMilli(1700000000000).UTC(), event.Timestamp)
		assert.Equal(t, id, event.ID)

		_, ok = event.ShardEngraved()
		assert.False(t, ok)
	})

	t.Run("shard engraved with numeric category", func(t *testing.T) {
		event, err := DecodeJournalEvent(RawEvent{
			ID:         id,
			Type:       JournalEventType(testPackageID, EventKindShardEngraved),
			ParsedJSON: json.RawMessage(`{"construct_id":"0xc1","owner":"0xb0b","content":"hello","category":3,"is_encrypted":true}`),
		})
		require.NoError(t, err)

		payload, ok := event.ShardEngraved()
		require.True(t, ok)
		assert.Equal(t, "hello", payload.Content)
		assert.Equal(t, FlexString("3"), payload.Category)
		assert.True(t, payload.IsEncrypted)
		assert.True(t, event.Timestamp.IsZero())
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := DecodeJournalEvent(RawEvent{
			ID:         id,
			Type:       testPackageID + "::journal::Unknown",
			ParsedJSON: json.RawMessage(`{}`),
		})
		assert.ErrorIs(t, err, ErrUnknownEventType)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := DecodeJournalEvent(RawEvent{
			ID:         id,
			Type:       JournalEventType(testPackageID, EventKindConstructJackedIn),
			ParsedJSON: json.RawMessage(`{"construct_id":"0xc1"}`),
		})
		assert.ErrorIs(t, err, ErrInvalidEventPayload)
	})

	t.Run("payload is not an object", func(t *testing.T) {
		_, err := DecodeJournalEvent(RawEvent{
			ID:         id,
			Type:       JournalEventType(testPackageID, EventKindShardEngraved),
			ParsedJSON: json.RawMessage(`"nope"`),
		})
		assert.ErrorIs(t, err, ErrInvalidEventPayload)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		_, err := DecodeJournalEvent(RawEvent{
			ID:          id,
			Type:        JournalEventType(testPackageID, EventKindConstructJackedIn),
			TimestampMs: "yesterday",
			ParsedJSON:  json.RawMessage(`{"construct_id":"0xc1","owner":"0xb0b"}`),
		})
		assert.ErrorIs(t, err, ErrInvalidEventPayload)
	})
}

func TestIsSponsorshipError(t *testing.T) {
	assert.True(t, IsSponsorshipError(ErrGasStationEmpty))
	assert.False(t, IsSponsorshipError(ErrUnknownEventType))
}
