package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-journal/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// testAddress builds a canonical address ending with the given hex suffix
func testAddress(suffix string) string {
	addr, err := domain.NormalizeAddress("0x" + suffix)
	if err != nil {
		panic(err)
	}
	return addr
}

// buildTestSponsorshipRecord creates a sponsorship record input
func buildTestSponsorshipRecord(user string, budget uint64, actionType string) CreateSponsorshipRecordInput {
	return CreateSponsorshipRecordInput{
		UserAddress: user,
		GasBudget:   budget,
		ActionType:  actionType,
	}
}

// buildTestShard creates a memory shard input for a construct
func buildTestShard(constructID, owner, txDigest string, engravedAt time.Time) CreateMemoryShardInput {
	raw, _ := json.Marshal(map[string]interface{}{
		"construct_id": constructID,
		"owner":        owner,
		"content":      "shard " + txDigest,
	})
	return CreateMemoryShardInput{
		ConstructID: constructID,
		Owner:       owner,
		Content:     "shard " + txDigest,
		Category:    "1",
		TxDigest:    txDigest,
		EventSeq:    "0",
		Raw:         raw,
		EngravedAt:  engravedAt,
	}
}

// =============================================================================
// Test: Usage ledger
// =============================================================================

func testSponsorshipLedger(t *testing.T, store Store) {
	ctx := context.Background()
	user := testAddress("a11ce")

	t.Run("usage of an unknown user is zero", func(t *testing.T) {
		total, err := store.GetTotalSponsoredGas(ctx, testAddress("404"))
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)
	})

	t.Run("records are appended and summed", func(t *testing.T) {
		first, err := store.CreateSponsorshipRecord(ctx, buildTestSponsorshipRecord(user, 2_250_000, "engrave"))
		require.NoError(t, err)
		assert.NotEmpty(t, first.ID)
		assert.Nil(t, first.TxDigest)
		assert.Equal(t, "engrave", first.ActionType)
		assert.False(t, first.SponsoredAt.IsZero())

		second, err := store.CreateSponsorshipRecord(ctx, buildTestSponsorshipRecord(user, 1_000_000, ""))
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, domain.UNKNOWN_ACTION_TYPE, second.ActionType)

		total, err := store.GetTotalSponsoredGas(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, uint64(3_250_000), total)
	})

	t.Run("usage is per user", func(t *testing.T) {
		other := testAddress("b0b")
		_, err := store.CreateSponsorshipRecord(ctx, buildTestSponsorshipRecord(other, 10, "jack_in"))
		require.NoError(t, err)

		total, err := store.GetTotalSponsoredGas(ctx, other)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), total)
	})

	t.Run("zero budget is rejected", func(t *testing.T) {
		_, err := store.CreateSponsorshipRecord(ctx, buildTestSponsorshipRecord(user, 0, "engrave"))
		assert.Error(t, err)
	})

	t.Run("records are listed newest first", func(t *testing.T) {
		records, total, err := store.GetSponsorshipRecordsByUser(ctx, user, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, records, 2)
		assert.Equal(t, int64(1_000_000), records[0].GasBudget)

		records, total, err = store.GetSponsorshipRecordsByUser(ctx, user, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, records, 1)
		assert.Equal(t, int64(2_250_000), records[0].GasBudget)
	})
}

func testSponsorshipCap(t *testing.T, store Store) {
	ctx := context.Background()
	user := testAddress("ca9")
	const lifetimeCap = 10_000_000

	input := buildTestSponsorshipRecord(user, 4_000_000, "engrave")
	input.LifetimeCap = lifetimeCap

	t.Run("grants under the cap are committed", func(t *testing.T) {
		_, err := store.CreateSponsorshipRecord(ctx, input)
		require.NoError(t, err)
		_, err = store.CreateSponsorshipRecord(ctx, input)
		require.NoError(t, err)
	})

	t.Run("grant reaching the cap is rejected", func(t *testing.T) {
		reaching := input
		reaching.GasBudget = 2_000_000

		_, err := store.CreateSponsorshipRecord(ctx, reaching)
		assert.ErrorIs(t, err, domain.ErrBudgetInsufficient)

		total, err := store.GetTotalSponsoredGas(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, uint64(8_000_000), total)
	})

	t.Run("grant just under the cap is committed", func(t *testing.T) {
		under := input
		under.GasBudget = 1_999_999

		_, err := store.CreateSponsorshipRecord(ctx, under)
		require.NoError(t, err)

		total, err := store.GetTotalSponsoredGas(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, uint64(9_999_999), total)
	})
}

func testLedgerIsInsertOnly(t *testing.T, store Store) {
	ctx := context.Background()

	record, err := store.CreateSponsorshipRecord(ctx, buildTestSponsorshipRecord(testAddress("1ed9e4"), 5, "engrave"))
	require.NoError(t, err)

	pg, ok := store.(*pgStore)
	require.True(t, ok)

	err = pg.db.WithContext(ctx).Exec("UPDATE sponsorship_records SET gas_budget = 1 WHERE id = ?", record.ID).Error
	assert.Error(t, err)
}

// =============================================================================
// Test: Event cursors
// =============================================================================

func testEventCursor(t *testing.T, store Store) {
	ctx := context.Background()
	eventType := "0xaa::journal::ShardEngraved"

	t.Run("missing cursor means genesis", func(t *testing.T) {
		cursor, err := store.GetEventCursor(ctx, eventType)
		require.NoError(t, err)
		assert.Nil(t, cursor)
	})

	t.Run("cursor is created then updated", func(t *testing.T) {
		require.NoError(t, store.SetEventCursor(ctx, eventType, domain.EventID{TxDigest: "D1", EventSeq: "0"}))

		cursor, err := store.GetEventCursor(ctx, eventType)
		require.NoError(t, err)
		assert.Equal(t, &domain.EventID{TxDigest: "D1", EventSeq: "0"}, cursor)

		require.NoError(t, store.SetEventCursor(ctx, eventType, domain.EventID{TxDigest: "D2", EventSeq: "4"}))

		cursor, err = store.GetEventCursor(ctx, eventType)
		require.NoError(t, err)
		assert.Equal(t, &domain.EventID{TxDigest: "D2", EventSeq: "4"}, cursor)
	})

	t.Run("cursors are independent per event type", func(t *testing.T) {
		cursor, err := store.GetEventCursor(ctx, "0xaa::journal::ConstructJackedIn")
		require.NoError(t, err)
		assert.Nil(t, cursor)
	})
}

// =============================================================================
// Test: Journal entities
// =============================================================================

func testFindOrCreateConstruct(t *testing.T, store Store) {
	ctx := context.Background()
	id := testAddress("c1")
	owner := testAddress("b0b")
	firstSeen := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	construct, created, err := store.FindOrCreateConstruct(ctx, FindOrCreateConstructInput{ID: id, Owner: owner, Timestamp: firstSeen})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, owner, construct.Owner)

	t.Run("existing construct is returned untouched", func(t *testing.T) {
		construct, created, err := store.FindOrCreateConstruct(ctx, FindOrCreateConstructInput{
			ID:        id,
			Owner:     testAddress("e7e"),
			Timestamp: firstSeen.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, owner, construct.Owner)
		assert.True(t, firstSeen.Equal(construct.LastUpdate))
	})

	t.Run("get by id", func(t *testing.T) {
		found, err := store.GetConstructByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, id, found.ID)

		missing, err := store.GetConstructByID(ctx, testAddress("dead"))
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func testMemoryShards(t *testing.T, store Store) {
	ctx := context.Background()
	constructID := testAddress("c2")
	owner := testAddress("b0b")
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := store.FindOrCreateConstruct(ctx, FindOrCreateConstructInput{ID: constructID, Owner: owner, Timestamp: base})
	require.NoError(t, err)

	t.Run("replayed shard is stored once", func(t *testing.T) {
		input := buildTestShard(constructID, owner, "DIGEST1", base)

		created, err := store.CreateMemoryShard(ctx, input)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = store.CreateMemoryShard(ctx, input)
		require.NoError(t, err)
		assert.False(t, created)

		_, total, err := store.GetMemoryShardsByConstruct(ctx, constructID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)

		shard, err := store.GetMemoryShardByTxDigest(ctx, "DIGEST1")
		require.NoError(t, err)
		require.NotNil(t, shard)
		assert.Equal(t, "shard DIGEST1", shard.Content)
		assert.JSONEq(t, string(input.Raw), string(shard.Raw))
	})

	t.Run("shards are listed newest first", func(t *testing.T) {
		for i := 2; i <= 3; i++ {
			_, err := store.CreateMemoryShard(ctx, buildTestShard(constructID, owner, fmt.Sprintf("DIGEST%d", i), base.Add(time.Duration(i)*time.Minute)))
			require.NoError(t, err)
		}

		shards, total, err := store.GetMemoryShardsByConstruct(ctx, constructID, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, shards, 2)
		assert.Equal(t, "DIGEST3", shards[0].TxDigest)
		assert.Equal(t, "DIGEST2", shards[1].TxDigest)
	})

	t.Run("unknown digest", func(t *testing.T) {
		shard, err := store.GetMemoryShardByTxDigest(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, shard)
	})
}

// RunStoreTests runs all store tests against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"SponsorshipLedger", testSponsorshipLedger},
		{"SponsorshipCap", testSponsorshipCap},
		{"LedgerIsInsertOnly", testLedgerIsInsertOnly},
		{"EventCursor", testEventCursor},
		{"FindOrCreateConstruct", testFindOrCreateConstruct},
		{"MemoryShards", testMemoryShards},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
