package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-journal/internal/store/schema"
)

// CreateSponsorshipRecordInput represents the data needed to record a gas grant
type CreateSponsorshipRecordInput struct {
	UserAddress string
	TxDigest    *string
	GasBudget   uint64
	ActionType  string
	// LifetimeCap, when non-zero, is re-checked against the user's usage under a row lock
	// before the record is inserted
	LifetimeCap uint64
}

// FindOrCreateConstructInput represents the data needed to register a construct
type FindOrCreateConstructInput struct {
	ID        string
	Owner     string
	Timestamp time.Time
}

// CreateMemoryShardInput represents the data needed to store an engraved shard
type CreateMemoryShardInput struct {
	ConstructID string
	Owner       string
	Content     string
	Category    string
	IsEncrypted bool
	TxDigest    string
	EventSeq    string
	Raw         []byte
	EngravedAt  time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	CursorStore

	// GetTotalSponsoredGas returns the sum of gas budgets granted to a user, 0 when none
	GetTotalSponsoredGas(ctx context.Context, userAddress string) (uint64, error)
	// CreateSponsorshipRecord appends a sponsorship record
	CreateSponsorshipRecord(ctx context.Context, input CreateSponsorshipRecordInput) (*schema.SponsorshipRecord, error)
	// GetSponsorshipRecordsByUser lists a user's records, newest first, with the total count
	GetSponsorshipRecordsByUser(ctx context.Context, userAddress string, limit int, offset uint64) ([]schema.SponsorshipRecord, uint64, error)

	// FindOrCreateConstruct returns the construct, creating it when absent. Existing constructs are left untouched.
	FindOrCreateConstruct(ctx context.Context, input FindOrCreateConstructInput) (*schema.Construct, bool, error)
	// GetConstructByID retrieves a construct by its object id
	GetConstructByID(ctx context.Context, id string) (*schema.Construct, error)
	// CreateMemoryShard inserts a shard unless one with the same tx digest exists. Reports whether it was inserted.
	CreateMemoryShard(ctx context.Context, input CreateMemoryShardInput) (bool, error)
	// GetMemoryShardByTxDigest retrieves a shard by its transaction digest
	GetMemoryShardByTxDigest(ctx context.Context, txDigest string) (*schema.MemoryShard, error)
	// GetMemoryShardsByConstruct lists a construct's shards, newest first, with the total count
	GetMemoryShardsByConstruct(ctx context.Context, constructID string, limit int, offset uint64) ([]schema.MemoryShard, uint64, error)
}
