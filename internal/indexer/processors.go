package indexer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-journal/internal/adapter"
	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/logger"
	"github.com/feral-file/ff-journal/internal/messaging"
	"github.com/feral-file/ff-journal/internal/store"
)

// Processor persists the events of a single on-chain event type.
// Process must be idempotent: a page is replayed when its cursor was not saved.
//
//go:generate mockgen -source=processors.go -destination=../mocks/processor.go -package=mocks -mock_names=Processor=MockProcessor
type Processor interface {
	// EventType returns the fully-qualified event type the processor handles
	EventType() string
	// Process persists a decoded event
	Process(ctx context.Context, event *domain.JournalEvent) error
}

// NewProcessors returns the journal processors in processing order.
// The publisher is optional.
func NewProcessors(packageID string, st store.Store, jsonAdapter adapter.JSON, publisher messaging.Publisher) []Processor {
	return []Processor{
		NewConstructJackedInProcessor(packageID, st, publisher),
		NewShardEngravedProcessor(packageID, st, jsonAdapter, publisher),
	}
}

type constructJackedInProcessor struct {
	eventType string
	store     store.Store
	publisher messaging.Publisher
}

// NewConstructJackedInProcessor registers constructs
func NewConstructJackedInProcessor(packageID string, st store.Store, publisher messaging.Publisher) Processor {
	return &constructJackedInProcessor{
		eventType: domain.JournalEventType(packageID, domain.EventKindConstructJackedIn),
		store:     st,
		publisher: publisher,
	}
}

func (p *constructJackedInProcessor) EventType() string {
	return p.eventType
}

func (p *constructJackedInProcessor) Process(ctx context.Context, event *domain.JournalEvent) error {
	payload, ok := event.ConstructJackedIn()
	if !ok {
		return fmt.Errorf("%w: %s is not a construct registration", domain.ErrInvalidEventPayload, event.Type)
	}

	_, created, err := p.store.FindOrCreateConstruct(ctx, store.FindOrCreateConstructInput{
		ID:        payload.ConstructID,
		Owner:     payload.Owner,
		Timestamp: event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to save construct %s: %w", payload.ConstructID, err)
	}

	if created {
		logger.InfoCtx(ctx, "Construct jacked in",
			zap.String("construct_id", payload.ConstructID),
			zap.String("owner", payload.Owner))
	}

	return publish(ctx, p.publisher, event)
}

type shardEngravedProcessor struct {
	eventType string
	store     store.Store
	json      adapter.JSON
	publisher messaging.Publisher
}

// NewShardEngravedProcessor stores memory shards, registering unknown constructs first
func NewShardEngravedProcessor(packageID string, st store.Store, jsonAdapter adapter.JSON, publisher messaging.Publisher) Processor {
	return &shardEngravedProcessor{
		eventType: domain.JournalEventType(packageID, domain.EventKindShardEngraved),
		store:     st,
		json:      jsonAdapter,
		publisher: publisher,
	}
}

func (p *shardEngravedProcessor) EventType() string {
	return p.eventType
}

func (p *shardEngravedProcessor) Process(ctx context.Context, event *domain.JournalEvent) error {
	payload, ok := event.ShardEngraved()
	if !ok {
		return fmt.Errorf("%w: %s is not a shard engraving", domain.ErrInvalidEventPayload, event.Type)
	}

	// Shards may be indexed before the registration of their construct
	_, _, err := p.store.FindOrCreateConstruct(ctx, store.FindOrCreateConstructInput{
		ID:        payload.ConstructID,
		Owner:     payload.Owner,
		Timestamp: event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to save construct %s: %w", payload.ConstructID, err)
	}

	raw, err := p.json.Canonicalize(event.Raw)
	if err != nil {
		return fmt.Errorf("%w: failed to canonicalize payload: %v", domain.ErrInvalidEventPayload, err)
	}

	created, err := p.store.CreateMemoryShard(ctx, store.CreateMemoryShardInput{
		ConstructID: payload.ConstructID,
		Owner:       payload.Owner,
		Content:     payload.Content,
		Category:    string(payload.Category),
		IsEncrypted: payload.IsEncrypted,
		TxDigest:    event.ID.TxDigest,
		EventSeq:    event.ID.EventSeq,
		Raw:         raw,
		EngravedAt:  event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to save memory shard %s: %w", event.ID, err)
	}

	if created {
		logger.InfoCtx(ctx, "Memory shard engraved",
			zap.String("construct_id", payload.ConstructID),
			zap.String("tx_digest", event.ID.TxDigest))
	} else {
		logger.DebugCtx(ctx, "Memory shard already indexed", zap.String("tx_digest", event.ID.TxDigest))
	}

	return publish(ctx, p.publisher, event)
}

// publish forwards an event when a publisher is configured. The broker deduplicates
// replays by event id.
func publish(ctx context.Context, publisher messaging.Publisher, event *domain.JournalEvent) error {
	if publisher == nil {
		return nil
	}
	if err := publisher.PublishJournalEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.ID, err)
	}
	return nil
}
