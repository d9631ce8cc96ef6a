package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-journal/internal/adapter"
	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/logger"
	"github.com/feral-file/ff-journal/internal/metrics"
	"github.com/feral-file/ff-journal/internal/store"
	"github.com/feral-file/ff-journal/internal/sui"
)

const (
	DEFAULT_POLL_INTERVAL = 5 * time.Second
	DEFAULT_PAGE_SIZE     = 50
)

// Config holds the configuration for the event indexer
type Config struct {
	PackageID    string        // Journal package id, indexing is disabled when empty
	PollInterval time.Duration // Time between ticks
	PageSize     int           // Events fetched per type per tick
}

// TypeResult is the outcome of one event type within a tick
type TypeResult struct {
	EventType string
	Events    int
	Cursor    *domain.EventID // Persisted cursor, nil when it was left unchanged
	Err       error
}

// Indexer defines the interface for the journal event indexer
//
//go:generate mockgen -source=indexer.go -destination=../mocks/indexer.go -package=mocks -mock_names=Indexer=MockIndexer
type Indexer interface {
	// Run ticks immediately and then every poll interval until the context is done
	Run(ctx context.Context) error
	// Tick fetches and processes one page per event type
	Tick(ctx context.Context) []TypeResult
}

type indexer struct {
	config     Config
	client     sui.Client
	cursors    store.CursorStore
	processors []Processor
	clock      adapter.Clock
	running    atomic.Bool
	tickMu     sync.Mutex
}

// NewIndexer creates a new event indexer. Processors run in the given order on every tick.
func NewIndexer(
	cfg Config,
	client sui.Client,
	cursors store.CursorStore,
	processors []Processor,
	clock adapter.Clock,
) Indexer {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DEFAULT_POLL_INTERVAL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DEFAULT_PAGE_SIZE
	}

	return &indexer{
		config:     cfg,
		client:     client,
		cursors:    cursors,
		processors: processors,
		clock:      clock,
	}
}

// Run starts the tick loop. The next tick is scheduled only after the previous one returns.
func (i *indexer) Run(ctx context.Context) error {
	if !i.running.CompareAndSwap(false, true) {
		return fmt.Errorf("indexer already running")
	}
	defer i.running.Store(false)

	if i.config.PackageID == "" {
		logger.WarnCtx(ctx, "No journal package id configured, indexer ticks are no-ops")
	}

	logger.InfoCtx(ctx, "Starting journal event indexer",
		zap.String("package_id", i.config.PackageID),
		zap.Duration("poll_interval", i.config.PollInterval),
		zap.Int("page_size", i.config.PageSize),
	)

	for {
		i.Tick(ctx)

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Journal event indexer stopping", zap.Error(ctx.Err()))
			return nil
		case <-i.clock.After(i.config.PollInterval):
		}
	}
}

// Tick processes one page per event type. A failing type is logged and skipped
// without affecting the others or its own cursor.
func (i *indexer) Tick(ctx context.Context) []TypeResult {
	i.tickMu.Lock()
	defer i.tickMu.Unlock()

	if i.config.PackageID == "" {
		return nil
	}

	metrics.IndexerTicks.Inc()

	results := make([]TypeResult, 0, len(i.processors))
	for _, p := range i.processors {
		if ctx.Err() != nil {
			break
		}

		result := i.indexType(ctx, p)
		if result.Err != nil {
			metrics.IndexerPages.WithLabelValues(result.EventType, "error").Inc()
			if !errors.Is(result.Err, context.Canceled) {
				logger.ErrorCtx(ctx, result.Err,
					zap.String("event_type", result.EventType),
					zap.Int("processed", result.Events))
			}
		} else {
			metrics.IndexerPages.WithLabelValues(result.EventType, "success").Inc()
		}
		results = append(results, result)
	}

	return results
}

func (i *indexer) indexType(ctx context.Context, p Processor) TypeResult {
	eventType := p.EventType()
	result := TypeResult{EventType: eventType}

	cursor, err := i.cursors.GetEventCursor(ctx, eventType)
	if err != nil {
		result.Err = fmt.Errorf("failed to get cursor: %w", err)
		return result
	}

	page, err := i.client.QueryEvents(ctx, sui.EventFilter{MoveEventType: eventType}, cursor, i.config.PageSize, false)
	if err != nil {
		result.Err = fmt.Errorf("failed to query events after %v: %w", cursor, err)
		return result
	}

	for _, e := range page.Data {
		event, err := domain.DecodeJournalEvent(e.Raw())
		if err == nil {
			err = p.Process(ctx, event)
		}
		if err != nil {
			metrics.IndexerEvents.WithLabelValues(eventType, "error").Inc()
			result.Err = fmt.Errorf("failed to process event %s: %w", e.ID, err)
			return result
		}
		metrics.IndexerEvents.WithLabelValues(eventType, "success").Inc()
		result.Events++
	}

	// The tail page is fetched again next tick until the chain reports more events
	if page.HasNextPage && page.NextCursor != nil {
		if err := i.cursors.SetEventCursor(ctx, eventType, *page.NextCursor); err != nil {
			result.Err = fmt.Errorf("failed to save cursor %s: %w", page.NextCursor, err)
			return result
		}
		next := *page.NextCursor
		result.Cursor = &next
	}

	logger.DebugCtx(ctx, "Indexed event page",
		zap.String("event_type", eventType),
		zap.Int("events", result.Events),
		zap.Bool("has_next_page", page.HasNextPage))

	return result
}
