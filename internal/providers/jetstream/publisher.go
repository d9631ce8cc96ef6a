package jetstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-journal/internal/adapter"
	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/logger"
	"github.com/feral-file/ff-journal/internal/messaging"
)

// SubjectPrefix prefixes the subject of every journal event
const SubjectPrefix = "journal"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// DuplicateWindow is how long the stream remembers message ids for deduplication
	DuplicateWindow time.Duration
}

// Message is the body published for a journal event
type Message struct {
	TxDigest  string           `json:"txDigest"`
	EventSeq  string           `json:"eventSeq"`
	Type      string           `json:"type"`
	Kind      domain.EventKind `json:"kind"`
	Sender    string           `json:"sender"`
	Timestamp time.Time        `json:"timestamp"`
	Payload   interface{}      `json:"payload"`
}

type publisher struct {
	nc   adapter.NatsConn
	js   adapter.JetStream
	json adapter.JSON
}

// NewPublisher connects to NATS and makes sure the journal stream exists
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	duplicates := cfg.DuplicateWindow
	if duplicates == 0 {
		duplicates = 24 * time.Hour
	}
	err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       cfg.StreamName,
		Subjects:   []string{SubjectPrefix + ".>"},
		Storage:    jetstream.FileStorage,
		Duplicates: duplicates,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:   nc,
		js:   js,
		json: jsonAdapter,
	}, nil
}

// PublishJournalEvent publishes a journal event to NATS JetStream
func (p *publisher) PublishJournalEvent(ctx context.Context, event *domain.JournalEvent) error {
	if event == nil || event.Payload == nil {
		return fmt.Errorf("%w: nothing to publish", domain.ErrInvalidEventPayload)
	}

	data, err := p.json.Marshal(Message{
		TxDigest:  event.ID.TxDigest,
		EventSeq:  event.ID.EventSeq,
		Type:      event.Type,
		Kind:      event.Payload.Kind(),
		Sender:    event.Sender,
		Timestamp: event.Timestamp,
		Payload:   event.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := Subject(event.Payload.Kind())
	logger.DebugCtx(ctx, "Publishing journal event",
		zap.String("subject", subject),
		zap.String("id", event.ID.String()))

	_, err = p.js.Publish(ctx, subject, data, jetstream.WithMsgID(event.ID.String()))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subject returns the subject of a journal event kind
// e.g. journal.construct_jacked_in, journal.shard_engraved
func Subject(kind domain.EventKind) string {
	var b strings.Builder
	for i, r := range string(kind) {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return SubjectPrefix + "." + b.String()
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
