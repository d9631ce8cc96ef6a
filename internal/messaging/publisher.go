package messaging

import (
	"context"

	"github.com/feral-file/ff-journal/internal/domain"
)

// Publisher defines the interface for publishing indexed journal events to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishJournalEvent publishes a decoded journal event. Redeliveries of the same
	// event carry the same message id.
	PublishJournalEvent(ctx context.Context, event *domain.JournalEvent) error
	// Close closes the connection
	Close()
}
