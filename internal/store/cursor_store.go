package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/store/schema"
)

// CursorStore defines the interface for storing and retrieving event cursors
//
//go:generate mockgen -source=cursor_store.go -destination=../mocks/cursor_store.go -package=mocks -mock_names=CursorStore=MockCursorStore
type CursorStore interface {
	// GetEventCursor retrieves the persisted cursor of an event type, nil when it was never fetched
	GetEventCursor(ctx context.Context, eventType string) (*domain.EventID, error)
	// SetEventCursor creates or updates the cursor of an event type
	SetEventCursor(ctx context.Context, eventType string, cursor domain.EventID) error
}

type cursorStore struct {
	db *gorm.DB
}

// NewCursorStore creates a new cursor store
func NewCursorStore(db *gorm.DB) CursorStore {
	return &cursorStore{db: db}
}

// GetEventCursor retrieves the persisted cursor of an event type
func (s *cursorStore) GetEventCursor(ctx context.Context, eventType string) (*domain.EventID, error) {
	var cursor schema.EventCursor
	err := s.db.WithContext(ctx).Where("event_type = ?", eventType).First(&cursor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event cursor: %w", err)
	}

	return &domain.EventID{TxDigest: cursor.TxDigest, EventSeq: cursor.EventSeq}, nil
}

// SetEventCursor creates or updates the cursor of an event type
func (s *cursorStore) SetEventCursor(ctx context.Context, eventType string, cursor domain.EventID) error {
	now := time.Now().UTC()
	row := schema.EventCursor{
		EventType: eventType,
		TxDigest:  cursor.TxDigest,
		EventSeq:  cursor.EventSeq,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"tx_digest", "event_seq", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to set event cursor: %w", err)
	}

	return nil
}
