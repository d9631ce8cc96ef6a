package schema

import "time"

// EventCursor represents the event_cursors table - the last persisted page boundary per event type
type EventCursor struct {
	// EventType is the fully-qualified Move event type
	EventType string `gorm:"column:event_type;primaryKey;type:text"`
	// TxDigest and EventSeq form the pagination cursor
	TxDigest  string    `gorm:"column:tx_digest;not null;type:text"`
	EventSeq  string    `gorm:"column:event_seq;not null;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

func (EventCursor) TableName() string {
	return "event_cursors"
}
