package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MemoryShard represents the memory_shards table - one engraved entry of a construct.
// TxDigest is the natural dedup key of the ShardEngraved event.
type MemoryShard struct {
	ID          uuid.UUID      `gorm:"column:id;primaryKey;type:uuid"`
	ConstructID string         `gorm:"column:construct_id;not null;type:text;index:idx_memory_shards_construct_id"`
	Owner       string         `gorm:"column:owner;not null;type:text"`
	Content     string         `gorm:"column:content;not null;type:text"`
	Category    string         `gorm:"column:category;not null;type:text;default:''"`
	IsEncrypted bool           `gorm:"column:is_encrypted;not null;default:false"`
	TxDigest    string         `gorm:"column:tx_digest;not null;type:text;uniqueIndex"`
	EventSeq    string         `gorm:"column:event_seq;not null;type:text"`
	Raw         datatypes.JSON `gorm:"column:raw;type:jsonb"`
	EngravedAt  time.Time      `gorm:"column:engraved_at;not null"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null;default:now()"`
}

func (MemoryShard) TableName() string {
	return "memory_shards"
}
