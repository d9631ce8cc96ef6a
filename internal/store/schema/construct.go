package schema

import "time"

// Construct represents the constructs table - a user's journal, keyed by its on-chain object id
type Construct struct {
	ID         string    `gorm:"column:id;primaryKey;type:text"`
	Owner      string    `gorm:"column:owner;not null;type:text;index:idx_constructs_owner"`
	LastUpdate time.Time `gorm:"column:last_update;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Shards []MemoryShard `gorm:"foreignKey:ConstructID;constraint:OnDelete:CASCADE"`
}

func (Construct) TableName() string {
	return "constructs"
}
