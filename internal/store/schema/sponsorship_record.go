package schema

import "time"

// SponsorshipRecord represents the sponsorship_records table - one row per gas grant.
// Rows are insert-only: the sum of gas_budget per user is the lifetime usage.
type SponsorshipRecord struct {
	// ID is a ULID generated on creation
	ID string `gorm:"column:id;primaryKey;type:text"`
	// UserAddress is the address of the user whose transaction was sponsored
	UserAddress string `gorm:"column:user_address;not null;type:text;index:idx_sponsorship_records_user_address"`
	// TxDigest is the digest of the sponsored transaction, unknown until the user submits it
	TxDigest *string `gorm:"column:tx_digest;type:text"`
	// GasBudget is the budget signed for this transaction, in MIST
	GasBudget int64 `gorm:"column:gas_budget;not null;check:gas_budget > 0"`
	// ActionType is the journal function that was sponsored (engrave, jack_in, ...)
	ActionType string `gorm:"column:action_type;not null;type:text;default:unknown"`
	// SponsoredAt is the timestamp of the grant
	SponsoredAt time.Time `gorm:"column:sponsored_at;not null;default:now()"`
}

func (SponsorshipRecord) TableName() string {
	return "sponsorship_records"
}

// SponsorshipAccount represents the sponsorship_accounts table. Its rows are lock targets
// that serialise concurrent grants for the same user.
type SponsorshipAccount struct {
	UserAddress string    `gorm:"column:user_address;primaryKey;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now()"`
}

func (SponsorshipAccount) TableName() string {
	return "sponsorship_accounts"
}
