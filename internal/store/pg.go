package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/store/schema"
)

type pgStore struct {
	*cursorStore
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{
		cursorStore: &cursorStore{db: db},
		db:          db,
	}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// sumSponsoredGas sums the gas budgets of a user within the given session
func sumSponsoredGas(db *gorm.DB, userAddress string) (uint64, error) {
	var total int64
	err := db.Model(&schema.SponsorshipRecord{}).
		Select("COALESCE(SUM(gas_budget), 0)").
		Where("user_address = ?", userAddress).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total < 0 {
		return 0, fmt.Errorf("negative sponsored gas total %d", total)
	}
	return uint64(total), nil
}

// GetTotalSponsoredGas returns the sum of gas budgets granted to a user.
// The value is read fresh on every call.
func (s *pgStore) GetTotalSponsoredGas(ctx context.Context, userAddress string) (uint64, error) {
	total, err := sumSponsoredGas(s.db.WithContext(ctx), userAddress)
	if err != nil {
		return 0, fmt.Errorf("failed to get total sponsored gas: %w", err)
	}
	return total, nil
}

// CreateSponsorshipRecord appends a sponsorship record. With a lifetime cap, the user's
// account row is locked and the usage re-summed in the same transaction, so concurrent grants
// for one user are serialised and cannot push the total past the cap.
func (s *pgStore) CreateSponsorshipRecord(ctx context.Context, input CreateSponsorshipRecordInput) (*schema.SponsorshipRecord, error) {
	if input.GasBudget == 0 || input.GasBudget > math.MaxInt64 {
		return nil, fmt.Errorf("invalid gas budget %d", input.GasBudget)
	}
	if input.UserAddress == "" {
		return nil, errors.New("user address is required")
	}

	actionType := input.ActionType
	if actionType == "" {
		actionType = domain.UNKNOWN_ACTION_TYPE
	}

	record := schema.SponsorshipRecord{
		ID:          ulid.Make().String(),
		UserAddress: input.UserAddress,
		TxDigest:    input.TxDigest,
		GasBudget:   int64(input.GasBudget),
		ActionType:  actionType,
		SponsoredAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.LifetimeCap > 0 {
			account := schema.SponsorshipAccount{UserAddress: input.UserAddress}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_address"}},
				DoNothing: true,
			}).Create(&account).Error; err != nil {
				return fmt.Errorf("failed to ensure sponsorship account: %w", err)
			}

			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_address = ?", input.UserAddress).
				First(&account).Error; err != nil {
				return fmt.Errorf("failed to lock sponsorship account: %w", err)
			}

			used, err := sumSponsoredGas(tx, input.UserAddress)
			if err != nil {
				return fmt.Errorf("failed to get total sponsored gas: %w", err)
			}
			if used+input.GasBudget >= input.LifetimeCap {
				return fmt.Errorf("%w: used %d, requested %d, cap %d",
					domain.ErrBudgetInsufficient, used, input.GasBudget, input.LifetimeCap)
			}
		}

		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create sponsorship record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// GetSponsorshipRecordsByUser lists a user's records, newest first
func (s *pgStore) GetSponsorshipRecordsByUser(ctx context.Context, userAddress string, limit int, offset uint64) ([]schema.SponsorshipRecord, uint64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.SponsorshipRecord{}).
		Where("user_address = ?", userAddress)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sponsorship records: %w", err)
	}

	var records []schema.SponsorshipRecord
	err := query.
		Order("sponsored_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get sponsorship records: %w", err)
	}

	return records, uint64(total), nil //nolint:gosec,G115
}

// FindOrCreateConstruct returns the construct, creating it when absent.
// Owner and last update of an existing construct are never overwritten.
func (s *pgStore) FindOrCreateConstruct(ctx context.Context, input FindOrCreateConstructInput) (*schema.Construct, bool, error) {
	construct := schema.Construct{
		ID:         input.ID,
		Owner:      input.Owner,
		LastUpdate: input.Timestamp,
	}

	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&construct)
		if result.Error != nil {
			return fmt.Errorf("failed to create construct: %w", result.Error)
		}

		if result.RowsAffected > 0 {
			created = true
			return nil
		}

		if err := tx.Where("id = ?", input.ID).First(&construct).Error; err != nil {
			return fmt.Errorf("failed to get existing construct: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &construct, created, nil
}

// GetConstructByID retrieves a construct by its object id
func (s *pgStore) GetConstructByID(ctx context.Context, id string) (*schema.Construct, error) {
	var construct schema.Construct
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&construct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get construct: %w", err)
	}

	return &construct, nil
}

// CreateMemoryShard inserts a shard keyed by its transaction digest.
// A replayed event hits the unique digest and inserts nothing.
func (s *pgStore) CreateMemoryShard(ctx context.Context, input CreateMemoryShardInput) (bool, error) {
	shard := schema.MemoryShard{
		ID:          uuid.New(),
		ConstructID: input.ConstructID,
		Owner:       input.Owner,
		Content:     input.Content,
		Category:    input.Category,
		IsEncrypted: input.IsEncrypted,
		TxDigest:    input.TxDigest,
		EventSeq:    input.EventSeq,
		EngravedAt:  input.EngravedAt,
	}
	if len(input.Raw) > 0 {
		shard.Raw = datatypes.JSON(input.Raw)
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_digest"}},
		DoNothing: true,
	}).Create(&shard)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create memory shard: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// GetMemoryShardByTxDigest retrieves a shard by its transaction digest
func (s *pgStore) GetMemoryShardByTxDigest(ctx context.Context, txDigest string) (*schema.MemoryShard, error) {
	var shard schema.MemoryShard
	err := s.db.WithContext(ctx).Where("tx_digest = ?", txDigest).First(&shard).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get memory shard: %w", err)
	}

	return &shard, nil
}

// GetMemoryShardsByConstruct lists a construct's shards, newest first
func (s *pgStore) GetMemoryShardsByConstruct(ctx context.Context, constructID string, limit int, offset uint64) ([]schema.MemoryShard, uint64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.MemoryShard{}).
		Where("construct_id = ?", constructID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count memory shards: %w", err)
	}

	var shards []schema.MemoryShard
	err := query.
		Order("engraved_at DESC").
		Order("event_seq DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&shards).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get memory shards: %w", err)
	}

	return shards, uint64(total), nil //nolint:gosec,G115
}
