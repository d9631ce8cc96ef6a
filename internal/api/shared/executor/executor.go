package executor

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/feral-file/ff-journal/internal/api/shared/constants"
	"github.com/feral-file/ff-journal/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-journal/internal/api/shared/errors"
	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/gasstation"
	"github.com/feral-file/ff-journal/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// SponsorTransaction co-signs a user transaction with the sponsor's gas
	SponsorTransaction(ctx context.Context, txBytes []byte, sender string) (*dto.SponsorTransactionResponse, error)

	// ExecuteTransaction submits a co-signed sponsored transaction
	ExecuteTransaction(ctx context.Context, txBytes []byte, userSignature string, sponsorSignature string) (*dto.ExecuteTransactionResponse, error)

	// GetGasUsage retrieves the lifetime sponsorship usage of an address
	GetGasUsage(ctx context.Context, address string) (*dto.GasUsageResponse, error)

	// GetSponsorshipRecords retrieves the gas grants of an address, newest first
	GetSponsorshipRecords(ctx context.Context, address string, limit *int, offset *uint64) (*dto.SponsorshipRecordListResponse, error)

	// GetGasStationStatus retrieves the sponsor's gas pool status
	GetGasStationStatus(ctx context.Context) (*dto.GasStationStatusResponse, error)

	// GetConstruct retrieves a construct by its object id, nil when not indexed
	GetConstruct(ctx context.Context, id string) (*dto.ConstructResponse, error)

	// GetMemoryShards retrieves the shards of a construct, newest first
	GetMemoryShards(ctx context.Context, constructID string, limit *int, offset *uint64) (*dto.MemoryShardListResponse, error)
}

type executor struct {
	store      store.Store
	gasStation gasstation.GasStation
}

func NewExecutor(store store.Store, gasStation gasstation.GasStation) Executor {
	return &executor{store: store, gasStation: gasStation}
}

func (e *executor) SponsorTransaction(ctx context.Context, txBytes []byte, sender string) (*dto.SponsorTransactionResponse, error) {
	result, err := e.gasStation.SponsorTransaction(ctx, txBytes, sender)
	if err != nil {
		if apiErr := apierrors.NewSponsorshipError(err); apiErr != nil {
			return nil, apiErr
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to sponsor transaction: %v", err))
	}

	return &dto.SponsorTransactionResponse{
		TxBytes:          base64.StdEncoding.EncodeToString(result.TxBytes),
		SponsorSignature: result.SponsorSignature,
		Digest:           result.Digest,
		GasBudget:        result.GasBudget,
	}, nil
}

func (e *executor) ExecuteTransaction(ctx context.Context, txBytes []byte, userSignature string, sponsorSignature string) (*dto.ExecuteTransactionResponse, error) {
	result, err := e.gasStation.ExecuteSponsored(ctx, txBytes, userSignature, sponsorSignature)
	if err != nil {
		if apiErr := apierrors.NewSponsorshipError(err); apiErr != nil {
			return nil, apiErr
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to execute transaction: %v", err))
	}

	return &dto.ExecuteTransactionResponse{
		Digest: result.Digest,
		Status: result.Status,
		Error:  result.Error,
	}, nil
}

func (e *executor) GetGasUsage(ctx context.Context, address string) (*dto.GasUsageResponse, error) {
	usage, err := e.gasStation.GetUsage(ctx, address)
	if err != nil {
		if apiErr := apierrors.NewSponsorshipError(err); apiErr != nil {
			return nil, apiErr
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get gas usage: %v", err))
	}

	return &dto.GasUsageResponse{
		Address:   usage.Address,
		Used:      usage.Used,
		Remaining: usage.Remaining,
		Cap:       usage.Cap,
	}, nil
}

func (e *executor) GetSponsorshipRecords(ctx context.Context, address string, limit *int, offset *uint64) (*dto.SponsorshipRecordListResponse, error) {
	address, err := domain.NormalizeAddress(address)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	l, o := pagination(limit, offset, constants.DEFAULT_RECORD_LIMIT)
	records, total, err := e.store.GetSponsorshipRecordsByUser(ctx, address, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get sponsorship records: %v", err))
	}

	response := &dto.SponsorshipRecordListResponse{
		Records: make([]dto.SponsorshipRecordResponse, 0, len(records)),
		Offset:  nextOffset(o, len(records), total),
		Total:   total,
	}
	for i := range records {
		response.Records = append(response.Records, dto.MapSponsorshipRecordToDTO(&records[i]))
	}

	return response, nil
}

func (e *executor) GetGasStationStatus(ctx context.Context) (*dto.GasStationStatusResponse, error) {
	status, err := e.gasStation.Status(ctx)
	if err != nil {
		if apiErr := apierrors.NewSponsorshipError(err); apiErr != nil {
			return nil, apiErr
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to get gas station status: %v", err))
	}

	return &dto.GasStationStatusResponse{
		SponsorAddress:     status.SponsorAddress,
		CoinCount:          status.CoinCount,
		TotalBalance:       status.TotalBalance,
		LargestCoinBalance: status.LargestCoinBalance,
	}, nil
}

func (e *executor) GetConstruct(ctx context.Context, id string) (*dto.ConstructResponse, error) {
	id, err := domain.NormalizeAddress(id)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	construct, err := e.store.GetConstructByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get construct: %v", err))
	}

	if construct == nil {
		return nil, nil
	}

	return dto.MapConstructToDTO(construct), nil
}

func (e *executor) GetMemoryShards(ctx context.Context, constructID string, limit *int, offset *uint64) (*dto.MemoryShardListResponse, error) {
	constructID, err := domain.NormalizeAddress(constructID)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	l, o := pagination(limit, offset, constants.DEFAULT_SHARDS_LIMIT)
	shards, total, err := e.store.GetMemoryShardsByConstruct(ctx, constructID, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get memory shards: %v", err))
	}

	response := &dto.MemoryShardListResponse{
		Shards: make([]dto.MemoryShardResponse, 0, len(shards)),
		Offset: nextOffset(o, len(shards), total),
		Total:  total,
	}
	for i := range shards {
		response.Shards = append(response.Shards, dto.MapMemoryShardToDTO(&shards[i]))
	}

	return response, nil
}

// pagination applies defaults and caps to optional paging parameters
func pagination(limit *int, offset *uint64, defaultLimit int) (int, uint64) {
	l := defaultLimit
	if limit != nil && *limit > 0 {
		l = min(*limit, constants.MAX_PAGE_SIZE)
	}
	o := constants.DEFAULT_OFFSET
	if offset != nil {
		o = *offset
	}
	return l, o
}

// nextOffset returns the offset of the next page, nil when this page is the last
func nextOffset(offset uint64, count int, total uint64) *uint64 {
	next := offset + uint64(count) //nolint:gosec,G115 // count is a slice length
	if count == 0 || next >= total {
		return nil
	}
	return &next
}
