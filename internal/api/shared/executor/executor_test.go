package executor_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	apierrors "github.com/feral-file/ff-journal/internal/api/shared/errors"
	"github.com/feral-file/ff-journal/internal/api/shared/executor"
	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/gasstation"
	"github.com/feral-file/ff-journal/internal/mocks"
	"github.com/feral-file/ff-journal/internal/store/schema"
	"github.com/feral-file/ff-journal/internal/sui"
)

const (
	testUser      = "0x00000000000000000000000000000000000000000000000000000000000000b0"
	testConstruct = "0x00000000000000000000000000000000000000000000000000000000000000c1"
)

type testExecutorMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	gasStation *mocks.MockGasStation
	executor   executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	gs := mocks.NewMockGasStation(ctrl)

	return &testExecutorMocks{
		ctrl:       ctrl,
		store:      st,
		gasStation: gs,
		executor:   executor.NewExecutor(st, gs),
	}
}

func requireAPIError(t *testing.T, err error, code apierrors.ErrorCode) *apierrors.APIError {
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	assert.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestSponsorTransaction(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.gasStation.EXPECT().
		SponsorTransaction(gomock.Any(), []byte{0x01}, testUser).
		Return(&gasstation.SponsoredTransaction{
			TxBytes:          []byte{0x0a, 0x0b},
			SponsorSignature: "sig",
			Digest:           "digest",
			GasBudget:        1_950_001,
			ActionType:       "engrave",
		}, nil)

	resp, err := m.executor.SponsorTransaction(context.Background(), []byte{0x01}, testUser)

	require.NoError(t, err)
	assert.Equal(t, "Cgs=", resp.TxBytes)
	assert.Equal(t, "sig", resp.SponsorSignature)
	assert.Equal(t, "digest", resp.Digest)
	assert.Equal(t, uint64(1_950_001), resp.GasBudget)
}

func TestSponsorTransaction_SponsorshipError(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	wrapped := fmt.Errorf("%w: usage 249000000 + budget 2000000 reaches cap", domain.ErrBudgetInsufficient)
	m.gasStation.EXPECT().
		SponsorTransaction(gomock.Any(), gomock.Any(), testUser).
		Return(nil, wrapped)

	resp, err := m.executor.SponsorTransaction(context.Background(), []byte{0x01}, testUser)

	assert.Nil(t, resp)
	apiErr := requireAPIError(t, err, apierrors.ErrCodeBudgetInsufficient)
	assert.Equal(t, wrapped.Error(), apiErr.Message)
}

func TestSponsorTransaction_UnexpectedError(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.gasStation.EXPECT().
		SponsorTransaction(gomock.Any(), gomock.Any(), testUser).
		Return(nil, errors.New("rpc unavailable"))

	_, err := m.executor.SponsorTransaction(context.Background(), []byte{0x01}, testUser)

	requireAPIError(t, err, apierrors.ErrCodeServiceError)
}

func TestExecuteTransaction(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.gasStation.EXPECT().
		ExecuteSponsored(gomock.Any(), []byte{0x01}, "user", "sponsor").
		Return(&sui.ExecuteResult{Digest: "digest", Status: "failure", Error: "MoveAbort"}, nil)

	resp, err := m.executor.ExecuteTransaction(context.Background(), []byte{0x01}, "user", "sponsor")

	require.NoError(t, err)
	assert.Equal(t, "digest", resp.Digest)
	assert.Equal(t, "failure", resp.Status)
	assert.Equal(t, "MoveAbort", resp.Error)
}

func TestExecuteTransaction_NotAllowed(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.gasStation.EXPECT().
		ExecuteSponsored(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrTransactionNotAllowed)

	_, err := m.executor.ExecuteTransaction(context.Background(), []byte{0x01}, "user", "sponsor")

	requireAPIError(t, err, apierrors.ErrCodeTransactionNotAllowed)
}

func TestGetGasUsage(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.gasStation.EXPECT().
		GetUsage(gomock.Any(), testUser).
		Return(&gasstation.Usage{Address: testUser, Used: 10, Remaining: 249_999_990, Cap: 250_000_000}, nil)

	resp, err := m.executor.GetGasUsage(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, testUser, resp.Address)
	assert.Equal(t, uint64(10), resp.Used)
	assert.Equal(t, uint64(249_999_990), resp.Remaining)
}

func TestGetGasUsage_DatabaseError(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.gasStation.EXPECT().
		GetUsage(gomock.Any(), testUser).
		Return(nil, errors.New("connection refused"))

	_, err := m.executor.GetGasUsage(context.Background(), testUser)

	requireAPIError(t, err, apierrors.ErrCodeDatabaseError)
}

func TestGetSponsorshipRecords(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	digest := "digest"
	sponsoredAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.store.EXPECT().
		GetSponsorshipRecordsByUser(gomock.Any(), testUser, 20, uint64(0)).
		Return([]schema.SponsorshipRecord{
			{ID: "01J0000000000000000000000A", UserAddress: testUser, TxDigest: &digest, GasBudget: 1_950_001, ActionType: "engrave", SponsoredAt: sponsoredAt},
		}, uint64(1), nil)

	// Short-form addresses are normalized before hitting the store
	resp, err := m.executor.GetSponsorshipRecords(context.Background(), "0xB0", nil, nil)

	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, uint64(1_950_001), resp.Records[0].GasBudget)
	assert.Equal(t, &digest, resp.Records[0].TxDigest)
	assert.Equal(t, sponsoredAt, resp.Records[0].SponsoredAt)
	assert.Nil(t, resp.Offset)
	assert.Equal(t, uint64(1), resp.Total)
}

func TestGetGasStationStatus(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.gasStation.EXPECT().
		Status(gomock.Any()).
		Return(nil, domain.ErrGasStationOffline)

	_, err := m.executor.GetGasStationStatus(context.Background())

	requireAPIError(t, err, apierrors.ErrCodeGasStationOffline)
}

func TestGetConstruct(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	now := time.Now().UTC()
	m.store.EXPECT().
		GetConstructByID(gomock.Any(), testConstruct).
		Return(&schema.Construct{ID: testConstruct, Owner: testUser, LastUpdate: now, CreatedAt: now}, nil)

	resp, err := m.executor.GetConstruct(context.Background(), "0xc1")

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, testConstruct, resp.ID)
	assert.Equal(t, testUser, resp.Owner)
}

func TestGetConstruct_Missing(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.store.EXPECT().
		GetConstructByID(gomock.Any(), testConstruct).
		Return(nil, nil)

	resp, err := m.executor.GetConstruct(context.Background(), testConstruct)

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetConstruct_InvalidID(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	_, err := m.executor.GetConstruct(context.Background(), "c1")

	requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
}

func TestGetMemoryShards(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	shards := []schema.MemoryShard{
		{ID: uuid.New(), ConstructID: testConstruct, Owner: testUser, Content: "b", TxDigest: "d2", EventSeq: "0", Raw: datatypes.JSON(`{"content":"b"}`)},
		{ID: uuid.New(), ConstructID: testConstruct, Owner: testUser, Content: "a", TxDigest: "d1", EventSeq: "0"},
	}

	tests := []struct {
		name       string
		limit      *int
		offset     *uint64
		wantLimit  int
		wantOffset uint64
		total      uint64
		nextOffset *uint64
	}{
		{
			name:       "defaults with more pages",
			wantLimit:  20,
			wantOffset: 0,
			total:      5,
			nextOffset: ptr(uint64(2)),
		},
		{
			name:       "limit capped at max page size",
			limit:      ptr(500),
			offset:     ptr(uint64(3)),
			wantLimit:  100,
			wantOffset: 3,
			total:      5,
			nextOffset: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.store.EXPECT().
				GetMemoryShardsByConstruct(gomock.Any(), testConstruct, tt.wantLimit, tt.wantOffset).
				Return(shards, tt.total, nil)

			resp, err := m.executor.GetMemoryShards(context.Background(), testConstruct, tt.limit, tt.offset)

			require.NoError(t, err)
			require.Len(t, resp.Shards, 2)
			assert.Equal(t, "b", resp.Shards[0].Content)
			assert.JSONEq(t, `{"content":"b"}`, string(resp.Shards[0].Raw))
			assert.Nil(t, resp.Shards[1].Raw)
			assert.Equal(t, tt.nextOffset, resp.Offset)
			assert.Equal(t, tt.total, resp.Total)
		})
	}
}

func TestGetMemoryShards_DatabaseError(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.store.EXPECT().
		GetMemoryShardsByConstruct(gomock.Any(), testConstruct, 20, uint64(0)).
		Return(nil, uint64(0), errors.New("timeout"))

	_, err := m.executor.GetMemoryShards(context.Background(), testConstruct, nil, nil)

	requireAPIError(t, err, apierrors.ErrCodeDatabaseError)
}

func ptr[T any](v T) *T {
	return &v
}
