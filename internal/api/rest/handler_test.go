package rest_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-journal/internal/api/middleware"
	"github.com/feral-file/ff-journal/internal/api/rest"
	"github.com/feral-file/ff-journal/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-journal/internal/api/shared/errors"
	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/mocks"
)

const (
	testSender    = "0x00000000000000000000000000000000000000000000000000000000000000b0"
	testConstruct = "0x00000000000000000000000000000000000000000000000000000000000000c1"
	testAPIKey    = "operator-key"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testRouter holds the router and its mocked executor
type testRouter struct {
	ctrl     *gomock.Controller
	executor *mocks.MockAPIExecutor
	router   *gin.Engine
}

func setupTestRouter(t *testing.T) *testRouter {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec), middleware.AuthConfig{APIKeys: []string{testAPIKey}})

	return &testRouter{ctrl: ctrl, executor: exec, router: router}
}

func (r *testRouter) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)
	return w
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthCheck(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	w := r.do(http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"ff-journal-api"}`, w.Body.String())
}

func TestSponsorTransaction_Success(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	txBytes := []byte{0x00, 0x01, 0x02}
	r.executor.EXPECT().
		SponsorTransaction(gomock.Any(), txBytes, testSender).
		Return(&dto.SponsorTransactionResponse{
			TxBytes:          base64.StdEncoding.EncodeToString([]byte{0x0a}),
			SponsorSignature: "c2lnbmF0dXJl",
			Digest:           "digest",
			GasBudget:        1_950_001,
		}, nil)

	w := r.do(http.MethodPost, "/gas/sponsor", dto.SponsorTransactionRequest{
		TxBytes: base64.StdEncoding.EncodeToString(txBytes),
		Sender:  testSender,
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"txBytes":"Cg==","sponsorSignature":"c2lnbmF0dXJl","digest":"digest","gasBudget":"1950001"}`, w.Body.String())
}

func TestSponsorTransaction_SponsorshipErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code apierrors.ErrorCode
	}{
		{"budget exhausted", domain.ErrBudgetExhausted, apierrors.ErrCodeBudgetExhausted},
		{"budget insufficient", domain.ErrBudgetInsufficient, apierrors.ErrCodeBudgetInsufficient},
		{"not allowed", domain.ErrTransactionNotAllowed, apierrors.ErrCodeTransactionNotAllowed},
		{"offline", domain.ErrGasStationOffline, apierrors.ErrCodeGasStationOffline},
		{"empty", domain.ErrGasStationEmpty, apierrors.ErrCodeGasStationEmpty},
		{"fragmented", domain.ErrGasStationFragmented, apierrors.ErrCodeGasStationFragmented},
		{"simulation failed", domain.ErrTransactionSimulationFailed, apierrors.ErrCodeTransactionSimulationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupTestRouter(t)
			defer r.ctrl.Finish()

			r.executor.EXPECT().
				SponsorTransaction(gomock.Any(), gomock.Any(), testSender).
				Return(nil, apierrors.NewSponsorshipError(tt.err))

			w := r.do(http.MethodPost, "/gas/sponsor", dto.SponsorTransactionRequest{
				TxBytes: base64.StdEncoding.EncodeToString([]byte{0x00}),
				Sender:  testSender,
			}, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			apiErr := decodeAPIError(t, w)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.err.Error(), apiErr.Message)
		})
	}
}

func TestSponsorTransaction_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
		code apierrors.ErrorCode
	}{
		{
			name: "not base64",
			body: dto.SponsorTransactionRequest{TxBytes: "!!not-base64!!", Sender: testSender},
			code: apierrors.ErrCodeInvalidTransactionBytes,
		},
		{
			name: "invalid sender",
			body: dto.SponsorTransactionRequest{TxBytes: "AA==", Sender: "b0"},
			code: apierrors.ErrCodeInvalidAddress,
		},
		{
			name: "missing sender",
			body: dto.SponsorTransactionRequest{TxBytes: "AA=="},
			code: apierrors.ErrCodeValidationFailed,
		},
		{
			name: "missing txBytes",
			body: dto.SponsorTransactionRequest{Sender: testSender},
			code: apierrors.ErrCodeValidationFailed,
		},
		{
			name: "malformed body",
			body: "not an object",
			code: apierrors.ErrCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupTestRouter(t)
			defer r.ctrl.Finish()

			w := r.do(http.MethodPost, "/gas/sponsor", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decodeAPIError(t, w).Code)
		})
	}
}

func TestSponsorTransaction_ServiceError(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	r.executor.EXPECT().
		SponsorTransaction(gomock.Any(), gomock.Any(), testSender).
		Return(nil, apierrors.NewServiceError("Failed to sponsor transaction: rpc unavailable"))

	w := r.do(http.MethodPost, "/gas/sponsor", dto.SponsorTransactionRequest{
		TxBytes: "AA==",
		Sender:  testSender,
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	apiErr := decodeAPIError(t, w)
	assert.Equal(t, apierrors.ErrCodeServiceError, apiErr.Code)
	assert.Equal(t, "Failed to sponsor transaction", apiErr.Message)
}

func TestSponsorTransaction_UnexpectedError(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	r.executor.EXPECT().
		SponsorTransaction(gomock.Any(), gomock.Any(), testSender).
		Return(nil, errors.New("boom"))

	w := r.do(http.MethodPost, "/gas/sponsor", dto.SponsorTransactionRequest{
		TxBytes: "AA==",
		Sender:  testSender,
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apierrors.ErrCodeInternalError, decodeAPIError(t, w).Code)
}

func TestExecuteTransaction(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	r.executor.EXPECT().
		ExecuteTransaction(gomock.Any(), []byte{0x00}, "user-sig", "sponsor-sig").
		Return(&dto.ExecuteTransactionResponse{Digest: "digest", Status: "success"}, nil)

	w := r.do(http.MethodPost, "/gas/execute", dto.ExecuteTransactionRequest{
		TxBytes:          "AA==",
		UserSignature:    "user-sig",
		SponsorSignature: "sponsor-sig",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"digest":"digest","status":"success"}`, w.Body.String())
}

func TestExecuteTransaction_MissingSignature(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	w := r.do(http.MethodPost, "/gas/execute", dto.ExecuteTransactionRequest{
		TxBytes:       "AA==",
		UserSignature: "user-sig",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeAPIError(t, w).Code)
}

func TestGetGasUsage(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	r.executor.EXPECT().
		GetGasUsage(gomock.Any(), testSender).
		Return(&dto.GasUsageResponse{Address: testSender, Used: 100, Remaining: 249_999_900, Cap: 250_000_000}, nil)

	w := r.do(http.MethodGet, "/api/v1/gas/usage/"+testSender, nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.GasUsageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(100), resp.Used)
	assert.Equal(t, uint64(249_999_900), resp.Remaining)
	assert.Equal(t, uint64(250_000_000), resp.Cap)
}

func TestGetGasUsage_InvalidAddress(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	w := r.do(http.MethodGet, "/api/v1/gas/usage/not-an-address", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeBadRequest, decodeAPIError(t, w).Code)
}

func TestListSponsorshipRecords(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	limit := 5
	offset := uint64(10)
	r.executor.EXPECT().
		GetSponsorshipRecords(gomock.Any(), testSender, &limit, &offset).
		Return(&dto.SponsorshipRecordListResponse{Records: []dto.SponsorshipRecordResponse{}, Total: 10}, nil)

	w := r.do(http.MethodGet, "/api/v1/gas/usage/"+testSender+"/records?limit=5&offset=10", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"records":[],"total":10}`, w.Body.String())
}

func TestGetConstruct_NotFound(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	r.executor.EXPECT().
		GetConstruct(gomock.Any(), testConstruct).
		Return(nil, nil)

	w := r.do(http.MethodGet, "/api/v1/constructs/"+testConstruct, nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, decodeAPIError(t, w).Code)
}

func TestGetConstruct_DatabaseError(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	r.executor.EXPECT().
		GetConstruct(gomock.Any(), testConstruct).
		Return(nil, apierrors.NewDatabaseError("Failed to get construct: connection refused"))

	w := r.do(http.MethodGet, "/api/v1/constructs/"+testConstruct, nil, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	apiErr := decodeAPIError(t, w)
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
	assert.Equal(t, "Failed to get construct", apiErr.Message)
}

func TestListMemoryShards(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	next := uint64(2)
	r.executor.EXPECT().
		GetMemoryShards(gomock.Any(), testConstruct, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, limit *int, offset *uint64) (*dto.MemoryShardListResponse, error) {
			assert.Equal(t, 2, *limit)
			assert.Equal(t, uint64(0), *offset)
			return &dto.MemoryShardListResponse{
				Shards: []dto.MemoryShardResponse{{ID: "a"}, {ID: "b"}},
				Offset: &next,
				Total:  3,
			}, nil
		})

	w := r.do(http.MethodGet, "/api/v1/constructs/"+testConstruct+"/shards?limit=2", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.MemoryShardListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Shards, 2)
	require.NotNil(t, resp.Offset)
	assert.Equal(t, uint64(2), *resp.Offset)
	assert.Equal(t, uint64(3), resp.Total)
}

func TestListMemoryShards_InvalidLimit(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	for _, query := range []string{"?limit=0", "?limit=101", "?limit=abc"} {
		w := r.do(http.MethodGet, "/api/v1/constructs/"+testConstruct+"/shards"+query, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestGetGasStationStatus_RequiresAuth(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	w := r.do(http.MethodGet, "/api/v1/admin/gas/status", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = r.do(http.MethodGet, "/api/v1/admin/gas/status", nil, map[string]string{"Authorization": "ApiKey wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetGasStationStatus(t *testing.T) {
	r := setupTestRouter(t)
	defer r.ctrl.Finish()

	r.executor.EXPECT().
		GetGasStationStatus(gomock.Any()).
		Return(&dto.GasStationStatusResponse{
			SponsorAddress:     testSender,
			CoinCount:          2,
			TotalBalance:       3_000_000_000,
			LargestCoinBalance: 2_000_000_000,
		}, nil)

	w := r.do(http.MethodGet, "/api/v1/admin/gas/status", nil, map[string]string{"Authorization": "ApiKey " + testAPIKey})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sponsorAddress":"`+testSender+`","coinCount":2,"totalBalance":"3000000000","largestCoinBalance":"2000000000"}`, w.Body.String())
}
