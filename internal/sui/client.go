package sui

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/feral-file/ff-journal/internal/adapter"
	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/logger"
)

// maxCoinPages bounds suix_getCoins pagination
const maxCoinPages = 100

// Client defines the chain operations used by the gas station and the indexer
//
//go:generate mockgen -source=client.go -destination=../mocks/sui_client.go -package=mocks -mock_names=Client=MockSuiClient
type Client interface {
	// QueryEvents returns one page of events matching the filter, starting after cursor
	QueryEvents(ctx context.Context, filter EventFilter, cursor *domain.EventID, limit int, descending bool) (*EventPage, error)

	// DryRunTransactionBlock simulates encoded transaction data without committing it
	DryRunTransactionBlock(ctx context.Context, txBytes []byte) (*DryRunResult, error)

	// GetCoins returns every coin of coinType owned by owner
	GetCoins(ctx context.Context, owner string, coinType string) ([]Coin, error)

	// GetReferenceGasPrice returns the reference gas price of the current epoch
	GetReferenceGasPrice(ctx context.Context) (uint64, error)

	// ExecuteTransactionBlock submits signed transaction data
	ExecuteTransactionBlock(ctx context.Context, txBytes []byte, signatures []string) (*ExecuteResult, error)
}

// RPCError is an error object returned by the node
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// client is the JSON-RPC implementation of Client
type client struct {
	rpcURL     string
	httpClient adapter.HTTPClient
	json       adapter.JSON
	nextID     atomic.Uint64
}

// NewClient creates a JSON-RPC chain client
func NewClient(rpcURL string, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON) Client {
	return &client{
		rpcURL:     rpcURL,
		httpClient: httpClient,
		json:       jsonAdapter,
	}
}

// call performs one JSON-RPC request and decodes the result into out
func (c *client) call(ctx context.Context, method string, out interface{}, params ...interface{}) error {
	if params == nil {
		params = []interface{}{}
	}

	body, err := c.json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	respBody, err := c.httpClient.Post(ctx, c.rpcURL, "application/json", body)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}

	var resp rpcResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if resp.Error != nil {
		return fmt.Errorf("%s: %w", method, resp.Error)
	}
	if out == nil {
		return nil
	}
	if err := c.json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method, err)
	}

	return nil
}

func (c *client) QueryEvents(ctx context.Context, filter EventFilter, cursor *domain.EventID, limit int, descending bool) (*EventPage, error) {
	var page EventPage
	if err := c.call(ctx, "suix_queryEvents", &page, filter, cursor, limit, descending); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *client) DryRunTransactionBlock(ctx context.Context, txBytes []byte) (*DryRunResult, error) {
	var resp dryRunResponse
	if err := c.call(ctx, "sui_dryRunTransactionBlock", &resp, base64.StdEncoding.EncodeToString(txBytes)); err != nil {
		return nil, err
	}
	return &DryRunResult{
		Status:  resp.Effects.Status.Status,
		Error:   resp.Effects.Status.Error,
		GasUsed: resp.Effects.GasUsed,
	}, nil
}

func (c *client) GetCoins(ctx context.Context, owner string, coinType string) ([]Coin, error) {
	var (
		coins  []Coin
		cursor *string
	)

	for i := 0; i < maxCoinPages; i++ {
		var page coinPage
		if err := c.call(ctx, "suix_getCoins", &page, owner, coinType, cursor, nil); err != nil {
			return nil, err
		}
		coins = append(coins, page.Data...)

		if !page.HasNextPage || page.NextCursor == nil {
			return coins, nil
		}
		if cursor != nil && *cursor == *page.NextCursor {
			return nil, fmt.Errorf("suix_getCoins returned a repeated cursor %s", *cursor)
		}
		cursor = page.NextCursor
	}

	logger.Warn("coin pagination truncated",
		zap.String("owner", owner),
		zap.Int("pages", maxCoinPages),
		zap.Int("coins", len(coins)))
	return coins, nil
}

func (c *client) GetReferenceGasPrice(ctx context.Context) (uint64, error) {
	var price Uint64String
	if err := c.call(ctx, "suix_getReferenceGasPrice", &price); err != nil {
		return 0, err
	}
	return uint64(price), nil
}

func (c *client) ExecuteTransactionBlock(ctx context.Context, txBytes []byte, signatures []string) (*ExecuteResult, error) {
	options := map[string]bool{"showEffects": true}

	var resp executeResponse
	if err := c.call(ctx, "sui_executeTransactionBlock", &resp,
		base64.StdEncoding.EncodeToString(txBytes), signatures, options); err != nil {
		return nil, err
	}

	result := &ExecuteResult{Digest: resp.Digest}
	if resp.Effects != nil {
		result.Status = resp.Effects.Status.Status
		result.Error = resp.Effects.Status.Error
		result.GasUsed = resp.Effects.GasUsed
	}
	return result, nil
}
