package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-journal/internal/logger"
)

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// Post performs a POST request and returns the response body.
	// The body is replayed on every retry attempt.
	Post(ctx context.Context, url string, contentType string, body []byte) ([]byte, error)
}

// RetryConfig tunes the exponential backoff used for retryable responses
type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryConfig returns the backoff settings used by NewHTTPClient
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialInterval: 2 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  1 * time.Minute,
	}
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client  *http.Client
	retry   RetryConfig
	limiter *rate.Limiter // nil means unlimited
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return NewHTTPClientWithRetry(timeout, DefaultRetryConfig())
}

// NewHTTPClientWithRetry creates a new real HTTP client with custom backoff settings
func NewHTTPClientWithRetry(timeout time.Duration, retry RetryConfig) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		retry: retry,
	}
}

// NewRateLimitedHTTPClient creates a real HTTP client that spends one token per attempt,
// retries included. A non-positive rate disables limiting.
func NewRateLimitedHTTPClient(timeout time.Duration, requestsPerSecond float64, burst int) HTTPClient {
	c := &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		retry: DefaultRetryConfig(),
	}
	if requestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), max(burst, 1))
	}
	return c
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry for rate limiting,
// transient network errors and gateway failures
func (c *RealHTTPClient) doRequestWithRetry(ctx context.Context, newRequest func() (*http.Request, error)) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return backoff.Permanent(fmt.Errorf("rate limiter: %w", err))
			}
		}

		req, err := newRequest()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
			}
		}()

		switch resp.StatusCode {
		case http.StatusOK:
		case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			logger.Warn("retryable response, retrying with backoff",
				zap.String("url", req.URL.String()),
				zap.Int("status", resp.StatusCode))
			return fmt.Errorf("retryable status code %d", resp.StatusCode)
		default:
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body)))
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.InitialInterval
	b.MaxInterval = c.retry.MaxInterval
	b.MaxElapsedTime = c.retry.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}

// Post performs a POST request and returns the response body
func (c *RealHTTPClient) Post(ctx context.Context, url string, contentType string, body []byte) ([]byte, error) {
	return c.doRequestWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		return req, nil
	})
}
