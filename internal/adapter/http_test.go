package adapter_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-journal/internal/adapter"
)

func fastRetry() adapter.RetryConfig {
	return adapter.RetryConfig{
		InitialInterval: 5 * time.Millisecond,
		MaxInterval:     10 * time.Millisecond,
		MaxElapsedTime:  2 * time.Second,
	}
}

func TestHTTPClientPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(append([]byte("echo:"), body...))
	}))
	defer srv.Close()

	client := adapter.NewHTTPClientWithRetry(time.Second, fastRetry())

	resp, err := client.Post(context.Background(), srv.URL, "application/json", []byte(`{"id":1}`))

	require.NoError(t, err)
	assert.Equal(t, `echo:{"id":1}`, string(resp))
}

func TestHTTPClientPost_RetriesWithSameBody(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"id":1}`, string(body))
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := adapter.NewHTTPClientWithRetry(time.Second, fastRetry())

	resp, err := client.Post(context.Background(), srv.URL, "application/json", []byte(`{"id":1}`))

	require.NoError(t, err)
	assert.Equal(t, "ok", string(resp))
	assert.Equal(t, int32(3), attempts.Load())
}

func TestHTTPClientPost_PermanentError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad request"))
	}))
	defer srv.Close()

	client := adapter.NewHTTPClientWithRetry(time.Second, fastRetry())

	_, err := client.Post(context.Background(), srv.URL, "application/json", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code 400: bad request")
	assert.Equal(t, int32(1), attempts.Load())
}

func TestRateLimitedHTTPClientPost(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	// One token per ten seconds: the second request cannot fit in its deadline
	client := adapter.NewRateLimitedHTTPClient(time.Second, 0.1, 1)

	_, err := client.Post(context.Background(), srv.URL, "", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Post(ctx, srv.URL, "", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
	assert.Equal(t, int32(1), attempts.Load())
}

func TestRateLimitedHTTPClientPost_Unlimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := adapter.NewRateLimitedHTTPClient(time.Second, 0, 0)

	for range 5 {
		_, err := client.Post(context.Background(), srv.URL, "", nil)
		require.NoError(t, err)
	}
}
