package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeed(srv *httptest.Server, opts ...DataFeedOption) *DataFeed {
	base := []DataFeedOption{WithRateLimit(0), WithRetry(2, time.Millisecond)}
	return NewDataFeed(srv.URL, "secret", append(base, opts...)...)
}

func TestDataFeed_LoadBundle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bundle", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "SH600000", r.URL.Query().Get("symbol"))
		assert.Equal(t, "2023-01-04", r.URL.Query().Get("start"))
		assert.Equal(t, "2025-01-04", r.URL.Query().Get("end"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBundleJSON))
	}))
	defer srv.Close()

	end := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	start, end := DateRange(end, time.Time{})
	b, err := newTestFeed(srv).LoadBundle(context.Background(), "SH600000", start, end)
	require.NoError(t, err)

	assert.Equal(t, "SH600000", b.Symbol)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), b.LatestDate())
	assert.Equal(t, []float64{1e8, 1e8, 1e8, 1e8}, b.TotalCap)
	assert.Equal(t, 3, b.Financials.Len())
	assert.Equal(t, []string{"银行", "沪股通"}, b.Sector)
}

func TestDataFeed_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sampleBundleJSON))
	}))
	defer srv.Close()

	_, err := newTestFeed(srv).LoadBundle(context.Background(), "SH600000", time.Time{}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDataFeed_GivesUpAfterRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestFeed(srv).LoadBundle(context.Background(), "SH600000", time.Time{}, time.Now())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDataFeed_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "unknown symbol", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestFeed(srv).LoadBundle(context.Background(), "XX", time.Time{}, time.Now())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDataFeed_Resolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/symbols", r.URL.Path)
		assert.Equal(t, "SH600000,SZ000001", r.URL.Query().Get("codes"))
		_, _ = w.Write([]byte(`[{"symbol":"SH600000","name":"浦发银行"},{"symbol":"SZ000001","name":"平安银行"}]`))
	}))
	defer srv.Close()

	pairs, err := newTestFeed(srv).Resolve(context.Background(), []string{"SH600000", "SZ000001"})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "平安银行", pairs[1].Name)
}

func TestDataFeed_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestFeed(srv, WithRetry(5, time.Hour)).LoadBundle(ctx, "SH600000", time.Time{}, time.Now())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDataFeed_MalformedBundle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"symbol":"SH600000","date":["2024-01-02","2024-01-03"],"close":[1]}`))
	}))
	defer srv.Close()

	_, err := newTestFeed(srv).LoadBundle(context.Background(), "SH600000", time.Time{}, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close")
}

func TestNewDataFeed_ClientOptionsDoNotMutateCaller(t *testing.T) {
	orders := map[string]func(client *http.Client) []DataFeedOption{
		"client first": func(client *http.Client) []DataFeedOption {
			return []DataFeedOption{WithHTTPClient(client), WithTimeout(time.Second), WithProxy("http://proxy:8080")}
		},
		"client last": func(client *http.Client) []DataFeedOption {
			return []DataFeedOption{WithTimeout(time.Second), WithProxy("http://proxy:8080"), WithHTTPClient(client)}
		},
	}
	for name, opts := range orders {
		t.Run(name, func(t *testing.T) {
			client := &http.Client{Timeout: 5 * time.Second}
			d := NewDataFeed("http://feed", "", opts(client)...)

			assert.Equal(t, 5*time.Second, client.Timeout)
			assert.Nil(t, client.Transport)

			require.NotSame(t, client, d.httpClient)
			assert.Equal(t, time.Second, d.httpClient.Timeout)
			tr, ok := d.httpClient.Transport.(*http.Transport)
			require.True(t, ok)
			req, err := http.NewRequest(http.MethodGet, "http://feed/api", nil)
			require.NoError(t, err)
			proxy, err := tr.Proxy(req)
			require.NoError(t, err)
			require.NotNil(t, proxy)
			assert.Equal(t, "proxy:8080", proxy.Host)
		})
	}
}

func TestNewDataFeed_DefaultClientKept(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	d := NewDataFeed("http://feed", "", WithHTTPClient(client))
	assert.Same(t, client, d.httpClient)
}
