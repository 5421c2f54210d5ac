package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"StockResearch/internal/common"
	"StockResearch/internal/model"
)

const (
	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 5

	// DefaultMaxRetries is how many times a failed request is retried.
	DefaultMaxRetries = 3
)

// DataFeed is a client for the REST market data feed. It serves both as a
// Loader and as a SymbolResolver.
type DataFeed struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration

	// applied to a copy of httpClient once all options have run
	proxy   *url.URL
	timeout time.Duration
}

// DataFeedOption configures the DataFeed.
type DataFeedOption func(*DataFeed)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) DataFeedOption {
	return func(d *DataFeed) {
		d.httpClient = httpClient
	}
}

// WithProxy routes requests through the given proxy. An unparsable URL is ignored.
func WithProxy(proxyURL string) DataFeedOption {
	return func(d *DataFeed) {
		if proxyURL == "" {
			return
		}
		if u, err := url.Parse(proxyURL); err == nil {
			d.proxy = u
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) DataFeedOption {
	return func(d *DataFeed) {
		d.timeout = timeout
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) DataFeedOption {
	return func(d *DataFeed) {
		d.logger = logger
	}
}

// WithRateLimit sets a custom rate limit. Zero disables limiting.
func WithRateLimit(requestsPerSecond float64) DataFeedOption {
	return func(d *DataFeed) {
		if requestsPerSecond <= 0 {
			d.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		burst := int(requestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		d.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithRetry sets the retry count and the initial backoff, which doubles per attempt.
func WithRetry(maxRetries int, backoff time.Duration) DataFeedOption {
	return func(d *DataFeed) {
		d.maxRetries = maxRetries
		d.backoff = backoff
	}
}

// NewDataFeed creates a new data feed client.
func NewDataFeed(baseURL, apiKey string, opts ...DataFeedOption) *DataFeed {
	d := &DataFeed{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger:     common.NewSilentLogger(),
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		maxRetries: DefaultMaxRetries,
		backoff:    time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.configureClient()
	return d
}

// configureClient applies the proxy and timeout options to a copy of the
// client, leaving one passed through WithHTTPClient untouched.
func (d *DataFeed) configureClient() {
	if d.proxy == nil && d.timeout <= 0 {
		return
	}
	c := *d.httpClient
	if d.timeout > 0 {
		c.Timeout = d.timeout
	}
	if d.proxy != nil {
		var tr *http.Transport
		if base, ok := c.Transport.(*http.Transport); ok {
			tr = base.Clone()
		} else {
			tr = http.DefaultTransport.(*http.Transport).Clone()
		}
		tr.Proxy = http.ProxyURL(d.proxy)
		c.Transport = tr
	}
	d.httpClient = &c
}

func (d *DataFeed) Name() string { return "datafeed" }

// APIError represents an error response from the data feed.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("datafeed API error: %s (status %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Temporary reports whether the request may succeed when retried.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// LoadBundle fetches the daily history and filings of one instrument.
func (d *DataFeed) LoadBundle(ctx context.Context, symbol string, start, end time.Time) (*model.TimeSeriesBundle, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("start", start.Format(wireDateLayout))
	params.Set("end", end.Format(wireDateLayout))

	var w wireBundle
	if err := d.get(ctx, "/api/v1/bundle", params, &w); err != nil {
		return nil, fmt.Errorf("load bundle %s: %w", symbol, err)
	}
	if w.Symbol == "" {
		w.Symbol = symbol
	}
	return w.toModel()
}

// Resolve looks up display names for a batch of symbol codes.
func (d *DataFeed) Resolve(ctx context.Context, symbols []string) ([]model.SymbolName, error) {
	params := url.Values{}
	params.Set("codes", strings.Join(symbols, ","))

	var pairs []model.SymbolName
	if err := d.get(ctx, "/api/v1/symbols", params, &pairs); err != nil {
		return nil, fmt.Errorf("resolve symbols: %w", err)
	}
	return pairs, nil
}

// get performs a GET request, retrying transport failures and temporary API errors.
func (d *DataFeed) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	var lastErr error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := d.backoff * time.Duration(1<<uint(attempt-1))
			d.logger.Warn().
				Err(lastErr).
				Str("path", path).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("Datafeed request failed, retrying")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err := d.do(ctx, path, params, result)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable(ctx, err) {
			return err
		}
	}
	return fmt.Errorf("all %d attempts failed: %w", d.maxRetries+1, lastErr)
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	var transportErr *transportError
	return errors.As(err, &transportErr)
}

// transportError marks failures before a response was received.
type transportError struct{ err error }

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func (d *DataFeed) do(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := d.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if d.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	d.logger.Debug().Str("url", reqURL).Msg("Datafeed request")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return &transportError{err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			Endpoint:   path,
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
