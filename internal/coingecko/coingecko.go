// Package coingecko provides a client for the CoinGecko simple-price API.
// It maps ticker symbols to CoinGecko asset identifiers, throttles outbound
// requests through a shared rate limiter, and returns typed errors for the
// expected failure modes so callers can degrade per symbol instead of
// failing whole batches.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/ratelimit"
)

const (
	// DefaultBaseURL is the public CoinGecko API root.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"

	// requestTimeout bounds a single HTTP round trip.
	requestTimeout = 15 * time.Second

	// rateLimitBackoff is how long to wait after an HTTP 429 before retrying.
	rateLimitBackoff = 60 * time.Second

	// maxAttempts caps retries on sustained 429 responses. The provider
	// recovers well within one backoff window in practice; the cap exists
	// so a fetch can never block indefinitely.
	maxAttempts = 3

	userAgent = "crypto-price-tracker/1.0"
)

// ErrNoData indicates that the provider returned no usable USD price for
// the requested symbol. Callers treat it like a non-200 status: the symbol
// simply has no data right now.
var ErrNoData = errors.New("no price data")

// ErrRateLimited indicates that the provider kept answering 429 until the
// retry budget ran out.
var ErrRateLimited = errors.New("rate limited by provider")

// HTTPStatusError is returned for non-200, non-429 provider responses.
type HTTPStatusError struct {
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.Code)
}

// Client is the interface consumed by services that need live prices.
// Satisfied by PriceClient and by the test mock.
type Client interface {
	FetchPrice(ctx context.Context, symbol string) (model.PriceRecord, error)
}

// PriceClient fetches spot prices from the CoinGecko simple-price endpoint.
// All requests pass through the shared rate limiter.
type PriceClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	sleep      func(ctx context.Context, d time.Duration) error
	now        func() time.Time
}

// NewPriceClient creates a client for the given API base URL. An empty
// baseURL selects the public CoinGecko endpoint.
func NewPriceClient(baseURL string, limiter *ratelimit.Limiter) *PriceClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &PriceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    limiter,
		sleep:      sleepCtx,
		now:        time.Now,
	}
}

// FetchPrice fetches the current USD price and 24h change for a ticker
// symbol and returns it as a PriceRecord stamped with the current time.
//
// A 429 response is retried after a backoff, at most maxAttempts times in
// total. A missing usd_24h_change field is tolerated and defaults to zero;
// a missing usd field is ErrNoData.
func (c *PriceClient) FetchPrice(ctx context.Context, symbol string) (model.PriceRecord, error) {
	id := ResolveID(symbol)

	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, url.Values{
		"ids":                 {id},
		"vs_currencies":       {"usd"},
		"include_24hr_change": {"true"},
	}.Encode())

	for attempt := 1; ; attempt++ {
		if err := c.limiter.Acquire(ctx); err != nil {
			return model.PriceRecord{}, err
		}

		record, retryable, err := c.fetchOnce(ctx, endpoint, symbol, id)
		if err == nil {
			return record, nil
		}
		if !retryable || attempt >= maxAttempts {
			return model.PriceRecord{}, err
		}
		if sleepErr := c.sleep(ctx, rateLimitBackoff); sleepErr != nil {
			return model.PriceRecord{}, sleepErr
		}
	}
}

// fetchOnce performs a single request. The second return value reports
// whether the error is worth retrying (only 429 is).
func (c *PriceClient) fetchOnce(ctx context.Context, endpoint, symbol, id string) (model.PriceRecord, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.PriceRecord{}, false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.PriceRecord{}, false, fmt.Errorf("request for %s failed: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return model.PriceRecord{}, true, fmt.Errorf("%s: %w", symbol, ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return model.PriceRecord{}, false, &HTTPStatusError{Code: resp.StatusCode}
	}

	var body SimplePriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.PriceRecord{}, false, fmt.Errorf("failed to decode response for %s: %w", symbol, err)
	}

	asset, ok := body[id]
	if !ok || asset.USD == nil {
		return model.PriceRecord{}, false, fmt.Errorf("%s: %w", symbol, ErrNoData)
	}

	var change float64
	if asset.USD24hChange != nil {
		change = *asset.USD24hChange
	}

	return model.PriceRecord{
		Symbol:    NormalizeSymbol(symbol),
		Name:      ResolveName(symbol),
		Price:     *asset.USD,
		Change24h: change,
		UpdatedAt: c.now(),
	}, false, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
