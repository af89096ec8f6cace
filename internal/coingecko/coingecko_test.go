package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/ratelimit"
)

// newTestClient builds a client against a stub provider with no rate-limit
// delay and an instant retry backoff.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*PriceClient, *[]time.Duration) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewPriceClient(server.URL, ratelimit.New(0))

	var sleeps []time.Duration
	client.sleep = func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return client, &sleeps
}

func TestFetchPrice(t *testing.T) {
	t.Run("returns record for known symbol", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("ids"); got != "bitcoin" {
				t.Errorf("Expected ids=bitcoin, got ids=%s", got)
			}
			if got := r.URL.Query().Get("vs_currencies"); got != "usd" {
				t.Errorf("Expected vs_currencies=usd, got %s", got)
			}
			if got := r.URL.Query().Get("include_24hr_change"); got != "true" {
				t.Errorf("Expected include_24hr_change=true, got %s", got)
			}
			w.Write([]byte(`{"bitcoin":{"usd":43250.5,"usd_24h_change":2.3}}`))
		})

		record, err := client.FetchPrice(context.Background(), "BTC")
		if err != nil {
			t.Fatalf("FetchPrice() returned unexpected error: %v", err)
		}

		if record.Symbol != "BTC" {
			t.Errorf("Expected symbol BTC, got %s", record.Symbol)
		}
		if record.Name != "Bitcoin" {
			t.Errorf("Expected name Bitcoin, got %s", record.Name)
		}
		if record.Price != 43250.5 {
			t.Errorf("Expected price 43250.5, got %f", record.Price)
		}
		if record.Change24h != 2.3 {
			t.Errorf("Expected change 2.3, got %f", record.Change24h)
		}
		if record.UpdatedAt.IsZero() {
			t.Error("Expected UpdatedAt to be stamped")
		}
	})

	t.Run("normalizes lowercase input symbol", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ethereum":{"usd":2200.0,"usd_24h_change":-1.2}}`))
		})

		record, err := client.FetchPrice(context.Background(), "eth")
		if err != nil {
			t.Fatalf("FetchPrice() returned unexpected error: %v", err)
		}
		if record.Symbol != "ETH" {
			t.Errorf("Expected symbol ETH, got %s", record.Symbol)
		}
	})

	t.Run("returns ErrNoData for empty object", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		_, err := client.FetchPrice(context.Background(), "BTC")
		if !errors.Is(err, ErrNoData) {
			t.Fatalf("Expected ErrNoData, got %v", err)
		}
	})

	t.Run("returns ErrNoData when usd field is missing", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"bitcoin":{"usd_24h_change":2.3}}`))
		})

		_, err := client.FetchPrice(context.Background(), "BTC")
		if !errors.Is(err, ErrNoData) {
			t.Fatalf("Expected ErrNoData, got %v", err)
		}
	})

	t.Run("defaults change to zero when usd_24h_change is missing", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"bitcoin":{"usd":43250.5}}`))
		})

		record, err := client.FetchPrice(context.Background(), "BTC")
		if err != nil {
			t.Fatalf("FetchPrice() returned unexpected error: %v", err)
		}
		if record.Change24h != 0 {
			t.Errorf("Expected change 0, got %f", record.Change24h)
		}
	})

	t.Run("returns HTTPStatusError for non-200 status", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.FetchPrice(context.Background(), "BTC")

		var statusErr *HTTPStatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("Expected HTTPStatusError, got %v", err)
		}
		if statusErr.Code != http.StatusInternalServerError {
			t.Errorf("Expected code 500, got %d", statusErr.Code)
		}
	})

	t.Run("retries after 429 and succeeds", func(t *testing.T) {
		attempts := 0
		client, sleeps := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"bitcoin":{"usd":43250.5,"usd_24h_change":2.3}}`))
		})

		record, err := client.FetchPrice(context.Background(), "BTC")
		if err != nil {
			t.Fatalf("FetchPrice() returned unexpected error: %v", err)
		}
		if record.Price != 43250.5 {
			t.Errorf("Expected price 43250.5, got %f", record.Price)
		}
		if attempts != 2 {
			t.Errorf("Expected 2 attempts, got %d", attempts)
		}
		if len(*sleeps) != 1 || (*sleeps)[0] != rateLimitBackoff {
			t.Errorf("Expected one %s backoff, got %v", rateLimitBackoff, *sleeps)
		}
	})

	t.Run("gives up after sustained 429", func(t *testing.T) {
		attempts := 0
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := client.FetchPrice(context.Background(), "BTC")
		if !errors.Is(err, ErrRateLimited) {
			t.Fatalf("Expected ErrRateLimited, got %v", err)
		}
		if attempts != maxAttempts {
			t.Errorf("Expected %d attempts, got %d", maxAttempts, attempts)
		}
	})

	t.Run("returns context error when cancelled during backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		client.sleep = func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		}

		_, err := client.FetchPrice(ctx, "BTC")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Expected context.Canceled, got %v", err)
		}
	})
}
