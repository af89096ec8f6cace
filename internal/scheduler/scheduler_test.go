package scheduler_test

import (
	"testing"
	"time"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/scheduler"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/testutil"
)

// Interval timing is not asserted here: the cron schedule has one-second
// granularity, so a timing test would be slow and flaky. This only covers
// arming and disarming.
func TestScheduler_StartStop(t *testing.T) {
	t.Run("stop returns after start", func(t *testing.T) {
		client := testutil.NewMockPriceClient()
		watchlistService := testutil.NewTestWatchlistService(t, client)
		s := scheduler.New(time.Hour, watchlistService)

		s.Start()

		done := make(chan struct{})
		go func() {
			s.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Stop() did not return")
		}

		if client.FetchCount != 0 {
			t.Errorf("Expected no refresh within the interval, got %d fetches", client.FetchCount)
		}
	})

	t.Run("stop without start returns", func(t *testing.T) {
		watchlistService := testutil.NewTestWatchlistService(t, testutil.NewMockPriceClient())
		s := scheduler.New(time.Hour, watchlistService)

		done := make(chan struct{})
		go func() {
			s.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Stop() did not return")
		}
	})
}
