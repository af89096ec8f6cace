// Package scheduler arms the periodic watchlist refresh.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/service"
)

// Scheduler runs the watchlist refresh on a fixed interval in a background
// goroutine. It is armed at startup and disarmed on shutdown. A scheduled
// run may overlap a manual refresh; stale results are rejected by the
// watchlist's per-entry version guard.
type Scheduler struct {
	cron      *cron.Cron
	watchlist *service.WatchlistService
}

// New creates a Scheduler that refreshes the watchlist every interval.
func New(interval time.Duration, watchlist *service.WatchlistService) *Scheduler {
	s := &Scheduler{
		cron:      cron.New(),
		watchlist: watchlist,
	}
	s.cron.Schedule(cron.Every(interval), cron.FuncJob(s.refresh))
	return s
}

// Start arms the refresh schedule.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop disarms the schedule and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) refresh() {
	result := s.watchlist.RefreshAll(context.Background())
	if len(result.Failed) > 0 {
		for _, f := range result.Failed {
			log.Printf("Scheduled refresh failed for %s: %s", f.Symbol, f.Reason)
		}
	}
	log.Printf("Scheduled refresh: %d updated, %d failed, %d stale",
		len(result.Updated), len(result.Failed), len(result.Stale))
}
