// Package ratelimit provides a minimum-delay throttle for outbound
// price provider requests.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the minimum spacing between provider requests.
const DefaultDelay = 2 * time.Second

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Limiter enforces a minimum delay between acquisitions. A single instance
// is shared by all fetch calls; it does not distinguish between symbols or
// callers. The last-grant time is a critical section guarded by a mutex so
// the throttle stays correct when fetches run in parallel.
type Limiter struct {
	mu    sync.Mutex
	delay time.Duration
	clock Clock
	last  time.Time
}

// New creates a Limiter with the given minimum delay.
func New(delay time.Duration) *Limiter {
	return &Limiter{delay: delay, clock: realClock{}}
}

// NewWithClock creates a Limiter with an injected clock for testing.
func NewWithClock(delay time.Duration, clock Clock) *Limiter {
	return &Limiter{delay: delay, clock: clock}
}

// Acquire blocks until at least the configured delay has elapsed since the
// start of the previously granted acquisition, then records the new grant
// time and returns. Returns early with the context error if ctx is
// cancelled while waiting.
func (l *Limiter) Acquire(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if !l.last.IsZero() {
		if wait := l.delay - now.Sub(l.last); wait > 0 {
			if err := l.clock.Sleep(ctx, wait); err != nil {
				return err
			}
		}
	}
	l.last = l.clock.Now()
	return nil
}
