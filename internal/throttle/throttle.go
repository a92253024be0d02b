// Package throttle provides the pacing capability used to respect
// external feed and API rate tolerances.
package throttle

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttle paces successive outbound calls to the same external resource.
type Throttle interface {
	// Wait blocks until the next call to the named resource may proceed.
	// Returns an error only when ctx is done.
	Wait(ctx context.Context, resource string) error
}

// Limiter implements Throttle with one fixed-interval rate limiter per
// resource. The first call to a resource passes immediately; each
// subsequent call waits out the configured interval.
type Limiter struct {
	mu        sync.Mutex
	intervals map[string]time.Duration
	limiters  map[string]*rate.Limiter
}

// NewLimiter builds a Limiter from a resource→interval map. Resources not
// in the map (or with a non-positive interval) are never delayed.
func NewLimiter(intervals map[string]time.Duration) *Limiter {
	return &Limiter{
		intervals: intervals,
		limiters:  make(map[string]*rate.Limiter),
	}
}

func (l *Limiter) Wait(ctx context.Context, resource string) error {
	l.mu.Lock()
	lim, ok := l.limiters[resource]
	if !ok {
		interval := l.intervals[resource]
		if interval <= 0 {
			l.mu.Unlock()
			return nil
		}
		lim = rate.NewLimiter(rate.Every(interval), 1)
		l.limiters[resource] = lim
	}
	l.mu.Unlock()
	return lim.Wait(ctx)
}

// Noop is a Throttle that never delays. Used in tests.
type Noop struct{}

func (Noop) Wait(context.Context, string) error { return nil }
