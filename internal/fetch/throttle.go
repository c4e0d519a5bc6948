package fetch

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle spaces out external calls to stay polite toward feed hosts, target
// sites, and the oracle. Every outbound call site waits on the same Throttle.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle allows one call per delay. A zero or negative delay disables
// throttling (used by tests).
func NewThrottle(delay time.Duration) *Throttle {
	if delay <= 0 {
		return &Throttle{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Throttle{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the next call is allowed.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
