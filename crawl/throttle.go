package crawl

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle paces page fetches with a token bucket so the politeness contract
// holds even when scraping runs on concurrent workers.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle allowing rps requests per second with a
// burst of 1 (no bursting).
func NewThrottle(rps float64) *Throttle {
	return &Throttle{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
