// Package evasion generates per-session request-identity profiles: rotating
// user agents, baseline browser headers, viewport sizes, proxy assignment,
// and politeness delays between requests.
package evasion

import (
	"math/rand"
	"sync"
)

// Rotator assigns proxies from a configured pool, tracking failures for the
// duration of a run. Rotator is safe for concurrent use.
type Rotator struct {
	mu      sync.Mutex
	proxies []string
	failed  map[string]bool
	rng     *rand.Rand
}

// NewRotator creates a Rotator over the given proxy endpoints.
// The randomness source is injected so selection can be made deterministic
// in tests; a nil rng falls back to a time-seeded source.
func NewRotator(proxies []string, rng *rand.Rand) *Rotator {
	if rng == nil {
		rng = newDefaultRand()
	}
	return &Rotator{
		proxies: append([]string(nil), proxies...),
		failed:  make(map[string]bool),
		rng:     rng,
	}
}

// Next returns a uniformly-random endpoint from the subset of proxies not
// currently marked failed. When every proxy is marked failed, the failure
// table is cleared first so the run never starves. The bool result is false
// when no proxies are configured.
func (r *Rotator) Next() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.proxies) == 0 {
		return "", false
	}

	available := make([]string, 0, len(r.proxies))
	for _, p := range r.proxies {
		if !r.failed[p] {
			available = append(available, p)
		}
	}

	if len(available) == 0 {
		r.failed = make(map[string]bool)
		available = r.proxies
	}

	return available[r.rng.Intn(len(available))], true
}

// MarkFailed marks an endpoint unusable for the remainder of the run.
// MarkFailed is idempotent; endpoints not in the pool are ignored.
func (r *Rotator) MarkFailed(endpoint string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.proxies {
		if p == endpoint {
			r.failed[endpoint] = true
			return
		}
	}
}
