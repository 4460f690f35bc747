package mock

import (
	"context"

	"github.com/jgrzelak/sitecrawl"
)

var _ sitecrawl.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of sitecrawl.Discoverer.
type Discoverer struct {
	DiscoverFn func(ctx context.Context, seedURL string, maxPages int) ([]sitecrawl.Candidate, error)
}

func (d *Discoverer) Discover(ctx context.Context, seedURL string, maxPages int) ([]sitecrawl.Candidate, error) {
	return d.DiscoverFn(ctx, seedURL, maxPages)
}
