// Package slog provides logging decorators for sitecrawl interfaces using
// log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jgrzelak/sitecrawl"
)

// Ensure LoggingDiscoverer implements sitecrawl.Discoverer.
var _ sitecrawl.Discoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a Discoverer with debug logging.
type LoggingDiscoverer struct {
	next   sitecrawl.Discoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next sitecrawl.Discoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the operation.
func (d *LoggingDiscoverer) Discover(ctx context.Context, seedURL string, maxPages int) (candidates []sitecrawl.Candidate, err error) {
	defer func(begin time.Time) {
		d.logger.Info("discovery",
			"seed", seedURL,
			"max", maxPages,
			"count", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Discover(ctx, seedURL, maxPages)
}
