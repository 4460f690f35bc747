package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jgrzelak/sitecrawl"
)

// Ensure LoggingScraper implements sitecrawl.Scraper.
var _ sitecrawl.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with debug logging.
type LoggingScraper struct {
	next   sitecrawl.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next sitecrawl.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the page outcome.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) *sitecrawl.Page {
	begin := time.Now()
	page := s.next.Scrape(ctx, url)
	s.logger.Info("scrape",
		"url", url,
		"success", page.Success,
		"bytes", len(page.Content),
		"duration", time.Since(begin),
		"err", page.Error,
	)
	return page
}

// Close delegates to the wrapped scraper.
func (s *LoggingScraper) Close() error {
	return s.next.Close()
}
