package mock

import (
	"context"

	"github.com/jgrzelak/sitecrawl"
)

var _ sitecrawl.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of sitecrawl.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) *sitecrawl.Page
	CloseFn  func() error
}

func (s *Scraper) Scrape(ctx context.Context, url string) *sitecrawl.Page {
	return s.ScrapeFn(ctx, url)
}

func (s *Scraper) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
