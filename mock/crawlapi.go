package mock

import (
	"context"

	"github.com/jgrzelak/sitecrawl"
)

var _ sitecrawl.CrawlAPI = (*CrawlAPI)(nil)

// CrawlAPI is a mock implementation of sitecrawl.CrawlAPI.
type CrawlAPI struct {
	ScrapeFn func(ctx context.Context, url string, formats []string) (*sitecrawl.Page, error)
}

func (a *CrawlAPI) Scrape(ctx context.Context, url string, formats []string) (*sitecrawl.Page, error) {
	return a.ScrapeFn(ctx, url, formats)
}
