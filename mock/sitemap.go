package mock

import (
	"context"

	"github.com/jgrzelak/sitecrawl"
)

var _ sitecrawl.SitemapSource = (*SitemapSource)(nil)

// SitemapSource is a mock implementation of sitecrawl.SitemapSource.
type SitemapSource struct {
	URLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapSource) URLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.URLsFn(ctx, baseURL)
}
