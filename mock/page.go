package mock

import (
	"context"

	"github.com/jgrzelak/sitecrawl"
)

var _ sitecrawl.PageService = (*PageService)(nil)

// PageService is a mock implementation of sitecrawl.PageService.
type PageService struct {
	ReplacePagesFn         func(ctx context.Context, businessID string, pages []*sitecrawl.Page) error
	FindPagesByBusinessFn  func(ctx context.Context, businessID string) ([]*sitecrawl.CrawledPage, error)
	CountPagesByBusinessFn func(ctx context.Context, businessID string) (int, error)
}

func (s *PageService) ReplacePages(ctx context.Context, businessID string, pages []*sitecrawl.Page) error {
	return s.ReplacePagesFn(ctx, businessID, pages)
}

func (s *PageService) FindPagesByBusiness(ctx context.Context, businessID string) ([]*sitecrawl.CrawledPage, error) {
	return s.FindPagesByBusinessFn(ctx, businessID)
}

func (s *PageService) CountPagesByBusiness(ctx context.Context, businessID string) (int, error) {
	return s.CountPagesByBusinessFn(ctx, businessID)
}
