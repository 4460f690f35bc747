package mock

import (
	"context"

	"github.com/jgrzelak/sitecrawl"
)

var _ sitecrawl.BusinessService = (*BusinessService)(nil)

// BusinessService is a mock implementation of sitecrawl.BusinessService.
type BusinessService struct {
	CreateBusinessFn       func(ctx context.Context, business *sitecrawl.Business) error
	FindBusinessByIDFn     func(ctx context.Context, id string) (*sitecrawl.Business, error)
	FindBusinessesFn       func(ctx context.Context, filter sitecrawl.BusinessFilter) ([]*sitecrawl.Business, error)
	UpdateBusinessStatusFn func(ctx context.Context, id string, status string) error
	DeleteBusinessFn       func(ctx context.Context, id string) error
}

func (s *BusinessService) CreateBusiness(ctx context.Context, business *sitecrawl.Business) error {
	return s.CreateBusinessFn(ctx, business)
}

func (s *BusinessService) FindBusinessByID(ctx context.Context, id string) (*sitecrawl.Business, error) {
	return s.FindBusinessByIDFn(ctx, id)
}

func (s *BusinessService) FindBusinesses(ctx context.Context, filter sitecrawl.BusinessFilter) ([]*sitecrawl.Business, error) {
	return s.FindBusinessesFn(ctx, filter)
}

func (s *BusinessService) UpdateBusinessStatus(ctx context.Context, id string, status string) error {
	return s.UpdateBusinessStatusFn(ctx, id, status)
}

func (s *BusinessService) DeleteBusiness(ctx context.Context, id string) error {
	return s.DeleteBusinessFn(ctx, id)
}
