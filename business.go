package sitecrawl

import (
	"context"
	"time"
)

// Business statuses. A crawl brackets the profile status: crawling while the
// engine runs, then always a terminal completed or failed.
const (
	StatusSetup     = "setup"
	StatusCrawling  = "crawling"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Business represents a business profile whose website is crawled.
type Business struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	WebsiteURL  string    `json:"websiteUrl"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the business contains invalid fields.
func (b *Business) Validate() error {
	if b.Name == "" {
		return Errorf(EINVALID, "business name required")
	}
	if b.WebsiteURL == "" {
		return Errorf(EINVALID, "business website URL required")
	}
	return nil
}

// CrawledPage is a successfully scraped page persisted against a business.
type CrawledPage struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"businessId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	CrawledAt   time.Time `json:"crawledAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *CrawledPage) Validate() error {
	if p.BusinessID == "" {
		return Errorf(EINVALID, "page business ID required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// BusinessService manages business profiles.
type BusinessService interface {
	// CreateBusiness creates a new business with status "setup".
	CreateBusiness(ctx context.Context, business *Business) error

	// FindBusinessByID retrieves a business by ID.
	// Returns ENOTFOUND if the business does not exist.
	FindBusinessByID(ctx context.Context, id string) (*Business, error)

	// FindBusinesses retrieves businesses matching the filter.
	FindBusinesses(ctx context.Context, filter BusinessFilter) ([]*Business, error)

	// UpdateBusinessStatus sets the profile-level crawl status.
	// Returns ENOTFOUND if the business does not exist.
	UpdateBusinessStatus(ctx context.Context, id string, status string) error

	// DeleteBusiness permanently removes a business and its pages.
	// Returns ENOTFOUND if the business does not exist.
	DeleteBusiness(ctx context.Context, id string) error
}

// BusinessFilter represents a filter for FindBusinesses.
type BusinessFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PageService persists crawled pages.
type PageService interface {
	// ReplacePages atomically replaces all pages stored for a business with
	// the successful pages of a new crawl.
	ReplacePages(ctx context.Context, businessID string, pages []*Page) error

	// FindPagesByBusiness retrieves all pages for a business, most recent
	// crawl order preserved.
	FindPagesByBusiness(ctx context.Context, businessID string) ([]*CrawledPage, error)

	// CountPagesByBusiness returns the number of stored pages for a business.
	CountPagesByBusiness(ctx context.Context, businessID string) (int, error)
}
