package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jgrzelak/sitecrawl"
)

// Compile-time interface verification.
var _ sitecrawl.PageService = (*PageService)(nil)

// PageService implements sitecrawl.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// ReplacePages atomically replaces all pages stored for a business with the
// successful pages of a new crawl. Failed pages in the input are skipped.
func (s *PageService) ReplacePages(ctx context.Context, businessID string, pages []*sitecrawl.Page) error {
	if businessID == "" {
		return sitecrawl.Errorf(sitecrawl.EINVALID, "business ID required")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pages WHERE business_id = ?", businessID); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	position := 0
	for _, page := range pages {
		if page == nil || !page.Success {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pages (id, business_id, url, title, description, content, content_hash, position, crawled_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), businessID, page.URL, page.Title, page.Description,
			page.Content, page.ContentHash, position, now); err != nil {
			return err
		}
		position++
	}

	return tx.Commit()
}

// FindPagesByBusiness retrieves all pages for a business in crawl order.
func (s *PageService) FindPagesByBusiness(ctx context.Context, businessID string) ([]*sitecrawl.CrawledPage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, business_id, url, title, description, content, content_hash, crawled_at
		FROM pages
		WHERE business_id = ?
		ORDER BY position ASC
	`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*sitecrawl.CrawledPage
	for rows.Next() {
		var page sitecrawl.CrawledPage
		var crawledAt string

		if err := rows.Scan(&page.ID, &page.BusinessID, &page.URL, &page.Title,
			&page.Description, &page.Content, &page.ContentHash, &crawledAt); err != nil {
			return nil, err
		}

		if page.CrawledAt, err = parseRFC3339(crawledAt, "crawled_at"); err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// CountPagesByBusiness returns the number of stored pages for a business.
func (s *PageService) CountPagesByBusiness(ctx context.Context, businessID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages WHERE business_id = ?", businessID).Scan(&count)
	return count, err
}
