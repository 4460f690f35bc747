package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jgrzelak/sitecrawl"
)

// Compile-time interface verification.
var _ sitecrawl.BusinessService = (*BusinessService)(nil)

// BusinessService implements sitecrawl.BusinessService using SQLite.
type BusinessService struct {
	db *DB
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(db *DB) *BusinessService {
	return &BusinessService{db: db}
}

// CreateBusiness creates a new business with status "setup".
func (s *BusinessService) CreateBusiness(ctx context.Context, business *sitecrawl.Business) error {
	if err := business.Validate(); err != nil {
		return err
	}

	business.ID = uuid.New().String()
	business.Status = sitecrawl.StatusSetup
	now := time.Now().UTC()
	business.CreatedAt = now
	business.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO businesses (id, name, website_url, description, industry, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, business.ID, business.Name, business.WebsiteURL, business.Description, business.Industry,
		business.Status, business.CreatedAt.Format(time.RFC3339), business.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindBusinessByID retrieves a business by ID.
func (s *BusinessService) FindBusinessByID(ctx context.Context, id string) (*sitecrawl.Business, error) {
	var business sitecrawl.Business
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, website_url, description, industry, status, created_at, updated_at
		FROM businesses
		WHERE id = ?
	`, id).Scan(&business.ID, &business.Name, &business.WebsiteURL, &business.Description,
		&business.Industry, &business.Status, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, sitecrawl.Errorf(sitecrawl.ENOTFOUND, "business not found")
	}
	if err != nil {
		return nil, err
	}

	if business.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if business.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &business, nil
}

// FindBusinesses retrieves businesses matching the filter.
func (s *BusinessService) FindBusinesses(ctx context.Context, filter sitecrawl.BusinessFilter) ([]*sitecrawl.Business, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, website_url, description, industry, status, created_at, updated_at FROM businesses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []*sitecrawl.Business
	for rows.Next() {
		var business sitecrawl.Business
		var createdAt, updatedAt string

		if err := rows.Scan(&business.ID, &business.Name, &business.WebsiteURL, &business.Description,
			&business.Industry, &business.Status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if business.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if business.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		businesses = append(businesses, &business)
	}

	return businesses, rows.Err()
}

// UpdateBusinessStatus sets the profile-level crawl status.
func (s *BusinessService) UpdateBusinessStatus(ctx context.Context, id string, status string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE businesses
		SET status = ?, updated_at = ?
		WHERE id = ?
	`, status, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sitecrawl.Errorf(sitecrawl.ENOTFOUND, "business not found")
	}

	return nil
}

// DeleteBusiness permanently removes a business. Its pages go with it via
// the foreign key cascade.
func (s *BusinessService) DeleteBusiness(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM businesses WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sitecrawl.Errorf(sitecrawl.ENOTFOUND, "business not found")
	}

	return nil
}
