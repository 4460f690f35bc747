package sqlite_test

import (
	"context"
	"testing"

	"github.com/jgrzelak/sitecrawl"
	"github.com/jgrzelak/sitecrawl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCreateBusiness creates a business for testing.
func mustCreateBusiness(t *testing.T, db *sqlite.DB, name string) *sitecrawl.Business {
	t.Helper()
	business := &sitecrawl.Business{
		Name:       name,
		WebsiteURL: "https://" + name + ".example",
		Industry:   "manufacturing",
	}
	require.NoError(t, sqlite.NewBusinessService(db).CreateBusiness(context.Background(), business))
	return business
}

func TestBusinessService_CreateBusiness(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, timestamps, and setup status", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		business := mustCreateBusiness(t, db, "acme")

		assert.NotEmpty(t, business.ID)
		assert.Equal(t, sitecrawl.StatusSetup, business.Status)
		assert.False(t, business.CreatedAt.IsZero())
		assert.False(t, business.UpdatedAt.IsZero())

		found, err := sqlite.NewBusinessService(db).FindBusinessByID(context.Background(), business.ID)
		require.NoError(t, err)
		assert.Equal(t, "acme", found.Name)
		assert.Equal(t, "https://acme.example", found.WebsiteURL)
		assert.Equal(t, "manufacturing", found.Industry)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		err := sqlite.NewBusinessService(db).CreateBusiness(context.Background(), &sitecrawl.Business{
			WebsiteURL: "https://example.com",
		})

		require.Error(t, err)
		assert.Equal(t, sitecrawl.EINVALID, sitecrawl.ErrorCode(err))
	})
}

func TestBusinessService_FindBusinessByID_NotFound(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)

	_, err := sqlite.NewBusinessService(db).FindBusinessByID(context.Background(), "no-such-id")

	require.Error(t, err)
	assert.Equal(t, sitecrawl.ENOTFOUND, sitecrawl.ErrorCode(err))
}

func TestBusinessService_FindBusinesses(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	s := sqlite.NewBusinessService(db)
	mustCreateBusiness(t, db, "acme")
	mustCreateBusiness(t, db, "globex")

	t.Run("all", func(t *testing.T) {
		businesses, err := s.FindBusinesses(context.Background(), sitecrawl.BusinessFilter{})
		require.NoError(t, err)
		assert.Len(t, businesses, 2)
	})

	t.Run("by name", func(t *testing.T) {
		name := "globex"
		businesses, err := s.FindBusinesses(context.Background(), sitecrawl.BusinessFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, businesses, 1)
		assert.Equal(t, "globex", businesses[0].Name)
	})

	t.Run("limit", func(t *testing.T) {
		businesses, err := s.FindBusinesses(context.Background(), sitecrawl.BusinessFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, businesses, 1)
	})
}

func TestBusinessService_UpdateBusinessStatus(t *testing.T) {
	t.Parallel()

	t.Run("transitions status", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewBusinessService(db)
		business := mustCreateBusiness(t, db, "acme")

		require.NoError(t, s.UpdateBusinessStatus(context.Background(), business.ID, sitecrawl.StatusCrawling))
		require.NoError(t, s.UpdateBusinessStatus(context.Background(), business.ID, sitecrawl.StatusCompleted))

		found, err := s.FindBusinessByID(context.Background(), business.ID)
		require.NoError(t, err)
		assert.Equal(t, sitecrawl.StatusCompleted, found.Status)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		err := sqlite.NewBusinessService(db).UpdateBusinessStatus(context.Background(), "no-such-id", sitecrawl.StatusFailed)

		require.Error(t, err)
		assert.Equal(t, sitecrawl.ENOTFOUND, sitecrawl.ErrorCode(err))
	})
}

func TestBusinessService_DeleteBusiness(t *testing.T) {
	t.Parallel()

	t.Run("removes business and cascades to pages", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewBusinessService(db)
		pages := sqlite.NewPageService(db)
		business := mustCreateBusiness(t, db, "acme")

		require.NoError(t, pages.ReplacePages(context.Background(), business.ID, []*sitecrawl.Page{
			{URL: "https://acme.example", Title: "Acme", Content: "We forge anvils", Success: true},
		}))

		require.NoError(t, s.DeleteBusiness(context.Background(), business.ID))

		_, err := s.FindBusinessByID(context.Background(), business.ID)
		assert.Equal(t, sitecrawl.ENOTFOUND, sitecrawl.ErrorCode(err))

		count, err := pages.CountPagesByBusiness(context.Background(), business.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		err := sqlite.NewBusinessService(db).DeleteBusiness(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, sitecrawl.ENOTFOUND, sitecrawl.ErrorCode(err))
	})
}
