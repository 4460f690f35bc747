package sitecrawl_test

import (
	"testing"

	"github.com/jgrzelak/sitecrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusiness_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid business", func(t *testing.T) {
		t.Parallel()

		b := &sitecrawl.Business{Name: "acme", WebsiteURL: "https://acme.example"}
		assert.NoError(t, b.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		b := &sitecrawl.Business{WebsiteURL: "https://acme.example"}
		err := b.Validate()

		require.Error(t, err)
		assert.Equal(t, sitecrawl.EINVALID, sitecrawl.ErrorCode(err))
	})

	t.Run("missing website URL", func(t *testing.T) {
		t.Parallel()

		b := &sitecrawl.Business{Name: "acme"}
		err := b.Validate()

		require.Error(t, err)
		assert.Equal(t, sitecrawl.EINVALID, sitecrawl.ErrorCode(err))
	})
}

func TestCrawledPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid page", func(t *testing.T) {
		t.Parallel()

		p := &sitecrawl.CrawledPage{BusinessID: "biz-1", URL: "https://acme.example"}
		assert.NoError(t, p.Validate())
	})

	t.Run("missing business ID", func(t *testing.T) {
		t.Parallel()

		p := &sitecrawl.CrawledPage{URL: "https://acme.example"}
		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, sitecrawl.EINVALID, sitecrawl.ErrorCode(err))
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()

		p := &sitecrawl.CrawledPage{BusinessID: "biz-1"}
		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, sitecrawl.EINVALID, sitecrawl.ErrorCode(err))
	})
}
