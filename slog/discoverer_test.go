package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jgrzelak/sitecrawl"
	"github.com/jgrzelak/sitecrawl/mock"
	crawlslog "github.com/jgrzelak/sitecrawl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Discoverer{
			DiscoverFn: func(ctx context.Context, seedURL string, maxPages int) ([]sitecrawl.Candidate, error) {
				return []sitecrawl.Candidate{
					{URL: "https://example.com", Host: "example.com"},
					{URL: "https://example.com/about", Host: "example.com"},
				}, nil
			},
		}

		d := crawlslog.NewLoggingDiscoverer(inner, logger)
		candidates, err := d.Discover(context.Background(), "https://example.com", 10)

		require.NoError(t, err)
		assert.Len(t, candidates, 2)
		output := buf.String()
		assert.Contains(t, output, "discovery")
		assert.Contains(t, output, "seed=https://example.com")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Discoverer{
			DiscoverFn: func(ctx context.Context, seedURL string, maxPages int) ([]sitecrawl.Candidate, error) {
				return nil, errors.New("seed unreachable")
			},
		}

		d := crawlslog.NewLoggingDiscoverer(inner, logger)
		_, err := d.Discover(context.Background(), "https://example.com", 10)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"seed unreachable\"")
	})
}

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("logs page outcome", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) *sitecrawl.Page {
				return &sitecrawl.Page{URL: url, Content: "We forge anvils", Success: true}
			},
		}

		s := crawlslog.NewLoggingScraper(inner, logger)
		page := s.Scrape(context.Background(), "https://example.com")

		assert.True(t, page.Success)
		output := buf.String()
		assert.Contains(t, output, "scrape")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "success=true")
		assert.Contains(t, output, "bytes=15")
	})

	t.Run("logs failed page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) *sitecrawl.Page {
				return sitecrawl.FailedPage(url, "HTTP 403")
			},
		}

		s := crawlslog.NewLoggingScraper(inner, logger)
		page := s.Scrape(context.Background(), "https://example.com")

		assert.False(t, page.Success)
		output := buf.String()
		assert.Contains(t, output, "success=false")
		assert.Contains(t, output, "err=\"HTTP 403\"")
	})
}

func TestLoggingScraper_Close(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	closeCalled := false
	inner := &mock.Scraper{
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	s := crawlslog.NewLoggingScraper(inner, logger)
	require.NoError(t, s.Close())
	assert.True(t, closeCalled)
}
