// Package crawl provides crawl orchestration for a single business website.
// It coordinates URL discovery, fetch strategy selection, extraction, and
// partial-failure aggregation into one crawl result.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/jgrzelak/sitecrawl"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxPages caps a crawl when the caller does not override it.
const DefaultMaxPages = 10

// Crawler orchestrates one crawl invocation: Setup -> Discovering ->
// Fetching -> Completed|Failed. It owns the strategy selection policy and
// the fallback from the third-party API to the in-process strategies.
type Crawler struct {
	Discoverer sitecrawl.Discoverer

	// Static is the in-process HTTP strategy. The caller owns its lifecycle.
	Static sitecrawl.Scraper

	// Rendered builds the headless-browser strategy on demand. The scraper
	// is acquired once per batch and closed when the batch ends. A nil
	// factory or a factory error means the rendered strategy is unavailable.
	Rendered func() (sitecrawl.Scraper, error)

	// API is an optional third-party crawl delegate preferred by the auto
	// strategy. Per-URL API failures are tolerated; zero API successes fall
	// back to the static strategy.
	API sitecrawl.CrawlAPI

	// Throttle, when set, paces fetches across workers.
	Throttle *Throttle

	// Concurrency bounds parallel fetches. Defaults to 1 (sequential).
	Concurrency int
}

// ProgressEvent reports progress during a crawl invocation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Err       string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressSetup ProgressType = iota
	ProgressDiscovering
	ProgressFetching
	ProgressPageScraped
	ProgressPageFailed
	ProgressCompleted
	ProgressFailed
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run executes one crawl for the seed URL, bounded by maxPages (default 10
// when non-positive). It always returns a well-formed result: any
// unexpected fault is caught at this boundary and converted into a failed
// result rather than propagated.
func (c *Crawler) Run(ctx context.Context, seedURL string, maxPages int, strategy sitecrawl.Strategy, progress ProgressFunc) (result *sitecrawl.CrawlResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &sitecrawl.CrawlResult{Err: fmt.Sprintf("unexpected fault: %v", r)}
			emit(progress, ProgressEvent{Type: ProgressFailed, Err: result.Err})
		}
	}()

	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	emit(progress, ProgressEvent{Type: ProgressSetup, URL: seedURL})
	emit(progress, ProgressEvent{Type: ProgressDiscovering, URL: seedURL})

	candidates, err := c.Discoverer.Discover(ctx, seedURL, maxPages)
	if err != nil {
		return c.fail(progress, errorText(err))
	}
	if len(candidates) == 0 {
		return c.fail(progress, "no valid URLs discovered")
	}

	emit(progress, ProgressEvent{Type: ProgressFetching, Total: len(candidates)})

	pages, err := c.fetchAll(ctx, candidates, strategy, progress)
	if err != nil {
		return c.fail(progress, err.Error())
	}

	result = &sitecrawl.CrawlResult{Discovered: len(candidates)}
	for _, page := range pages {
		if page == nil || !page.Success {
			continue
		}
		page.ContentHash = ContentHash(page.Content)
		result.Pages = append(result.Pages, page)
	}
	result.Scraped = len(result.Pages)

	if result.Scraped == 0 {
		result.Err = "failed to scrape any pages successfully"
		emit(progress, ProgressEvent{Type: ProgressFailed, Total: result.Discovered, Err: result.Err})
		return result
	}

	result.Success = true
	emit(progress, ProgressEvent{Type: ProgressCompleted, Completed: result.Scraped, Total: result.Discovered})
	return result
}

// fetchAll applies the strategy selection policy and scrapes the batch.
// An explicit static or rendered pin overrides the API-first default; a
// pinned rendered strategy that cannot be acquired is a configuration error
// for the whole run.
func (c *Crawler) fetchAll(ctx context.Context, candidates []sitecrawl.Candidate, strategy sitecrawl.Strategy, progress ProgressFunc) ([]*sitecrawl.Page, error) {
	switch strategy {
	case sitecrawl.StrategyRendered:
		if c.Rendered == nil {
			return nil, fmt.Errorf("rendered strategy unavailable: no browser factory configured")
		}
		scraper, err := c.Rendered()
		if err != nil {
			return nil, fmt.Errorf("rendered strategy unavailable: %v", err)
		}
		defer scraper.Close()
		return c.scrapeBatch(ctx, candidates, scraper.Scrape, progress), nil

	case sitecrawl.StrategyStatic:
		return c.scrapeBatch(ctx, candidates, c.Static.Scrape, progress), nil

	default:
		if c.API != nil {
			pages := c.scrapeBatch(ctx, candidates, c.apiScrape, progress)
			if countSuccesses(pages) > 0 {
				return pages, nil
			}
			// The API produced nothing; escalate to the static strategy.
		}
		return c.scrapeBatch(ctx, candidates, c.Static.Scrape, progress), nil
	}
}

// scrapeFunc fetches one URL and never returns nil.
type scrapeFunc func(ctx context.Context, url string) *sitecrawl.Page

// scrapeBatch scrapes every candidate with bounded concurrency, preserving
// candidate order in the returned slice. Individual failures are recorded as
// failed pages and never abort the batch.
func (c *Crawler) scrapeBatch(ctx context.Context, candidates []sitecrawl.Candidate, fn scrapeFunc, progress ProgressFunc) []*sitecrawl.Page {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	pages := make([]*sitecrawl.Page, len(candidates))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			if c.Throttle != nil {
				if err := c.Throttle.Wait(gctx); err != nil {
					pages[i] = sitecrawl.FailedPage(candidate.URL, err.Error())
					c.reportPage(progress, pages[i], int(completed.Add(1)), len(candidates))
					return nil
				}
			}

			pages[i] = fn(gctx, candidate.URL)
			c.reportPage(progress, pages[i], int(completed.Add(1)), len(candidates))
			return nil
		})
	}
	_ = g.Wait()

	return pages
}

// apiScrape adapts the third-party API to the scrapeFunc shape, converting
// per-URL errors into failed pages.
func (c *Crawler) apiScrape(ctx context.Context, url string) *sitecrawl.Page {
	page, err := c.API.Scrape(ctx, url, []string{"markdown"})
	if err != nil {
		return sitecrawl.FailedPage(url, errorText(err))
	}
	return page
}

// errorText prefers the domain error message and falls back to the raw
// error string.
func errorText(err error) string {
	var e *sitecrawl.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func (c *Crawler) reportPage(progress ProgressFunc, page *sitecrawl.Page, completed, total int) {
	event := ProgressEvent{
		Type:      ProgressPageScraped,
		Completed: completed,
		Total:     total,
		URL:       page.URL,
	}
	if !page.Success {
		event.Type = ProgressPageFailed
		event.Err = page.Error
	}
	emit(progress, event)
}

func (c *Crawler) fail(progress ProgressFunc, reason string) *sitecrawl.CrawlResult {
	emit(progress, ProgressEvent{Type: ProgressFailed, Err: reason})
	return &sitecrawl.CrawlResult{Err: reason}
}

func emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

func countSuccesses(pages []*sitecrawl.Page) int {
	var n int
	for _, page := range pages {
		if page != nil && page.Success {
			n++
		}
	}
	return n
}

// ContentHash returns a hex-encoded xxhash of the content. Identical content
// hashes identically across runs regardless of header randomization.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
