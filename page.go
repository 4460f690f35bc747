package sitecrawl

import (
	"context"
	"strings"
)

// Page represents the outcome of fetching a single candidate URL.
// Exactly one fetch strategy produces a Page per candidate. A Page is
// immutable once produced; failures are recorded on the Page itself rather
// than propagated as errors, so a single bad URL never aborts a batch.
type Page struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Content is the cleaned main-body text: paragraphs joined by newlines,
	// with blank lines dropped.
	Content string `json:"content"`

	// ContentHash is a hex-encoded xxhash of Content, used for idempotency
	// checks and persistence dedup.
	ContentHash string `json:"contentHash,omitempty"`

	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// FailedPage builds a failed Page for the given URL carrying a
// human-readable reason.
func FailedPage(url, reason string) *Page {
	return &Page{URL: url, Error: reason}
}

// CrawlResult aggregates the outcome of one crawl invocation.
// Pages holds only the successful pages, in attempt order. The result is
// created fresh per invocation and handed to the persistence collaborator;
// the crawl engine itself retains nothing.
type CrawlResult struct {
	Success bool    `json:"success"`
	Pages   []*Page `json:"pages"`

	// Discovered counts candidate URLs; Scraped counts successful pages.
	Discovered int `json:"urlsDiscovered"`
	Scraped    int `json:"totalPages"`

	// Err is set when the whole crawl failed (discovery produced nothing,
	// every fetch failed, or an unexpected fault was caught).
	Err string `json:"error,omitempty"`
}

// Strategy selects a fetch strategy for a crawl invocation.
type Strategy int

// Fetch strategies.
const (
	// StrategyAuto prefers a configured third-party crawl API and falls back
	// to the static strategy.
	StrategyAuto Strategy = iota

	// StrategyStatic fetches raw HTML over HTTP and parses it as markup.
	StrategyStatic

	// StrategyRendered executes page scripts in a headless browser before
	// extraction.
	StrategyRendered
)

// String returns the strategy's name.
func (s Strategy) String() string {
	switch s {
	case StrategyStatic:
		return "static"
	case StrategyRendered:
		return "rendered"
	default:
		return "auto"
	}
}

// ParseStrategy converts a strategy name to a Strategy.
// Returns EINVALID for unrecognized names.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return StrategyAuto, nil
	case "static":
		return StrategyStatic, nil
	case "rendered":
		return StrategyRendered, nil
	default:
		return StrategyAuto, Errorf(EINVALID, "unknown strategy %q", name)
	}
}

// Scraper fetches and extracts a single page.
// Implementations convert every per-page fault (network error, timeout,
// non-success status, navigation failure, parse error) into a failed Page;
// Scrape never returns nil.
type Scraper interface {
	// Scrape fetches the URL and returns the extracted page.
	Scrape(ctx context.Context, url string) *Page

	// Close releases resources held by the scraper (HTTP connections,
	// browser processes). Must be called once the batch is done.
	Close() error
}

// CrawlAPI is an optional third-party scraping capability (e.g. Firecrawl).
// Unlike Scraper, a per-URL error is returned to the caller so the
// orchestrator can apply its fallback policy.
type CrawlAPI interface {
	// Scrape requests the URL from the remote API in the given formats
	// (e.g. "markdown") and maps the response onto a Page.
	Scrape(ctx context.Context, url string, formats []string) (*Page, error)
}
