package sitecrawl

import "context"

// Candidate is a URL considered for fetching, not yet confirmed reachable.
// Candidates are ephemeral; they exist only within one discovery pass.
// Host always equals the seed URL's host (cross-domain candidates are
// rejected during discovery).
type Candidate struct {
	URL  string
	Host string
}

// Discoverer produces a bounded, deduplicated candidate set for a seed URL.
type Discoverer interface {
	// Discover returns at most maxPages same-host candidates for the seed.
	// A best-effort source failing (e.g. the seed page being unreachable)
	// is tolerated; an empty result with a nil error means discovery found
	// nothing. An error is returned only for an unusable seed URL.
	Discover(ctx context.Context, seedURL string, maxPages int) ([]Candidate, error)
}

// SitemapSource discovers page URLs from a site's sitemap.
type SitemapSource interface {
	// URLs returns the URLs listed by the site's sitemap, resolving sitemap
	// indexes recursively. Returns an empty slice when no sitemap exists.
	URLs(ctx context.Context, baseURL string) ([]string, error)
}

// Fetcher retrieves raw HTML from a URL. It is used during discovery to
// scrape links from the seed page.
type Fetcher interface {
	// Fetch returns the HTML body for the URL.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
