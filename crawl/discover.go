package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/jgrzelak/sitecrawl"
	"github.com/jgrzelak/sitecrawl/bloom"
	"github.com/jgrzelak/sitecrawl/goquery"
)

// Bloom filter sizing for one discovery pass.
const (
	expectedCandidates = 10000
	falsePositiveRate  = 0.01
)

// Ensure Discoverer implements sitecrawl.Discoverer at compile time.
var _ sitecrawl.Discoverer = (*Discoverer)(nil)

// Discoverer produces a bounded candidate set for a seed URL by combining
// well-known path guesses, anchors scraped from the seed page, and an
// optional sitemap probe. Candidates are same-host only and deduplicated.
type Discoverer struct {
	fetcher sitecrawl.Fetcher
	sitemap sitecrawl.SitemapSource
}

// DiscovererOption configures a Discoverer.
type DiscovererOption func(*Discoverer)

// WithSitemap adds a sitemap source consulted when the candidate set is
// still under the cap after path guessing and seed-page scraping.
func WithSitemap(source sitecrawl.SitemapSource) DiscovererOption {
	return func(d *Discoverer) {
		d.sitemap = source
	}
}

// NewDiscoverer creates a Discoverer that scrapes seed-page anchors with the
// given fetcher.
func NewDiscoverer(fetcher sitecrawl.Fetcher, opts ...DiscovererOption) *Discoverer {
	d := &Discoverer{fetcher: fetcher}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover returns at most maxPages candidates for the seed, in source
// priority order: well-known paths first, then seed-page anchors, then
// sitemap entries. The seed page being unreachable is tolerated; an error is
// returned only for an unusable seed URL or a canceled context.
func (d *Discoverer) Discover(ctx context.Context, seedURL string, maxPages int) ([]sitecrawl.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if maxPages <= 0 {
		return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "max pages must be positive, got %d", maxPages)
	}

	seed, err := url.Parse(strings.TrimSpace(seedURL))
	if err != nil || seed.Host == "" || (seed.Scheme != "http" && seed.Scheme != "https") {
		return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "invalid seed URL %q", seedURL)
	}

	origin := &url.URL{Scheme: seed.Scheme, Host: seed.Host}
	seen := bloom.NewSeenSet(expectedCandidates, falsePositiveRate)
	var candidates []sitecrawl.Candidate

	add := func(raw string) bool {
		if len(candidates) >= maxPages {
			return true
		}
		u, err := url.Parse(raw)
		if err != nil || !validCandidate(u, seed.Host) {
			return false
		}
		if !seen.Admit(u.String()) {
			return false
		}
		candidates = append(candidates, sitecrawl.Candidate{URL: u.String(), Host: u.Host})
		return len(candidates) >= maxPages
	}

	for _, p := range wellKnownPaths {
		if add(origin.String() + p) {
			return candidates, nil
		}
	}

	// Seed-page anchors, best effort. An unreachable seed page is not fatal.
	html, err := d.fetcher.Fetch(ctx, seedURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	} else if links, err := goquery.ExtractLinks(html, seedURL); err == nil {
		for _, link := range links {
			if add(link) {
				return candidates, nil
			}
		}
	}

	// Sitemap supplement, also best effort.
	if d.sitemap != nil {
		urls, err := d.sitemap.URLs(ctx, origin.String())
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		for _, u := range urls {
			if add(u) {
				return candidates, nil
			}
		}
	}

	return candidates, nil
}
