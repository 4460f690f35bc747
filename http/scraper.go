package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jgrzelak/sitecrawl"
)

// Ensure Scraper implements sitecrawl.Scraper at compile time.
var _ sitecrawl.Scraper = (*Scraper)(nil)

// Scraper is the static fetch strategy: it issues an HTTP GET wearing a
// session evasion profile, and hands the raw markup to the content
// extractor. One Scraper owns one http.Client for one crawl invocation; the
// client (and its proxy assignment) is released when Close is called.
//
// Every per-page fault is converted into a failed Page; Scrape never panics
// or aborts a batch.
type Scraper struct {
	provider  sitecrawl.ProfileProvider
	extractor sitecrawl.Extractor
	profile   sitecrawl.SessionProfile
	client    *http.Client
	timeout   time.Duration
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) ScraperOption {
	return func(s *Scraper) {
		s.timeout = d
	}
}

// NewScraper creates a static Scraper with a fresh session profile from the
// provider. When the profile carries a proxy assignment, the client routes
// through it; proxy transport errors mark the endpoint failed on the
// provider so later sessions avoid it.
func NewScraper(provider sitecrawl.ProfileProvider, extractor sitecrawl.Extractor, opts ...ScraperOption) (*Scraper, error) {
	s := &Scraper{
		provider:  provider,
		extractor: extractor,
		profile:   provider.SessionProfile(),
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if s.profile.Proxy != "" {
		proxyURL, err := url.Parse(s.profile.Proxy)
		if err != nil {
			return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "invalid proxy endpoint %q: %v", s.profile.Proxy, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	s.client = &http.Client{
		Timeout:   s.timeout,
		Transport: transport,
	}

	return s, nil
}

// Scrape fetches the URL and extracts its content. Network errors,
// timeouts, HTTP status >= 400, and parse errors are all captured on the
// returned Page rather than propagated.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) *sitecrawl.Page {
	// Politeness pause before each request.
	if err := s.provider.Delay(ctx); err != nil {
		return sitecrawl.FailedPage(pageURL, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return sitecrawl.FailedPage(pageURL, fmt.Sprintf("building request: %v", err))
	}
	applyProfile(req, s.profile)

	resp, err := s.client.Do(req)
	if err != nil {
		// A canceled or expired caller context says nothing about the proxy.
		if s.profile.Proxy != "" && ctx.Err() == nil {
			s.provider.MarkProxyFailed(s.profile.Proxy)
		}
		return sitecrawl.FailedPage(pageURL, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return sitecrawl.FailedPage(pageURL, fmt.Sprintf("HTTP %d for %s", resp.StatusCode, pageURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return sitecrawl.FailedPage(pageURL, fmt.Sprintf("reading response: %v", err))
	}

	extracted, err := s.extractor.Extract(string(body))
	if err != nil {
		return sitecrawl.FailedPage(pageURL, sitecrawl.ErrorMessage(err))
	}

	return &sitecrawl.Page{
		URL:         pageURL,
		Title:       extracted.Title,
		Description: extracted.Description,
		Content:     extracted.Content,
		Success:     true,
	}
}

// Close releases the scraper's HTTP connections.
func (s *Scraper) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
