// Package http provides the HTTP-based fetch strategy for static sites that
// don't require JavaScript rendering, plus seed-page and sitemap fetching
// used during URL discovery.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jgrzelak/sitecrawl"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with the rendered strategy's per-page timeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements sitecrawl.Fetcher at compile time.
var _ sitecrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw HTML from URLs. It carries a session evasion profile
// (user agent and baseline headers) but no proxy; it is used for best-effort
// discovery fetches of the seed page.
type Fetcher struct {
	client  *http.Client
	profile sitecrawl.SessionProfile
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates an HTTP Fetcher wearing a session profile from the
// provider. A nil provider yields a plain client with no identity headers.
func NewFetcher(provider sitecrawl.ProfileProvider, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	if provider != nil {
		f.profile = provider.SessionProfile()
		f.profile.Proxy = "" // discovery fetches go direct
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	applyProfile(req, f.profile)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// applyProfile sets the session profile's identity headers on a request.
// Accept-Encoding is left to the transport: setting it manually disables
// Go's transparent gzip decompression.
func applyProfile(req *http.Request, profile sitecrawl.SessionProfile) {
	if profile.UserAgent != "" {
		req.Header.Set("User-Agent", profile.UserAgent)
	}
	for name, value := range profile.Headers {
		if http.CanonicalHeaderKey(name) == "Accept-Encoding" {
			continue
		}
		req.Header.Set(name, value)
	}
}
