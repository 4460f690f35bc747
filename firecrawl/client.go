// Package firecrawl implements a client for the Firecrawl scrape API, used
// as the preferred crawl delegate when an API key is configured.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jgrzelak/sitecrawl"
)

// DefaultBaseURL is the hosted Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// DefaultTimeout bounds a single scrape call.
const DefaultTimeout = 60 * time.Second

// Ensure Client implements sitecrawl.CrawlAPI at compile time.
var _ sitecrawl.CrawlAPI = (*Client)(nil)

// Client calls the Firecrawl /v1/scrape endpoint. It is safe for concurrent
// use by multiple goroutines.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint. Used for self-hosted deployments
// and tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client authenticating with the given API key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// scrapeRequest is the /v1/scrape request body.
type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats,omitempty"`
}

// scrapeResponse is the /v1/scrape response body.
type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		Markdown string `json:"markdown,omitempty"`
		HTML     string `json:"html,omitempty"`
		Metadata struct {
			Title       string `json:"title,omitempty"`
			Description string `json:"description,omitempty"`
			SourceURL   string `json:"sourceURL,omitempty"`
			StatusCode  int    `json:"statusCode,omitempty"`
		} `json:"metadata"`
	} `json:"data"`
}

// Scrape submits a single URL to the API and maps the result onto a Page.
// Any transport or API fault returns an error so the caller can fall back to
// a local strategy.
func (c *Client) Scrape(ctx context.Context, pageURL string, formats []string) (*sitecrawl.Page, error) {
	if len(formats) == 0 {
		formats = []string{"markdown"}
	}

	reqBody, err := json.Marshal(scrapeRequest{URL: pageURL, Formats: formats})
	if err != nil {
		return nil, fmt.Errorf("marshaling scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/scrape", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating scrape request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, sitecrawl.Errorf(sitecrawl.EUNAVAILABLE, "calling scrape API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, sitecrawl.Errorf(sitecrawl.EUNAVAILABLE, "scrape API returned HTTP %d: %s", resp.StatusCode, body)
	}

	var sr scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding scrape response: %w", err)
	}
	if !sr.Success {
		return nil, sitecrawl.Errorf(sitecrawl.EUNAVAILABLE, "scrape API error: %s", sr.Error)
	}

	return &sitecrawl.Page{
		URL:         pageURL,
		Title:       sr.Data.Metadata.Title,
		Description: sr.Data.Metadata.Description,
		Content:     sitecrawl.NormalizeText(sr.Data.Markdown),
		Success:     true,
	}, nil
}
