// Package rod implements the rendered fetch strategy using Chrome browser
// automation via go-rod.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jgrzelak/sitecrawl"
)

// DefaultPageTimeout bounds how long a single page may take to render.
const DefaultPageTimeout = 30 * time.Second

// networkIdleWindow is how long the network must stay quiet after the load
// event before the page counts as settled. networkIdleTimeout bounds the
// wait so pages that poll forever are still extracted.
const (
	networkIdleWindow  = 500 * time.Millisecond
	networkIdleTimeout = 10 * time.Second
)

// Ensure Scraper implements sitecrawl.Scraper at compile time.
var _ sitecrawl.Scraper = (*Scraper)(nil)

// extractScript runs inside the page after load. It probes the same content
// selectors as the static extractor, in the same priority order, and falls
// back to the document body.
const extractScript = `() => {
	const selectors = [
		"main",
		'[role="main"]',
		".main-content",
		".content",
		".post-content",
		".entry-content",
		"article",
		".container",
	];
	let root = null;
	for (const sel of selectors) {
		const el = document.querySelector(sel);
		if (el && el.innerText && el.innerText.trim()) {
			root = el;
			break;
		}
	}
	if (!root) {
		root = document.body;
	}
	const meta = document.querySelector('meta[name="description"]');
	return {
		title: document.title || "",
		description: meta ? (meta.getAttribute("content") || "") : "",
		content: root && root.innerText ? root.innerText : "",
	};
}`

// Scraper is the rendered fetch strategy: it drives a headless Chrome
// instance, waits for the page to load and its network to go idle, and
// extracts content from the live DOM so JavaScript-rendered markup is
// visible. One Scraper owns one browser
// for one crawl invocation; all pages in the batch share the same render
// evasion profile.
//
// Every per-page fault is converted into a failed Page; Scrape never panics
// or aborts a batch.
type Scraper struct {
	provider sitecrawl.ProfileProvider
	profile  sitecrawl.RenderProfile
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithPageTimeout sets the per-page render timeout.
// Defaults to DefaultPageTimeout (30s) if not specified.
func WithPageTimeout(d time.Duration) ScraperOption {
	return func(s *Scraper) {
		s.timeout = d
	}
}

// NewScraper launches a headless Chrome browser and takes a render profile
// from the provider. Close must be called when the Scraper is no longer
// needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched; callers
// treat that as the rendered strategy being unavailable.
func NewScraper(provider sitecrawl.ProfileProvider, opts ...ScraperOption) (*Scraper, error) {
	s := &Scraper{
		provider: provider,
		profile:  provider.RenderProfile(),
		timeout:  DefaultPageTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	s.launcher = lnchr
	s.browser = browser
	return s, nil
}

// Scrape renders the URL in the browser and extracts its content. Navigation
// errors, render timeouts, and script failures are all captured on the
// returned Page rather than propagated.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) *sitecrawl.Page {
	// Politeness pause before each navigation.
	if err := s.provider.Delay(ctx); err != nil {
		return sitecrawl.FailedPage(pageURL, err.Error())
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return sitecrawl.FailedPage(pageURL, fmt.Sprintf("opening page: %v", err))
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(s.timeout)

	if err := s.applyProfile(page); err != nil {
		return sitecrawl.FailedPage(pageURL, fmt.Sprintf("applying profile: %v", err))
	}

	if err := page.Navigate(pageURL); err != nil {
		return sitecrawl.FailedPage(pageURL, fmt.Sprintf("navigating: %v", err))
	}
	if err := page.WaitLoad(); err != nil {
		return sitecrawl.FailedPage(pageURL, fmt.Sprintf("waiting for load: %v", err))
	}

	// Script-driven pages fill the DOM via XHR after the load event, so wait
	// for the network to go quiet before reading it.
	page.Timeout(networkIdleTimeout).WaitRequestIdle(networkIdleWindow, nil, nil, nil)()

	obj, err := page.Eval(extractScript)
	if err != nil {
		return sitecrawl.FailedPage(pageURL, fmt.Sprintf("extracting content: %v", err))
	}

	return &sitecrawl.Page{
		URL:         pageURL,
		Title:       obj.Value.Get("title").Str(),
		Description: obj.Value.Get("description").Str(),
		Content:     sitecrawl.NormalizeText(obj.Value.Get("content").Str()),
		Success:     true,
	}
}

// applyProfile installs the render profile's user agent and viewport on a
// fresh page.
func (s *Scraper) applyProfile(page *rod.Page) error {
	override := &proto.NetworkSetUserAgentOverride{
		UserAgent:      s.profile.UserAgent,
		AcceptLanguage: s.profile.Headers["Accept-Language"],
	}
	if err := page.SetUserAgent(override); err != nil {
		return err
	}

	return page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             s.profile.Viewport.Width,
		Height:            s.profile.Viewport.Height,
		DeviceScaleFactor: 1,
	})
}

// Close shuts down the browser and its launcher process.
func (s *Scraper) Close() error {
	err := s.browser.Close()
	s.launcher.Kill()
	return err
}
