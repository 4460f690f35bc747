package evasion

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/jgrzelak/sitecrawl"
)

// Ensure Provider implements sitecrawl.ProfileProvider at compile time.
var _ sitecrawl.ProfileProvider = (*Provider)(nil)

// defaultUserAgents are realistic desktop browser signatures spanning the
// major engines (Blink, Gecko, WebKit).
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.2478.51",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
}

// defaultViewports are common desktop resolutions.
var defaultViewports = []sitecrawl.Viewport{
	{Width: 1920, Height: 1080},
	{Width: 1366, Height: 768},
	{Width: 1440, Height: 900},
	{Width: 1536, Height: 864},
}

// Default politeness delay bounds.
const (
	DefaultMinDelay = 1 * time.Second
	DefaultMaxDelay = 3 * time.Second
)

// Provider generates evasion profiles for fetch sessions.
// Provider is safe for concurrent use.
type Provider struct {
	mu       sync.Mutex
	rng      *rand.Rand
	rotator  *Rotator
	agents   []string
	views    []sitecrawl.Viewport
	delays   bool
	minDelay time.Duration
	maxDelay time.Duration

	// sleep is swapped in tests to avoid real waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a Provider.
type Option func(*Provider)

// WithRand injects the randomness source used for identity, viewport, proxy,
// and delay selection. Seed it for deterministic behavior in tests.
func WithRand(rng *rand.Rand) Option {
	return func(p *Provider) {
		p.rng = rng
	}
}

// WithProxies configures the proxy pool rotated across sessions.
// The rotator derives its own randomness source from the provider's, so the
// two never share unsynchronized state. Pass WithRand before WithProxies for
// deterministic proxy selection.
func WithProxies(proxies []string) Option {
	return func(p *Provider) {
		p.rotator = NewRotator(proxies, rand.New(rand.NewSource(p.rng.Int63()))) //nolint:gosec // not used for security
	}
}

// WithDelays enables politeness delays with the given bounds.
func WithDelays(minDelay, maxDelay time.Duration) Option {
	return func(p *Provider) {
		p.delays = true
		p.minDelay = minDelay
		p.maxDelay = maxDelay
	}
}

// WithUserAgents overrides the built-in user agent pool.
func WithUserAgents(agents []string) Option {
	return func(p *Provider) {
		p.agents = agents
	}
}

// WithViewports overrides the built-in viewport pool.
func WithViewports(views []sitecrawl.Viewport) Option {
	return func(p *Provider) {
		p.views = views
	}
}

// NewProvider creates a Provider. Without options it rotates the built-in
// user agent and viewport pools, assigns no proxies, and applies no delays.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		rng:      newDefaultRand(),
		agents:   defaultUserAgents,
		views:    defaultViewports,
		minDelay: DefaultMinDelay,
		maxDelay: DefaultMaxDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rotator == nil {
		p.rotator = NewRotator(nil, p.rng)
	}
	p.sleep = sleepContext
	return p
}

// SessionProfile assembles a profile for a static HTTP session: a random
// user agent, the baseline header set, and an optional proxy assignment.
func (p *Provider) SessionProfile() sitecrawl.SessionProfile {
	profile := sitecrawl.SessionProfile{
		UserAgent: p.randomAgent(),
		Headers: map[string]string{
			"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
			"Accept-Language":           "en-US,en;q=0.5",
			"Accept-Encoding":           "gzip, deflate",
			"Connection":                "keep-alive",
			"Upgrade-Insecure-Requests": "1",
		},
	}

	if proxy, ok := p.rotator.Next(); ok {
		profile.Proxy = proxy
	}

	return profile
}

// RenderProfile assembles a profile for a headless-browser session: a random
// user agent and a viewport from the resolution pool. The browser strategy
// handles transport itself, so no proxy is assigned.
func (p *Provider) RenderProfile() sitecrawl.RenderProfile {
	p.mu.Lock()
	view := p.views[p.rng.Intn(len(p.views))]
	p.mu.Unlock()

	return sitecrawl.RenderProfile{
		UserAgent: p.randomAgent(),
		Viewport:  view,
		Headers: map[string]string{
			"Accept-Language": "en-US,en;q=0.9",
			"Accept-Encoding": "gzip, deflate, br",
		},
	}
}

// MarkProxyFailed records a proxy endpoint as unusable for the rest of the run.
func (p *Provider) MarkProxyFailed(endpoint string) {
	p.rotator.MarkFailed(endpoint)
}

// Delay pauses for a uniformly-random duration in [min, max]. It is a no-op
// when delays are disabled and returns the context error if canceled.
func (p *Provider) Delay(ctx context.Context) error {
	if !p.delays {
		return nil
	}

	p.mu.Lock()
	d := p.minDelay
	if span := p.maxDelay - p.minDelay; span > 0 {
		d += time.Duration(p.rng.Int63n(int64(span) + 1))
	}
	p.mu.Unlock()

	return p.sleep(ctx, d)
}

func (p *Provider) randomAgent() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.agents[p.rng.Intn(len(p.agents))]
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func newDefaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // not used for security
}
