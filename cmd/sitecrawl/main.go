package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/jgrzelak/sitecrawl"
	"github.com/jgrzelak/sitecrawl/crawl"
	"github.com/jgrzelak/sitecrawl/evasion"
	"github.com/jgrzelak/sitecrawl/firecrawl"
	"github.com/jgrzelak/sitecrawl/goquery"
	crawlhttp "github.com/jgrzelak/sitecrawl/http"
	"github.com/jgrzelak/sitecrawl/rod"
	crawlslog "github.com/jgrzelak/sitecrawl/slog"
	"github.com/jgrzelak/sitecrawl/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	BusinessService sitecrawl.BusinessService
	PageService     sitecrawl.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitecrawl"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitecrawl --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITECRAWL_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.BusinessService = sqlite.NewBusinessService(m.DB)
	m.PageService = sqlite.NewPageService(m.DB)
	deps.DB = m.DB
	deps.Businesses = m.BusinessService
	deps.Pages = m.PageService

	// The crawl engine is assembled per invocation so each crawl gets fresh
	// session profiles.
	if cmd == "crawl" {
		deps.RunCrawl = runCrawl
	}

	return kongCtx.Run(deps)
}

// runCrawl assembles the crawl engine from the command flags and executes a
// single crawl, reporting progress to stdout.
func runCrawl(ctx context.Context, seedURL string, cmd *CrawlCmd, stdout, stderr io.Writer) *sitecrawl.CrawlResult {
	strategy, err := sitecrawl.ParseStrategy(cmd.Strategy)
	if err != nil {
		return &sitecrawl.CrawlResult{Err: sitecrawl.ErrorMessage(err)}
	}

	providerOpts := []evasion.Option{}
	if len(cmd.Proxy) > 0 {
		providerOpts = append(providerOpts, evasion.WithProxies(cmd.Proxy))
	}
	if !cmd.NoDelays {
		providerOpts = append(providerOpts, evasion.WithDelays(evasion.DefaultMinDelay, evasion.DefaultMaxDelay))
	}
	provider := evasion.NewProvider(providerOpts...)

	static, err := crawlhttp.NewScraper(provider, goquery.NewExtractor(), crawlhttp.WithTimeout(cmd.Timeout))
	if err != nil {
		return &sitecrawl.CrawlResult{Err: sitecrawl.ErrorMessage(err)}
	}
	defer static.Close()

	fetcher := crawlhttp.NewFetcher(provider, crawlhttp.WithFetchTimeout(cmd.Timeout))
	defer fetcher.Close()

	var discoverer sitecrawl.Discoverer = crawl.NewDiscoverer(fetcher,
		crawl.WithSitemap(crawlhttp.NewSitemapSource(nil)))

	var staticScraper sitecrawl.Scraper = static
	if cmd.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		discoverer = crawlslog.NewLoggingDiscoverer(discoverer, logger)
		staticScraper = crawlslog.NewLoggingScraper(staticScraper, logger)
	}

	crawler := &crawl.Crawler{
		Discoverer: discoverer,
		Static:     staticScraper,
		Rendered: func() (sitecrawl.Scraper, error) {
			return rod.NewScraper(provider)
		},
		Throttle:    crawlThrottle(cmd.NoDelays),
		Concurrency: cmd.Concurrency,
	}
	if cmd.FirecrawlKey != "" {
		crawler.API = firecrawl.NewClient(cmd.FirecrawlKey)
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressDiscovering:
			fmt.Fprintf(stdout, "  Discovering pages on %s\n", seedURL)
		case crawl.ProgressFetching:
			fmt.Fprintf(stdout, "  Found %d URLs\n", event.Total)
		case crawl.ProgressPageFailed:
			fmt.Fprintf(stderr, "  skip %s: %s\n", event.URL, event.Err)
		}
	}

	return crawler.Run(ctx, seedURL, cmd.MaxPages, strategy, progress)
}

// crawlThrottle paces fetches at a politeness rate. Disabling delays turns
// pacing off entirely.
func crawlThrottle(noDelays bool) *crawl.Throttle {
	if noDelays {
		return nil
	}
	return crawl.NewThrottle(1.0)
}

func defaultDBPath() string {
	if path := os.Getenv("SITECRAWL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitecrawl.db"
	}
	dir := filepath.Join(home, ".sitecrawl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitecrawl.db")
}
