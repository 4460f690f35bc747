package main

import (
	"fmt"

	"github.com/jgrzelak/sitecrawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	business, err := findBusinessByName(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	if deps.RunCrawl == nil {
		err := sitecrawl.Errorf(sitecrawl.EINTERNAL, "crawl engine not configured")
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	if err := deps.Businesses.UpdateBusinessStatus(deps.Ctx, business.ID, sitecrawl.StatusCrawling); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	// The status must land on a terminal value no matter how the crawl ends.
	status := sitecrawl.StatusFailed
	defer func() {
		if err := deps.Businesses.UpdateBusinessStatus(deps.Ctx, business.ID, status); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		}
	}()

	fmt.Fprintf(deps.Stdout, "Crawling %q (%s)\n", business.Name, business.WebsiteURL)

	result := deps.RunCrawl(deps.Ctx, business.WebsiteURL, c, deps.Stdout, deps.Stderr)

	if !result.Success {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Err)
		return sitecrawl.Errorf(sitecrawl.EUNAVAILABLE, "crawl failed: %s", result.Err)
	}

	if err := deps.Pages.ReplacePages(deps.Ctx, business.ID, result.Pages); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}
	status = sitecrawl.StatusCompleted

	fmt.Fprintf(deps.Stdout, "  Saved %d of %d discovered pages\n", result.Scraped, result.Discovered)
	return nil
}
