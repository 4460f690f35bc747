package main

import (
	"fmt"

	"github.com/jgrzelak/sitecrawl"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	business, err := findBusinessByName(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	pages, err := deps.Pages.FindPagesByBusiness(deps.Ctx, business.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintf(deps.Stdout, "No pages stored for %q. Run 'sitecrawl crawl %s' first.\n", c.Name, c.Name)
		return nil
	}

	if c.Full {
		out, err := sitecrawl.FormatPages(pages, sitecrawl.ExportText)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, out)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Pages for %s (%d total):\n\n", c.Name, len(pages))
	for i, page := range pages {
		title := page.Title
		if title == "" {
			title = page.URL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, title, page.URL)
	}

	return nil
}
