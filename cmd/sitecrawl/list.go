package main

import (
	"fmt"

	"github.com/jgrzelak/sitecrawl"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	businesses, err := deps.Businesses.FindBusinesses(deps.Ctx, sitecrawl.BusinessFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	if len(businesses) == 0 {
		fmt.Fprintln(deps.Stdout, "No businesses found. Use 'sitecrawl add' to create one.")
		return nil
	}

	for _, b := range businesses {
		count, err := deps.Pages.CountPagesByBusiness(deps.Ctx, b.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %d pages\n", b.ID, b.Name, b.WebsiteURL, b.Status, count)
	}

	return nil
}
