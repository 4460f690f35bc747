package main

import (
	"fmt"

	"github.com/jgrzelak/sitecrawl"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Reject duplicate names early so the error names the conflict rather
	// than surfacing a constraint violation.
	existing, err := deps.Businesses.FindBusinesses(deps.Ctx, sitecrawl.BusinessFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}
	if len(existing) > 0 {
		err := sitecrawl.Errorf(sitecrawl.ECONFLICT, "business %q already exists", c.Name)
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	business := &sitecrawl.Business{
		Name:        c.Name,
		WebsiteURL:  c.URL,
		Description: c.Description,
		Industry:    c.Industry,
	}

	if err := deps.Businesses.CreateBusiness(deps.Ctx, business); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added business %q (%s)\n", c.Name, business.ID)
	return nil
}
