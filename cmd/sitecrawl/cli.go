package main

import (
	"context"
	"io"
	"time"

	"github.com/jgrzelak/sitecrawl"
	"github.com/jgrzelak/sitecrawl/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Businesses sitecrawl.BusinessService
	Pages      sitecrawl.PageService

	// RunCrawl executes one crawl invocation for the crawl command. Wired in
	// main so tests can substitute the whole engine.
	RunCrawl func(ctx context.Context, seedURL string, cmd *CrawlCmd, stdout, stderr io.Writer) *sitecrawl.CrawlResult
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add    AddCmd    `cmd:"" help:"Register a business profile"`
	List   ListCmd   `cmd:"" help:"List registered businesses"`
	Crawl  CrawlCmd  `cmd:"" help:"Crawl a business website and store its pages"`
	Pages  PagesCmd  `cmd:"" help:"List stored pages for a business"`
	Export ExportCmd `cmd:"" help:"Export stored pages as json, csv, or text"`
	Delete DeleteCmd `cmd:"" help:"Delete a business and its pages"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name        string `arg:"" help:"Business name"`
	URL         string `arg:"" help:"Business website URL"`
	Description string `help:"Business description"`
	Industry    string `help:"Business industry"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Name         string        `arg:"" help:"Business name"`
	MaxPages     int           `default:"10" help:"Page cap for this crawl"`
	Strategy     string        `default:"auto" enum:"auto,static,rendered" help:"Fetch strategy"`
	Proxy        []string      `help:"Proxy endpoint (repeatable)"`
	NoDelays     bool          `help:"Disable politeness delays"`
	Timeout      time.Duration `default:"10s" help:"Per-request timeout"`
	Concurrency  int           `short:"c" default:"1" help:"Concurrent fetch limit"`
	FirecrawlKey string        `env:"FIRECRAWL_API_KEY" help:"Firecrawl API key enabling the crawl API delegate"`
	Verbose      bool          `short:"v" help:"Log discovery and fetch activity to stderr"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Name string `arg:"" help:"Business name"`
	Full bool   `help:"Show full page content"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name   string `arg:"" help:"Business name"`
	Format string `default:"text" enum:"json,csv,text" help:"Export format"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Business name"`
	Force bool   `help:"Confirm deletion"`
}

// findBusinessByName resolves a business by its unique name.
func findBusinessByName(deps *Dependencies, name string) (*sitecrawl.Business, error) {
	businesses, err := deps.Businesses.FindBusinesses(deps.Ctx, sitecrawl.BusinessFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		return nil, sitecrawl.Errorf(sitecrawl.ENOTFOUND, "business %q not found", name)
	}
	return businesses[0], nil
}
