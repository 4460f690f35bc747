// Package sitecrawl discovers and scrapes the content pages of a single
// website on behalf of a business profile. It combines well-known-path
// probing with seed-page link scraping to build a bounded candidate set,
// fetches each candidate with a static HTTP strategy or a rendered
// headless-browser strategy, extracts title, description, and main body
// text, and aggregates per-page outcomes into one crawl result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, goquery/).
package sitecrawl
