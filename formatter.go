package sitecrawl

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"time"
)

// ExportFormat selects a serialization for persisted pages.
type ExportFormat string

// Supported export formats.
const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportText ExportFormat = "text"
)

// ParseExportFormat converts a format name to an ExportFormat.
// Returns EINVALID for unrecognized names.
func ParseExportFormat(name string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(name))) {
	case ExportJSON:
		return ExportJSON, nil
	case ExportCSV:
		return ExportCSV, nil
	case ExportText, "":
		return ExportText, nil
	default:
		return ExportText, Errorf(EINVALID, "unknown export format %q", name)
	}
}

// FormatPages serializes persisted pages in the given format.
// This is pure serialization over already-persisted data; it does not touch
// the crawl engine.
func FormatPages(pages []*CrawledPage, format ExportFormat) (string, error) {
	switch format {
	case ExportJSON:
		return formatPagesJSON(pages)
	case ExportCSV:
		return formatPagesCSV(pages)
	case ExportText:
		return formatPagesText(pages), nil
	default:
		return "", Errorf(EINVALID, "unknown export format %q", format)
	}
}

func formatPagesJSON(pages []*CrawledPage) (string, error) {
	if pages == nil {
		pages = []*CrawledPage{}
	}
	b, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func formatPagesCSV(pages []*CrawledPage) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"url", "title", "description", "content", "crawled_at"}); err != nil {
		return "", err
	}
	for _, page := range pages {
		record := []string{
			page.URL,
			page.Title,
			page.Description,
			page.Content,
			page.CrawledAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// formatPagesText renders pages as delimited plain text, suitable for LLM
// context or quick inspection. Uses the title if available, falls back to
// the URL.
func formatPagesText(pages []*CrawledPage) string {
	if len(pages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		header := page.Title
		if header == "" {
			header = page.URL
		}
		var sb strings.Builder
		sb.WriteString("## Page: " + header + "\n")
		sb.WriteString(page.URL + "\n")
		if page.Description != "" {
			sb.WriteString(page.Description + "\n")
		}
		sb.WriteString("\n" + page.Content)
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}
