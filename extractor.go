package sitecrawl

import "strings"

// ExtractResult holds the content extracted from a page's markup.
type ExtractResult struct {
	// Title is the text of the first title element, trimmed.
	Title string

	// Description is the content attribute of the description meta tag.
	Description string

	// Content is the cleaned main-body text.
	Content string
}

// Extractor derives title, description, and main-body text from raw HTML.
type Extractor interface {
	// Extract parses the markup and returns the extracted content.
	// Missing title or description yield empty strings, not errors.
	Extract(html string) (*ExtractResult, error)
}

// NormalizeText collapses whitespace noise in extracted text without
// altering semantic line boundaries: each line is trimmed and empty lines
// are dropped.
func NormalizeText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
