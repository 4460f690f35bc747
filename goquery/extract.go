// Package goquery provides markup-based content extraction and link
// scraping using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jgrzelak/sitecrawl"
)

// Ensure Extractor implements sitecrawl.Extractor at compile time.
var _ sitecrawl.Extractor = (*Extractor)(nil)

// contentSelectors is the prioritized container probe order for main-body
// extraction. The first matching container wins; the full body is the
// fallback.
var contentSelectors = []string{
	"main",
	"[role=\"main\"]",
	".main-content",
	".content",
	".post-content",
	".entry-content",
	"article",
	".container",
}

// Extractor derives title, meta description, and cleaned main-body text from
// raw HTML using a prioritized container-selection heuristic.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the markup and returns title, description, and body text.
// A missing title or description meta tag yields an empty string; only an
// unparseable document is an error.
func (e *Extractor) Extract(html string) (*sitecrawl.ExtractResult, error) {
	if html == "" {
		return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	description, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	description = strings.TrimSpace(description)

	// Script and style text must never leak into the body.
	doc.Find("script, style").Remove()

	return &sitecrawl.ExtractResult{
		Title:       title,
		Description: description,
		Content:     extractBody(doc),
	}, nil
}

// extractBody probes the container priority list and returns the first
// match's text, falling back to the full body text.
func extractBody(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			return sitecrawl.NormalizeText(nodeText(sel))
		}
	}
	return sitecrawl.NormalizeText(nodeText(doc.Find("body").First()))
}

// nodeText returns the selection's text with element boundaries preserved as
// newlines, so block-level structure survives into the line-based cleanup.
func nodeText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range sel.Nodes {
		writeNodeText(&sb, node)
	}
	return sb.String()
}
