package goquery_test

import (
	"testing"

	"github.com/jgrzelak/sitecrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks_ResolvesRelativeHrefs(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/about">About</a>
<a href="contact">Contact</a>
<a href="https://example.com/services">Services</a>
</body></html>`

	links, err := goquery.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.com/about",
		"https://example.com/contact",
		"https://example.com/services",
	}, links)
}

func TestExtractLinks_FiltersExternalHosts(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="https://example.com/about">About</a>
<a href="https://other.com/page">External</a>
<a href="https://sub.example.com/page">Subdomain</a>
</body></html>`

	links, err := goquery.ExtractLinks(html, "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/about"}, links)
}

func TestExtractLinks_DeduplicatesAndStripsFragments(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/pricing">Pricing</a>
<a href="/pricing#plans">Plans</a>
<a href="/pricing">Pricing again</a>
</body></html>`

	links, err := goquery.ExtractLinks(html, "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/pricing"}, links)
}

func TestExtractLinks_SkipsNonHTTPSchemes(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="javascript:void(0)">JS</a>
<a href="mailto:info@example.com">Mail</a>
<a href="tel:+15551234567">Phone</a>
<a href="/team">Team</a>
</body></html>`

	links, err := goquery.ExtractLinks(html, "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/team"}, links)
}

func TestExtractLinks_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := goquery.ExtractLinks("<html></html>", "://bad")

	require.Error(t, err)
}
