package goquery_test

import (
	"testing"

	"github.com/jgrzelak/sitecrawl"
	"github.com/jgrzelak/sitecrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_TitleAndDescription(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
	<title>  Acme Corp - Home  </title>
	<meta name="description" content=" Anvils and more ">
</head>
<body><main><p>Welcome</p></main></body>
</html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp - Home", result.Title)
	assert.Equal(t, "Anvils and more", result.Description)
	assert.Equal(t, "Welcome", result.Content)
}

func TestExtractor_Extract_MissingTitleAndDescription(t *testing.T) {
	t.Parallel()

	result, err := goquery.NewExtractor().Extract("<html><body><p>Hello</p></body></html>")

	require.NoError(t, err)
	assert.Empty(t, result.Title)
	assert.Empty(t, result.Description)
	assert.Equal(t, "Hello", result.Content)
}

func TestExtractor_Extract_ContainerPriority(t *testing.T) {
	t.Parallel()

	// .content outranks article in the probe order.
	html := `<html><body>
<div class="content"><p>content text</p></div>
<article><p>article text</p></article>
</body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "content text", result.Content)
}

func TestExtractor_Extract_MainBeatsContentClass(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div class="content"><p>secondary</p></div>
<main><p>primary</p></main>
</body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "primary", result.Content)
}

func TestExtractor_Extract_RoleMain(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div role="main"><p>role main text</p></div>
<article><p>article text</p></article>
</body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "role main text", result.Content)
}

func TestExtractor_Extract_FallsBackToBody(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<p>first paragraph</p>
<p>second paragraph</p>
</body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "first paragraph\nsecond paragraph", result.Content)
}

func TestExtractor_Extract_RemovesScriptAndStyle(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<main>
	<script>var tracking = "evil";</script>
	<style>.hidden { display: none; }</style>
	<p>visible text</p>
</main>
</body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "visible text", result.Content)
	assert.NotContains(t, result.Content, "tracking")
	assert.NotContains(t, result.Content, "display")
}

func TestExtractor_Extract_NormalizesWhitespace(t *testing.T) {
	t.Parallel()

	html := `<html><body><main>
	<p>   padded line   </p>

	<p>another line</p>
</main></body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "padded line\nanother line", result.Content)
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := goquery.NewExtractor().Extract("")

	require.Error(t, err)
	assert.Equal(t, sitecrawl.EINVALID, sitecrawl.ErrorCode(err))
}
