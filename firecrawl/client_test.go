package firecrawl_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jgrzelak/sitecrawl"
	"github.com/jgrzelak/sitecrawl/firecrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Scrape(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/scrape", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			URL     string   `json:"url"`
			Formats []string `json:"formats"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://acme.example/about", req.URL)
		assert.Equal(t, []string{"markdown"}, req.Formats)

		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"markdown": "We forge anvils.",
				"metadata": {
					"title": "About Acme",
					"description": "Anvil makers",
					"sourceURL": "https://acme.example/about",
					"statusCode": 200
				}
			}
		}`))
	}))
	defer srv.Close()

	c := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))

	page, err := c.Scrape(context.Background(), "https://acme.example/about", nil)

	require.NoError(t, err)
	assert.True(t, page.Success)
	assert.Equal(t, "https://acme.example/about", page.URL)
	assert.Equal(t, "About Acme", page.Title)
	assert.Equal(t, "Anvil makers", page.Description)
	assert.Equal(t, "We forge anvils.", page.Content)
}

func TestClient_Scrape_APIErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))

	_, err := c.Scrape(context.Background(), "https://acme.example", nil)

	require.Error(t, err)
	assert.Equal(t, sitecrawl.EUNAVAILABLE, sitecrawl.ErrorCode(err))
	assert.Contains(t, sitecrawl.ErrorMessage(err), "HTTP 429")
}

func TestClient_Scrape_UnsuccessfulResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "could not render page"}`))
	}))
	defer srv.Close()

	c := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))

	_, err := c.Scrape(context.Background(), "https://acme.example", nil)

	require.Error(t, err)
	assert.Equal(t, sitecrawl.EUNAVAILABLE, sitecrawl.ErrorCode(err))
	assert.Contains(t, sitecrawl.ErrorMessage(err), "could not render page")
}

func TestClient_Scrape_TransportError(t *testing.T) {
	t.Parallel()

	c := firecrawl.NewClient("test-key", firecrawl.WithBaseURL("http://127.0.0.1:1"))

	_, err := c.Scrape(context.Background(), "https://acme.example", nil)

	require.Error(t, err)
	assert.Equal(t, sitecrawl.EUNAVAILABLE, sitecrawl.ErrorCode(err))
}
