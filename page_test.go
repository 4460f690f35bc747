package sitecrawl_test

import (
	"testing"

	"github.com/jgrzelak/sitecrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want sitecrawl.Strategy
	}{
		{"auto", sitecrawl.StrategyAuto},
		{"static", sitecrawl.StrategyStatic},
		{"rendered", sitecrawl.StrategyRendered},
		{"", sitecrawl.StrategyAuto},
		{"  Static ", sitecrawl.StrategyStatic},
		{"RENDERED", sitecrawl.StrategyRendered},
	}

	for _, tt := range tests {
		t.Run("parses "+tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := sitecrawl.ParseStrategy(tt.name)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := sitecrawl.ParseStrategy("dynamic")

		require.Error(t, err)
		assert.Equal(t, sitecrawl.EINVALID, sitecrawl.ErrorCode(err))
	})
}

func TestStrategy_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "auto", sitecrawl.StrategyAuto.String())
	assert.Equal(t, "static", sitecrawl.StrategyStatic.String())
	assert.Equal(t, "rendered", sitecrawl.StrategyRendered.String())
}

func TestFailedPage(t *testing.T) {
	t.Parallel()

	page := sitecrawl.FailedPage("https://acme.example/broken", "HTTP 500")

	assert.Equal(t, "https://acme.example/broken", page.URL)
	assert.Equal(t, "HTTP 500", page.Error)
	assert.False(t, page.Success)
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims each line", "  hello  \n  world  ", "hello\nworld"},
		{"drops blank lines", "first\n\n\n   \nsecond", "first\nsecond"},
		{"empty input", "", ""},
		{"whitespace only", "   \n\t\n  ", ""},
		{"single line unchanged", "already clean", "already clean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, sitecrawl.NormalizeText(tt.input))
		})
	}
}
