package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrawlThrottle(t *testing.T) {
	t.Parallel()

	t.Run("paces by default", func(t *testing.T) {
		t.Parallel()

		assert.NotNil(t, crawlThrottle(false))
	})

	t.Run("no pacing when delays are disabled", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, crawlThrottle(true))
	})
}
