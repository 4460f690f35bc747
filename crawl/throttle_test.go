package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/jgrzelak/sitecrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottle_Wait(t *testing.T) {
	t.Parallel()

	throttle := crawl.NewThrottle(1000)

	for i := 0; i < 5; i++ {
		require.NoError(t, throttle.Wait(context.Background()))
	}
}

func TestThrottle_Wait_PacesRequests(t *testing.T) {
	t.Parallel()

	throttle := crawl.NewThrottle(50) // 20ms between requests

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, throttle.Wait(context.Background()))
	}

	// First token is free, the next two wait ~20ms each.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestThrottle_Wait_CanceledContext(t *testing.T) {
	t.Parallel()

	throttle := crawl.NewThrottle(0.001)
	require.NoError(t, throttle.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.Error(t, throttle.Wait(ctx))
}
