package bloom_test

import (
	"fmt"
	"testing"

	"github.com/jgrzelak/sitecrawl/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSeenSet_Admit(t *testing.T) {
	t.Parallel()

	s := bloom.NewSeenSet(1024, 0.001)

	assert.True(t, s.Admit("https://example.com/about"))
	assert.False(t, s.Admit("https://example.com/about"))
	assert.True(t, s.Admit("https://example.com/contact"))
}

func TestSeenSet_Seen(t *testing.T) {
	t.Parallel()

	s := bloom.NewSeenSet(1024, 0.001)

	assert.False(t, s.Seen("https://example.com"))
	s.Admit("https://example.com")
	assert.True(t, s.Seen("https://example.com"))
}

func TestSeenSet_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	s := bloom.NewSeenSet(4096, 0.001)

	for i := range 1000 {
		s.Admit(fmt.Sprintf("https://example.com/page-%d", i))
	}
	for i := range 1000 {
		assert.True(t, s.Seen(fmt.Sprintf("https://example.com/page-%d", i)))
	}
}
