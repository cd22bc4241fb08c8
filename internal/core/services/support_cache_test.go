package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportCache_CachesPositiveResult(t *testing.T) {
	table := NewPatternTable()
	require.NoError(t, table.Register(`image/png`, noopFactory))
	cache := NewSupportCache()

	assert.True(t, cache.IsSupported("image/png", table.Sorted()))

	// Second call with no entries at all still answers from the cache:
	// no re-scan happens for a known key.
	assert.True(t, cache.IsSupported("image/png", nil))
}

func TestSupportCache_CachesNegativeResult(t *testing.T) {
	cache := NewSupportCache()

	assert.False(t, cache.IsSupported("video/mp4", nil))

	// A later table change is invisible to the cached key; entries are
	// write-once per registry lifetime.
	table := NewPatternTable()
	require.NoError(t, table.Register(`video/.*`, noopFactory))
	assert.False(t, cache.IsSupported("video/mp4", table.Sorted()))
}

func TestSupportCache_WildcardIsARegularKey(t *testing.T) {
	table := NewPatternTable()
	require.NoError(t, table.Register(`.*`, noopFactory))
	cache := NewSupportCache()

	assert.True(t, cache.IsSupported("*", table.Sorted()))
	assert.True(t, cache.IsSupported("*", nil))
}
