package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("enable_previews", false))

	val, ok := store.Get("enable_previews")
	require.True(t, ok)
	assert.Equal(t, false, val)

	_, ok = store.Get("absent")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("preview_cache_dir", "/tmp/previews"))
	require.NoError(t, store.Set("preview_max_dimension", 2048))
	require.NoError(t, store.Set("enabledPreviewProviders", []string{"PNG", "TXT"}))

	assert.Equal(t, "/tmp/previews", store.GetString("preview_cache_dir"))
	assert.Equal(t, 2048, store.GetInt("preview_max_dimension"))
	assert.Equal(t, []string{"PNG", "TXT"}, store.GetStringSlice("enabledPreviewProviders"))
}

func TestConfigStore_TypedGettersZeroOnMismatch(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("preview_cache_dir", 42))
	require.NoError(t, store.Set("preview_max_dimension", "huge"))
	require.NoError(t, store.Set("enabledPreviewProviders", true))

	assert.Equal(t, "", store.GetString("preview_cache_dir"))
	assert.Equal(t, 0, store.GetInt("preview_max_dimension"))
	assert.Nil(t, store.GetStringSlice("enabledPreviewProviders"))

	assert.Equal(t, "", store.GetString("absent"))
	assert.Equal(t, 0, store.GetInt("absent"))
	assert.Nil(t, store.GetStringSlice("absent"))
}

func TestConfigStore_GetIntCoercesInt64(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("preview_max_dimension", int64(4096)))

	assert.Equal(t, 4096, store.GetInt("preview_max_dimension"))
}

func TestConfigStore_GetStringSliceFromAnySlice(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("enabledPreviewProviders", []any{"PNG", 7, "TXT"}))

	assert.Equal(t, []string{"PNG", "TXT"}, store.GetStringSlice("enabledPreviewProviders"))
}

func TestConfigStore_SetOverwrites(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("enable_previews", true))
	require.NoError(t, store.Set("enable_previews", false))

	val, ok := store.Get("enable_previews")
	require.True(t, ok)
	assert.Equal(t, false, val)
}

func TestConfigStore_LoadIsNoOp(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("enable_previews", false))

	require.NoError(t, store.Load())

	_, ok := store.Get("enable_previews")
	assert.True(t, ok, "Load must not clear in-memory state")
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("preview_max_dimension", n)
			_ = store.GetInt("preview_max_dimension")
			_, _ = store.Get("enable_previews")
		}(i)
	}
	wg.Wait()
}
