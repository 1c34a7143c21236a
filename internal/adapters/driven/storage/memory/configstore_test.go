package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("storage.backend", "redis"))
	require.NoError(t, store.Set("storage.backend", "mongo"))
	require.NoError(t, store.Set("seed.loop", 3))

	val, ok := store.Get("storage.backend")
	assert.True(t, ok)
	assert.Equal(t, "mongo", val)

	val, ok = store.Get("seed.loop")
	assert.True(t, ok)
	assert.Equal(t, 3, val)

	_, ok = store.Get("storage.missing")
	assert.False(t, ok)
}

func TestConfigStore_ConcurrentSetAndGet(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Set("seed.loop", i)
			_, _ = store.Get("seed.loop")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("seed.loop")
	assert.True(t, ok)
}
