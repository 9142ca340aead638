package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *DocumentCache {
	t.Helper()
	cache, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestOpenCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	cache, err := Open(dir)
	require.NoError(t, err)
	defer cache.Close()

	_, err = os.Stat(filepath.Join(dir, "soli.db"))
	assert.NoError(t, err)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	cache := openTestCache(t)

	_, err := cache.Get(context.Background(), "github/alea-institute/soli/1.0.0")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutGetRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	descriptor := "github/alea-institute/soli/1.0.0"
	body := "<rdf:RDF>ontology body</rdf:RDF>"

	require.NoError(t, cache.Put(ctx, descriptor, body))

	got, err := cache.Get(ctx, descriptor)
	require.NoError(t, err)
	assert.Equal(t, body, got)

	// other descriptors stay independent
	_, err = cache.Get(ctx, "github/alea-institute/soli/2.0.0")
	assert.True(t, IsNotFound(err))
}

func TestPutOverwrites(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "d", "first"))
	require.NoError(t, cache.Put(ctx, "d", "second"))

	got, err := cache.Get(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestDelete(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "d", "body"))
	require.NoError(t, cache.Delete(ctx, "d"))

	_, err := cache.Get(ctx, "d")
	assert.True(t, IsNotFound(err))

	// deleting a missing key is not an error
	assert.NoError(t, cache.Delete(ctx, "missing"))
}

func TestClosedCacheRejectsOperations(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "d", "body"))
	require.NoError(t, cache.Close())

	_, err := cache.Get(ctx, "d")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, cache.Put(ctx, "d", "body"), ErrClosed)
	assert.ErrorIs(t, cache.Delete(ctx, "d"), ErrClosed)

	// closing twice is a no-op
	assert.NoError(t, cache.Close())
}

func TestKeyStable(t *testing.T) {
	assert.Equal(t, Key("abc"), Key("abc"))
	assert.NotEqual(t, Key("abc"), Key("abd"))
	assert.Len(t, Key("abc"), 64)
}
