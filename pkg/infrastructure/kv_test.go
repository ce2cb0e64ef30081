package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/store"
)

var (
	_ store.KV = (*FileKV)(nil)
	_ store.KV = (*RedisKV)(nil)
)

func exerciseKV(t *testing.T, kv store.KV) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, store.KeyDocument)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, store.KeyDocument, `{"a":1}`))
	require.NoError(t, kv.Set(ctx, store.KeyColor, "green"))

	v, ok, err := kv.Get(ctx, store.KeyDocument)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, v)

	require.NoError(t, kv.Set(ctx, store.KeyColor, "red"))
	v, _, _ = kv.Get(ctx, store.KeyColor)
	assert.Equal(t, "red", v)

	require.NoError(t, kv.Delete(ctx, store.KeyColor))
	_, ok, err = kv.Get(ctx, store.KeyColor)
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting a missing key is not an error
	require.NoError(t, kv.Delete(ctx, store.KeyColor))
}

func TestFileKV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	kv, err := NewFileKV(dir)
	require.NoError(t, err)
	exerciseKV(t, kv)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files are cleaned up")
	assert.Equal(t, store.KeyDocument, entries[0].Name())
}

func TestFileKVRejectsPathKeys(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, kv.Set(context.Background(), "../escape", "x"))
	_, _, err = kv.Get(context.Background(), "a/b")
	assert.Error(t, err)
}

func TestRedisKV(t *testing.T) {
	mr := miniredis.RunT(t)
	kv := NewRedisKV(mr.Addr(), "", 0, "resume:")
	defer kv.Close()
	require.NoError(t, kv.Ping(context.Background()))

	exerciseKV(t, kv)

	raw, err := mr.Get("resume:" + store.KeyDocument)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, raw)
}
