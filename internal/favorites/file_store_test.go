package favorites

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetMissing(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	_, err := fs.Get(context.Background(), Key)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_PutGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	fs := NewFileStore(dir)
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, Key, []byte(`["USD"]`)))
	require.NoError(t, fs.Put(ctx, Key, []byte(`["USD","SEK"]`)))

	got, err := fs.Get(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, `["USD","SEK"]`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStore_CorruptFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Key+".json"), []byte("garbage"), 0o600))

	set, err := NewStore(NewFileStore(dir), seed).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed, set.Codes())
}
