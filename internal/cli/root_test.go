package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/storage"
	"github.com/julianstephens/techclock/internal/storage/sqlite"
)

func TestOpenAutoInit(t *testing.T) {
	dir := t.TempDir()
	store := sqlite.NewStore(filepath.Join(dir, "techclock.db"))
	t.Cleanup(func() { _ = store.Close() })

	ctx := NewContext(store, dir)
	require.ErrorIs(t, ctx.Open(false), storage.ErrNotInitialized)
	require.NoError(t, ctx.Open(true))
	assert.NotNil(t, ctx.BackupManager())
}

func TestBackupManagerOnlyForSQLite(t *testing.T) {
	ctx := NewContext(storage.NewMemoryStore(), t.TempDir())
	require.NoError(t, ctx.Open(false))
	assert.Nil(t, ctx.BackupManager())
	ctx.PerformAutomaticBackup()
}

func TestOpenWithFallbackOnCorruptStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "techclock.json")
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0600))

	ctx := NewContext(storage.NewJSONStore(path), dir)
	require.Error(t, ctx.Open(true))

	notice := ctx.OpenWithFallback()
	assert.NotEmpty(t, notice)
	assert.Equal(t, models.DefaultSettings(), ctx.Settings.Current())
	assert.Nil(t, ctx.BackupManager())

	// edits still apply for the session but leave the broken file alone
	_, err := ctx.Settings.Update(models.Patch{ShowDate: new(bool)})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{garbage", string(data))
}

func TestOpenWithFallbackHealthyStore(t *testing.T) {
	dir := t.TempDir()
	store := sqlite.NewStore(filepath.Join(dir, "techclock.db"))
	t.Cleanup(func() { _ = store.Close() })

	ctx := NewContext(store, dir)
	assert.Empty(t, ctx.OpenWithFallback())
	assert.Same(t, store, ctx.Provider)
}
