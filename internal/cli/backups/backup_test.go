package backups

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/techclock/internal/cli"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/storage"
	"github.com/julianstephens/techclock/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	store := sqlite.NewStore(filepath.Join(dir, "techclock.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	var out bytes.Buffer
	ctx := cli.NewContext(store, dir)
	ctx.Out = &out
	return ctx, &out
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out := setupTestDB(t)

	require.NoError(t, (&BackupListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No backups found.")

	out.Reset()
	require.NoError(t, (&BackupCreateCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "✓ Backup created: techclock-")

	out.Reset()
	require.NoError(t, (&BackupListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Available backups (1 total")
}

func TestBackupRestore(t *testing.T) {
	ctx, out := setupTestDB(t)
	mode := models.DisplayAnalog
	_, err := ctx.Settings.Update(models.Patch{DisplayMode: &mode})
	require.NoError(t, err)

	path, err := ctx.BackupManager().Create()
	require.NoError(t, err)

	mode = models.DisplayMatrix
	_, err = ctx.Settings.Update(models.Patch{DisplayMode: &mode})
	require.NoError(t, err)

	ctx.In = strings.NewReader("n\n")
	require.NoError(t, (&BackupRestoreCmd{BackupFile: filepath.Base(path)}).Run(ctx))
	assert.Contains(t, out.String(), "Restore cancelled.")

	ctx.In = strings.NewReader("y\n")
	require.NoError(t, (&BackupRestoreCmd{BackupFile: filepath.Base(path)}).Run(ctx))
	assert.Contains(t, out.String(), "✓ Database restored successfully!")

	require.NoError(t, ctx.Open(false))
	assert.Equal(t, models.DisplayAnalog, ctx.Settings.Current().DisplayMode)
}

func TestBackupRestoreMissingFile(t *testing.T) {
	ctx, _ := setupTestDB(t)
	assert.Error(t, (&BackupRestoreCmd{BackupFile: "techclock-19990101-000000.db", Yes: true}).Run(ctx))
}

func TestBackupsUnsupportedStore(t *testing.T) {
	ctx := cli.NewContext(storage.NewMemoryStore(), t.TempDir())
	ctx.Out = &bytes.Buffer{}

	assert.ErrorIs(t, (&BackupCreateCmd{}).Run(ctx), ErrUnsupported)
	assert.ErrorIs(t, (&BackupListCmd{}).Run(ctx), ErrUnsupported)
	assert.ErrorIs(t, (&BackupRestoreCmd{BackupFile: "x"}).Run(ctx), ErrUnsupported)
}
