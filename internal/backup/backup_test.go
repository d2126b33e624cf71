package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/settings"
	"github.com/julianstephens/techclock/internal/storage/sqlite"
)

// setupTestDB creates a migrated database holding a settings record in the given mode
func setupTestDB(t *testing.T, mode models.DisplayMode) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "techclock.db")
	writeMode(t, dbPath, mode)
	return dbPath
}

func writeMode(t *testing.T, dbPath string, mode models.DisplayMode) {
	t.Helper()
	provider := sqlite.NewStore(dbPath)
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to init database: %v", err)
	}
	defer provider.Close()

	if _, err := settings.NewStore(provider).Update(models.Patch{DisplayMode: &mode}); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
}

func readMode(t *testing.T, dbPath string) models.DisplayMode {
	t.Helper()
	provider := sqlite.NewStore(dbPath)
	if err := provider.Load(); err != nil {
		t.Fatalf("failed to load database: %v", err)
	}
	defer provider.Close()
	return settings.NewStore(provider).Load().DisplayMode
}

func fixedClock(m *Manager, start time.Time) {
	at := start
	m.now = func() time.Time {
		at = at.Add(time.Second)
		return at
	}
}

func TestCreate(t *testing.T) {
	dbPath := setupTestDB(t, models.DisplayAnalog)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if filepath.Dir(backupPath) != filepath.Join(filepath.Dir(dbPath), constants.BackupDirName) {
		t.Errorf("backup written to %s, want the backups directory", backupPath)
	}
	if err := verify(backupPath); err != nil {
		t.Errorf("backup is not a valid database: %v", err)
	}
	if got := readMode(t, backupPath); got != models.DisplayAnalog {
		t.Errorf("backup display mode = %q, want %q", got, models.DisplayAnalog)
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected an error for a missing database")
	}
}

func TestRotation(t *testing.T) {
	dbPath := setupTestDB(t, models.DisplayDigital)
	mgr := NewManager(dbPath)
	fixedClock(mgr, time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local))

	var newest string
	for i := 0; i < constants.MaxBackups+3; i++ {
		path, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		newest = path
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Fatalf("got %d backups, want %d", len(backups), constants.MaxBackups)
	}
	if backups[0].Path != newest {
		t.Errorf("newest backup = %s, want %s", backups[0].Path, newest)
	}
}

func TestList(t *testing.T) {
	dbPath := setupTestDB(t, models.DisplayDigital)
	mgr := NewManager(dbPath)

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List on missing directory failed: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("got %d backups, want 0", len(backups))
	}

	fixedClock(mgr, time.Date(2024, 5, 1, 8, 30, 0, 0, time.Local))
	for i := 0; i < 3; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatal(err)
		}
	}
	// unrelated files are ignored
	if err := os.WriteFile(filepath.Join(mgr.BackupDir(), "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(mgr.BackupDir(), "techclock-garbage.db"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	backups, err = mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("got %d backups, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first at %d", i)
		}
	}
}

func TestUniqueFilenames(t *testing.T) {
	dbPath := setupTestDB(t, models.DisplayDigital)
	mgr := NewManager(dbPath)
	at := time.Date(2024, 5, 1, 8, 30, 0, 0, time.Local)
	mgr.now = func() time.Time { return at }

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		path, err := mgr.Create()
		if err != nil {
			t.Fatal(err)
		}
		if seen[path] {
			t.Fatalf("duplicate backup path %s", path)
		}
		seen[path] = true
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("got %d backups, want 3", len(backups))
	}
	if backups[0].Seq != 2 || backups[2].Seq != 0 {
		t.Errorf("same-second backups out of order: %+v", backups)
	}
}

func TestRestore(t *testing.T) {
	dbPath := setupTestDB(t, models.DisplaySegment)
	mgr := NewManager(dbPath)
	fixedClock(mgr, time.Date(2024, 5, 1, 8, 30, 0, 0, time.Local))

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	writeMode(t, dbPath, models.DisplayMatrix)
	if got := readMode(t, dbPath); got != models.DisplayMatrix {
		t.Fatalf("setup: display mode = %q", got)
	}

	safety, err := mgr.Restore(backupPath)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if got := readMode(t, dbPath); got != models.DisplaySegment {
		t.Errorf("restored display mode = %q, want %q", got, models.DisplaySegment)
	}
	if safety == "" {
		t.Fatal("expected a pre-restore backup")
	}
	if got := readMode(t, safety); got != models.DisplayMatrix {
		t.Errorf("pre-restore backup display mode = %q, want %q", got, models.DisplayMatrix)
	}
	if _, err := os.Stat(dbPath + ".restore.tmp"); !os.IsNotExist(err) {
		t.Error("temporary restore file left behind")
	}
}

func TestRestoreRejectsInvalidFiles(t *testing.T) {
	dbPath := setupTestDB(t, models.DisplayDigital)
	mgr := NewManager(dbPath)
	dir := t.TempDir()

	if _, err := mgr.Restore(filepath.Join(dir, "missing.db")); err == nil {
		t.Error("expected an error for a missing backup")
	}

	junk := filepath.Join(dir, "junk.db")
	if err := os.WriteFile(junk, []byte("not a database"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Restore(junk); err == nil {
		t.Error("expected an error for a corrupt backup")
	}

	if got := readMode(t, dbPath); got != models.DisplayDigital {
		t.Errorf("database changed by a failed restore: %q", got)
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		seq  int
		ok   bool
	}{
		{"techclock-20240501-083000.db", 0, true},
		{"techclock-20240501-083000-2.db", 2, true},
		{"techclock-20240501-083000x.db", 0, false},
		{"techclock-20240501.db", 0, false},
		{"other-20240501-083000.db", 0, false},
		{"techclock-20240501-083000.sqlite", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, seq, ok := parseName(tt.name)
			if ok != tt.ok || seq != tt.seq {
				t.Errorf("parseName(%q) = (%d, %v), want (%d, %v)", tt.name, seq, ok, tt.seq, tt.ok)
			}
		})
	}
}
