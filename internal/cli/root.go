// Package cli holds the state shared by every techclock command.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/julianstephens/techclock/internal/backup"
	"github.com/julianstephens/techclock/internal/logger"
	"github.com/julianstephens/techclock/internal/settings"
	"github.com/julianstephens/techclock/internal/storage"
	"github.com/julianstephens/techclock/internal/storage/sqlite"
)

type Context struct {
	Provider storage.Provider
	Settings *settings.Store
	// ConfigDir holds logs, the instance lockfile and, for file stores, backups
	ConfigDir string
	Out       io.Writer
	In        io.Reader
}

// NewContext wires a settings store over provider
func NewContext(provider storage.Provider, configDir string) *Context {
	return &Context{
		Provider:  provider,
		Settings:  settings.NewStore(provider),
		ConfigDir: configDir,
		Out:       os.Stdout,
		In:        os.Stdin,
	}
}

// Open loads the provider and the settings record. With autoInit a store
// that does not exist yet is created instead of reported.
func (c *Context) Open(autoInit bool) error {
	err := c.Provider.Load()
	if errors.Is(err, storage.ErrNotInitialized) && autoInit {
		logger.Info("initializing storage", "path", c.Provider.GetConfigPath())
		err = c.Provider.Init()
	}
	if err != nil {
		return err
	}
	c.Settings.Load()
	return nil
}

// OpenWithFallback opens like Open(true). If the store still cannot be read
// the command runs on the default record held in memory, and the returned
// notice says that changes will not be saved.
func (c *Context) OpenWithFallback() string {
	err := c.Open(true)
	if err == nil {
		return ""
	}
	logger.Warn("storage unavailable, using default settings",
		"path", c.Provider.GetConfigPath(), "error", err)

	mem := storage.NewMemoryStore()
	c.Provider = mem
	c.Settings = settings.NewStore(mem)
	c.Settings.Load()
	return "Storage unavailable, using defaults; changes will not be saved"
}

// BackupManager returns a manager for sqlite stores and nil for every other kind
func (c *Context) BackupManager() *backup.Manager {
	if _, ok := c.Provider.(*sqlite.Store); !ok {
		return nil
	}
	return backup.NewManager(c.Provider.GetConfigPath())
}

// PerformAutomaticBackup snapshots sqlite stores; failures are only logged
func (c *Context) PerformAutomaticBackup() {
	mgr := c.BackupManager()
	if mgr == nil {
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	}
}
