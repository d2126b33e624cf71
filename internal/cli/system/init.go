package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/techclock/internal/cli"
	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/storage"
	"github.com/julianstephens/techclock/internal/storage/postgres"
)

type InitCmd struct {
	Force bool `help:"Delete the existing settings before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Provider.Init(); err != nil {
		return err
	}
	ctx.Settings.Load()
	fmt.Fprintf(ctx.Out, "Initialized techclock storage at: %s\n", ctx.Provider.GetConfigPath())
	return nil
}

// reset removes file-backed stores outright. Database servers keep the
// schema and only lose the settings record.
func (c *InitCmd) reset(ctx *cli.Context) error {
	switch ctx.Provider.(type) {
	case *postgres.Store, *storage.MemoryStore:
		if err := ctx.Provider.Init(); err != nil {
			return err
		}
		if err := ctx.Provider.Delete(constants.StorageKey); err != nil {
			return fmt.Errorf("failed to delete existing settings: %w", err)
		}
		fmt.Fprintln(ctx.Out, "Deleted existing settings")
		return nil
	}

	path := ctx.Provider.GetConfigPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to access existing storage: %w", err)
	}
	if err := ctx.Provider.Close(); err != nil {
		return fmt.Errorf("failed to close existing storage: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete existing storage: %w", err)
	}
	fmt.Fprintf(ctx.Out, "Deleted existing storage at: %s\n", path)
	return nil
}
