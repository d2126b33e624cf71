package system

import (
	"errors"
	"fmt"
	"io"

	"github.com/julianstephens/techclock/internal/cli"
	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/instance"
	"github.com/julianstephens/techclock/internal/keyring"
	"github.com/julianstephens/techclock/internal/migration"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/utils"
	"github.com/julianstephens/techclock/internal/validation"
)

// ErrChecksFailed is returned by doctor when any required check fails
var ErrChecksFailed = errors.New("one or more checks failed")

type migrator interface {
	Migrator() (*migration.Runner, error)
}

type DoctorCmd struct{}

type checkLevel int

const (
	levelRequired checkLevel = iota
	levelWarning
	levelInfo
)

type check struct {
	name  string
	level checkLevel
	// needsStorage checks are skipped when storage could not be opened
	needsStorage bool
	run          func(*cli.Context) (string, error)
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Fprintln(ctx.Out, "Running diagnostics...")
	fmt.Fprintln(ctx.Out)

	checks := []check{
		{name: "Storage reachable", level: levelRequired, run: checkStorage},
		{name: "Schema version", level: levelRequired, needsStorage: true, run: checkSchema},
		{name: "Stored settings", level: levelRequired, needsStorage: true, run: checkSettings},
		{name: "Timezone", level: levelRequired, needsStorage: true, run: checkTimezone},
		{name: "Backups present", level: levelWarning, needsStorage: true, run: checkBackups},
		{name: "Other instances", level: levelWarning, run: checkInstance},
		{name: "OS keyring", level: levelInfo, run: checkKeyring},
	}

	failed := false
	reachable := true
	for _, c := range checks {
		if c.needsStorage && !reachable {
			fmt.Fprintf(ctx.Out, "⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		detail, err := c.run(ctx)
		report(ctx.Out, c, detail, err)
		if err != nil && c.level == levelRequired {
			failed = true
			if !c.needsStorage {
				reachable = false
			}
		}
	}

	fmt.Fprintln(ctx.Out)
	if failed {
		return ErrChecksFailed
	}
	fmt.Fprintln(ctx.Out, "All checks passed.")
	return nil
}

func report(w io.Writer, c check, detail string, err error) {
	switch {
	case err == nil:
		fmt.Fprintf(w, "✓ %s: OK\n", c.name)
		if detail != "" {
			fmt.Fprintf(w, "   %s\n", detail)
		}
	case c.level == levelRequired:
		fmt.Fprintf(w, "❌ %s: FAIL\n", c.name)
		fmt.Fprintf(w, "   Error: %v\n", err)
	case c.level == levelWarning:
		fmt.Fprintf(w, "⚠ %s: WARNING\n", c.name)
		fmt.Fprintf(w, "   %v\n", err)
	default:
		fmt.Fprintf(w, "ℹ %s: %v\n", c.name, err)
	}
}

func checkStorage(ctx *cli.Context) (string, error) {
	if err := ctx.Open(false); err != nil {
		return "", err
	}
	return ctx.Provider.GetConfigPath(), nil
}

func checkSchema(ctx *cli.Context) (string, error) {
	m, ok := ctx.Provider.(migrator)
	if !ok {
		return "no schema for this storage type", nil
	}
	runner, err := m.Migrator()
	if err != nil {
		return "", err
	}
	if err := runner.ValidateVersion(); err != nil {
		return "", err
	}
	current, err := runner.CurrentVersion()
	if err != nil {
		return "", err
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return "", err
	}
	if current < latest {
		return "", fmt.Errorf("schema at version %d, latest is %d; run 'techclock init'", current, latest)
	}
	return fmt.Sprintf("version %d", current), nil
}

// checkSettings decodes the raw record itself, since the settings store
// hides decode failures behind the defaults.
func checkSettings(ctx *cli.Context) (string, error) {
	raw, ok, err := ctx.Provider.Get(constants.StorageKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "nothing stored yet, defaults in use", nil
	}
	s, err := models.DecodeSettings([]byte(raw))
	if err != nil {
		return "", fmt.Errorf("stored settings are corrupt and will be replaced by defaults: %w", err)
	}
	if err := validation.ValidateSettings(s); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s mode, %s format", s.DisplayMode.Label(), s.TimeFormat.Label()), nil
}

func checkTimezone(ctx *cli.Context) (string, error) {
	tz := ctx.Settings.Current().Timezone
	if !utils.ValidateTimezone(tz) {
		return "", fmt.Errorf("timezone %q cannot be loaded; host local time is shown instead", tz)
	}
	return fmt.Sprintf("%s (host zone %s)", tz, utils.HostZone()), nil
}

func checkBackups(ctx *cli.Context) (string, error) {
	mgr := ctx.BackupManager()
	if mgr == nil {
		return "not applicable for this storage type", nil
	}
	backups, err := mgr.List()
	if err != nil {
		return "", err
	}
	if len(backups) == 0 {
		return "", fmt.Errorf("no backups found in %s", mgr.BackupDir())
	}
	return fmt.Sprintf("%d backups, newest %s", len(backups), backups[0].Timestamp.Format("2006-01-02 15:04:05")), nil
}

func checkInstance(ctx *cli.Context) (string, error) {
	if holder, ok := instance.Status(ctx.ConfigDir); ok {
		return "", fmt.Errorf("techclock is running as pid %d", holder.PID)
	}
	return "", nil
}

func checkKeyring(*cli.Context) (string, error) {
	if !keyring.IsAvailable() {
		return "", errors.New("not available")
	}
	return "available", nil
}
