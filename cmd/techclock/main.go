package main

import (
	"errors"
	"io/fs"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/techclock/internal/cli"
	"github.com/julianstephens/techclock/internal/cli/backups"
	"github.com/julianstephens/techclock/internal/cli/settings"
	"github.com/julianstephens/techclock/internal/cli/system"
	"github.com/julianstephens/techclock/internal/constants"
	clockerrors "github.com/julianstephens/techclock/internal/errors"
	"github.com/julianstephens/techclock/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	Config    string `help:"SQLite path, *.json path, PostgreSQL connection string without a password, or 'keyring'." env:"TECHCLOCK_CONFIG" default:"${default_config}"`
	Debug     bool   `help:"Log at debug level and mirror logs to stderr." env:"TECHCLOCK_DEBUG"`
	Ephemeral bool   `help:"Keep settings in memory for this run only."`

	Tui       system.TuiCmd       `cmd:"" help:"Launch the clock." default:"1"`
	Init      system.InitCmd      `cmd:"" help:"Initialize techclock storage."`
	Show      system.ShowCmd      `cmd:"" help:"Print one clock frame and exit."`
	Timezones system.TimezonesCmd `cmd:"" help:"List the selectable timezones."`
	Doctor    system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Settings  struct {
		List   settings.ListCmd   `cmd:"" help:"Show the current settings." default:"1"`
		Set    settings.SetCmd    `cmd:"" help:"Change one or more settings."`
		Reset  settings.ResetCmd  `cmd:"" help:"Restore the default settings."`
		Export settings.ExportCmd `cmd:"" help:"Write the settings as JSON or YAML."`
		Import settings.ImportCmd `cmd:"" help:"Replace the settings from a JSON or YAML file."`
	} `cmd:"" help:"Manage clock settings."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage SQLite backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check whether the OS keyring is usable."`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func main() {
	// .env must be applied before kong reads TECHCLOCK_* variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		clockerrors.Fatal(err)
	}

	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A configurable terminal clock"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	provider, configDir, err := cli.OpenProvider(CLI.Config, CLI.Ephemeral)
	if err != nil {
		clockerrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		clockerrors.Fatal(err)
	}
	logger.Debug("starting", "command", kctx.Command(), "storage", provider.GetConfigPath())

	appCtx := cli.NewContext(provider, configDir)
	err = kctx.Run(appCtx)
	if closeErr := provider.Close(); closeErr != nil {
		logger.Warn("failed to close storage", "error", closeErr)
	}
	clockerrors.Fatal(err)
	_ = logger.Close()
}
