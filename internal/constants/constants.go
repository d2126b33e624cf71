package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "techclock"
	AppTitle           = "Clock v1.0"
	DefaultConfigPath  = "~/.config/techclock/techclock.db"
	DefaultKeyringUser = "database-connection"
	Version            = "v1.0.0"

	// StorageKey is the key under which the serialized settings record lives
	StorageKey = "techie_clock_settings"

	// Tick intervals for the clock loop
	TickInterval       = time.Second
	TickIntervalMillis = 10 * time.Millisecond

	// Matrix entrance animation
	MatrixTileDelay      = 50 * time.Millisecond
	MatrixFadeDuration   = 300 * time.Millisecond
	MatrixAnimationFrame = 50 * time.Millisecond

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "techclock-"
	BackupFileSuffix = ".db"

	// Instance lock
	LockfileName = "techclock.lock"
)

// Session States
const (
	StateClock SessionState = iota
	StateSettings
	StateConfirmReset
)
