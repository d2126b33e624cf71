package constants

const (
	// DateFormat is the long-form date layout (weekday, month name, day, year)
	DateFormat = "Monday, January 2, 2006"

	// FallbackTimeFormat is used for time formats the formatter does not know
	FallbackTimeFormat = "15:04:05"

	// BackupTimestampFormat names backup files
	BackupTimestampFormat = "20060102-150405"
)
