package constants

const (
	// Default Settings Values
	DefaultTimeFormat       = "24h"
	DefaultDisplayMode      = "digital"
	DefaultShowSeconds      = true
	DefaultShowMilliseconds = false
	DefaultShowDate         = true
	DefaultTimezone         = "Local" // resolved against the host when TZ is unset
	DefaultBackground       = "#000000"
	DefaultText             = "#00ff00"
	DefaultAccent           = "#00ff00"
	DefaultFontFamily       = "monospace"
	DefaultFontSize         = 72
	DefaultGlow             = true
	DefaultShadow           = false
	DefaultScanlines        = false

	// Font size bounds in pixels
	MinFontSize = 24
	MaxFontSize = 200
)
