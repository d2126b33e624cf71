package models

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/utils"
)

// DefaultSettings returns the documented default record. The timezone is
// the host's resolved zone.
func DefaultSettings() Settings {
	return Settings{
		TimeFormat:       constants.DefaultTimeFormat,
		DisplayMode:      constants.DefaultDisplayMode,
		ShowSeconds:      constants.DefaultShowSeconds,
		ShowMilliseconds: constants.DefaultShowMilliseconds,
		ShowDate:         constants.DefaultShowDate,
		Timezone:         utils.HostZone(),
		ColorScheme: ColorScheme{
			Background: constants.DefaultBackground,
			Text:       constants.DefaultText,
			Accent:     constants.DefaultAccent,
		},
		FontFamily: constants.DefaultFontFamily,
		FontSize:   constants.DefaultFontSize,
		Effects: Effects{
			Glow:      constants.DefaultGlow,
			Shadow:    constants.DefaultShadow,
			Scanlines: constants.DefaultScanlines,
		},
	}
}

// DecodeSettings parses a serialized record on top of the defaults, so
// missing fields keep their default value and unknown fields are ignored.
func DecodeSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parsing settings: %w", err)
	}
	ApplyDefaultSettings(&settings)
	return settings, nil
}

// EncodeSettings serializes a record for the key-value store
func EncodeSettings(settings Settings) ([]byte, error) {
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("serializing settings: %w", err)
	}
	return data, nil
}

// ApplyDefaultSettings fills blank required fields and clamps the font size.
func ApplyDefaultSettings(settings *Settings) {
	defaults := DefaultSettings()
	if settings.TimeFormat == "" {
		settings.TimeFormat = defaults.TimeFormat
	}
	if settings.DisplayMode == "" {
		settings.DisplayMode = defaults.DisplayMode
	}
	if settings.Timezone == "" {
		settings.Timezone = defaults.Timezone
	}
	if settings.ColorScheme.Background == "" {
		settings.ColorScheme.Background = defaults.ColorScheme.Background
	}
	if settings.ColorScheme.Text == "" {
		settings.ColorScheme.Text = defaults.ColorScheme.Text
	}
	if settings.ColorScheme.Accent == "" {
		settings.ColorScheme.Accent = defaults.ColorScheme.Accent
	}
	if settings.FontFamily == "" {
		settings.FontFamily = defaults.FontFamily
	}
	settings.FontSize = ClampFontSize(settings.FontSize)
}

// ClampFontSize bounds a font size to the supported pixel range
func ClampFontSize(size int) int {
	switch {
	case size < constants.MinFontSize:
		return constants.MinFontSize
	case size > constants.MaxFontSize:
		return constants.MaxFontSize
	default:
		return size
	}
}
