package models

// TimeFormat selects how the clock renders the time of day
type TimeFormat string

// DisplayMode selects the clock face
type DisplayMode string

const (
	TimeFormat12h    TimeFormat = "12h"
	TimeFormat24h    TimeFormat = "24h"
	TimeFormatUnix   TimeFormat = "unix"
	TimeFormatBinary TimeFormat = "binary"
	TimeFormatHex    TimeFormat = "hex"

	DisplayDigital DisplayMode = "digital"
	DisplayAnalog  DisplayMode = "analog"
	DisplaySegment DisplayMode = "segment"
	DisplayMatrix  DisplayMode = "matrix"
)

// ColorScheme holds CSS-style hex colors for the clock surface
type ColorScheme struct {
	Background string `json:"background" yaml:"background" validate:"required,rgbhex"`
	Text       string `json:"text" yaml:"text" validate:"required,rgbhex"`
	Accent     string `json:"accent" yaml:"accent" validate:"required,rgbhex"`
}

// Effects are independent cosmetic toggles layered over any display mode
type Effects struct {
	Glow      bool `json:"glow" yaml:"glow"`
	Shadow    bool `json:"shadow" yaml:"shadow"`
	Scanlines bool `json:"scanlines" yaml:"scanlines"`
}

// Settings represents the persisted clock configuration
type Settings struct {
	TimeFormat       TimeFormat  `json:"time_format" yaml:"time_format" validate:"required,oneof=12h 24h unix binary hex"`
	DisplayMode      DisplayMode `json:"display_mode" yaml:"display_mode" validate:"required,oneof=digital analog segment matrix"`
	ShowSeconds      bool        `json:"show_seconds" yaml:"show_seconds"`
	ShowMilliseconds bool        `json:"show_milliseconds" yaml:"show_milliseconds"`
	ShowDate         bool        `json:"show_date" yaml:"show_date"`
	Timezone         string      `json:"timezone" yaml:"timezone" validate:"required,zone"` // IANA name or "Local"
	ColorScheme      ColorScheme `json:"color_scheme" yaml:"color_scheme"`
	FontFamily       string      `json:"font_family" yaml:"font_family" validate:"required"`
	FontSize         int         `json:"font_size" yaml:"font_size" validate:"min=24,max=200"` // pixels
	Effects          Effects     `json:"effects" yaml:"effects"`
}

// TimeFormats lists the supported time formats in panel order
func TimeFormats() []TimeFormat {
	return []TimeFormat{TimeFormat12h, TimeFormat24h, TimeFormatUnix, TimeFormatBinary, TimeFormatHex}
}

// DisplayModes lists the renderable display modes in panel order
func DisplayModes() []DisplayMode {
	return []DisplayMode{DisplayDigital, DisplayAnalog, DisplaySegment, DisplayMatrix}
}

// Label returns the human-readable name shown in the settings panel
func (f TimeFormat) Label() string {
	switch f {
	case TimeFormat12h:
		return "12 Hour"
	case TimeFormat24h:
		return "24 Hour"
	case TimeFormatUnix:
		return "Unix Timestamp"
	case TimeFormatBinary:
		return "Binary"
	case TimeFormatHex:
		return "Hexadecimal"
	default:
		return string(f)
	}
}

// Label returns the human-readable name shown in the settings panel
func (d DisplayMode) Label() string {
	switch d {
	case DisplayDigital:
		return "Digital"
	case DisplayAnalog:
		return "Analog"
	case DisplaySegment:
		return "7-Segment"
	case DisplayMatrix:
		return "Matrix"
	default:
		return string(d)
	}
}

// FontFamily is a selectable font stack
type FontFamily struct {
	Label string
	Value string
}

// FontFamilies returns the font stacks offered by the settings panel
func FontFamilies() []FontFamily {
	return []FontFamily{
		{Label: "Monospace", Value: "monospace"},
		{Label: "Courier New", Value: "'Courier New', monospace"},
		{Label: "Roboto Mono", Value: "'Roboto Mono', monospace"},
		{Label: "Orbitron", Value: "'Orbitron', sans-serif"},
		{Label: "Share Tech Mono", Value: "'Share Tech Mono', monospace"},
	}
}
