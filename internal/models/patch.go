package models

// Patch is a partial settings update. Nil fields leave the current value
// untouched. ColorScheme and Effects replace the whole sub-record.
type Patch struct {
	TimeFormat       *TimeFormat  `json:"time_format,omitempty" yaml:"time_format,omitempty"`
	DisplayMode      *DisplayMode `json:"display_mode,omitempty" yaml:"display_mode,omitempty"`
	ShowSeconds      *bool        `json:"show_seconds,omitempty" yaml:"show_seconds,omitempty"`
	ShowMilliseconds *bool        `json:"show_milliseconds,omitempty" yaml:"show_milliseconds,omitempty"`
	ShowDate         *bool        `json:"show_date,omitempty" yaml:"show_date,omitempty"`
	Timezone         *string      `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	ColorScheme      *ColorScheme `json:"color_scheme,omitempty" yaml:"color_scheme,omitempty"`
	FontFamily       *string      `json:"font_family,omitempty" yaml:"font_family,omitempty"`
	FontSize         *int         `json:"font_size,omitempty" yaml:"font_size,omitempty"`
	Effects          *Effects     `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Apply returns a copy of s with every non-nil field of p merged in
func (s Settings) Apply(p Patch) Settings {
	if p.TimeFormat != nil {
		s.TimeFormat = *p.TimeFormat
	}
	if p.DisplayMode != nil {
		s.DisplayMode = *p.DisplayMode
	}
	if p.ShowSeconds != nil {
		s.ShowSeconds = *p.ShowSeconds
	}
	if p.ShowMilliseconds != nil {
		s.ShowMilliseconds = *p.ShowMilliseconds
	}
	if p.ShowDate != nil {
		s.ShowDate = *p.ShowDate
	}
	if p.Timezone != nil {
		s.Timezone = *p.Timezone
	}
	if p.ColorScheme != nil {
		s.ColorScheme = *p.ColorScheme
	}
	if p.FontFamily != nil {
		s.FontFamily = *p.FontFamily
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.Effects != nil {
		s.Effects = *p.Effects
	}
	return s
}

// Diff returns the patch that turns s into other. Sub-records appear whole
// when any of their fields differ.
func (s Settings) Diff(other Settings) Patch {
	var p Patch
	if s.TimeFormat != other.TimeFormat {
		p.TimeFormat = &other.TimeFormat
	}
	if s.DisplayMode != other.DisplayMode {
		p.DisplayMode = &other.DisplayMode
	}
	if s.ShowSeconds != other.ShowSeconds {
		p.ShowSeconds = &other.ShowSeconds
	}
	if s.ShowMilliseconds != other.ShowMilliseconds {
		p.ShowMilliseconds = &other.ShowMilliseconds
	}
	if s.ShowDate != other.ShowDate {
		p.ShowDate = &other.ShowDate
	}
	if s.Timezone != other.Timezone {
		p.Timezone = &other.Timezone
	}
	if s.ColorScheme != other.ColorScheme {
		p.ColorScheme = &other.ColorScheme
	}
	if s.FontFamily != other.FontFamily {
		p.FontFamily = &other.FontFamily
	}
	if s.FontSize != other.FontSize {
		p.FontSize = &other.FontSize
	}
	if s.Effects != other.Effects {
		p.Effects = &other.Effects
	}
	return p
}
