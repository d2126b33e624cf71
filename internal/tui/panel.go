package tui

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/timefmt"
	"github.com/julianstephens/techclock/internal/validation"
)

// PanelForm holds the settings panel fields while they are being edited
type PanelForm struct {
	DisplayMode      models.DisplayMode
	TimeFormat       models.TimeFormat
	Timezone         string
	ShowSeconds      bool
	ShowMilliseconds bool
	ShowDate         bool
	FontFamily       string
	FontSize         string
	Background       string
	Text             string
	Accent           string
	Glow             bool
	Shadow           bool
	Scanlines        bool
}

func newPanelForm(s models.Settings) *PanelForm {
	return &PanelForm{
		DisplayMode:      s.DisplayMode,
		TimeFormat:       s.TimeFormat,
		Timezone:         s.Timezone,
		ShowSeconds:      s.ShowSeconds,
		ShowMilliseconds: s.ShowMilliseconds,
		ShowDate:         s.ShowDate,
		FontFamily:       s.FontFamily,
		FontSize:         strconv.Itoa(s.FontSize),
		Background:       s.ColorScheme.Background,
		Text:             s.ColorScheme.Text,
		Accent:           s.ColorScheme.Accent,
		Glow:             s.Effects.Glow,
		Shadow:           s.Effects.Shadow,
		Scanlines:        s.Effects.Scanlines,
	}
}

// Apply returns base with the panel's fields written over it. A font size
// that does not parse keeps the base value.
func (f *PanelForm) Apply(base models.Settings) models.Settings {
	out := base
	out.DisplayMode = f.DisplayMode
	out.TimeFormat = f.TimeFormat
	out.Timezone = f.Timezone
	out.ShowSeconds = f.ShowSeconds
	out.ShowMilliseconds = f.ShowMilliseconds
	out.ShowDate = f.ShowDate
	out.FontFamily = f.FontFamily
	if size, err := validation.FontSize(f.FontSize); err == nil {
		out.FontSize = size
	}
	out.ColorScheme = models.ColorScheme{Background: f.Background, Text: f.Text, Accent: f.Accent}
	out.Effects = models.Effects{Glow: f.Glow, Shadow: f.Shadow, Scanlines: f.Scanlines}
	return out
}

// timezoneChoices is the curated list with the current zone first when it
// is not already offered.
func timezoneChoices(current string) []string {
	zones := timefmt.Timezones()
	if current != "" && !slices.Contains(zones, current) {
		zones = append([]string{current}, zones...)
	}
	return zones
}

func fontFamilyChoices(current string) []huh.Option[string] {
	var opts []huh.Option[string]
	found := false
	for _, ff := range models.FontFamilies() {
		opts = append(opts, huh.NewOption(ff.Label, ff.Value))
		found = found || ff.Value == current
	}
	if !found && current != "" {
		opts = append([]huh.Option[string]{huh.NewOption(current, current)}, opts...)
	}
	return opts
}

// NewSettingsForm builds the settings panel
func NewSettingsForm(fm *PanelForm) *huh.Form {
	modes := make([]huh.Option[models.DisplayMode], 0, len(models.DisplayModes()))
	for _, d := range models.DisplayModes() {
		modes = append(modes, huh.NewOption(d.Label(), d))
	}
	formats := make([]huh.Option[models.TimeFormat], 0, len(models.TimeFormats()))
	for _, tf := range models.TimeFormats() {
		formats = append(formats, huh.NewOption(tf.Label(), tf))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.DisplayMode]().
				Title("Display Mode").
				Options(modes...).
				Value(&fm.DisplayMode),
			huh.NewSelect[models.TimeFormat]().
				Title("Time Format").
				Options(formats...).
				Value(&fm.TimeFormat),
			huh.NewSelect[string]().
				Title("Timezone").
				Options(huh.NewOptions(timezoneChoices(fm.Timezone)...)...).
				Value(&fm.Timezone),
		).Title("Display"),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show Seconds").
				Value(&fm.ShowSeconds),
			huh.NewConfirm().
				Title("Show Milliseconds").
				Value(&fm.ShowMilliseconds),
			huh.NewConfirm().
				Title("Show Date").
				Value(&fm.ShowDate),
		).Title("Visibility"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Font Family").
				Options(fontFamilyChoices(fm.FontFamily)...).
				Value(&fm.FontFamily),
			huh.NewInput().
				Title("Font Size (24-200)").
				Value(&fm.FontSize).
				Validate(func(s string) error {
					_, err := validation.FontSize(s)
					return err
				}),
		).Title("Font"),
		huh.NewGroup(
			huh.NewInput().
				Title("Background").
				Value(&fm.Background).
				Validate(validation.HexColor),
			huh.NewInput().
				Title("Text").
				Value(&fm.Text).
				Validate(validation.HexColor),
			huh.NewInput().
				Title("Accent").
				Value(&fm.Accent).
				Validate(validation.HexColor),
		).Title("Colors"),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Glow").
				Value(&fm.Glow),
			huh.NewConfirm().
				Title("Shadow").
				Description("Ignored while glow is on").
				Value(&fm.Shadow),
			huh.NewConfirm().
				Title("Scanlines").
				Value(&fm.Scanlines),
		).Title("Effects"),
	).WithTheme(huh.ThemeDracula()).WithWidth(panelWidth)
}

// resetChoice backs the reset confirmation
type resetChoice struct {
	Confirmed bool
}

// NewResetForm asks before restoring the default record
func NewResetForm(choice *resetChoice) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all settings to defaults?").
				Affirmative("Yes").
				Negative("No").
				Value(&choice.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
