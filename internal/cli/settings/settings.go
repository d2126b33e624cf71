package settings

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/techclock/internal/cli"
	"github.com/julianstephens/techclock/internal/models"
	clocksettings "github.com/julianstephens/techclock/internal/settings"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(true); err != nil {
		return err
	}
	s := ctx.Settings.Current()

	fmt.Fprintln(ctx.Out, "Current Settings:")
	fmt.Fprintf(ctx.Out, "  Display Mode:       %s\n", s.DisplayMode.Label())
	fmt.Fprintf(ctx.Out, "  Time Format:        %s\n", s.TimeFormat.Label())
	fmt.Fprintf(ctx.Out, "  Timezone:           %s\n", s.Timezone)
	fmt.Fprintf(ctx.Out, "  Show Seconds:       %v\n", s.ShowSeconds)
	fmt.Fprintf(ctx.Out, "  Show Milliseconds:  %v\n", s.ShowMilliseconds)
	fmt.Fprintf(ctx.Out, "  Show Date:          %v\n", s.ShowDate)
	fmt.Fprintln(ctx.Out, "\nAppearance:")
	fmt.Fprintf(ctx.Out, "  Font Family:        %s\n", s.FontFamily)
	fmt.Fprintf(ctx.Out, "  Font Size:          %dpx\n", s.FontSize)
	fmt.Fprintf(ctx.Out, "  Background:         %s\n", s.ColorScheme.Background)
	fmt.Fprintf(ctx.Out, "  Text:               %s\n", s.ColorScheme.Text)
	fmt.Fprintf(ctx.Out, "  Accent:             %s\n", s.ColorScheme.Accent)
	fmt.Fprintln(ctx.Out, "\nEffects:")
	fmt.Fprintf(ctx.Out, "  Glow:               %v\n", s.Effects.Glow)
	fmt.Fprintf(ctx.Out, "  Shadow:             %v\n", s.Effects.Shadow)
	fmt.Fprintf(ctx.Out, "  Scanlines:          %v\n", s.Effects.Scanlines)
	return nil
}

type SetCmd struct {
	Mode         *string `help:"Display mode (digital, analog, segment, matrix)."`
	Format       *string `help:"Time format (12h, 24h, unix, binary, hex)."`
	Timezone     *string `help:"IANA timezone or Local."`
	Seconds      *bool   `help:"Show seconds."`
	Milliseconds *bool   `help:"Show milliseconds."`
	Date         *bool   `help:"Show the date."`
	FontFamily   *string `help:"Font family."`
	FontSize     *int    `help:"Font size in pixels (24-200)."`
	Background   *string `help:"Background color (#RRGGBB)."`
	Text         *string `help:"Text color (#RRGGBB)."`
	Accent       *string `help:"Accent color (#RRGGBB)."`
	Glow         *bool   `help:"Glow effect."`
	Shadow       *bool   `help:"Shadow effect (ignored while glow is on)."`
	Scanlines    *bool   `help:"Scanline effect."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(true); err != nil {
		return err
	}

	patch := c.patch(ctx.Settings.Current())
	if patch.IsEmpty() {
		fmt.Fprintln(ctx.Out, "No changes specified. Use 'settings list' to view settings or flags to update them.")
		return nil
	}
	if _, err := ctx.Settings.Update(patch); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Fprintln(ctx.Out, "Settings updated successfully.")
	return nil
}

// patch builds the update; color and effect flags are merged into the
// current sub-record so unset members keep their value.
func (c *SetCmd) patch(current models.Settings) models.Patch {
	var p models.Patch
	if c.Mode != nil {
		mode := models.DisplayMode(*c.Mode)
		p.DisplayMode = &mode
	}
	if c.Format != nil {
		format := models.TimeFormat(*c.Format)
		p.TimeFormat = &format
	}
	p.Timezone = c.Timezone
	p.ShowSeconds = c.Seconds
	p.ShowMilliseconds = c.Milliseconds
	p.ShowDate = c.Date
	p.FontFamily = c.FontFamily
	p.FontSize = c.FontSize

	if c.Background != nil || c.Text != nil || c.Accent != nil {
		cs := current.ColorScheme
		setIf(&cs.Background, c.Background)
		setIf(&cs.Text, c.Text)
		setIf(&cs.Accent, c.Accent)
		p.ColorScheme = &cs
	}
	if c.Glow != nil || c.Shadow != nil || c.Scanlines != nil {
		fx := current.Effects
		setIf(&fx.Glow, c.Glow)
		setIf(&fx.Shadow, c.Shadow)
		setIf(&fx.Scanlines, c.Scanlines)
		p.Effects = &fx
	}
	return p
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(true); err != nil {
		return err
	}

	if !c.Yes {
		fmt.Fprint(ctx.Out, "Reset all settings to defaults? [y/N]: ")
		response, err := bufio.NewReader(ctx.In).ReadString('\n')
		if err != nil && response == "" {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(ctx.Out, "Reset cancelled.")
			return nil
		}
	}

	if _, err := ctx.Settings.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	fmt.Fprintln(ctx.Out, "Settings reset to defaults.")
	return nil
}

type ExportCmd struct {
	Output string `short:"o" help:"Write to this file instead of stdout." type:"path"`
	Format string `help:"Document format; defaults to the output file extension."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(true); err != nil {
		return err
	}

	format := clocksettings.Format(c.Format)
	if format == "" {
		format = clocksettings.FormatForPath(c.Output)
	}
	data, err := ctx.Settings.Export(format)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err := ctx.Out.Write(data)
		return err
	}
	if err := os.WriteFile(c.Output, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	fmt.Fprintf(ctx.Out, "Settings exported to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	File   string `arg:"" help:"Settings document to import." type:"existingfile"`
	Format string `help:"Document format; defaults to the file extension."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(true); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}
	format := clocksettings.Format(c.Format)
	if format == "" {
		format = clocksettings.FormatForPath(c.File)
	}
	if _, err := ctx.Settings.Import(data, format); err != nil {
		return fmt.Errorf("failed to import settings: %w", err)
	}
	fmt.Fprintf(ctx.Out, "Settings imported from %s\n", c.File)
	return nil
}
