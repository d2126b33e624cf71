package system

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/julianstephens/techclock/internal/cli"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/render"
	"github.com/julianstephens/techclock/internal/timefmt"
	"github.com/julianstephens/techclock/internal/validation"
)

const defaultShowWidth = 80

// ShowCmd prints a single frame. The flags override the stored settings for
// this frame only.
type ShowCmd struct {
	Mode     string `help:"Display mode (digital, analog, segment, matrix)."`
	Format   string `help:"Time format (12h, 24h, unix, binary, hex)."`
	Timezone string `help:"IANA timezone or Local."`
	Width    int    `help:"Frame width in columns; defaults to the terminal width."`
	Height   int    `help:"Frame height in rows; defaults to the terminal height."`

	clock timefmt.Clock
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	ctx.OpenWithFallback()

	s, err := c.settings(ctx.Settings.Current())
	if err != nil {
		return err
	}

	clock := c.clock
	if clock == nil {
		clock = timefmt.SystemClock{}
	}
	width, height := c.size()

	frame := render.Frame(render.State{
		Now:      clock.Now(),
		Settings: s,
		Width:    width,
		Height:   height,
		// fully settled; there is no animation in a one-shot frame
		Elapsed: time.Hour,
	})
	fmt.Fprintln(ctx.Out, frame)
	return nil
}

func (c *ShowCmd) settings(base models.Settings) (models.Settings, error) {
	var patch models.Patch
	if c.Mode != "" {
		mode := models.DisplayMode(c.Mode)
		patch.DisplayMode = &mode
	}
	if c.Format != "" {
		format := models.TimeFormat(c.Format)
		patch.TimeFormat = &format
	}
	if c.Timezone != "" {
		patch.Timezone = &c.Timezone
	}
	if patch.IsEmpty() {
		return base, nil
	}
	if err := validation.ValidateSettings(models.DefaultSettings().Apply(patch)); err != nil {
		return base, err
	}
	return base.Apply(patch), nil
}

func (c *ShowCmd) size() (int, int) {
	width, height := c.Width, c.Height
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		tw, th = defaultShowWidth, 0
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}
