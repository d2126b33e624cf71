package system

import (
	"fmt"

	"github.com/julianstephens/techclock/internal/cli"
	"github.com/julianstephens/techclock/internal/logger"
	"github.com/julianstephens/techclock/internal/timefmt"
)

// TimezonesCmd lists the zones offered by the settings panel and marks the active one
type TimezonesCmd struct{}

func (c *TimezonesCmd) Run(ctx *cli.Context) error {
	current := ""
	if err := ctx.Open(false); err != nil {
		logger.Debug("listing timezones without stored settings", "error", err)
	} else {
		current = ctx.Settings.Current().Timezone
	}

	for _, zone := range timefmt.Timezones() {
		marker := " "
		if zone == current {
			marker = "*"
		}
		fmt.Fprintf(ctx.Out, "%s %s\n", marker, zone)
	}
	return nil
}
