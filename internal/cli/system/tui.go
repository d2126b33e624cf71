package system

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/techclock/internal/cli"
	"github.com/julianstephens/techclock/internal/instance"
	"github.com/julianstephens/techclock/internal/logger"
	"github.com/julianstephens/techclock/internal/timefmt"
	"github.com/julianstephens/techclock/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	notice := ctx.OpenWithFallback()

	lock, err := instance.Acquire(ctx.ConfigDir)
	switch {
	case errors.Is(err, instance.ErrHeld):
		logger.Warn("starting alongside another instance", "error", err)
		if notice == "" {
			notice = err.Error() + "; settings changes may be overwritten"
		}
	case err != nil:
		logger.Warn("failed to acquire instance lock", "error", err)
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release instance lock", "error", err)
		}
	}()

	ctx.PerformAutomaticBackup()

	model := tui.NewModel(ctx.Settings, timefmt.SystemClock{}).WithNotice(notice)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
