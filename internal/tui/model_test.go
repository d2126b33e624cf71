package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/settings"
	"github.com/julianstephens/techclock/internal/storage"
	"github.com/julianstephens/techclock/internal/timefmt"
)

var noon = time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

// formDone is a non-key message; a finished huh form ignores it, so Update
// sees the state the test assigned.
type formDone struct{}

func finish(m Model) (Model, tea.Cmd) {
	m.form.State = huh.StateCompleted
	next, cmd := m.Update(formDone{})
	return next.(Model), cmd
}

func newTestModel(t *testing.T) (Model, *settings.Store, *storage.MemoryStore) {
	t.Helper()
	provider := storage.NewMemoryStore()
	store := settings.NewStore(provider)
	store.Load()
	tz := "UTC"
	_, err := store.Update(models.Patch{Timezone: &tz})
	require.NoError(t, err)
	return NewModel(store, timefmt.FixedClock{At: noon}), store, provider
}

func press(m Model, keys string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return next.(Model)
}

func TestNewModel(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Equal(t, constants.StateClock, m.state)
	assert.Equal(t, constants.TickInterval, m.interval)
	assert.Equal(t, 1, m.tickSeq)
	assert.Zero(t, m.animSeq)
	assert.NotNil(t, m.Init())
}

func TestTickResamplesClock(t *testing.T) {
	m, _, _ := newTestModel(t)
	later := noon.Add(time.Second)
	m.clock = timefmt.FixedClock{At: later}

	next, cmd := m.Update(tickMsg{seq: m.tickSeq, at: later})
	assert.Equal(t, later, next.(Model).now)
	assert.NotNil(t, cmd)
}

func TestStaleTickIsDropped(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.clock = timefmt.FixedClock{At: noon.Add(time.Hour)}

	next, cmd := m.Update(tickMsg{seq: m.tickSeq - 1, at: noon})
	assert.Equal(t, noon, next.(Model).now)
	assert.Nil(t, cmd)
}

func TestModeKeyCyclesAndPersists(t *testing.T) {
	m, store, _ := newTestModel(t)

	want := []models.DisplayMode{models.DisplayAnalog, models.DisplaySegment, models.DisplayMatrix, models.DisplayDigital}
	for _, mode := range want {
		m = press(m, "m")
		assert.Equal(t, mode, m.settings.DisplayMode)
		assert.Equal(t, mode, store.Current().DisplayMode)
	}
}

func TestMatrixModeStartsAnimation(t *testing.T) {
	m, _, _ := newTestModel(t)
	for i := 0; i < 3; i++ {
		m = press(m, "m")
	}
	require.Equal(t, models.DisplayMatrix, m.settings.DisplayMode)
	assert.Equal(t, 1, m.animSeq)
	assert.Equal(t, noon, m.modeSince)

	_, cmd := m.Update(animMsg{seq: m.animSeq})
	assert.NotNil(t, cmd, "tiles are still fading in")

	m.clock = timefmt.FixedClock{At: noon.Add(5 * time.Second)}
	_, cmd = m.Update(animMsg{seq: m.animSeq})
	assert.Nil(t, cmd, "animation stops once every tile is visible")
}

func TestFormatKeyCycles(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = press(m, "f")
	assert.Equal(t, models.TimeFormatUnix, m.settings.TimeFormat)
	assert.Equal(t, models.TimeFormatUnix, store.Current().TimeFormat)
}

func TestMillisecondsReschedulesTick(t *testing.T) {
	m, store, _ := newTestModel(t)
	on := true
	next, err := store.Update(models.Patch{ShowMilliseconds: &on})
	require.NoError(t, err)

	cmd := m.applySettings(next)
	assert.NotNil(t, cmd)
	assert.Equal(t, constants.TickIntervalMillis, m.interval)
	assert.Equal(t, 2, m.tickSeq)

	updated, cmd := m.Update(tickMsg{seq: 1, at: noon})
	assert.Nil(t, cmd, "tick from the old schedule")
	assert.Equal(t, 2, updated.(Model).tickSeq)
}

func TestSaveFailureKeepsSettings(t *testing.T) {
	m, store, provider := newTestModel(t)
	provider.FailWrites = errors.New("read-only")

	m = press(m, "m")
	assert.Equal(t, models.DisplayDigital, m.settings.DisplayMode)
	assert.Equal(t, models.DisplayDigital, store.Current().DisplayMode)
	assert.Contains(t, m.status, "read-only")
}

func TestPanelPreviewAndRevert(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = press(m, "s")
	require.Equal(t, constants.StateSettings, m.state)
	require.NotNil(t, m.form)

	m.panel.DisplayMode = models.DisplayAnalog
	m.panel.Background = "#112233"
	assert.Equal(t, models.DisplayAnalog, m.Settings().DisplayMode)
	assert.Equal(t, "#112233", m.Settings().ColorScheme.Background)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Equal(t, constants.StateClock, m.state)
	assert.Nil(t, m.panel)
	assert.Equal(t, models.DisplayDigital, m.Settings().DisplayMode)
	assert.Equal(t, store.Current(), m.settings)
}

func TestPanelCompletionPersists(t *testing.T) {
	m, store, provider := newTestModel(t)
	m = press(m, "s")
	require.Equal(t, constants.StateSettings, m.state)

	m.panel.DisplayMode = models.DisplayMatrix
	m.panel.ShowDate = false
	m.panel.Accent = "#ff8800"
	m.panel.FontSize = "120"

	m, cmd := finish(m)
	assert.NotNil(t, cmd)
	assert.Equal(t, constants.StateClock, m.state)
	assert.Nil(t, m.form)
	assert.Nil(t, m.panel)
	assert.Empty(t, m.formError)

	saved := store.Current()
	assert.Equal(t, models.DisplayMatrix, saved.DisplayMode)
	assert.False(t, saved.ShowDate)
	assert.Equal(t, "#ff8800", saved.ColorScheme.Accent)
	assert.Equal(t, 120, saved.FontSize)
	assert.Equal(t, "UTC", saved.Timezone)
	assert.Equal(t, saved, m.settings)

	raw, ok, err := provider.Get(constants.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"display_mode":"matrix"`)
}

func TestPanelSaveFailureKeepsPanelOpen(t *testing.T) {
	m, store, provider := newTestModel(t)
	before := store.Current()
	m = press(m, "s")
	m.panel.DisplayMode = models.DisplayAnalog
	provider.FailWrites = errors.New("read-only")

	m, _ = finish(m)
	assert.Equal(t, constants.StateSettings, m.state)
	require.NotNil(t, m.form)
	assert.Equal(t, huh.StateNormal, m.form.State)
	assert.Contains(t, m.formError, "read-only")
	assert.Equal(t, before, store.Current())
	// the edit is still previewed so it can be retried
	assert.Equal(t, models.DisplayAnalog, m.Settings().DisplayMode)

	provider.FailWrites = nil
	m, _ = finish(m)
	assert.Equal(t, constants.StateClock, m.state)
	assert.Equal(t, models.DisplayAnalog, store.Current().DisplayMode)
}

func TestResetConfirmed(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = press(m, "m")
	require.Equal(t, models.DisplayAnalog, store.Current().DisplayMode)

	m = press(m, "r")
	require.Equal(t, constants.StateConfirmReset, m.state)
	m.reset.Confirmed = true

	m, _ = finish(m)
	assert.Equal(t, constants.StateClock, m.state)
	assert.Nil(t, m.form)
	assert.Equal(t, "Settings reset to defaults", m.status)
	assert.Equal(t, models.DefaultSettings(), store.Current())
	assert.Equal(t, store.Current(), m.settings)
}

func TestResetDeclined(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = press(m, "m")
	m = press(m, "r")

	m, _ = finish(m)
	assert.Equal(t, constants.StateClock, m.state)
	assert.Empty(t, m.status)
	assert.Equal(t, models.DisplayAnalog, store.Current().DisplayMode)
}

func TestResetFailureReported(t *testing.T) {
	m, store, provider := newTestModel(t)
	m = press(m, "m")
	m = press(m, "r")
	m.reset.Confirmed = true
	provider.FailWrites = errors.New("read-only")

	m, _ = finish(m)
	assert.Equal(t, constants.StateClock, m.state)
	assert.Contains(t, m.status, "Reset failed")
	assert.Equal(t, models.DisplayAnalog, store.Current().DisplayMode)
	assert.Equal(t, models.DisplayAnalog, m.settings.DisplayMode)
}

func TestResetCancelledWithEsc(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = press(m, "m")
	m = press(m, "r")
	require.Equal(t, constants.StateConfirmReset, m.state)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Equal(t, constants.StateClock, m.state)
	assert.Equal(t, models.DisplayAnalog, store.Current().DisplayMode)
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).quitting)
	assert.Empty(t, next.(Model).View())
}

func TestViewFooter(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := next.(Model).View()
	assert.Contains(t, view, "Clock v1.0 | Timezone: UTC")
	assert.Contains(t, view, "1 2 : 0 0 : 0 0")
}

func TestViewNotice(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = m.WithNotice("another instance is running")
	assert.Contains(t, m.View(), "another instance is running")

	m = press(m, "?")
	assert.NotContains(t, m.View(), "another instance is running")
}

func TestCycle(t *testing.T) {
	assert.Equal(t, models.DisplayDigital, nextDisplayMode("flip"))
	assert.Equal(t, models.DisplayDigital, nextDisplayMode(models.DisplayMatrix))
	assert.Equal(t, models.TimeFormat12h, nextTimeFormat(models.TimeFormatHex))
}

func TestPanelFormApply(t *testing.T) {
	base := models.DefaultSettings()
	fm := newPanelForm(base)
	assert.Equal(t, base, fm.Apply(base))

	fm.FontSize = "oops"
	assert.Equal(t, base.FontSize, fm.Apply(base).FontSize)

	fm.FontSize = "120"
	fm.Glow = false
	fm.Shadow = true
	got := fm.Apply(base)
	assert.Equal(t, 120, got.FontSize)
	assert.Equal(t, models.Effects{Shadow: true}, got.Effects)
}

func TestTimezoneChoices(t *testing.T) {
	zones := timezoneChoices("Asia/Kolkata")
	assert.Equal(t, "Asia/Kolkata", zones[0])
	assert.Len(t, zones, 14)

	zones = timezoneChoices("Asia/Tokyo")
	assert.Len(t, zones, 13)
	assert.False(t, strings.HasPrefix(zones[0], "Asia"))
}
