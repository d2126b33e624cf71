package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitCreatesLogFile(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	require.NoError(t, Init(Config{ConfigDir: configDir}))
	t.Cleanup(func() { _ = Close() })
	require.NotNil(t, Logger)

	Info("clock started", "mode", "digital")
	Debug("dropped below info level")

	data, err := os.ReadFile(Path(configDir))
	require.NoError(t, err)
	require.Contains(t, string(data), "clock started")
	require.NotContains(t, string(data), "dropped below info level")
}

func TestInitDebugMirrorsRecords(t *testing.T) {
	var mirror bytes.Buffer
	configDir := t.TempDir()

	require.NoError(t, Init(Config{Debug: true, ConfigDir: configDir, Mirror: &mirror}))
	t.Cleanup(func() { _ = Close() })

	Debug("tick rescheduled", "interval", "10ms")
	Warn("settings fell back to defaults")

	out := mirror.String()
	require.True(t, strings.Contains(out, "tick rescheduled"), "mirror output: %q", out)
	require.Contains(t, out, "settings fell back to defaults")
}

func TestHelpersWithoutInit(t *testing.T) {
	require.NoError(t, Close())
	require.Nil(t, Logger)

	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}

func TestPath(t *testing.T) {
	got := Path("/tmp/techclock")
	require.Equal(t, filepath.Join("/tmp/techclock", "logs", "techclock.log"), got)
}
