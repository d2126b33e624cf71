package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestHandAngles(t *testing.T) {
	tests := []struct {
		name                 string
		hour, minute, second int
		want                 Hands
	}{
		{"midnight points up", 0, 0, 0, Hands{Hour: -90, Minute: -90, Second: -90}},
		{"three o'clock", 3, 0, 0, Hands{Hour: 0, Minute: -90, Second: -90}},
		{"fifteen wraps to three", 15, 0, 0, Hands{Hour: 0, Minute: -90, Second: -90}},
		{"half past with seconds", 6, 30, 30, Hands{Hour: 105, Minute: 93, Second: 90}},
		{"last second", 11, 59, 59, Hands{Hour: 269.5, Minute: 269.9, Second: 264}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HandAngles(tt.hour, tt.minute, tt.second)
			require.InDelta(t, tt.want.Hour, got.Hour, 1e-9)
			require.InDelta(t, tt.want.Minute, got.Minute, 1e-9)
			require.InDelta(t, tt.want.Second, got.Second, 1e-9)
		})
	}
}

func TestDialRadius(t *testing.T) {
	require.Equal(t, defaultDialRadius, DialRadius(0, 0))
	require.Equal(t, minDialRadius, DialRadius(10, 4))
	require.Equal(t, maxDialRadius, DialRadius(500, 200))
	require.Equal(t, 7, DialRadius(29, 40))
}

func TestAnalogSecondHandOnlyWithSeconds(t *testing.T) {
	st := testState(10, 10, 40)

	with := ansi.Strip(Analog(st))
	require.Contains(t, with, "∙")
	require.Contains(t, with, "◉")
	require.Contains(t, with, "█")

	st.Settings.ShowSeconds = false
	without := ansi.Strip(Analog(st))
	require.NotContains(t, without, "∙")
	require.Contains(t, without, "▓")
}

func TestAnalogFitsBounds(t *testing.T) {
	st := testState(4, 20, 0)
	st.Width, st.Height = 41, 21

	lines := strings.Split(ansi.Strip(Analog(st)), "\n")
	require.Len(t, lines, 21)
	for _, l := range lines {
		require.LessOrEqual(t, len([]rune(l)), 41)
	}
}
