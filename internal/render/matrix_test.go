package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/techclock/internal/models"
)

func TestTiles(t *testing.T) {
	tiles := Tiles("12:34.567")
	require.Len(t, tiles, 9)

	for i, tile := range tiles {
		require.Equal(t, time.Duration(i)*50*time.Millisecond, tile.Delay)
		if tile.Char == ':' || tile.Char == '.' {
			require.Less(t, tile.Width, tiles[0].Width)
		} else {
			require.Equal(t, tileWidth, tile.Width)
		}
	}
}

func TestTileOpacity(t *testing.T) {
	tile := Tiles("123")[2]
	require.Zero(t, tile.Opacity(0))
	require.Zero(t, tile.Opacity(100*time.Millisecond))
	require.InDelta(t, 0.5, tile.Opacity(250*time.Millisecond), 1e-9)
	require.Equal(t, 1.0, tile.Opacity(time.Second))
}

func TestMatrixSettled(t *testing.T) {
	require.True(t, MatrixSettled("", 0))
	require.False(t, MatrixSettled("10:05", 0))
	require.False(t, MatrixSettled("10:05", 400*time.Millisecond))
	require.True(t, MatrixSettled("10:05", 500*time.Millisecond))
}

func TestMatrixRendersEveryCharacter(t *testing.T) {
	st := testState(10, 5, 0)
	st.Settings.TimeFormat = models.TimeFormatHex
	st.Elapsed = time.Minute

	out := ansi.Strip(Matrix(st))
	for _, r := range "0x0A:05:00" {
		require.Contains(t, out, string(r))
	}
}

func TestMatrixHidesPendingTiles(t *testing.T) {
	st := testState(10, 5, 0)
	st.Elapsed = 0

	out := ansi.Strip(Matrix(st))
	require.NotContains(t, out, "1")
	require.NotContains(t, out, "5")
}

func TestMatrixWrapsNarrowFrames(t *testing.T) {
	st := testState(10, 5, 0)
	st.Settings.TimeFormat = models.TimeFormatUnix
	st.Elapsed = time.Minute
	st.Width = 30

	lines := strings.Split(ansi.Strip(Matrix(st)), "\n")
	require.Greater(t, len(lines), 3, "ten unix tiles should need more than one row of tiles")
}
