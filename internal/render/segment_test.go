package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/techclock/internal/models"
)

func lit(p Pattern) []int {
	var on []int
	for i, v := range p {
		if v {
			on = append(on, i)
		}
	}
	return on
}

func TestPatternTable(t *testing.T) {
	require.Len(t, lit(PatternFor('8')), 7)
	require.Equal(t, []int{SegTopRight, SegBottomRight}, lit(PatternFor('1')))
	require.Equal(t, []int{SegTop, SegTopLeft, SegTopRight, SegBottomLeft, SegBottomRight, SegBottom}, lit(PatternFor('0')))
	require.Equal(t, []int{SegTopLeft, SegTopRight, SegMiddle, SegBottomRight}, lit(PatternFor('4')))
	require.Empty(t, lit(PatternFor(':')))
}

func TestSegmentDigits(t *testing.T) {
	tests := []struct {
		name    string
		hour    int
		format  models.TimeFormat
		seconds bool
		want    []string
	}{
		{"leading hour digit suppressed", 9, models.TimeFormat24h, false, []string{"9", "45"}},
		{"two digit hour", 21, models.TimeFormat24h, true, []string{"21", "45", "30"}},
		{"12h afternoon", 21, models.TimeFormat12h, false, []string{"9", "45"}},
		{"12h midnight", 0, models.TimeFormat12h, false, []string{"12", "45"}},
		{"24h midnight", 0, models.TimeFormat24h, false, []string{"0", "45"}},
		{"hex keeps 24h hour", 21, models.TimeFormatHex, false, []string{"21", "45"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testState(tt.hour, 45, 30)
			st.Settings.TimeFormat = tt.format
			st.Settings.ShowSeconds = tt.seconds
			require.Equal(t, tt.want, SegmentDigits(st))
		})
	}
}

func TestSegmentGlyphs(t *testing.T) {
	st := testState(8, 8, 0)
	st.Settings.ShowSeconds = false
	st.Settings.FontSize = 24

	lines := strings.Split(ansi.Strip(Segment(st)), "\n")
	_, h := glyphSize(1)
	require.Len(t, lines, h)
	require.Contains(t, lines[0], "━━")
	require.Contains(t, lines[1], "┃")
	require.Contains(t, strings.Join(lines, ""), "●")
}

func TestSegmentScaleFitsWidth(t *testing.T) {
	require.Equal(t, 5, segmentScale(5, 4, 2, 0, 0))
	require.Equal(t, 1, segmentScale(5, 6, 3, 20, 0))

	w, h := glyphSize(3)
	require.Equal(t, 3, segmentScale(5, 4, 2, 4*(w+1)+2, h))
}
