// Package timefmt converts instants into the clock's display strings.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/utils"
)

var timezones = []string{
	"UTC",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Asia/Dubai",
	"Australia/Sydney",
	"Pacific/Auckland",
}

// Timezones returns the curated zone list offered for selection, in display order.
func Timezones() []string {
	out := make([]string, len(timezones))
	copy(out, timezones)
	return out
}

// WallClock returns t expressed in the named zone. Unknown zones resolve to
// host local time.
func WallClock(t time.Time, timezone string) time.Time {
	return t.In(utils.ResolveLocation(timezone))
}

// FormatTime renders t according to format. The unix format ignores every
// flag and the zone; binary and hex never show milliseconds.
func FormatTime(t time.Time, format models.TimeFormat, showSeconds, showMillis bool, timezone string) string {
	if format == models.TimeFormatUnix {
		return strconv.FormatInt(t.Unix(), 10)
	}

	wall := WallClock(t, timezone)
	hour, minute, second := wall.Clock()
	millis := t.Nanosecond() / int(time.Millisecond)

	var b strings.Builder
	switch format {
	case models.TimeFormat12h:
		fmt.Fprintf(&b, "%d:%02d", Hour12(hour), minute)
		if showSeconds {
			fmt.Fprintf(&b, ":%02d", second)
		}
		if showMillis {
			fmt.Fprintf(&b, ".%03d", millis)
		}
		b.WriteString(" " + Meridiem(hour))
	case models.TimeFormat24h:
		fmt.Fprintf(&b, "%02d:%02d", hour, minute)
		if showSeconds {
			fmt.Fprintf(&b, ":%02d", second)
		}
		if showMillis {
			fmt.Fprintf(&b, ".%03d", millis)
		}
	case models.TimeFormatBinary:
		fmt.Fprintf(&b, "%05b:%06b", hour, minute)
		if showSeconds {
			fmt.Fprintf(&b, ":%06b", second)
		}
	case models.TimeFormatHex:
		fmt.Fprintf(&b, "0x%02X:%02X", hour, minute)
		if showSeconds {
			fmt.Fprintf(&b, ":%02X", second)
		}
	default:
		return wall.Format(constants.FallbackTimeFormat)
	}
	return b.String()
}

// FormatDate renders the long-form date of t in the named zone
func FormatDate(t time.Time, timezone string) string {
	return WallClock(t, timezone).Format(constants.DateFormat)
}

// Hour12 maps a 0-23 hour onto the 1-12 dial
func Hour12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

// Meridiem returns AM or PM for a 0-23 hour
func Meridiem(hour int) string {
	if hour >= 12 {
		return "PM"
	}
	return "AM"
}
