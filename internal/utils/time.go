package utils

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/julianstephens/techclock/internal/constants"
)

// zoneinfoRoots are the directory names an /etc/localtime symlink usually points into
var zoneinfoRoots = []string{"zoneinfo/", "zoneinfo.default/"}

// localtimePath is a variable so tests can point it at a fixture
var localtimePath = "/etc/localtime"

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ResolveLocation is LoadLocation without the error: unknown zones resolve
// to the host's local time.
func ResolveLocation(timezone string) *time.Location {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// HostZone returns the IANA name of the host's timezone, or "Local" when
// it cannot be determined.
func HostZone() string {
	if tz, ok := os.LookupEnv("TZ"); ok {
		tz = strings.TrimPrefix(tz, ":")
		if tz != "" && ValidateTimezone(tz) {
			return tz
		}
	}

	target, err := filepath.EvalSymlinks(localtimePath)
	if err != nil {
		return constants.DefaultTimezone
	}
	target = filepath.ToSlash(target)
	for _, root := range zoneinfoRoots {
		if idx := strings.LastIndex(target, root); idx >= 0 {
			name := target[idx+len(root):]
			if ValidateTimezone(name) {
				return name
			}
		}
	}
	return constants.DefaultTimezone
}
