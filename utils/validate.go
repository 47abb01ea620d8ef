package utils

import (
	"fmt"
	"regexp"
	"time"
)

var hourPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d):([0-5]\d)$`)

// ValidHour reports whether s is a 24-hour HH:MM:SS clock value.
func ValidHour(s string) bool {
	return hourPattern.MatchString(s)
}

// dateLayouts are tried in order when normalizing an input date. Anything
// beyond the calendar date is discarded.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// NormalizeDate parses s as a calendar date and returns it as YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q", s)
}
