package routing

import (
	"strconv"
	"strings"
)

// DefaultDurationHours is reported when an offer's duration cannot be read.
const DefaultDurationHours = 5.0

// ParseDurationHours reads the whole hours of an ISO-8601 duration such as
// "PT5H30M"; minutes are dropped and "PT45M" is zero hours. Anything
// unreadable yields DefaultDurationHours so a bad duration never aborts a search.
func ParseDurationHours(duration string) float64 {
	if !strings.HasPrefix(duration, "PT") {
		return DefaultDurationHours
	}
	s := duration[2:]

	idx := strings.Index(s, "H")
	if idx < 0 {
		if subHour(s) {
			return 0
		}
		return DefaultDurationHours
	}

	hours, err := strconv.Atoi(s[:idx])
	if err != nil || hours < 0 {
		return DefaultDurationHours
	}
	return float64(hours)
}

// subHour reports whether s is a minutes and/or seconds remainder like "45M".
func subHour(s string) bool {
	if s == "" {
		return false
	}
	if i := strings.Index(s, "M"); i >= 0 {
		if _, err := strconv.Atoi(s[:i]); err != nil {
			return false
		}
		s = s[i+1:]
	}
	if s == "" {
		return true
	}
	if !strings.HasSuffix(s, "S") {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSuffix(s, "S"), 64)
	return err == nil
}
