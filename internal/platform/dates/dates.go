// Package dates normalizes the date formats found in clinical exports to
// ISO 8601 calendar dates. Every matcher in the engine depends on this
// normalization; records whose dates cannot be parsed carry the empty
// sentinel and are skipped by date-based grouping.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var months = map[string]string{
	"january":   "01",
	"february":  "02",
	"march":     "03",
	"april":     "04",
	"may":       "05",
	"june":      "06",
	"july":      "07",
	"august":    "08",
	"september": "09",
	"october":   "10",
	"november":  "11",
	"december":  "12",
}

// Format classes overlap (a bare 8-digit date is also a prefix of a
// timestamped one), so rules are tried in a fixed priority order and the
// first match wins.
var rules = []struct {
	re      *regexp.Regexp
	resolve func(m []string) string
}{
	// Already ISO: YYYY-MM-DD, optionally with time/offset suffix.
	{
		regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`),
		func(m []string) string { return m[1] + "-" + m[2] + "-" + m[3] },
	},
	// Slash-delimited M/D/YYYY, always month-first.
	{
		regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`),
		func(m []string) string {
			mo, _ := strconv.Atoi(m[1])
			d, _ := strconv.Atoi(m[2])
			return fmt.Sprintf("%s-%02d-%02d", m[3], mo, d)
		},
	},
	// Bare YYYYMMDD, optionally followed by time and timezone digits.
	{
		regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})`),
		func(m []string) string { return m[1] + "-" + m[2] + "-" + m[3] },
	},
	// Narrative: "November 23rd, 2021" or "November 23, 2021 2:37pm".
	{
		regexp.MustCompile(`(?i)^(\w+)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s*(\d{4})`),
		func(m []string) string {
			mo, ok := months[strings.ToLower(m[1])]
			if !ok {
				return ""
			}
			d, _ := strconv.Atoi(m[2])
			return fmt.Sprintf("%s-%s-%02d", m[3], mo, d)
		},
	},
}

// Normalize converts a free-text date to YYYY-MM-DD, or returns "" when
// nothing matches. It never fails; already-ISO input comes back unchanged.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(s); m != nil {
			if out := r.resolve(m); out != "" {
				return out
			}
		}
	}
	return ""
}

// ParseISO parses a normalized YYYY-MM-DD date. The bool is false for the
// empty sentinel and for anything time.Parse rejects.
func ParseISO(s string) (time.Time, bool) {
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysBetween returns the absolute day gap between two normalized dates.
// The bool is false when either date is unknown or unparseable.
func DaysBetween(a, b string) (int, bool) {
	ta, ok := ParseISO(a)
	if !ok {
		return 0, false
	}
	tb, ok := ParseISO(b)
	if !ok {
		return 0, false
	}
	days := int(ta.Sub(tb).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days, true
}
