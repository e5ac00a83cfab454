package extraction

import (
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// yearlessDefault is the year given to dates written without one.
const yearlessDefault = 1900

type dateLayout struct {
	layout   string
	withYear bool
}

// dateLayouts are tried in order, the first one that parses wins.
var dateLayouts = []dateLayout{
	{"2006-1-2", true},
	{"2/1/2006", true},
	{"2-1-2006", true},
	{"January 2, 2006", true},
	{"Jan 2, 2006", true},
	{"2 January 2006", true},
	{"2 Jan 2006", true},
	{"January 2", false},
	{"Jan 2", false},
}

// NormalizeDate converts a free-form date to ISO-8601 (YYYY-MM-DD).
// Dates without a year get the year 1900. It is idempotent on ISO dates.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, l := range dateLayouts {
		parsed, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		if !l.withYear {
			day := time.Date(yearlessDefault, parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			// February 29 does not exist in 1900
			if day.Day() != parsed.Day() {
				return "", false
			}
			parsed = day
		}
		return parsed.Format(isoDate), true
	}
	return "", false
}
