package parsing

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/talent-matcher/internal/types"
)

// datePart matches one end of a date range: "Jan 2020", "January 2020",
// "01/2020" or a bare year.
const datePart = `[A-Za-z]{3,9}\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4}`

var (
	dateRangeRe = regexp.MustCompile(`(?i)(` + datePart + `)\s*(?:-|–|—|to)\s*(` + datePart + `|present|current|ongoing|now)`)

	requiredYearsRe = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)

	monthYearRe = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	yearOnlyRe  = regexp.MustCompile(`^\d{4}$`)
)

// ongoingMarkers are end-date spellings that mean "still employed".
var ongoingMarkers = map[string]bool{
	"present": true,
	"current": true,
	"ongoing": true,
	"now":     true,
}

// findDateRange extracts a (start, end) date-range pair from text. The
// bool reports whether a range was found.
func findDateRange(text string) (string, string, bool) {
	m := dateRangeRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// IsOngoing reports whether an experience end date means "still there".
func IsOngoing(endDate string) bool {
	return ongoingMarkers[strings.ToLower(strings.TrimSpace(endDate))]
}

// parseDate converts a date-range endpoint into a time. Month precision is
// kept when available; bare years resolve to January 1.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		t, err := time.Parse("1/2006", m[1]+"/"+m[2])
		if err == nil {
			return t, true
		}
	}
	if yearOnlyRe.MatchString(s) {
		t, err := time.Parse("2006", s)
		if err == nil {
			return t, true
		}
	}
	for _, layout := range []string{"Jan 2006", "January 2006", "Jan. 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TotalExperienceYears sums the durations of a candidate's experience
// entries in years, rounded to the nearest 0.5. Entries whose end date is
// missing or marked ongoing run until now. Entries with no parseable start
// date contribute nothing.
func TotalExperienceYears(entries []types.Experience) float64 {
	return totalExperienceYearsAt(entries, time.Now())
}

// totalExperienceYearsAt is TotalExperienceYears with an injectable clock.
func totalExperienceYearsAt(entries []types.Experience, now time.Time) float64 {
	total := 0.0
	for _, entry := range entries {
		start, ok := parseDate(entry.StartDate)
		if !ok {
			continue
		}

		end := now
		if entry.EndDate != "" && !IsOngoing(entry.EndDate) && !entry.Current {
			parsedEnd, ok := parseDate(entry.EndDate)
			if !ok {
				continue
			}
			end = parsedEnd
		}

		if end.Before(start) {
			continue
		}
		total += end.Sub(start).Hours() / (24 * 365.25)
	}

	return math.Round(total*2) / 2
}

// ParseRequiredYears extracts the integer years requirement from a job's
// free-text experience specifier (canonically "N+ years"). The bool is
// false when no requirement can be parsed, which scores as neutral.
func ParseRequiredYears(spec string) (int, bool) {
	m := requiredYearsRe.FindStringSubmatch(spec)
	if m == nil {
		return 0, false
	}

	years := 0
	for _, ch := range m[1] {
		years = years*10 + int(ch-'0')
	}
	return years, true
}
