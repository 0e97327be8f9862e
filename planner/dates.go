package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

var timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// ParseISODate parses a strict YYYY-MM-DD date string.
func ParseISODate(text string) (time.Time, error) {
	t, err := time.Parse(isoDateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, validationErr("date", "invalid date, use YYYY-MM-DD")
	}
	return t, nil
}

// IsValidDate reports whether text is a valid YYYY-MM-DD date.
func IsValidDate(text string) bool {
	_, err := ParseISODate(text)
	return err == nil
}

// NormalizeTime validates a 24-hour H:MM or HH:MM string and returns it
// zero-padded to HH:MM so stored times compare correctly as strings.
func NormalizeTime(text string) (string, error) {
	text = strings.TrimSpace(text)
	if !timePattern.MatchString(text) {
		return "", validationErr("time", "invalid time, use HH:MM (24-hour)")
	}
	parts := strings.SplitN(text, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	if h > 23 || m > 59 {
		return "", validationErr("time", "invalid time, use HH:MM (24-hour)")
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// PrettyDate renders an ISO date like "Monday, January 02, 2026".
// Falls back to the raw text if it does not parse.
func PrettyDate(isoDate string) string {
	t, err := time.Parse(isoDateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("Monday, January 02, 2006")
}

// AddDays returns the ISO date offset days after the given ISO date.
func AddDays(isoDate string, offset int) (string, error) {
	t, err := ParseISODate(isoDate)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, offset).Format(isoDateLayout), nil
}

// MonthRange turns a YYYY-MM key into the [first, firstOfNext) ISO date
// bounds used for range queries.
func MonthRange(monthKey string) (string, string, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(monthKey))
	if err != nil {
		return "", "", validationErr("month", "invalid month, use YYYY-MM")
	}
	start := t.Format(isoDateLayout)
	end := t.AddDate(0, 1, 0).Format(isoDateLayout)
	return start, end, nil
}
