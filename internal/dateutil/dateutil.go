// Package dateutil owns the canonical date-key format. Every store formats
// date keys through Key so bucket lookups always agree.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

const keyLayout = "2006-01-02"

// Key returns the canonical YYYY-MM-DD key for the local calendar day of t.
func Key(t time.Time) string {
	return t.Local().Format(keyLayout)
}

// TodayKey returns the key for the current local day.
func TodayKey() string {
	return Key(time.Now())
}

// ParseKey parses a YYYY-MM-DD key as midnight local time.
func ParseKey(value string) (time.Time, error) {
	t, err := time.ParseInLocation(keyLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// ParseMonth parses a YYYY-MM value as the first of that month, local time.
func ParseMonth(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01", strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", value)
	}
	return t, nil
}

// DisplayDate formats t the way the day header is shown, e.g. "Monday, Jan 2".
func DisplayDate(t time.Time) string {
	return t.Local().Format("Monday, Jan 2")
}
