package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func newID() string {
	return uuid.NewString()
}

// DateOf normalizes an instant to its calendar-day string.
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}

func requireText(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return value, nil
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validatePositiveInt(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

// normalizeDate validates an optional YYYY-MM-DD string, substituting the
// current day when empty.
func normalizeDate(name, value string, now time.Time) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DateOf(now), nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return "", fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, value)
	}
	return value, nil
}

// validateOptionalDate checks format only; empty stays empty.
func validateOptionalDate(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return "", fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, value)
	}
	return value, nil
}

// daysBetween is the calendar-day difference to - from, ignoring time of day.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// daysUntil is the calendar-day distance from now to a YYYY-MM-DD date.
func daysUntil(date string, now time.Time) (int, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return daysBetween(now, d), nil
}
