// Package datekey canonicalizes calendar days as YYYY-MM-DD strings.
// Every map keyed by day in the application uses these keys.
package datekey

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a key is not a well-formed YYYY-MM-DD string.
var ErrInvalidFormat = errors.New("invalid date key format")

var keyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Encode formats a calendar day as a canonical date key. Month and day are
// zero-padded; no timezone conversion is applied and calendar correctness
// (e.g. day 31 in a 30-day month) is the caller's responsibility.
func Encode(year int, month int, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MonthKey returns the key of the first day of the given month, which is how
// monthly goals are addressed.
func MonthKey(year int, month int) string {
	return Encode(year, month, 1)
}

// Decode splits a date key into its year, month and day components.
// It is the exact inverse of Encode for all valid keys.
func Decode(key string) (year int, month int, day int, err error) {
	if !keyPattern.MatchString(key) {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, key)
	}
	parts := strings.Split(key, "-")
	year, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	day, _ = strconv.Atoi(parts[2])
	return year, month, day, nil
}

// IsValid reports whether key matches the canonical YYYY-MM-DD pattern.
// Keys failing this check are discarded wherever they are ingested from an
// external source.
func IsValid(key string) bool {
	return keyPattern.MatchString(key)
}

// IsCalendarKey reports whether key matches the pattern and names a month
// between 01 and 12 and a day between 01 and 31. Backup import uses this
// stricter check so nonsense keys like "2026-13-40" are dropped even though
// they fit the pattern.
func IsCalendarKey(key string) bool {
	_, month, day, err := Decode(key)
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// InMonth reports whether key belongs to the given calendar month, compared on
// exact year/month equality of the decoded key. Malformed keys are never in
// any month.
func InMonth(key string, year int, month int) bool {
	y, m, _, err := Decode(key)
	if err != nil {
		return false
	}
	return y == year && m == month
}
