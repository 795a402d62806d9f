// Package valueobject contains domain value objects and their conversion rules.
package valueobject

import (
	"fmt"
	"strings"
	"time"

	domainerror "github.com/activity-log/backend/internal/domain/error"
)

// extendedLayout is the extended RFC3339 form timestamps are serialized
// through before splitting: 'T'-separated, millisecond fraction, "Z" for UTC.
const extendedLayout = "2006-01-02T15:04:05.000Z07:00"

// IsValidTimestamp reports whether t is a usable instant. The zero time.Time
// is reserved as the invalid state; it is what ParseTimestamp returns
// alongside an error and must never reach the store.
func IsValidTimestamp(t time.Time) bool {
	return !t.IsZero()
}

// SplitTimestamp decomposes a timestamp into its calendar-date part and its
// time-with-fraction-and-zone part.
func SplitTimestamp(t time.Time) (string, string, error) {
	if !IsValidTimestamp(t) {
		return "", "", domainerror.NewDateError(
			domainerror.ErrCodeDateInvalid,
			"The provided date is invalid.",
			domainerror.ErrDateInvalid,
		)
	}

	serialized := t.UTC().Format(extendedLayout)

	datePart, timePart, found := strings.Cut(serialized, "T")
	if !found {
		datePart, timePart, found = strings.Cut(serialized, " ")
	}
	if !found {
		// The layout above always emits a 'T'. Reaching this point means the
		// serializer contract was violated, which is a programming error, not
		// bad input.
		panic(fmt.Sprintf("timestamp serialization produced no date/time separator: %q", serialized))
	}

	return datePart, timePart, nil
}

// ToCanonical renders a timestamp in the canonical space-separated RFC3339
// form this system writes to the record store, e.g. "2025-03-28 12:30:45.000Z".
func ToCanonical(t time.Time) (string, error) {
	datePart, timePart, err := SplitTimestamp(t)
	if err != nil {
		return "", err
	}
	return datePart + " " + timePart, nil
}

// ParseTimestamp parses a timestamp string in either accepted RFC3339 variant:
// 'T'-separated ("2025-03-28T12:30:45.000Z") or space-separated
// ("2025-03-28 12:30:45.000Z", the canonical storage form). The space variant
// is rewritten to the 'T' form before parsing; strings that already contain a
// 'T', or contain neither separator, are passed through unchanged.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domainerror.NewDateError(
			domainerror.ErrCodeDateInvalidFormat,
			"The provided date string is empty.",
			domainerror.ErrDateInvalidFormat,
		)
	}

	normalized := s
	if strings.Contains(s, " ") && !strings.Contains(s, "T") {
		normalized = strings.Replace(s, " ", "T", 1)
	}

	t, err := time.Parse(time.RFC3339, normalized)
	if err != nil {
		return time.Time{}, domainerror.NewDateError(
			domainerror.ErrCodeDateInvalidFormat,
			fmt.Sprintf("The provided date string %q is invalid.", s),
			err,
		)
	}

	return t, nil
}

// NormalizeTimestamp validates a timestamp string and returns its canonical
// space-separated form, regardless of which separator or offset the input
// used. Parse failures and invalid-date failures stay distinguishable through
// the DateError code.
func NormalizeTimestamp(s string) (string, error) {
	t, err := ParseTimestamp(s)
	if err != nil {
		return "", err
	}
	return ToCanonical(t)
}
