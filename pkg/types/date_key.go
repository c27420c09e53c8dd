package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateKey is returned for values that are not day_month_year keys.
var ErrInvalidDateKey = errors.New("invalid date key format")

// DateKey is the day_month_year calendar key with a 1-based month, e.g. "15_10_2026".
// It is the external serialization of a day; code works with time.Time and
// converts at the boundary.
type DateKey string

// NewDateKey returns the key of t's calendar day in t's location.
func NewDateKey(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey(fmt.Sprintf("%d_%d_%d", d, int(m), y))
}

// ParseDateKey validates a key and returns its canonical form (no zero padding).
func ParseDateKey(s string) (DateKey, error) {
	date, err := DateKey(s).Date(time.UTC)
	if err != nil {
		return "", err
	}
	return NewDateKey(date), nil
}

// Date returns midnight of the keyed day in loc.
func (k DateKey) Date(loc *time.Location) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(string(k)), "_")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, string(k))
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, string(k))
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || year < 1 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, string(k))
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date нормализует 31_2_2026 в 3 марта
	if date.Day() != day || int(date.Month()) != month {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar day", ErrInvalidDateKey, string(k))
	}

	return date, nil
}

// String implements fmt.Stringer.
func (k DateKey) String() string {
	return string(k)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
