package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/office-hours-service/pkg/types"
)

// TimeWindow office hours of a single weekday, [Start, End)
type TimeWindow struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Validate checks a window at the write boundary: both ends present,
// canonical HH:MM, Start strictly before End.
func (w TimeWindow) Validate() error {
	if w.Start.IsZero() != w.End.IsZero() {
		return fmt.Errorf("%w: start and end must be set together", ErrInvalidOfficeHours)
	}
	if w.Start.IsZero() {
		return nil
	}
	if err := w.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidOfficeHours, err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidOfficeHours, err)
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidOfficeHours, w.Start, w.End)
	}
	return nil
}

// IsEmpty reports whether the window carries no office hours.
func (w TimeWindow) IsEmpty() bool {
	return w.Start.IsZero() || w.End.IsZero()
}

// WeeklyAvailability recurring office hours of a professor.
// Saturday and Sunday are never schedulable and have no field.
type WeeklyAvailability struct {
	Monday    *TimeWindow `json:"monday,omitempty"`
	Tuesday   *TimeWindow `json:"tuesday,omitempty"`
	Wednesday *TimeWindow `json:"wednesday,omitempty"`
	Thursday  *TimeWindow `json:"thursday,omitempty"`
	Friday    *TimeWindow `json:"friday,omitempty"`
}

// DefaultWeeklyAvailability Mon-Fri 10:00-13:00, assigned to new professors.
func DefaultWeeklyAvailability() WeeklyAvailability {
	window := func() *TimeWindow {
		return &TimeWindow{Start: DefaultOfficeHoursStart, End: DefaultOfficeHoursEnd}
	}
	return WeeklyAvailability{
		Monday:    window(),
		Tuesday:   window(),
		Wednesday: window(),
		Thursday:  window(),
		Friday:    window(),
	}
}

// Window returns the office hours for weekday, or nil when there are none.
// Weekends always yield nil. The returned window is not re-validated:
// stored values are trusted and malformed ones are handled by the caller.
func (a WeeklyAvailability) Window(weekday time.Weekday) *TimeWindow {
	var w *TimeWindow
	switch weekday {
	case time.Monday:
		w = a.Monday
	case time.Tuesday:
		w = a.Tuesday
	case time.Wednesday:
		w = a.Wednesday
	case time.Thursday:
		w = a.Thursday
	case time.Friday:
		w = a.Friday
	default:
		return nil
	}
	if w == nil || w.IsEmpty() {
		return nil
	}
	return w
}

// Validate rejects partial or inverted windows on any weekday.
func (a WeeklyAvailability) Validate() error {
	days := []struct {
		name   string
		window *TimeWindow
	}{
		{"monday", a.Monday},
		{"tuesday", a.Tuesday},
		{"wednesday", a.Wednesday},
		{"thursday", a.Thursday},
		{"friday", a.Friday},
	}
	for _, d := range days {
		if d.window == nil {
			continue
		}
		if err := d.window.Validate(); err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
	}
	return nil
}

// Normalize drops empty windows so that "no office hours" has one representation.
func (a WeeklyAvailability) Normalize() WeeklyAvailability {
	clean := func(w *TimeWindow) *TimeWindow {
		if w == nil || w.IsEmpty() {
			return nil
		}
		c := *w
		return &c
	}
	return WeeklyAvailability{
		Monday:    clean(a.Monday),
		Tuesday:   clean(a.Tuesday),
		Wednesday: clean(a.Wednesday),
		Thursday:  clean(a.Thursday),
		Friday:    clean(a.Friday),
	}
}

// Value implements driver.Valuer (stored as JSONB).
func (a WeeklyAvailability) Value() (driver.Value, error) {
	return jsonValue(a)
}

// Scan implements sql.Scanner.
func (a *WeeklyAvailability) Scan(src any) error {
	return scanJSON(src, a)
}

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into %T", src, dst)
	}
}
