// Package slots turns weekly office hours into concrete bookable slots.
//
// Generation is a pure function of the professor's availability, the booked
// slot index and the reference instant: nothing else is consulted.
package slots

import (
	"time"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/pkg/types"
)

const stepSeconds = domain.SlotMinutes * 60

// Generate returns the slots of every day in [from, from+days) that has at
// least one step. Days before now's calendar day are skipped, as are
// weekends and days without a well-formed window. The day list is built
// eagerly, the slots of each day are produced lazily.
func Generate(
	availability domain.WeeklyAvailability,
	booked domain.BookedSlotIndex,
	now time.Time,
	from time.Time,
	days int,
) []domain.DaySlots {
	today := types.StartOfDay(now)
	first := anchor(from, now.Location())

	result := make([]domain.DaySlots, 0, days)
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		if day.Before(today) {
			continue
		}
		if ds, ok := ForDay(availability, booked, now, day); ok {
			result = append(result, ds)
		}
	}
	return result
}

// ForDay generates the slots of a single day. ok is false when the day
// contributes no entry: weekend, no office hours, malformed window, or the
// window has fully elapsed.
func ForDay(
	availability domain.WeeklyAvailability,
	booked domain.BookedSlotIndex,
	now time.Time,
	day time.Time,
) (domain.DaySlots, bool) {
	day = anchor(day, now.Location())

	p, ok := plan(availability, now, day)
	if !ok {
		return domain.DaySlots{}, false
	}

	return domain.DaySlots{
		Date: day,
		Slots: func(yield func(domain.Slot) bool) {
			for start := p.first; start < p.end; start += domain.SlotMinutes {
				if !yield(p.slot(start, booked, now)) {
					return
				}
			}
		},
	}, true
}

// Find returns the slot of day starting exactly at t, if the generator would
// offer it. Steps are counted from the day's first slot, which for today is
// the rounded wall-clock mark. Booking state is not consulted: IsAvailable
// only reflects time.
func Find(availability domain.WeeklyAvailability, now, day time.Time, t types.TimeString) (domain.Slot, bool) {
	day = anchor(day, now.Location())

	p, ok := plan(availability, now, day)
	if !ok {
		return domain.Slot{}, false
	}

	start := t.Minutes()
	if start < p.first || start >= p.end || (start-p.first)%domain.SlotMinutes != 0 {
		return domain.Slot{}, false
	}
	return p.slot(start, nil, now), true
}

// dayPlan step boundaries of one day, in minutes since midnight
type dayPlan struct {
	day   time.Time
	first int
	end   int
}

func plan(availability domain.WeeklyAvailability, now, day time.Time) (dayPlan, bool) {
	window := availability.Window(day.Weekday())
	if window == nil {
		return dayPlan{}, false
	}

	// Битое окно пропускает только этот день
	start, end := window.Start.Minutes(), window.End.Minutes()
	if start < 0 || end < 0 || start >= end {
		return dayPlan{}, false
	}

	if types.SameDay(day, now) {
		start = max(start, nextMark(secondsSinceMidnight(now)))
	}
	if start >= end {
		return dayPlan{}, false
	}

	return dayPlan{day: day, first: start, end: end}, true
}

// nextMark returns the first :00 or :30 wall-clock mark at or after nowSec,
// in minutes since midnight. A time exactly on a mark is kept.
func nextMark(nowSec int) int {
	marks := (nowSec + stepSeconds - 1) / stepSeconds
	return marks * domain.SlotMinutes
}

func (p dayPlan) slot(start int, booked domain.BookedSlotIndex, now time.Time) domain.Slot {
	// Последний слот обрезается по концу окна
	end := min(start+domain.SlotMinutes, p.end)

	startTime := minutesToTime(start)
	endTime := minutesToTime(end)

	isBooked := booked.Has(p.day, startTime)
	isOver := !endTime.On(p.day).After(now)

	return domain.Slot{
		Date:        p.day,
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: !isBooked && !isOver,
	}
}

func minutesToTime(m int) types.TimeString {
	t, err := types.TimeString("00:00").AddMinutes(m)
	if err != nil {
		// Окно заканчивается не позже 23:59, переполнение невозможно
		panic(err)
	}
	return t
}

func secondsSinceMidnight(t time.Time) int {
	sec := t.Hour()*3600 + t.Minute()*60 + t.Second()
	if t.Nanosecond() > 0 {
		sec++
	}
	return sec
}

func anchor(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
