package domain

import (
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/pkg/types"
)

// Slot a bookable 30-minute interval on a concrete day. Derived, never stored.
type Slot struct {
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}

// DateKey returns the ledger key of the slot's day.
func (s Slot) DateKey() types.DateKey {
	return types.NewDateKey(s.Date)
}

// DaySlots slots of one calendar day. Slots is lazy and may be ranged over repeatedly.
type DaySlots struct {
	Date  time.Time
	Slots iter.Seq[Slot]
}

// BookedSlotIndex booked start times per calendar day of one professor.
type BookedSlotIndex map[types.DateKey]map[types.TimeString]struct{}

// NewBookedSlotIndex builds an index from (date, time) pairs.
func NewBookedSlotIndex(entries ...BookedSlot) BookedSlotIndex {
	idx := make(BookedSlotIndex, len(entries))
	for _, e := range entries {
		idx.Add(e.Date, e.Time)
	}
	return idx
}

// Add marks t as booked on date. Adding twice is a no-op.
func (idx BookedSlotIndex) Add(date time.Time, t types.TimeString) {
	key := types.NewDateKey(date)
	day, ok := idx[key]
	if !ok {
		day = make(map[types.TimeString]struct{})
		idx[key] = day
	}
	day[t] = struct{}{}
}

// Has reports whether t is booked on date. Safe on a nil index.
func (idx BookedSlotIndex) Has(date time.Time, t types.TimeString) bool {
	_, ok := idx[types.NewDateKey(date)][t]
	return ok
}

// BookedSlot a single ledger entry
type BookedSlot struct {
	ProfessorID   uuid.UUID
	Date          time.Time
	Time          types.TimeString
	AppointmentID uuid.UUID
}
