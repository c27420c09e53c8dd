package testfixtures

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
)

// Event a recorded notification
type Event struct {
	Kind          string
	AppointmentID uuid.UUID
}

// Notifier records published notifications. Err, when set, is returned from every call.
type Notifier struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

func (n *Notifier) record(kind string, a *domain.Appointment) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.events = append(n.events, Event{Kind: kind, AppointmentID: a.ID})
	return nil
}

func (n *Notifier) AppointmentBooked(ctx context.Context, a *domain.Appointment) error {
	return n.record("booked", a)
}

func (n *Notifier) AppointmentCancelled(ctx context.Context, a *domain.Appointment, by string) error {
	return n.record("cancelled", a)
}

func (n *Notifier) AppointmentReminder(ctx context.Context, a *domain.Appointment) error {
	return n.record("reminder", a)
}

// Events returns a copy of the recorded events
func (n *Notifier) Events() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Event(nil), n.events...)
}

// Metrics counts observations by label
type Metrics struct {
	mu            sync.Mutex
	Bookings      map[string]int
	Cancellations map[string]int
}

func (m *Metrics) ObserveBooking(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Bookings == nil {
		m.Bookings = make(map[string]int)
	}
	m.Bookings[result]++
}

func (m *Metrics) ObserveCancellation(role string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Cancellations == nil {
		m.Cancellations = make(map[string]int)
	}
	m.Cancellations[role]++
}
