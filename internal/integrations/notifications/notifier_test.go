package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/testfixtures"
	"github.com/m04kA/office-hours-service/pkg/metrics"
	"github.com/m04kA/office-hours-service/pkg/types"
)

type published struct {
	key       string
	messageID string
	body      any
}

type fakePublisher struct {
	messages []published
	err      error
}

func (p *fakePublisher) PublishJSON(ctx context.Context, key, messageID string, v any) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, published{key: key, messageID: messageID, body: v})
	return nil
}

func appointment() *domain.Appointment {
	return &domain.Appointment{
		ID:        uuid.New(),
		Date:      time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
		Time:      "10:30",
		Status:    domain.StatusBooked,
		Student:   domain.StudentSnapshot{Name: "Ada", Email: "ada@uni.edu"},
		Professor: domain.ProfessorSnapshot{Name: "Dr. Smith", Email: "smith@uni.edu"},
	}
}

func TestNotifier_Booked(t *testing.T) {
	publisher := &fakePublisher{}
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	n := NewNotifier(publisher, m, testfixtures.NopLogger{})

	a := appointment()
	require.NoError(t, n.AppointmentBooked(context.Background(), a))

	require.Len(t, publisher.messages, 1)
	msg := publisher.messages[0]
	assert.Equal(t, RoutingKeyBooked, msg.key)

	event, ok := msg.body.(AppointmentEvent)
	require.True(t, ok)
	assert.Equal(t, event.EventID.String(), msg.messageID)
	assert.Equal(t, a.ID, event.AppointmentID)
	assert.Equal(t, types.DateKey("19_10_2026"), event.AppointmentDate)
	assert.Equal(t, types.TimeString("10:30"), event.AppointmentTime)
	assert.Equal(t, "10:30 AM", event.AppointmentTimeDisplay)
	assert.Equal(t, StudentContact{Name: "Ada", Email: "ada@uni.edu"}, event.StudentContact)
	assert.Equal(t, "Dr. Smith", event.ProfessorName)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(RoutingKeyBooked, "ok")))
}

func TestNotifier_Cancelled(t *testing.T) {
	publisher := &fakePublisher{}
	n := NewNotifier(publisher, (*metrics.Metrics)(nil), testfixtures.NopLogger{})

	require.NoError(t, n.AppointmentCancelled(context.Background(), appointment(), "professor"))
	require.Len(t, publisher.messages, 1)
	assert.Equal(t, RoutingKeyCancelled, publisher.messages[0].key)
	assert.Equal(t, "professor", publisher.messages[0].body.(AppointmentEvent).CancelledBy)
}

func TestNotifier_PublishFailure(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("channel closed")}
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	n := NewNotifier(publisher, m, testfixtures.NopLogger{})

	err := n.AppointmentReminder(context.Background(), appointment())
	assert.ErrorIs(t, err, ErrPublish)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(RoutingKeyReminder, "error")))
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(testfixtures.NopLogger{})
	assert.NoError(t, n.AppointmentBooked(context.Background(), appointment()))
	assert.NoError(t, n.AppointmentCancelled(context.Background(), appointment(), "student"))
	assert.NoError(t, n.AppointmentReminder(context.Background(), appointment()))
}
