// Package notifications публикует события о записях для внешних рассыльщиков.
package notifications

import (
	"context"
	"fmt"

	"github.com/m04kA/office-hours-service/internal/domain"
)

// Notifier публикует события о записях в RabbitMQ
type Notifier struct {
	publisher Publisher
	metrics   Metrics
	logger    Logger
}

// NewNotifier создает новый экземпляр публикатора событий
func NewNotifier(publisher Publisher, metrics Metrics, logger Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// AppointmentBooked публикует appointment.booked
func (n *Notifier) AppointmentBooked(ctx context.Context, a *domain.Appointment) error {
	return n.publish(ctx, RoutingKeyBooked, newEvent(a))
}

// AppointmentCancelled публикует appointment.cancelled
func (n *Notifier) AppointmentCancelled(ctx context.Context, a *domain.Appointment, by string) error {
	event := newEvent(a)
	event.CancelledBy = by
	return n.publish(ctx, RoutingKeyCancelled, event)
}

// AppointmentReminder публикует appointment.reminder
func (n *Notifier) AppointmentReminder(ctx context.Context, a *domain.Appointment) error {
	return n.publish(ctx, RoutingKeyReminder, newEvent(a))
}

func (n *Notifier) publish(ctx context.Context, key string, event AppointmentEvent) error {
	err := n.publisher.PublishJSON(ctx, key, event.EventID.String(), event)
	n.metrics.ObserveEvent(key, err == nil)
	if err != nil {
		return fmt.Errorf("%w: %s for appointment id=%s: %v", ErrPublish, key, event.AppointmentID, err)
	}

	n.logger.Info("Notifier: published %s event=%s appointment=%s", key, event.EventID, event.AppointmentID)
	return nil
}

// LogNotifier пишет события в лог, когда брокер отключён
type LogNotifier struct {
	logger Logger
}

// NewLogNotifier создает публикатор, который только логирует события
func NewLogNotifier(logger Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) AppointmentBooked(ctx context.Context, a *domain.Appointment) error {
	n.log(RoutingKeyBooked, a)
	return nil
}

func (n *LogNotifier) AppointmentCancelled(ctx context.Context, a *domain.Appointment, by string) error {
	n.log(RoutingKeyCancelled, a)
	return nil
}

func (n *LogNotifier) AppointmentReminder(ctx context.Context, a *domain.Appointment) error {
	n.log(RoutingKeyReminder, a)
	return nil
}

func (n *LogNotifier) log(key string, a *domain.Appointment) {
	n.logger.Info("Notifier: %s appointment=%s %s %s student=%s professor=%s",
		key, a.ID, a.DateKey(), a.Time, a.Student.Email, a.Professor.Name)
}
