package reminder

import (
	"context"
	"time"

	"github.com/m04kA/office-hours-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListBookedBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// Notifier публикует напоминание
type Notifier interface {
	AppointmentReminder(ctx context.Context, a *domain.Appointment) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
