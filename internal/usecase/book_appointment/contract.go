package book_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
)

// StudentRepository интерфейс репозитория студентов
type StudentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
}

// ProfessorRepository интерфейс репозитория преподавателей
type ProfessorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professor, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
}

// LedgerRepository интерфейс реестра занятых слотов
type LedgerRepository interface {
	Reserve(ctx context.Context, slot domain.BookedSlot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier публикует событие о новой записи
type Notifier interface {
	AppointmentBooked(ctx context.Context, a *domain.Appointment) error
}

// Metrics счётчик результатов бронирования
type Metrics interface {
	ObserveBooking(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
