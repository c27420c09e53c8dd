package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Appointment, error)
	ListByProfessor(ctx context.Context, professorID uuid.UUID) ([]*domain.Appointment, error)
	Finalize(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus, at time.Time) error
	ProfessorStats(ctx context.Context, professorID uuid.UUID) (*domain.DashboardStats, error)
	ListAll(ctx context.Context) ([]*domain.Appointment, error)
	SystemStats(ctx context.Context) (*domain.SystemStats, error)
}

// LedgerRepository интерфейс реестра занятых слотов
type LedgerRepository interface {
	Release(ctx context.Context, slot domain.BookedSlot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier публикует событие об отмене записи
type Notifier interface {
	AppointmentCancelled(ctx context.Context, a *domain.Appointment, by string) error
}

// Metrics счётчик отмен
type Metrics interface {
	ObserveCancellation(role string)
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
