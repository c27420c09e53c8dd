package get_free_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
)

// ProfessorRepository интерфейс репозитория преподавателей
type ProfessorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professor, error)
}

// LedgerRepository интерфейс реестра занятых слотов
type LedgerRepository interface {
	Index(ctx context.Context, professorID uuid.UUID, from, to time.Time) (domain.BookedSlotIndex, error)
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
