package professors

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
)

// ProfessorRepository интерфейс репозитория преподавателей
type ProfessorRepository interface {
	Create(ctx context.Context, p *domain.Professor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professor, error)
	List(ctx context.Context) ([]*domain.Professor, error)
	UpdateOfficeHours(ctx context.Context, id uuid.UUID, hours domain.WeeklyAvailability) error
	ToggleAvailability(ctx context.Context, id uuid.UUID) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
