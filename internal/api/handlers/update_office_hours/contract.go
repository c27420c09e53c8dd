package update_office_hours

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
)

type ProfessorService interface {
	UpdateOfficeHours(ctx context.Context, professorID uuid.UUID, hours domain.WeeklyAvailability) (*domain.WeeklyAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
