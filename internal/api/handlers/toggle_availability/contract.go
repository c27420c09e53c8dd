package toggle_availability

import (
	"context"

	"github.com/google/uuid"
)

type ProfessorService interface {
	ToggleAvailability(ctx context.Context, professorID uuid.UUID) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
