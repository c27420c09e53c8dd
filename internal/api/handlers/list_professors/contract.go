package list_professors

import (
	"context"

	"github.com/m04kA/office-hours-service/internal/domain"
)

type ProfessorService interface {
	List(ctx context.Context) ([]*domain.Professor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
