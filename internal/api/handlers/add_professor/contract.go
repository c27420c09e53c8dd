package add_professor

import (
	"context"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/service/professors"
)

type ProfessorService interface {
	AddProfessor(ctx context.Context, req *professors.AddProfessorRequest) (*domain.Professor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
