package auth

import (
	"context"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
)

// StudentRepository интерфейс репозитория студентов
type StudentRepository interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)
}

// ProfessorRepository интерфейс репозитория преподавателей
type ProfessorRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Professor, error)
}

// TokenIssuer выпускает bearer-токены
type TokenIssuer interface {
	Issue(subject string, role jwtauth.Role, email string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
