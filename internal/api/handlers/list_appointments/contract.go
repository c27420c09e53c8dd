package list_appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
)

type AppointmentService interface {
	ListForStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Appointment, error)
	ListForProfessor(ctx context.Context, professorID uuid.UUID) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
