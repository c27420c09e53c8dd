package list_all_appointments

import (
	"context"

	"github.com/m04kA/office-hours-service/internal/domain"
)

type AppointmentService interface {
	ListAll(ctx context.Context) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
