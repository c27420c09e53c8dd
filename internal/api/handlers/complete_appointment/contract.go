package complete_appointment

import (
	"context"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/service/appointments"
)

type AppointmentService interface {
	Complete(ctx context.Context, req *appointments.CompleteRequest) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
