package cancel_appointment

import (
	"context"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/service/appointments"
)

type AppointmentService interface {
	Cancel(ctx context.Context, req *appointments.CancelRequest) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
