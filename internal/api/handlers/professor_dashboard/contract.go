package professor_dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/service/appointments"
)

type AppointmentService interface {
	Dashboard(ctx context.Context, professorID uuid.UUID, latest int) (*appointments.Dashboard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
