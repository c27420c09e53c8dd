package admin_dashboard

import (
	"context"

	"github.com/m04kA/office-hours-service/internal/service/appointments"
)

type AppointmentService interface {
	AdminDashboard(ctx context.Context, latest int) (*appointments.AdminDashboard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
