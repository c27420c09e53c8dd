package professor_dashboard

import (
	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/service/appointments"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	TotalAppointments     int                        `json:"totalAppointments"`
	CompletedAppointments int                        `json:"completedAppointments"`
	CancelledAppointments int                        `json:"cancelledAppointments"`
	UniqueStudents        int                        `json:"uniqueStudents"`
	LatestAppointments    []handlers.AppointmentJSON `json:"latestAppointments"`
}

// FromDashboard конвертирует дашборд сервиса в HTTP response
func FromDashboard(d *appointments.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		TotalAppointments:     d.Stats.TotalAppointments,
		CompletedAppointments: d.Stats.CompletedAppointments,
		CancelledAppointments: d.Stats.CancelledAppointments,
		UniqueStudents:        d.Stats.UniqueStudents,
		LatestAppointments:    handlers.FromAppointments(d.Latest),
	}
}
